package cps_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	cps "github.com/tylerjw/cps-config"
)

func TestIssues_ErrorSummary(t *testing.T) {
	iss := cps.Issues{
		{Path: "/Name", Code: cps.CodeRequired, Message: "required field Name in package is missing"},
	}
	s := iss.Error()
	if !strings.Contains(s, cps.CodeRequired) || !strings.Contains(s, "/Name") {
		t.Fatalf("expected code and path in summary, got: %s", s)
	}
}

func TestIssues_ErrorSummaryTruncates(t *testing.T) {
	iss := cps.Issues{
		{Path: "/a", Code: cps.CodeRequired},
		{Path: "/b", Code: cps.CodeRequired},
		{Path: "/c", Code: cps.CodeRequired},
		{Path: "/d", Code: cps.CodeRequired},
	}
	if s := iss.Error(); !strings.Contains(s, "total 4") {
		t.Fatalf("expected truncation marker, got: %s", s)
	}
}

func TestAsIssues_ThroughWrapping(t *testing.T) {
	_, err := cps.Parse(cps.JSONBytes([]byte(`{}`)))
	wrapped := fmt.Errorf("loading package: %w", err)

	iss, ok := cps.AsIssues(wrapped)
	if !ok || len(iss) == 0 {
		t.Fatalf("expected Issues through the wrap, got: %v", wrapped)
	}

	var target cps.Issues
	if !errors.As(wrapped, &target) {
		t.Fatalf("expected errors.As to extract Issues")
	}
}

func TestAsIssues_NilAndForeignErrors(t *testing.T) {
	if _, ok := cps.AsIssues(nil); ok {
		t.Fatalf("expected no Issues from nil")
	}
	if _, ok := cps.AsIssues(errors.New("plain")); ok {
		t.Fatalf("expected no Issues from a foreign error")
	}
}
