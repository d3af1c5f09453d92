package cps

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeRequired     = "required"      // required field absent from a named node
	CodeInvalidType  = "invalid_type"  // field present but not coercible to the expected type
	CodeInvalidShape = "invalid_shape" // language-value field neither object nor array
	CodeParseError   = "parse_error"   // input bytes are not a parseable document
	// Document-level Components violations, each with its own code so callers
	// can tell the three shapes of "no usable components" apart.
	CodeComponentsMissing   = "components_missing"
	CodeComponentsNotObject = "components_not_object"
	CodeComponentsEmpty     = "components_empty"
	// Unknown Type literal. The reference cps-config aborts the process here;
	// this implementation reports it as a normal decode failure instead.
	CodeUnknownComponentType = "unknown_component_type"
)

// Issue represents a single validation failure.
type Issue struct {
	Path    string // JSON Pointer (for example: /Components/libfoo/Type).
	Code    string // One of the codes listed above.
	Message string
	Cause   error // Optional: underlying error.
}

// Issues is a collection of validation errors that implements error. The
// loader is fail-fast, so a load error always carries exactly one Issue; the
// slice shape keeps the model open for callers that aggregate across loads.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. required at /Name: required field Name in package is missing
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
		if it.Message != "" {
			fmt.Fprintf(b, ": %s", it.Message)
		}
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// issueAt creates a single-Issue error at the given pointer path. Convenience
// for the fail-fast loader where every failure is exactly one Issue.
func issueAt(path, code, msg string) Issues {
	return Issues{{Path: path, Code: code, Message: msg}}
}
