package cps_test

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	cps "github.com/tylerjw/cps-config"
)

const yamlDoc = `
Name: foo
Cps-Version: "1"
Components:
  libfoo:
    Type: archive
    Compile-Flags:
      C: ["-O2"]
`

func TestYAMLBytes_EquivalentToJSON(t *testing.T) {
	fromYAML, err := cps.Parse(cps.YAMLBytes([]byte(yamlDoc)))
	if err != nil {
		t.Fatalf("unexpected YAML error: %v", err)
	}
	fromJSON, err := cps.Parse(cps.JSONBytes([]byte(
		`{"Name":"foo","Cps-Version":"1","Components":{"libfoo":{"Type":"archive","Compile-Flags":{"C":["-O2"]}}}}`)))
	if err != nil {
		t.Fatalf("unexpected JSON error: %v", err)
	}
	if !reflect.DeepEqual(fromYAML, fromJSON) {
		t.Fatalf("YAML and JSON documents loaded differently:\n%+v\n%+v", fromYAML, fromJSON)
	}
}

func TestJSONReader(t *testing.T) {
	r := strings.NewReader(`{"Name":"foo","Cps-Version":"1","Components":{"a":{"Type":"archive"}}}`)
	pkg, err := cps.Parse(cps.JSONReader(r))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pkg.Name != "foo" {
		t.Fatalf("unexpected name: %s", pkg.Name)
	}
}

func TestLoad_PicksDecoderByExtension(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "foo.cps")
	if err := os.WriteFile(jsonPath, []byte(`{"Name":"foo","Cps-Version":"1","Components":{"a":{"Type":"archive"}}}`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	yamlPath := filepath.Join(dir, "foo.yaml")
	if err := os.WriteFile(yamlPath, []byte(yamlDoc), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if pkg, err := cps.Load(jsonPath); err != nil || pkg.Name != "foo" {
		t.Fatalf("json load: %v %v", pkg, err)
	}
	if pkg, err := cps.Load(yamlPath); err != nil || pkg.Name != "foo" {
		t.Fatalf("yaml load: %v %v", pkg, err)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := cps.Load(filepath.Join(t.TempDir(), "nope.cps"))
	iss, ok := cps.AsIssues(err)
	if !ok || len(iss) == 0 {
		t.Fatalf("expected Issues, got: %v", err)
	}
	if iss[0].Code != cps.CodeParseError {
		t.Fatalf("expected parse_error, got %s", iss[0].Code)
	}
	if iss[0].Cause == nil {
		t.Fatalf("expected the underlying read error to be carried as Cause")
	}
}
