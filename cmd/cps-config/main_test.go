package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestPkgconfCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "foo.cps")
	doc := `{"Name":"foo","Cps-Version":"1","Components":{"libfoo":{"Type":"archive","Compile-Flags":["-DFOO","-O2"],"Includes":["/usr/include/foo"]}}}`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetArgs([]string{"pkgconf", path, "--cflags-only-I"})
	defer func() {
		cflagsOnlyI = false
		cflagsOnlyOther = false
	}()

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if got := out.String(); got != "-I/usr/include/foo\n" {
		t.Fatalf("expected include flags only, got %q", got)
	}
}

func TestPkgconfCommand_LoadFailure(t *testing.T) {
	rootCmd.SetArgs([]string{"pkgconf", filepath.Join(t.TempDir(), "missing.cps")})
	if err := rootCmd.Execute(); err == nil {
		t.Fatalf("expected a load failure to surface as a command error")
	}
}
