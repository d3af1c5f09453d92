package cps

import (
	"bytes"
	"io"
	"os"
	"path/filepath"

	gojson "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Source abstracts over polymorphic input encodings. Decode yields the
// generic document tree (map[string]any, []any, string, bool, nil) the loader
// consumes read-only. Decode errors are raw decoder errors; Parse wraps them
// into the Issue model.
type Source interface {
	Decode() (any, error)
}

// JSONBytes wraps a byte slice as a JSON Source.
func JSONBytes(b []byte) Source { return jsonSource{r: bytes.NewReader(b)} }

// JSONReader wraps an io.Reader as a JSON Source.
func JSONReader(r io.Reader) Source { return jsonSource{r: r} }

type jsonSource struct{ r io.Reader }

func (s jsonSource) Decode() (any, error) {
	dec := gojson.NewDecoder(s.r)
	dec.UseNumber()
	var tree any
	if err := dec.Decode(&tree); err != nil {
		return nil, err
	}
	return tree, nil
}

// YAMLBytes wraps a byte slice as a YAML Source. CPS documents are JSON on
// the wire, but the loader accepts YAML-authored equivalents; both decode to
// the same generic tree.
func YAMLBytes(b []byte) Source { return yamlSource{data: b} }

type yamlSource struct{ data []byte }

func (s yamlSource) Decode() (any, error) {
	var tree any
	if err := yaml.Unmarshal(s.data, &tree); err != nil {
		return nil, err
	}
	return tree, nil
}

// File wraps a file path as a Source. The extension picks the decoder:
// .yaml/.yml decode as YAML, everything else as JSON.
func File(path string) Source { return fileSource{path: path} }

type fileSource struct{ path string }

func (s fileSource) Decode() (any, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		return nil, err
	}
	switch filepath.Ext(s.path) {
	case ".yaml", ".yml":
		return YAMLBytes(b).Decode()
	default:
		return JSONBytes(b).Decode()
	}
}
