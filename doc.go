// Package cps loads Common Package Specification (CPS) documents into a
// strongly typed in-memory model.
//
// The package provides:
//
//   - A typed, fallible loader for CPS documents (Parse/Load)
//   - A stable error model via Issues (JSON Pointer, code, message)
//   - Polymorphic input via Source (JSON bytes/reader, YAML bytes, files)
//
// Design policy:
//   - Keep the loader and its model in the root package; put the pkg-config
//     projection under printer/ and the CLI under cmd/cps-config.
//   - Every step of a load returns a value or an error; the first failure
//     becomes the result of the whole load. No partial Package is ever
//     returned.
//   - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	pkg, err := cps.Load("libfoo.cps")
//	pkg, err := cps.Parse(cps.JSONBytes(data))
package cps
