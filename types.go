package cps

import "fmt"

// KnownLanguage enumerates the languages a CPS document can carry per-language
// values for. The set is closed and never extended at runtime.
type KnownLanguage int

const (
	LangC KnownLanguage = iota
	LangCPP
	LangFortran
)

// knownLanguages lists every KnownLanguage in document-key order.
var knownLanguages = [...]KnownLanguage{LangC, LangCPP, LangFortran}

// Key returns the document key for the language ("C", "C++", "Fortran").
func (l KnownLanguage) Key() string {
	switch l {
	case LangC:
		return "C"
	case LangCPP:
		return "C++"
	case LangFortran:
		return "Fortran"
	}
	return "unknown"
}

func (l KnownLanguage) String() string { return l.Key() }

// LangValues maps each known language to an ordered list of strings such as
// compiler flags or include paths. Keys are always a subset of KnownLanguage;
// use Get for lookup, which defaults to empty rather than failing.
type LangValues map[KnownLanguage][]string

// Get returns the values for lang. A language absent from the map is
// equivalent to an empty list.
func (lv LangValues) Get(lang KnownLanguage) []string {
	return lv[lang]
}

// ComponentType identifies what kind of unit a component is.
type ComponentType int

const (
	TypeExecutable ComponentType = iota
	TypeArchive
	TypeDylib
	TypeModule
	TypeInterface
	TypeSymbolic
)

func (t ComponentType) String() string {
	switch t {
	case TypeExecutable:
		return "executable"
	case TypeArchive:
		return "archive"
	case TypeDylib:
		return "dylib"
	case TypeModule:
		return "module"
	case TypeInterface:
		return "interface"
	case TypeSymbolic:
		return "symbolic"
	}
	return "unknown"
}

// componentTypes maps the fixed wire literals to component types. The
// "interfafce" spelling shipped in existing documents and is part of the wire
// format; it must not be corrected here.
var componentTypes = map[string]ComponentType{
	"executable": TypeExecutable,
	"archive":    TypeArchive,
	"dylib":      TypeDylib,
	"module":     TypeModule,
	"interfafce": TypeInterface,
	"symbolic":   TypeSymbolic,
}

// ComponentTypeFromString decodes one of the fixed CPS type literals. Unknown
// literals are a decode failure, never a silent default.
func ComponentTypeFromString(s string) (ComponentType, error) {
	if t, ok := componentTypes[s]; ok {
		return t, nil
	}
	return 0, issueAt("/", CodeUnknownComponentType, fmt.Sprintf("unknown component type %q", s))
}

// Component is one named buildable/usable unit within a package. It has no
// identity outside its key in the owning Package's component map.
type Component struct {
	Type         ComponentType
	CompileFlags LangValues
	Includes     LangValues
}

// Package is the root value produced by a load. It owns all of its Component
// values; nothing in it aliases the input document.
type Package struct {
	Name       string
	CpsVersion string // stored verbatim, no semantic version parsing
	Components map[string]Component
	// DefaultComponents is nil when the document omits Default-Components;
	// order follows the document.
	DefaultComponents []string
}

// Configuration carries the per-language values a renderer consumes. It shares
// LangValues with the loader but is not populated by it.
type Configuration struct {
	CompileFlags LangValues
}
