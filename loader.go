package cps

import (
	"fmt"
	"slices"
	"sort"
)

// getLangValues reads a per-language field, accepting two shapes of the same
// logical data. An object populates each known language from its own optional
// key; an array is language-agnostic shorthand and applies to every known
// language. An absent field is an empty LangValues, always valid at this
// layer.
func getLangValues(obj map[string]any, at, parentName, name string) (LangValues, error) {
	ret := LangValues{}
	raw, present := obj[name]
	if !present {
		return ret, nil
	}

	switch v := raw.(type) {
	case map[string]any:
		for _, lang := range knownLanguages {
			vals, ok, err := getOptional[[]string](v, at+"/"+name, name, lang.Key())
			if err != nil {
				return nil, err
			}
			if !ok {
				// Present and empty, not absent: every known language gets an
				// entry when the object shape is used.
				vals = []string{}
			}
			ret[lang] = vals
		}
	case []any:
		vals, err := coerce[[]string](raw, at, parentName, name)
		if err != nil {
			return nil, err
		}
		for _, lang := range knownLanguages {
			ret[lang] = slices.Clone(vals)
		}
	default:
		return nil, issueAt(at+"/"+name, CodeInvalidShape,
			fmt.Sprintf("section %s of %s is neither an object nor an array", name, parentName))
	}
	return ret, nil
}

// parseComponent validates and constructs one named component. The first of
// its three field failures wins; no partial component is ever returned.
func parseComponent(node any, name string) (Component, error) {
	at := "/Components/" + name
	obj, ok := node.(map[string]any)
	if !ok {
		return Component{}, issueAt(at, CodeInvalidType,
			fmt.Sprintf("component %s is not an object", name))
	}

	rawType, err := getRequired[string](obj, at, "Component", "Type")
	if err != nil {
		return Component{}, err
	}
	typ, ok := componentTypes[rawType]
	if !ok {
		return Component{}, issueAt(at+"/Type", CodeUnknownComponentType,
			fmt.Sprintf("unknown component type %q", rawType))
	}

	cflags, err := getLangValues(obj, at, "Component", "Compile-Flags")
	if err != nil {
		return Component{}, err
	}
	includes, err := getLangValues(obj, at, "Component", "Includes")
	if err != nil {
		return Component{}, err
	}

	return Component{Type: typ, CompileFlags: cflags, Includes: includes}, nil
}

// getComponents validates the document-level Components field. The three
// shape violations (missing, not an object, empty) each carry their own code.
func getComponents(root map[string]any) (map[string]Component, error) {
	raw, present := root["Components"]
	if !present {
		return nil, issueAt("/Components", CodeComponentsMissing,
			"required field Components of package is missing")
	}
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, issueAt("/Components", CodeComponentsNotObject,
			"Components field of package is not an object")
	}
	if len(obj) == 0 {
		return nil, issueAt("/Components", CodeComponentsEmpty,
			"Components field of package is empty, but must have at least one component")
	}

	// Go maps do not preserve document key order; iterate sorted names so the
	// first reported failure is deterministic.
	names := make([]string, 0, len(obj))
	for name := range obj {
		names = append(names, name)
	}
	sort.Strings(names)

	components := make(map[string]Component, len(obj))
	for _, name := range names {
		comp, err := parseComponent(obj[name], name)
		if err != nil {
			return nil, err
		}
		components[name] = comp
	}
	return components, nil
}

// assemble validates the decoded document tree into a Package.
func assemble(tree any) (*Package, error) {
	root, ok := tree.(map[string]any)
	if !ok {
		return nil, issueAt("/", CodeInvalidType, "document root is not an object")
	}

	name, err := getRequired[string](root, "", "package", "Name")
	if err != nil {
		return nil, err
	}
	version, err := getRequired[string](root, "", "package", "Cps-Version")
	if err != nil {
		return nil, err
	}
	components, err := getComponents(root)
	if err != nil {
		return nil, err
	}
	defaults, present, err := getOptional[[]string](root, "", "package", "Default-Components")
	if err != nil {
		return nil, err
	}

	pkg := &Package{Name: name, CpsVersion: version, Components: components}
	if present {
		pkg.DefaultComponents = defaults
	}
	return pkg, nil
}

// Parse decodes a CPS document from src. The first failure at any depth is
// the result of the whole call; on success the returned Package is the sole
// owner of everything it contains. Parse is safe to call concurrently on
// independent sources.
func Parse(src Source) (*Package, error) {
	tree, err := src.Decode()
	if err != nil {
		return nil, Issues{{Path: "/", Code: CodeParseError, Message: "document is not parseable", Cause: err}}
	}
	return assemble(tree)
}

// Load reads and parses the CPS document at path. The decoder is chosen by
// file extension, see File.
func Load(path string) (*Package, error) {
	return Parse(File(path))
}
