package cps

import "fmt"

// fieldValue is the closed set of semantic types a CPS field can decode to.
// Type-directed extraction dispatches over exactly these three shapes; the
// set is fixed by the format, not open for extension.
type fieldValue interface {
	string | []string | map[string][]string
}

// getOptional reads field name from obj, coercing it to T. An absent field is
// not an error: it reports ok=false, distinct from "present but empty". The
// at argument is the JSON Pointer of obj; parentName is the human-readable
// node name used in messages.
func getOptional[T fieldValue](obj map[string]any, at, parentName, name string) (T, bool, error) {
	var zero T
	raw, present := obj[name]
	if !present {
		return zero, false, nil
	}
	v, err := coerce[T](raw, at, parentName, name)
	if err != nil {
		return zero, false, err
	}
	return v, true, nil
}

// getRequired is getOptional with the absent case promoted to a failure.
// Coercion failures propagate unchanged from the optional path.
func getRequired[T fieldValue](obj map[string]any, at, parentName, name string) (T, error) {
	var zero T
	if _, present := obj[name]; !present {
		return zero, issueAt(at+"/"+name, CodeRequired,
			fmt.Sprintf("required field %s in %s is missing", name, parentName))
	}
	v, _, err := getOptional[T](obj, at, parentName, name)
	if err != nil {
		return zero, err
	}
	return v, nil
}

// coerce converts a decoded document value into one of the fieldValue types.
// raw is the value of field name inside the object located at pointer at.
func coerce[T fieldValue](raw any, at, parentName, name string) (T, error) {
	var zero T
	switch any(zero).(type) {
	case string:
		if s, ok := raw.(string); ok {
			return any(s).(T), nil
		}
		return zero, typeMismatch(at, parentName, name, "string")
	case []string:
		arr, ok := raw.([]any)
		if !ok {
			return zero, typeMismatch(at, parentName, name, "array of strings")
		}
		out := make([]string, 0, len(arr))
		for _, el := range arr {
			s, ok := el.(string)
			if !ok {
				return zero, typeMismatch(at, parentName, name, "array of strings")
			}
			out = append(out, s)
		}
		return any(out).(T), nil
	case map[string][]string:
		m, ok := raw.(map[string]any)
		if !ok {
			return zero, typeMismatch(at, parentName, name, "object of string arrays")
		}
		out := make(map[string][]string, len(m))
		for k, el := range m {
			vs, err := coerce[[]string](el, at+"/"+name, name, k)
			if err != nil {
				return zero, err
			}
			out[k] = vs
		}
		return any(out).(T), nil
	}
	// Unreachable: fieldValue admits no other type.
	return zero, typeMismatch(at, parentName, name, "supported type")
}

func typeMismatch(at, parentName, name, want string) Issues {
	return issueAt(at+"/"+name, CodeInvalidType,
		fmt.Sprintf("field %s in %s is not of type %s", name, parentName, want))
}
