package lib

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// CloneMap deep-copies nested maps and slices of decoded settings
func CloneMap(m map[string]any) map[string]any {
	res := make(map[string]any, len(m))
	for k, v := range m {
		res[k] = CloneValue(v)
	}
	return res
}

// CloneValue copies maps and slices, other values are returned as is.
// map[any]any is converted to map[string]any
func CloneValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return CloneMap(val)
	case map[any]any:
		res := make(map[string]any, len(val))
		for k, item := range val {
			res[fmt.Sprint(k)] = CloneValue(item)
		}
		return res
	case []any:
		res := make([]any, len(val))
		for i, item := range val {
			res[i] = CloneValue(item)
		}
		return res
	case []string:
		return slices.Clone(val)
	default:
		return v
	}
}
