package normalize

import (
	"fmt"
	"strconv"
	"strings"
)

// Coercion helpers. Each takes an untyped header value and degrades to
// the caller's default when the shape is wrong. These are deliberately
// explicit per shape so it is always clear which fallback fired.

// asString returns v as a trimmed string, or def when v is absent or not
// string-like. Numeric and boolean scalars are rendered, since headers
// routinely declare e.g. version: 1.0 unquoted.
func asString(v any, def string) string {
	switch t := v.(type) {
	case nil:
		return def
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return def
		}
		return s
	case bool, int, int64, uint64, float64:
		return fmt.Sprint(t)
	default:
		return def
	}
}

// asStringSlice returns v as a string slice. A scalar string becomes a
// single-element slice; non-string elements inside a list are rendered
// via asString and dropped when empty.
func asStringSlice(v any, def []string) []string {
	switch t := v.(type) {
	case nil:
		return def
	case string:
		if s := strings.TrimSpace(t); s != "" {
			return []string{s}
		}
		return def
	case []string:
		return t
	case []any:
		out := make([]string, 0, len(t))
		for _, e := range t {
			if s := asString(e, ""); s != "" {
				out = append(out, s)
			}
		}
		return out
	default:
		return def
	}
}

// asBool returns v as a bool, accepting YAML booleans and common string
// spellings. Anything else is false.
func asBool(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(t))
		return err == nil && b
	default:
		return false
	}
}

// asCount returns v as a non-negative int. Negative and unparsable
// values degrade to 0.
func asCount(v any) int {
	n := 0
	switch t := v.(type) {
	case int:
		n = t
	case int64:
		n = int(t)
	case uint64:
		n = int(t)
	case float64:
		n = int(t)
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(t))
		if err != nil {
			return 0
		}
		n = parsed
	default:
		return 0
	}
	if n < 0 {
		return 0
	}
	return n
}

// asMap returns v as a string-keyed map. YAML decodes nested maps as
// map[string]any; TOML produces map[string]any as well.
func asMap(v any) (map[string]any, bool) {
	switch t := v.(type) {
	case map[string]any:
		return t, true
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, mv := range t {
			out[fmt.Sprint(k)] = mv
		}
		return out, true
	default:
		return nil, false
	}
}
