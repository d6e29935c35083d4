package i18n

import (
	"regexp"
	"strings"
)

// DefaultNamespaceSplitter separates namespace components in lookup keys.
const DefaultNamespaceSplitter = "::"

// Lookup finds the raw value stored under key. A literal key always wins;
// otherwise the key is split on the namespace splitter and nested dictionaries
// are walked component by component. A key without a splitter is never
// treated as a path.
//
// The returned value may be a template string, a variant mapping or a nested
// dictionary.
func Lookup(dict Dictionary, key string, splitter string, pattern *regexp.Regexp) (any, bool) {
	if dict == nil {
		return nil, false
	}
	if v, ok := dict[key]; ok && v != nil {
		return v, true
	}

	path := splitKey(key, splitter, pattern)
	if len(path) < 2 {
		return nil, false
	}

	var current any = map[string]any(dict)
	for _, component := range path {
		m, ok := asMap(current)
		if !ok {
			return nil, false
		}
		v, ok := m[component]
		if !ok || v == nil {
			return nil, false
		}
		current = v
	}

	return current, true
}

func splitKey(key, splitter string, pattern *regexp.Regexp) []string {
	if pattern != nil {
		return pattern.Split(key, -1)
	}
	if splitter == "" {
		splitter = DefaultNamespaceSplitter
	}
	return strings.Split(key, splitter)
}

// asMap reports whether v is one of the map shapes a dictionary may hold
// and returns it as map[string]any. map[string]string values are copied.
func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case Dictionary:
		return m, true
	case M:
		return m, true
	case map[string]string:
		out := make(map[string]any, len(m))
		for k, s := range m {
			out[k] = s
		}
		return out, true
	default:
		return nil, false
	}
}
