package i18n

import (
	"fmt"
	"regexp"
	"strings"
)

// ResolveAliases returns a copy of dict where every {{key}} and
// {{key[subkey]}} reference inside a string has been replaced with the fully
// expanded value of that entry. Keys are resolved from the dictionary root,
// including "::" namespaced keys. Strings nested in variant mappings and
// namespaces are expanded too.
//
// Aliases are an authoring tool, so every problem is an error: unknown
// targets, cycles, a whole variant mapping referenced without a subkey, and
// targets that are not strings.
func ResolveAliases(dict Dictionary) (Dictionary, error) {
	return resolveAliases(dict, DefaultNamespaceSplitter, nil)
}

func resolveAliases(dict Dictionary, splitter string, pattern *regexp.Regexp) (Dictionary, error) {
	r := &aliasResolver{
		root:       dict,
		splitter:   splitter,
		pattern:    pattern,
		inProgress: make(map[string]bool),
	}
	out, err := r.resolveMap(dict)
	if err != nil {
		return nil, err
	}
	return Dictionary(out), nil
}

type aliasResolver struct {
	root       Dictionary
	splitter   string
	pattern    *regexp.Regexp
	inProgress map[string]bool
}

func (r *aliasResolver) resolveMap(m map[string]any) (map[string]any, error) {
	out := make(map[string]any, len(m))
	for k, v := range m {
		resolved, err := r.resolveValue(v)
		if err != nil {
			return nil, err
		}
		out[k] = resolved
	}
	return out, nil
}

func (r *aliasResolver) resolveValue(v any) (any, error) {
	switch val := v.(type) {
	case string:
		return r.expand(val)
	case Dictionary:
		out, err := r.resolveMap(val)
		return Dictionary(out), err
	case M:
		out, err := r.resolveMap(val)
		return M(out), err
	case map[string]string:
		out := make(map[string]string, len(val))
		for k, s := range val {
			expanded, err := r.expand(s)
			if err != nil {
				return nil, err
			}
			out[k] = expanded
		}
		return out, nil
	default:
		if m, ok := asMap(v); ok {
			return r.resolveMap(m)
		}
		return v, nil
	}
}

// expand replaces every alias token in s.
func (r *aliasResolver) expand(s string) (string, error) {
	if !strings.Contains(s, "{{") {
		return s, nil
	}

	var b strings.Builder
	for {
		start := strings.Index(s, "{{")
		if start < 0 {
			break
		}
		// In a run like "{{{A}}}" the token opens at the last two braces.
		for start+2 < len(s) && s[start+2] == '{' {
			start++
		}
		end := strings.Index(s[start+2:], "}}")
		if end < 0 {
			break
		}
		end += start + 2

		token, subkey := parseAliasToken(s[start+2 : end])
		value, err := r.target(token, subkey)
		if err != nil {
			return "", err
		}

		b.WriteString(s[:start])
		b.WriteString(value)
		s = s[end+2:]
	}
	b.WriteString(s)

	return b.String(), nil
}

// parseAliasToken splits "key[subkey]" into its parts.
func parseAliasToken(inner string) (token, subkey string) {
	if open := strings.IndexByte(inner, '['); open >= 0 && strings.HasSuffix(inner, "]") {
		return inner[:open], inner[open+1 : len(inner)-1]
	}
	return inner, ""
}

// target returns the expanded text an alias token stands for.
func (r *aliasResolver) target(token, subkey string) (string, error) {
	ref := token
	if subkey != "" {
		ref = token + "[" + subkey + "]"
	}
	if r.inProgress[ref] {
		return "", fmt.Errorf("%w: %q", ErrCircularAlias, ref)
	}

	value, ok := Lookup(r.root, token, r.splitter, r.pattern)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrAliasNotFound, ref)
	}

	if m, isMap := asMap(value); isMap {
		if subkey == "" {
			return "", fmt.Errorf("%w: %q", ErrAliasNeedsSubkey, ref)
		}
		value, ok = entry(m, subkey)
		if !ok {
			return "", fmt.Errorf("%w: %q", ErrAliasNotFound, ref)
		}
	}

	text, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrAliasInvalidTarget, ref)
	}

	r.inProgress[ref] = true
	defer delete(r.inProgress, ref)

	return r.expand(text)
}
