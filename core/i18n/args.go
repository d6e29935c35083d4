package i18n

import (
	"math"
	"reflect"
	"strconv"
	"strings"
)

// discriminator is the count or subkey passed to a translation call.
type discriminator struct {
	set     bool
	numeric bool
	value   any     // as passed by the caller, substituted into {n}
	number  float64 // valid when numeric
	subkey  string  // valid when !numeric
}

// key returns the discriminator as it appears in debug fallback output.
func (d discriminator) key() string {
	if d.numeric {
		return formatNumber(d.number)
	}
	return d.subkey
}

// replacements is a read-only view over the caller's placeholder values.
type replacements struct {
	named      map[string]any
	positional []any
}

// lookup returns the value for a placeholder name. Nil values are absent.
func (r replacements) lookup(name string) (any, bool) {
	if r.positional != nil {
		idx, err := strconv.Atoi(name)
		if err != nil || idx < 0 || idx >= len(r.positional) {
			return nil, false
		}
		v := r.positional[idx]
		return v, v != nil
	}
	v, ok := r.named[name]
	return v, ok && v != nil
}

// parseArgs splits the optional arguments of a translation call into a
// discriminator and replacements. Either may come first; the structural
// check (map or slice) decides which argument holds replacements.
func parseArgs(args []any) (discriminator, replacements) {
	var (
		disc    discriminator
		repl    replacements
		haveMap bool
	)

	for i, arg := range args {
		if i == 2 {
			break
		}
		if !haveMap {
			if r, ok := asReplacements(arg); ok {
				repl, haveMap = r, true
				continue
			}
		}
		if !disc.set {
			if d, ok := asDiscriminator(arg); ok {
				disc = d
			}
		}
	}

	return disc, repl
}

func asReplacements(v any) (replacements, bool) {
	switch r := v.(type) {
	case M:
		return replacements{named: r}, true
	case map[string]any:
		return replacements{named: r}, true
	case Dictionary:
		return replacements{named: r}, true
	case map[string]string:
		named := make(map[string]any, len(r))
		for k, s := range r {
			named[k] = s
		}
		return replacements{named: named}, true
	case []any:
		return replacements{positional: nonNilSlice(r)}, true
	case []string:
		positional := make([]any, len(r))
		for i, s := range r {
			positional[i] = s
		}
		return replacements{positional: positional}, true
	default:
		return reflectReplacements(v)
	}
}

// reflectReplacements accepts any other map keyed by a string kind as named
// values and any other slice or array as positional values.
func reflectReplacements(v any) (replacements, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return replacements{}, false
		}
		named := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			named[iter.Key().String()] = iter.Value().Interface()
		}
		return replacements{named: named}, true
	case reflect.Slice, reflect.Array:
		positional := make([]any, rv.Len())
		for i := range positional {
			positional[i] = rv.Index(i).Interface()
		}
		return replacements{positional: positional}, true
	default:
		return replacements{}, false
	}
}

// nonNilSlice keeps an empty positional list distinguishable from named mode.
func nonNilSlice(s []any) []any {
	if s == nil {
		return []any{}
	}
	return s
}

func asDiscriminator(v any) (discriminator, bool) {
	if n, ok := toNumber(v); ok {
		return discriminator{set: true, numeric: true, value: v, number: n}, true
	}
	if s, ok := v.(string); ok && s != "" {
		return discriminator{set: true, value: s, subkey: s}, true
	}
	return discriminator{}, false
}

// toNumber converts Go numeric kinds and numeric strings to float64.
func toNumber(v any) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case int:
		f = float64(n)
	case int8:
		f = float64(n)
	case int16:
		f = float64(n)
	case int32:
		f = float64(n)
	case int64:
		f = float64(n)
	case uint:
		f = float64(n)
	case uint8:
		f = float64(n)
	case uint16:
		f = float64(n)
	case uint32:
		f = float64(n)
	case uint64:
		f = float64(n)
	case float32:
		f = float64(n)
	case float64:
		f = n
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// formatNumber renders a number the way variant mapping keys spell it:
// integers without a fractional part, fractions in shortest form.
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
