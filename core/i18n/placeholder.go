package i18n

import (
	"fmt"
	"strings"
)

// Render substitutes placeholders in the template.
//
// Values are looked up in replacements (see Translator.Translate for the
// accepted shapes). A placeholder named "n", or with an empty name, falls back
// to count when count is numeric and the replacements don't define it. Unknown
// placeholders are kept as their original {name} text and reported to onMissing,
// which may be nil.
//
// In array mode the result is a []any whose even positions are literal text and
// odd positions are the substituted values themselves. Literal templates are
// always returned as a plain string.
func (t Template) Render(repl any, count any, asArray bool, onMissing func(name string)) any {
	r, _ := asReplacements(repl)
	var disc discriminator
	if count != nil {
		disc, _ = asDiscriminator(count)
	}
	return t.assemble(r, disc, asArray, onMissing)
}

func (t Template) assemble(r replacements, disc discriminator, asArray bool, onMissing func(name string)) any {
	if t.IsLiteral() {
		return t.raw
	}

	value := func(name string) any {
		if v, ok := r.lookup(name); ok {
			return v
		}
		if (name == CountPlaceholder || name == "") && disc.set && disc.numeric {
			return disc.value
		}
		if onMissing != nil {
			onMissing(name)
		}
		return "{" + name + "}"
	}

	if asArray {
		out := make([]any, len(t.segments))
		for i, seg := range t.segments {
			if i%2 == 0 {
				out[i] = seg
				continue
			}
			out[i] = value(seg)
		}
		return out
	}

	var b strings.Builder
	b.Grow(len(t.raw))
	for i, seg := range t.segments {
		if i%2 == 0 {
			b.WriteString(seg)
			continue
		}
		switch v := value(seg).(type) {
		case string:
			b.WriteString(v)
		default:
			fmt.Fprint(&b, v)
		}
	}
	return b.String()
}

// ReplacePlaceholders replaces placeholders in the template string with values
// from the provided map. Placeholders use the format {name}.
// If a placeholder is not found in the map, it remains unchanged.
//
// Example:
//
//	template: "Hello, {name}! You have {count} messages."
//	placeholders: M{"name": "John", "count": 5}
//	returns: "Hello, John! You have 5 messages."
func ReplacePlaceholders(template string, placeholders M) string {
	if len(placeholders) < 1 {
		return template
	}
	out, _ := Compile(template).assemble(replacements{named: placeholders}, discriminator{}, false, nil).(string)
	return out
}
