package i18n

import (
	"strings"
	"sync"
)

// Template is the compiled form of a translation string.
// A literal template has no placeholders and renders to its raw text.
// Otherwise the template holds alternating literal and placeholder segments,
// always starting and ending with a literal (possibly empty).
type Template struct {
	raw      string
	segments []string
}

// Compile parses a translation string into a Template.
// Placeholders are written as {name} where name consists of ASCII letters,
// digits and underscores; the name may be empty. Any other brace is literal text.
func Compile(raw string) Template {
	var segments []string
	var lit strings.Builder

	for i := 0; i < len(raw); {
		if raw[i] == '{' {
			if end, ok := scanPlaceholder(raw, i); ok {
				segments = append(segments, lit.String(), raw[i+1:end])
				lit.Reset()
				i = end + 1
				continue
			}
		}
		lit.WriteByte(raw[i])
		i++
	}

	if len(segments) == 0 {
		return Template{raw: raw}
	}

	return Template{raw: raw, segments: append(segments, lit.String())}
}

// scanPlaceholder reports the index of the closing brace of a placeholder
// opened at raw[start].
func scanPlaceholder(raw string, start int) (int, bool) {
	for i := start + 1; i < len(raw); i++ {
		switch c := raw[i]; {
		case c == '}':
			return i, true
		case isWordChar(c):
			continue
		default:
			return 0, false
		}
	}
	return 0, false
}

func isWordChar(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}

// Raw returns the source text the template was compiled from.
func (t Template) Raw() string {
	return t.raw
}

// IsLiteral reports whether the template has no placeholders.
func (t Template) IsLiteral() bool {
	return len(t.segments) == 0
}

// Segments returns a copy of the alternating literal/placeholder segments.
// Even indexes are literal text, odd indexes are placeholder names.
// Literal templates return nil.
func (t Template) Segments() []string {
	if t.IsLiteral() {
		return nil
	}
	out := make([]string, len(t.segments))
	copy(out, t.segments)
	return out
}

// Placeholders returns placeholder names in order of appearance.
func (t Template) Placeholders() []string {
	if t.IsLiteral() {
		return nil
	}
	names := make([]string, 0, len(t.segments)/2)
	for i := 1; i < len(t.segments); i += 2 {
		names = append(names, t.segments[i])
	}
	return names
}

// templateCache memoizes compiled templates by their raw text for the
// lifetime of a translator. Entries are never evicted.
type templateCache struct {
	mu      sync.RWMutex
	entries map[string]Template
}

func newTemplateCache() *templateCache {
	return &templateCache{entries: make(map[string]Template)}
}

func (c *templateCache) compile(raw string) Template {
	c.mu.RLock()
	tpl, ok := c.entries[raw]
	c.mu.RUnlock()
	if ok {
		return tpl
	}

	tpl = Compile(raw)

	c.mu.Lock()
	c.entries[raw] = tpl
	c.mu.Unlock()

	return tpl
}

func (c *templateCache) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
