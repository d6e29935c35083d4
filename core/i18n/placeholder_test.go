package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/translate/core/i18n"
)

func TestRender(t *testing.T) {
	t.Run("literal templates ignore everything", func(t *testing.T) {
		tpl := i18n.Compile("nothing to see")
		for _, asArray := range []bool{false, true} {
			assert.Equal(t, "nothing to see", tpl.Render(i18n.M{"x": 1}, 5, asArray, nil))
			assert.Equal(t, "nothing to see", tpl.Render(nil, nil, asArray, nil))
		}
	})

	t.Run("string mode", func(t *testing.T) {
		tpl := i18n.Compile("{name} has {n} items")
		assert.Equal(t, "Ann has 3 items", tpl.Render(i18n.M{"name": "Ann"}, 3, false, nil))
	})

	t.Run("empty name takes count", func(t *testing.T) {
		tpl := i18n.Compile("{} left")
		assert.Equal(t, "-2 left", tpl.Render(nil, -2, false, nil))
	})

	t.Run("count is not injected for subkeys", func(t *testing.T) {
		tpl := i18n.Compile("{n}")
		assert.Equal(t, "{n}", tpl.Render(nil, "male", false, nil))
	})

	t.Run("nil values are missing", func(t *testing.T) {
		var missing []string
		tpl := i18n.Compile("{a}-{b}")
		out := tpl.Render(i18n.M{"a": nil, "b": "B"}, nil, false, func(name string) {
			missing = append(missing, name)
		})
		assert.Equal(t, "{a}-B", out)
		assert.Equal(t, []string{"a"}, missing)
	})

	t.Run("array mode keeps values", func(t *testing.T) {
		type link struct{ href string }
		l := link{href: "/docs"}
		tpl := i18n.Compile("see {link} or {other} ({n})")
		out := tpl.Render(i18n.M{"link": l}, 4, true, nil)
		assert.Equal(t, []any{"see ", l, " or ", "{other}", " (", 4, ")"}, out)
	})

	t.Run("positional replacements", func(t *testing.T) {
		tpl := i18n.Compile("{1} {0} {-1} {2}")
		assert.Equal(t, "b a {-1} {2}", tpl.Render([]string{"a", "b"}, nil, false, nil))
	})

	t.Run("idempotent output", func(t *testing.T) {
		repl := i18n.M{"name": "Ann"}
		first := i18n.Compile("Hi {name}").Render(repl, nil, false, nil)
		second := i18n.Compile("Hi {name}").Render(repl, nil, false, nil)
		assert.Equal(t, first, second)
	})
}

func TestReplacePlaceholders(t *testing.T) {
	tests := []struct {
		name         string
		template     string
		placeholders i18n.M
		expected     string
	}{
		{
			name:         "replaces single placeholder",
			template:     "Hello, {name}!",
			placeholders: i18n.M{"name": "John"},
			expected:     "Hello, John!",
		},
		{
			name:         "replaces multiple placeholders",
			template:     "Hello, {name}! You have {count} messages.",
			placeholders: i18n.M{"name": "John", "count": 5},
			expected:     "Hello, John! You have 5 messages.",
		},
		{
			name:         "leaves unknown placeholders",
			template:     "Hello, {name}! {unknown}",
			placeholders: i18n.M{"name": "John"},
			expected:     "Hello, John! {unknown}",
		},
		{
			name:         "no placeholders map",
			template:     "Hello, {name}!",
			placeholders: nil,
			expected:     "Hello, {name}!",
		},
		{
			name:         "formats non-string values",
			template:     "{f} {b}",
			placeholders: i18n.M{"f": 1.25, "b": true},
			expected:     "1.25 true",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, i18n.ReplacePlaceholders(tt.template, tt.placeholders))
		})
	}
}
