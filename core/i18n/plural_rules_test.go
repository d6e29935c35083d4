package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/translate/core/i18n"
)

func TestSelect(t *testing.T) {
	variants := map[string]any{
		"0":   "zero",
		"1":   "one",
		"13":  "thirteen",
		"few": "few",
		"n":   "default",
	}

	t.Run("explicit entries match magnitude", func(t *testing.T) {
		for _, count := range []float64{13, -13} {
			v, ok := i18n.Select(variants, count, nil)
			require.True(t, ok)
			assert.Equal(t, "thirteen", v, "For count=%v", count)
		}
	})

	t.Run("explicit entries win over pluralize", func(t *testing.T) {
		always := func(float64, map[string]any) any { return "few" }
		v, ok := i18n.Select(variants, 1, always)
		require.True(t, ok)
		assert.Equal(t, "one", v)

		v, ok = i18n.Select(variants, 3, always)
		require.True(t, ok)
		assert.Equal(t, "few", v)
	})

	t.Run("falls back to wildcard", func(t *testing.T) {
		v, ok := i18n.Select(variants, 42, nil)
		require.True(t, ok)
		assert.Equal(t, "default", v)
	})

	t.Run("star wildcard", func(t *testing.T) {
		v, ok := i18n.Select(map[string]any{"*": "any"}, 3, nil)
		require.True(t, ok)
		assert.Equal(t, "any", v)
	})

	t.Run("not found without wildcard", func(t *testing.T) {
		_, ok := i18n.Select(map[string]any{"1": "one"}, 2, nil)
		assert.False(t, ok)

		_, ok = i18n.Select(map[string]any{}, 1, nil)
		assert.False(t, ok)
	})

	t.Run("nil discriminator skips to wildcard", func(t *testing.T) {
		none := func(float64, map[string]any) any { return nil }
		v, ok := i18n.Select(variants, 7, none)
		require.True(t, ok)
		assert.Equal(t, "default", v)
	})

	t.Run("pluralize receives magnitude and variants", func(t *testing.T) {
		var gotN float64
		var gotVariants map[string]any
		spy := func(n float64, v map[string]any) any {
			gotN, gotVariants = n, v
			return nil
		}
		i18n.Select(variants, -7, spy)
		assert.Equal(t, float64(7), gotN)
		assert.Equal(t, variants, gotVariants)
	})

	t.Run("CLDR fallback chain", func(t *testing.T) {
		two := func(float64, map[string]any) any { return i18n.PluralTwo }
		v, ok := i18n.Select(map[string]any{"many": "many", "other": "other"}, 2, two)
		require.True(t, ok)
		assert.Equal(t, "many", v)
	})
}

func TestFromRule(t *testing.T) {
	rule := func(n int) string {
		if n == 1 {
			return i18n.PluralOne
		}
		return i18n.PluralOther
	}
	p := i18n.FromRule(rule)

	assert.Equal(t, i18n.PluralOne, p(1, nil))
	assert.Equal(t, i18n.PluralOther, p(2, nil))
	assert.Equal(t, i18n.PluralOther, p(1.5, nil))
}

func TestIcelandicRule(t *testing.T) {
	tests := []struct {
		n        float64
		expected int
	}{
		{0, 0},
		{1, 1},
		{2, 2},
		{11, 2},
		{21, 1},
		{29, 2},
		{101, 1},
		{111, 2},
		{1.5, 2},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, i18n.IcelandicRule(tt.n, nil), "For n=%v", tt.n)
	}
}

func TestCLDR(t *testing.T) {
	tests := []struct {
		lang     string
		n        float64
		expected string
	}{
		// English
		{"en", 0, i18n.PluralOther},
		{"en", 1, i18n.PluralOne},
		{"en", 2, i18n.PluralOther},
		{"en", 1.5, i18n.PluralOther},
		// Polish
		{"pl", 1, i18n.PluralOne},
		{"pl", 2, i18n.PluralFew},
		{"pl", 5, i18n.PluralMany},
		{"pl", 12, i18n.PluralMany},
		{"pl", 22, i18n.PluralFew},
		// Russian
		{"ru", 1, i18n.PluralOne},
		{"ru", 21, i18n.PluralOne},
		{"ru", 3, i18n.PluralFew},
		{"ru", 11, i18n.PluralMany},
		// Arabic
		{"ar", 0, i18n.PluralZero},
		{"ar", 2, i18n.PluralTwo},
		{"ar", 5, i18n.PluralFew},
		{"ar", 11, i18n.PluralMany},
		{"ar", 100, i18n.PluralOther},
		// Japanese
		{"ja", 1, i18n.PluralOther},
	}

	for _, tt := range tests {
		t.Run(tt.lang, func(t *testing.T) {
			p, err := i18n.CLDR(tt.lang)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, p(tt.n, nil), "For n=%v", tt.n)
		})
	}

	t.Run("parsed tag", func(t *testing.T) {
		p := i18n.CLDRTag(language.French)
		assert.Equal(t, i18n.PluralOne, p(0, nil))
		assert.Equal(t, i18n.PluralOne, p(1, nil))
		assert.Equal(t, i18n.PluralOther, p(2, nil))
	})

	t.Run("invalid language", func(t *testing.T) {
		_, err := i18n.CLDR("??")
		assert.Error(t, err)
	})
}

func TestSupportedPluralForms(t *testing.T) {
	t.Run("English", func(t *testing.T) {
		p, err := i18n.CLDR("en")
		require.NoError(t, err)
		assert.Equal(t, []string{i18n.PluralOne, i18n.PluralOther}, i18n.SupportedPluralForms(p))
	})

	t.Run("Japanese", func(t *testing.T) {
		p, err := i18n.CLDR("ja")
		require.NoError(t, err)
		assert.Equal(t, []string{i18n.PluralOther}, i18n.SupportedPluralForms(p))
	})

	t.Run("identity has no categories", func(t *testing.T) {
		assert.Empty(t, i18n.SupportedPluralForms(i18n.Identity))
	})
}

func TestPresetPluralRules(t *testing.T) {
	tests := []struct {
		name     string
		rule     i18n.PluralRule
		n        int
		expected string
	}{
		{"default zero", i18n.DefaultPluralRule, 0, i18n.PluralZero},
		{"default one", i18n.DefaultPluralRule, 1, i18n.PluralOne},
		{"default few", i18n.DefaultPluralRule, 3, i18n.PluralFew},
		{"default negative few", i18n.DefaultPluralRule, -3, i18n.PluralFew},
		{"default many", i18n.DefaultPluralRule, 7, i18n.PluralMany},
		{"default other", i18n.DefaultPluralRule, 25, i18n.PluralOther},

		{"english zero", i18n.EnglishPluralRule, 0, i18n.PluralZero},
		{"english one", i18n.EnglishPluralRule, 1, i18n.PluralOne},
		{"english negative one", i18n.EnglishPluralRule, -1, i18n.PluralOne},
		{"english other", i18n.EnglishPluralRule, 2, i18n.PluralOther},

		{"slavic zero", i18n.SlavicPluralRule, 0, i18n.PluralZero},
		{"slavic one", i18n.SlavicPluralRule, 1, i18n.PluralOne},
		{"slavic few", i18n.SlavicPluralRule, 2, i18n.PluralFew},
		{"slavic few 22", i18n.SlavicPluralRule, 22, i18n.PluralFew},
		{"slavic negative few", i18n.SlavicPluralRule, -22, i18n.PluralFew},
		{"slavic many", i18n.SlavicPluralRule, 5, i18n.PluralMany},
		{"slavic teens are many", i18n.SlavicPluralRule, 12, i18n.PluralMany},
		{"slavic 112 is many", i18n.SlavicPluralRule, 112, i18n.PluralMany},

		{"romance zero is one", i18n.RomancePluralRule, 0, i18n.PluralOne},
		{"romance one", i18n.RomancePluralRule, 1, i18n.PluralOne},
		{"romance other", i18n.RomancePluralRule, 2, i18n.PluralOther},
		{"romance million", i18n.RomancePluralRule, 1000000, i18n.PluralMany},

		{"spanish zero is other", i18n.SpanishPluralRule, 0, i18n.PluralOther},
		{"spanish one", i18n.SpanishPluralRule, 1, i18n.PluralOne},
		{"spanish million", i18n.SpanishPluralRule, 2000000, i18n.PluralMany},

		{"germanic one", i18n.GermanicPluralRule, 1, i18n.PluralOne},
		{"germanic zero is other", i18n.GermanicPluralRule, 0, i18n.PluralOther},

		{"asian always other", i18n.AsianPluralRule, 1, i18n.PluralOther},

		{"arabic zero", i18n.ArabicPluralRule, 0, i18n.PluralZero},
		{"arabic one", i18n.ArabicPluralRule, 1, i18n.PluralOne},
		{"arabic two", i18n.ArabicPluralRule, 2, i18n.PluralTwo},
		{"arabic few", i18n.ArabicPluralRule, 10, i18n.PluralFew},
		{"arabic few 103", i18n.ArabicPluralRule, 103, i18n.PluralFew},
		{"arabic many", i18n.ArabicPluralRule, 11, i18n.PluralMany},
		{"arabic many 99", i18n.ArabicPluralRule, 99, i18n.PluralMany},
		{"arabic other", i18n.ArabicPluralRule, 100, i18n.PluralOther},
		{"arabic 102 is other", i18n.ArabicPluralRule, 102, i18n.PluralOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.rule(tt.n))
		})
	}
}

func TestGetPluralRuleForLanguage(t *testing.T) {
	tests := []struct {
		lang     string
		n        int
		expected string
	}{
		{"en", 0, i18n.PluralZero},
		{"EN-us", 1, i18n.PluralOne},
		{"pl", 3, i18n.PluralFew},
		{"ru", 5, i18n.PluralMany},
		{"pt-BR", 0, i18n.PluralOne},
		{"es", 0, i18n.PluralOther},
		{"de", 0, i18n.PluralOther},
		{"ja", 1, i18n.PluralOther},
		{"ar", 2, i18n.PluralTwo},
		{"xx", 3, i18n.PluralFew},
		{"", 1, i18n.PluralOne},
	}

	for _, tt := range tests {
		t.Run(tt.lang, func(t *testing.T) {
			rule := i18n.GetPluralRuleForLanguage(tt.lang)
			assert.Equal(t, tt.expected, rule(tt.n), "For n=%d", tt.n)
		})
	}

	t.Run("works with translator", func(t *testing.T) {
		tr := i18n.MustNew(i18n.Dictionary{
			"files": map[string]any{
				"one":  "{n} plik",
				"few":  "{n} pliki",
				"many": "{n} plików",
			},
		}, i18n.WithPluralRule(i18n.GetPluralRuleForLanguage("pl")))

		assert.Equal(t, "1 plik", tr.T("files", 1))
		assert.Equal(t, "3 pliki", tr.T("files", 3))
		assert.Equal(t, "12 plików", tr.T("files", 12))
		assert.Equal(t, "24 pliki", tr.T("files", 24))
	})
}
