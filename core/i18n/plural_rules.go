package i18n

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
)

// PluralRule determines which plural form to use for a given count.
// It follows Unicode CLDR (Common Locale Data Repository) guidelines.
type PluralRule func(n int) string

// Plural category constants as defined by Unicode CLDR.
// Not all languages use all categories.
const (
	PluralZero  = "zero"  // Used for 0 in some languages
	PluralOne   = "one"   // Singular form
	PluralTwo   = "two"   // Dual form (used in Arabic, Hebrew, etc.)
	PluralFew   = "few"   // Paucal form (used in Slavic languages, etc.)
	PluralMany  = "many"  // Used for larger quantities in some languages
	PluralOther = "other" // Default/catch-all form
)

// Ready-made rules for WithPluralRule and FromRule. They need no locale data;
// use CLDR for exact per-language categories.
var (
	// DefaultPluralRule distinguishes zero, one, few (2-4), many (5-19) and other.
	DefaultPluralRule PluralRule = func(n int) string {
		n = absInt(n)
		switch {
		case n == 0:
			return PluralZero
		case n == 1:
			return PluralOne
		case n <= 4:
			return PluralFew
		case n < 20:
			return PluralMany
		default:
			return PluralOther
		}
	}

	// EnglishPluralRule: zero (0), one (1), other.
	EnglishPluralRule PluralRule = func(n int) string {
		switch absInt(n) {
		case 0:
			return PluralZero
		case 1:
			return PluralOne
		default:
			return PluralOther
		}
	}

	// SlavicPluralRule covers Polish, Czech, Ukrainian, Croatian, Serbian and
	// similar: zero, one, few (ends in 2-4 except 12-14), many.
	SlavicPluralRule PluralRule = func(n int) string {
		n = absInt(n)
		switch {
		case n == 0:
			return PluralZero
		case n == 1:
			return PluralOne
		}
		mod10, mod100 := n%10, n%100
		if mod10 >= 2 && mod10 <= 4 && (mod100 < 12 || mod100 > 14) {
			return PluralFew
		}
		return PluralMany
	}

	// RomancePluralRule covers French, Italian and Portuguese:
	// one (0, 1), many (1,000,000+), other.
	RomancePluralRule PluralRule = func(n int) string {
		n = absInt(n)
		switch {
		case n <= 1:
			return PluralOne
		case n >= 1000000:
			return PluralMany
		default:
			return PluralOther
		}
	}

	// SpanishPluralRule: one (1), many (1,000,000+), other.
	SpanishPluralRule PluralRule = func(n int) string {
		n = absInt(n)
		switch {
		case n == 1:
			return PluralOne
		case n >= 1000000:
			return PluralMany
		default:
			return PluralOther
		}
	}

	// GermanicPluralRule covers German, Dutch and the Scandinavian languages:
	// one (1), other.
	GermanicPluralRule PluralRule = func(n int) string {
		if absInt(n) == 1 {
			return PluralOne
		}
		return PluralOther
	}

	// AsianPluralRule is for languages without plural forms.
	AsianPluralRule PluralRule = func(int) string {
		return PluralOther
	}

	// ArabicPluralRule: zero, one, two, few (3-10), many (11-99), other,
	// the last three by n % 100.
	ArabicPluralRule PluralRule = func(n int) string {
		n = absInt(n)
		switch n {
		case 0:
			return PluralZero
		case 1:
			return PluralOne
		case 2:
			return PluralTwo
		}
		mod100 := n % 100
		switch {
		case mod100 >= 3 && mod100 <= 10:
			return PluralFew
		case mod100 >= 11:
			return PluralMany
		default:
			return PluralOther
		}
	}
)

// GetPluralRuleForLanguage returns a ready-made rule for the primary
// language subtag of lang ("pl", "pt-BR"). Unknown languages get
// DefaultPluralRule.
func GetPluralRuleForLanguage(lang string) PluralRule {
	if len(lang) >= 2 {
		lang = strings.ToLower(lang[:2])
	}

	switch lang {
	case "en":
		return EnglishPluralRule
	case "pl", "ru", "cs", "uk", "hr", "sr", "sk", "sl", "bg":
		return SlavicPluralRule
	case "fr", "it", "pt":
		return RomancePluralRule
	case "es":
		return SpanishPluralRule
	case "de", "nl", "sv", "no", "da":
		return GermanicPluralRule
	case "ja", "zh", "ko", "th", "vi", "id", "ms":
		return AsianPluralRule
	case "ar":
		return ArabicPluralRule
	default:
		return DefaultPluralRule
	}
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// FromRule adapts an integer PluralRule to Pluralize.
// Fractional magnitudes map to PluralOther.
func FromRule(rule PluralRule) Pluralize {
	return func(magnitude float64, _ map[string]any) any {
		if magnitude != math.Trunc(magnitude) || magnitude > math.MaxInt32 {
			return PluralOther
		}
		return rule(int(magnitude))
	}
}

// IcelandicRule keys variants by form index: 0 for zero, 1 for numbers ending
// in 1 except 11, 2 for everything else.
func IcelandicRule(magnitude float64, _ map[string]any) any {
	if magnitude != math.Trunc(magnitude) {
		return 2
	}
	n := int64(magnitude)
	switch {
	case n == 0:
		return 0
	case n%10 != 1 || n%100 == 11:
		return 2
	default:
		return 1
	}
}

// CLDR returns a Pluralize that maps magnitudes to CLDR cardinal categories
// for the given BCP 47 language tag.
func CLDR(lang string) (Pluralize, error) {
	tag, err := language.Parse(lang)
	if err != nil {
		return nil, fmt.Errorf("invalid language %q: %w", lang, err)
	}
	return CLDRTag(tag), nil
}

// CLDRTag is CLDR for an already parsed language tag.
func CLDRTag(tag language.Tag) Pluralize {
	return func(magnitude float64, _ map[string]any) any {
		return cldrForm(tag, magnitude)
	}
}

func cldrForm(tag language.Tag, magnitude float64) string {
	if magnitude >= math.MaxInt32 {
		return PluralOther
	}

	// CLDR operands: i integer digits, v/w visible fraction digits with and
	// without trailing zeros, f/t the fraction digits as integers.
	i, v, f := int(magnitude), 0, 0
	if s := formatNumber(magnitude); strings.Contains(s, ".") {
		frac := s[strings.IndexByte(s, '.')+1:]
		v = len(frac)
		f, _ = strconv.Atoi(frac)
	}

	return formName(plural.Cardinal.MatchPlural(tag, i, v, v, f, f))
}

func formName(f plural.Form) string {
	switch f {
	case plural.Zero:
		return PluralZero
	case plural.One:
		return PluralOne
	case plural.Two:
		return PluralTwo
	case plural.Few:
		return PluralFew
	case plural.Many:
		return PluralMany
	default:
		return PluralOther
	}
}

// SupportedPluralForms returns which plural forms a Pluralize produces.
// This is useful for validation when building dictionaries.
func SupportedPluralForms(p Pluralize) []string {
	forms := make(map[string]bool)

	// Test numbers that typically trigger different plural forms
	testNumbers := []float64{0, 1, 2, 3, 4, 5, 10, 11, 12, 13, 14, 20, 21, 22, 100, 1000, 1000000, 1.5}

	for _, n := range testNumbers {
		if d := p(n, nil); d != nil {
			forms[discriminatorKey(d)] = true
		}
	}

	// Order matters for consistency
	var result []string
	for _, form := range []string{PluralZero, PluralOne, PluralTwo, PluralFew, PluralMany, PluralOther} {
		if forms[form] {
			result = append(result, form)
		}
	}

	return result
}
