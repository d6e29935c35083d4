package i18n

import (
	"fmt"
	"math"
	"strconv"
)

// Pluralize maps a count magnitude to the key of a variant mapping entry.
// The magnitude is always non-negative. The returned discriminator may be a
// category code ("one", "few", "p") or a number; nil means no opinion.
type Pluralize func(magnitude float64, variants map[string]any) any

// Identity is the default Pluralize: variant mappings are keyed by the
// magnitude itself.
func Identity(magnitude float64, _ map[string]any) any {
	return magnitude
}

// Select picks the variant for count.
//
// Counts are normalized to their absolute value, so plural rules only have to
// handle non-negative numbers and an explicit entry for 13 matches -13 as well.
// Lookup order:
//  1. explicit entry for the magnitude;
//  2. entry for the discriminator returned by pluralize (Identity when nil);
//  3. CLDR fallback forms when the discriminator is a plural category;
//  4. the wildcard entries "n" and "*".
//
// The returned value is not guaranteed to be a string.
func Select(variants map[string]any, count float64, pluralize Pluralize) (any, bool) {
	if len(variants) == 0 {
		return nil, false
	}

	magnitude := math.Abs(count)
	if v, ok := entry(variants, formatNumber(magnitude)); ok {
		return v, true
	}

	if pluralize == nil {
		pluralize = Identity
	}
	if d := pluralize(magnitude, variants); d != nil {
		form := discriminatorKey(d)
		if v, ok := entry(variants, form); ok {
			return v, true
		}
		for _, fallback := range getPluralFallbackForms(form) {
			if v, ok := entry(variants, fallback); ok {
				return v, true
			}
		}
	}

	return wildcard(variants)
}

// selectSubkey picks a variant by an explicit subkey, falling back to the
// wildcard entries.
func selectSubkey(variants map[string]any, subkey string) (any, bool) {
	if v, ok := entry(variants, subkey); ok {
		return v, true
	}
	return wildcard(variants)
}

func wildcard(variants map[string]any) (any, bool) {
	if v, ok := entry(variants, WildcardKey); ok {
		return v, true
	}
	return entry(variants, AltWildcardKey)
}

func entry(variants map[string]any, key string) (any, bool) {
	v, ok := variants[key]
	return v, ok && v != nil
}

// discriminatorKey spells a discriminator the way variant keys are written.
func discriminatorKey(d any) string {
	switch v := d.(type) {
	case string:
		return v
	case float64:
		return formatNumber(v)
	case float32:
		return formatNumber(float64(v))
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case fmt.Stringer:
		return v.String()
	default:
		if n, ok := toNumber(v); ok {
			return formatNumber(n)
		}
		return fmt.Sprint(v)
	}
}

// getPluralFallbackForms returns the CLDR fallback order for a plural form.
// Discriminators that aren't CLDR categories have no fallback forms.
func getPluralFallbackForms(form string) []string {
	switch form {
	case PluralZero, PluralOne, PluralMany:
		return []string{PluralOther}
	case PluralTwo:
		return []string{PluralFew, PluralMany, PluralOther}
	case PluralFew:
		return []string{PluralMany, PluralOther}
	default:
		return nil
	}
}
