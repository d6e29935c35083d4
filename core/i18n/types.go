package i18n

// M is a convenience type for placeholder maps used in translations.
// It maps placeholder names to their values.
type M map[string]any

// Dictionary is a nested table of translation templates.
// Values are template strings, variant mappings keyed by count or category,
// or nested dictionaries addressed through the namespace splitter.
type Dictionary map[string]any

// Wildcard keys of a variant mapping, tried in this order when no
// explicit or computed form matches.
const (
	WildcardKey    = "n"
	AltWildcardKey = "*"
)

// CountPlaceholder is the placeholder name that receives the count when the
// replacements don't define it. An empty placeholder name behaves the same way.
const CountPlaceholder = "n"
