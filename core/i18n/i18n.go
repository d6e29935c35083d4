package i18n

import (
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/dmitrymomot/translate/core/logger"
)

// Translator resolves keys in a Dictionary, picks plural variants and fills
// placeholders.
//
// Keys and Opts are read on every call and may be reassigned at any time,
// including setting Opts to nil, which restores the defaults. Compiled
// templates are cached per translator for its whole lifetime. Reading
// translations concurrently is safe; mutating Keys or Opts concurrently
// with translation calls is not.
type Translator struct {
	// Keys is the live dictionary.
	Keys Dictionary

	// Opts is the live configuration. Nil means defaults.
	Opts *Options

	templates     *templateCache
	templatesOnce sync.Once
}

// New creates a Translator over keys. A nil dictionary is replaced by an
// empty one so that keys can be added later.
//
// When alias resolution is enabled, {{key}} references are expanded once
// here and any authoring error in the dictionary is returned.
func New(keys Dictionary, opts ...Option) (*Translator, error) {
	o := &Options{}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if keys == nil {
		keys = Dictionary{}
	}

	if o.ResolveAliases {
		resolved, err := resolveAliases(keys, o.splitter(), o.NamespacePattern)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve aliases: %w", err)
		}
		keys = resolved
	}

	return &Translator{
		Keys:      keys,
		Opts:      o,
		templates: newTemplateCache(),
	}, nil
}

// MustNew is like New but panics on error.
func MustNew(keys Dictionary, opts ...Option) *Translator {
	t, err := New(keys, opts...)
	if err != nil {
		panic(err)
	}
	return t
}

// NewFromConfig creates a Translator from environment-driven settings.
// Extra options are applied after the config.
func NewFromConfig(keys Dictionary, cfg Config, opts ...Option) (*Translator, error) {
	return New(keys, append(cfg.Options(), opts...)...)
}

// Translate returns the translation for key.
//
// The optional arguments are a count (any Go number or numeric string), a
// subkey (non-numeric string) and replacements (any map with string keys,
// such as M or map[string]int, or any slice or array), in either order:
//
//	t.Translate("title")
//	t.Translate("hits", 5)
//	t.Translate("like", i18n.M{"thing": "Sun"})
//	t.Translate("date", 2, i18n.M{"day": 13})
//	t.Translate("date", i18n.M{"day": 13}, 2)
//
// The result is a string, or a []any of alternating literal text and values
// when Opts.Array is set and the template has placeholders.
func (t *Translator) Translate(key string, args ...any) any {
	opts := t.options()
	return t.translate(t.Keys, key, key, args, opts.Array)
}

// T is Translate with string output regardless of Opts.Array.
func (t *Translator) T(key string, args ...any) string {
	out, _ := t.translate(t.Keys, key, key, args, false).(string)
	return out
}

// Arr is Translate with array output forced on for this call.
// Opts.Array is left untouched.
func (t *Translator) Arr(key string, args ...any) any {
	return t.translate(t.Keys, key, key, args, true)
}

// Lookup returns the raw value stored under key using the current splitter.
func (t *Translator) Lookup(key string) (any, bool) {
	opts := t.options()
	return Lookup(t.Keys, key, opts.splitter(), opts.NamespacePattern)
}

// Compile returns the cached compiled template for raw.
func (t *Translator) Compile(raw string) Template {
	return t.cache().compile(raw)
}

// CachedTemplates returns the number of distinct templates compiled so far.
func (t *Translator) CachedTemplates() int {
	return t.cache().len()
}

func (t *Translator) translate(dict Dictionary, key, displayKey string, args []any, asArray bool) any {
	opts := t.options()
	disc, repl := parseArgs(args)

	value, found := Lookup(dict, key, opts.splitter(), opts.NamespacePattern)
	missingKey := displayKey

	if variants, ok := asMap(value); found && ok && disc.set {
		if disc.numeric {
			value, found = Select(variants, disc.number, opts.pluralizer())
		} else {
			value, found = selectSubkey(variants, disc.subkey)
		}
		if !found {
			missingKey = displayKey + "." + disc.key()
			if opts.Debug {
				opts.logger().Warn("i18n: no variant found",
					logger.Component("i18n"),
					logger.TranslationKey(displayKey),
					logger.Discriminator(disc.value),
					logger.Variants(sortedKeys(variants)),
				)
			}
		}
	}

	text, ok := value.(string)
	if !found || !ok {
		return t.missing(displayKey, missingKey, opts)
	}

	var onMissing func(string)
	if opts.Debug {
		onMissing = func(name string) {
			opts.logger().Warn("i18n: placeholder not found",
				logger.Component("i18n"),
				logger.TranslationKey(displayKey),
				logger.Placeholder(name),
			)
		}
	}

	return t.cache().compile(text).assemble(repl, disc, asArray, onMissing)
}

// missing produces the fallback for a key that has no usable translation.
func (t *Translator) missing(key, debugKey string, opts *Options) string {
	if opts.OnMissing != nil {
		opts.OnMissing(key)
	}
	if !opts.Debug {
		return key
	}
	opts.logger().Warn("i18n: translation not found",
		logger.Component("i18n"),
		logger.TranslationKey(debugKey),
	)
	return "@@" + debugKey + "@@"
}

func (t *Translator) options() *Options {
	if t.Opts == nil {
		return &Options{}
	}
	return t.Opts
}

// cache lazily creates the template cache for zero-value translators.
func (t *Translator) cache() *templateCache {
	t.templatesOnce.Do(func() {
		if t.templates == nil {
			t.templates = newTemplateCache()
		}
	})
	return t.templates
}

func sortedKeys(m map[string]any) []string {
	return slices.Sorted(maps.Keys(m))
}
