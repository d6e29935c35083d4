// Package i18n provides runtime string interpolation and pluralization over
// nested translation dictionaries.
//
// A Translator resolves a key (optionally namespaced), picks a plural or
// subkey variant, substitutes {placeholders} and returns the final string, or
// a slice of alternating literal and substituted segments for rich-content
// templating. Dictionaries are plain Go maps supplied by the caller; the
// package never reads files or talks to the network.
//
// # Basic Usage
//
//	import "github.com/dmitrymomot/translate/core/i18n"
//
//	t, err := i18n.New(i18n.Dictionary{
//		"plain": "I like this.",
//		"like":  "I like {thing}!",
//		"hits": map[string]any{
//			"0": "No Hits",
//			"1": "{n} Hit",
//			"n": "{n} Hits",
//		},
//		"app": map[string]any{
//			"title": "Dashboard",
//		},
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	t.T("plain")                             // "I like this."
//	t.T("like", i18n.M{"thing": "Sun"})      // "I like Sun!"
//	t.T("hits", 5)                           // "5 Hits"
//	t.T("app::title")                        // "Dashboard"
//	t.T("missing")                           // "missing"
//
// The count and the replacements can be passed in either order. Replacements
// may also be positional: t.T("fruit", []string{"red"}) fills {0}.
//
// # Pluralization
//
// Variant mappings are keyed by stringified numbers, category codes, or the
// wildcard "n" (or "*"). An explicit numeric entry always wins, and counts are
// matched by magnitude, so -13 selects the "13" entry. Otherwise the configured
// Pluralize function computes a discriminator. The default, Identity, uses the
// magnitude itself; CLDR plural categories are available through x/text:
//
//	t, _ := i18n.New(dict, i18n.WithLanguage("pl"))
//	// dict: "files": {"one": "{n} plik", "few": "{n} pliki", "many": "{n} plików"}
//	t.T("files", 3) // "3 pliki"
//
// # Late Binding
//
// Keys and Opts are exported and read on every call:
//
//	t.Keys["greeting"] = "Hello"
//	t.Opts.Pluralize = i18n.IcelandicRule
//	t.Opts = nil // back to defaults
//
// # Array Output
//
// Arr (or the Array option) returns the segments instead of a joined string,
// leaving substituted values untouched:
//
//	t.Arr("cta", i18n.M{"link": templ.Component(...)})
//	// []any{"Click ", <component>, " to continue"}
//
// # Aliases
//
// Dictionaries can reuse other entries with {{key}} or {{key[subkey]}}.
// Aliases are expanded once, when the translator is created with
// WithAliasResolution, or explicitly with ResolveAliases. Unknown targets and
// cycles are reported as errors.
//
// # Debugging
//
// With WithDebug, missing translations render as "@@key@@" and every fallback
// is logged through slog. WithMissingKeyHandler receives missing keys in any
// mode.
package i18n
