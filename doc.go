// Package translate is the root of a runtime translation toolkit: string
// interpolation, pluralization and namespaced lookup over nested dictionaries.
//
// The root package contains no code. It serves as an index of the packages
// in the module.
//
// # Getting Documentation
//
// For detailed documentation on any package, use the go doc command:
//
//	go doc github.com/dmitrymomot/translate/core/i18n
//	go doc -all github.com/dmitrymomot/translate/core/i18n
//
// # Packages
//
//	github.com/dmitrymomot/translate/core/i18n   - Translator, plural selection, placeholder rendering, aliases, dictionary decoding
//	github.com/dmitrymomot/translate/core/logger - slog constructors and translation-specific log attributes
//	github.com/dmitrymomot/translate/core/config - Type-safe environment variable loading with .env support
//
// # Quick Start
//
//	dict, err := i18n.DecodeYAML(data)
//	if err != nil {
//		return err
//	}
//
//	t, err := i18n.New(dict,
//		i18n.WithLanguage("en"),
//		i18n.WithAliasResolution(),
//		i18n.WithLogger(logger.New()),
//	)
//	if err != nil {
//		return err
//	}
//
//	t.T("inbox::messages", 3) // "3 messages"
//
// Options can also come from the environment:
//
//	cfg, err := i18n.LoadConfig()
//	if err != nil {
//		return err
//	}
//	t, err := i18n.NewFromConfig(dict, cfg)
package translate
