package i18n

import (
	"errors"
	"fmt"
	"log/slog"
	"regexp"

	"github.com/dmitrymomot/translate/core/config"
)

// Options controls translation behavior. A translator reads its Options on
// every call, so fields may be changed between calls.
type Options struct {
	// Debug logs missing translations and placeholders and wraps missing
	// translation fallbacks in "@@".
	Debug bool

	// NamespaceSplitter separates namespace components in keys. Defaults to "::".
	NamespaceSplitter string

	// NamespacePattern splits keys by regular expression. Takes precedence
	// over NamespaceSplitter for lookups; Scope fallback keys are still
	// joined with NamespaceSplitter.
	NamespacePattern *regexp.Regexp

	// Pluralize maps a count to a variant key. Defaults to Identity.
	Pluralize Pluralize

	// Array makes Translate return []any segments for templates with placeholders.
	Array bool

	// ResolveAliases expands {{key}} references once, at construction.
	ResolveAliases bool

	// Logger receives debug diagnostics. Defaults to slog.Default().
	Logger *slog.Logger

	// OnMissing is called with the key of every translation that falls back.
	OnMissing func(key string)
}

func (o *Options) splitter() string {
	if o.NamespaceSplitter == "" {
		return DefaultNamespaceSplitter
	}
	return o.NamespaceSplitter
}

func (o *Options) pluralizer() Pluralize {
	if o.Pluralize == nil {
		return Identity
	}
	return o.Pluralize
}

func (o *Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.Default()
	}
	return o.Logger
}

// Option configures a Translator during construction.
type Option func(*Options) error

// WithOptions replaces all options with a copy of opts.
func WithOptions(opts Options) Option {
	return func(o *Options) error {
		*o = opts
		return nil
	}
}

// WithDebug enables debug diagnostics and "@@key@@" fallbacks.
func WithDebug() Option {
	return func(o *Options) error {
		o.Debug = true
		return nil
	}
}

// WithNamespaceSplitter sets the string separating namespace components.
func WithNamespaceSplitter(splitter string) Option {
	return func(o *Options) error {
		if splitter == "" {
			return errors.New("namespace splitter cannot be empty")
		}
		o.NamespaceSplitter = splitter
		return nil
	}
}

// WithNamespacePattern splits namespaced keys by a regular expression.
func WithNamespacePattern(pattern *regexp.Regexp) Option {
	return func(o *Options) error {
		if pattern == nil {
			return errors.New("namespace pattern cannot be nil")
		}
		o.NamespacePattern = pattern
		return nil
	}
}

// WithPluralize sets the function mapping counts to variant keys.
func WithPluralize(p Pluralize) Option {
	return func(o *Options) error {
		if p == nil {
			return errors.New("pluralize function cannot be nil")
		}
		o.Pluralize = p
		return nil
	}
}

// WithPluralRule uses an integer PluralRule for pluralization.
func WithPluralRule(rule PluralRule) Option {
	return func(o *Options) error {
		if rule == nil {
			return errors.New("plural rule cannot be nil")
		}
		o.Pluralize = FromRule(rule)
		return nil
	}
}

// WithLanguage uses CLDR plural categories of the given language.
func WithLanguage(lang string) Option {
	return func(o *Options) error {
		p, err := CLDR(lang)
		if err != nil {
			return err
		}
		o.Pluralize = p
		return nil
	}
}

// WithArray makes Translate return segment arrays.
func WithArray() Option {
	return func(o *Options) error {
		o.Array = true
		return nil
	}
}

// WithAliasResolution expands {{key}} aliases in the dictionary at construction.
func WithAliasResolution() Option {
	return func(o *Options) error {
		o.ResolveAliases = true
		return nil
	}
}

// WithLogger sets the logger for debug diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) error {
		o.Logger = l
		return nil
	}
}

// WithMissingKeyHandler sets a handler function that will be called when a
// translation key falls back to the key itself.
// This is useful for collecting missing translations during development.
func WithMissingKeyHandler(handler func(key string)) Option {
	return func(o *Options) error {
		o.OnMissing = handler
		return nil
	}
}

// Config holds environment-driven translator settings.
type Config struct {
	Debug             bool   `env:"I18N_DEBUG" envDefault:"false"`
	NamespaceSplitter string `env:"I18N_NAMESPACE_SPLITTER" envDefault:"::"`
	Array             bool   `env:"I18N_ARRAY" envDefault:"false"`
	ResolveAliases    bool   `env:"I18N_RESOLVE_ALIASES" envDefault:"false"`
	// PluralLanguage selects CLDR plural categories; empty keeps Identity.
	PluralLanguage string `env:"I18N_PLURAL_LANGUAGE"`
}

// DefaultConfig returns the settings of a translator built without options.
func DefaultConfig() Config {
	return Config{NamespaceSplitter: DefaultNamespaceSplitter}
}

// LoadConfig reads Config from the environment (and a .env file, if present).
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to load i18n config: %w", err)
	}
	return cfg, nil
}

// Options converts the config into translator options.
func (c Config) Options() []Option {
	opts := make([]Option, 0, 5)
	if c.Debug {
		opts = append(opts, WithDebug())
	}
	if c.NamespaceSplitter != "" {
		opts = append(opts, WithNamespaceSplitter(c.NamespaceSplitter))
	}
	if c.Array {
		opts = append(opts, WithArray())
	}
	if c.ResolveAliases {
		opts = append(opts, WithAliasResolution())
	}
	if c.PluralLanguage != "" {
		opts = append(opts, WithLanguage(c.PluralLanguage))
	}
	return opts
}
