package logger

import (
	"log/slog"
	"strings"
)

// Attribute helpers use the empty Attr pattern for nil safety.
// This allows calls like log.Warn("msg", logger.Error(err)) without explicit nil checks,
// following the principle of making zero values useful.

// Group creates a group of attributes under a single key.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error creates an attribute for a single error under the key "error".
// Returns empty Attr for nil errors, enabling safe usage without nil checks.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component creates an attribute for component names.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// ============================================================================
// Translation
// ============================================================================

// TranslationKey creates an attribute for a translation lookup key.
func TranslationKey(key string) slog.Attr {
	return slog.String("translation_key", key)
}

// Placeholder creates an attribute for a template placeholder name.
// The name is logged in its {name} form so empty names stay visible.
func Placeholder(name string) slog.Attr {
	return slog.String("placeholder", "{"+name+"}")
}

// Discriminator creates an attribute for the count or subkey used to pick a variant.
// Returns empty Attr for nil values.
func Discriminator(value any) slog.Attr {
	if value == nil {
		return slog.Attr{}
	}
	return slog.Any("discriminator", value)
}

// Variants creates an attribute listing the keys of a variant mapping.
func Variants(keys []string) slog.Attr {
	if len(keys) == 0 {
		return slog.Attr{}
	}
	return slog.String("variants", strings.Join(keys, ","))
}
