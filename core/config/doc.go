// Package config provides type-safe environment variable loading with caching
// using Go generics. Each configuration type is loaded once and cached for
// subsequent calls.
//
// The package automatically loads .env files on first use and uses the
// caarlos0/env library for parsing environment variables into struct fields.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/translate/core/config"
//
//	type TranslationConfig struct {
//		Debug    bool   `env:"I18N_DEBUG" envDefault:"false"`
//		Splitter string `env:"I18N_NAMESPACE_SPLITTER" envDefault:"::"`
//		Language string `env:"I18N_PLURAL_LANGUAGE,required"`
//	}
//
//	func main() {
//		var cfg TranslationConfig
//
//		// Load with error handling
//		if err := config.Load(&cfg); err != nil {
//			log.Fatal(err)
//		}
//
//		// Or panic on failure (useful for startup)
//		config.MustLoad(&cfg)
//	}
//
// # Caching Behavior
//
// Each configuration type is loaded only once per application lifetime:
//
//	var cfg1 TranslationConfig
//	config.Load(&cfg1) // Loads from environment
//
//	var cfg2 TranslationConfig
//	config.Load(&cfg2) // Returns cached value, cfg1 == cfg2
//
// Different types are cached independently:
//
//	type LoggingConfig struct {
//		Level string `env:"LOG_LEVEL" envDefault:"info"`
//	}
//
//	// Each type has its own cache entry
//	config.MustLoad(&TranslationConfig{})
//	config.MustLoad(&LoggingConfig{})
package config
