// Package logger provides structured logging utilities built on Go's standard slog package.
//
// It offers a small factory for slog loggers and a set of attribute helpers
// for the translation engine's diagnostics. Helpers return an empty slog.Attr
// for nil input, which slog drops, so callers never need nil checks.
//
// # Basic Usage
//
//	import "github.com/dmitrymomot/translate/core/logger"
//
//	log := logger.New(
//		logger.WithLevel(slog.LevelDebug),
//		logger.WithJSONFormatter(),
//	)
//
//	log.Warn("translation not found",
//		logger.Component("i18n"),
//		logger.TranslationKey("cart::items"),
//		logger.Discriminator(3),
//	)
//
// # Testing with Custom Output
//
// Capture logs during testing:
//
//	var buf bytes.Buffer
//	log := logger.New(
//		logger.WithJSONFormatter(),
//		logger.WithOutput(&buf),
//	)
//
//	log.Info("Test message", logger.Component("test"))
//	assert.Contains(t, buf.String(), `"component":"test"`)
package logger
