// Package logger provides structured logging utilities built on Go's standard slog package.
// It offers a small factory with environment presets and nil-safe attribute helpers
// shared by the generators in this module.
//
// # Basic Usage
//
//	import "github.com/dmitrymomot/utilkit/core/logger"
//
//	// Development: text format, debug level, stdout
//	log := logger.New(logger.WithDevelopment("myapp"))
//
//	// Production: JSON format, info level, stdout
//	log := logger.New(logger.WithProduction("myapp"))
//
//	// Custom configuration
//	log := logger.New(
//		logger.WithLevel(slog.LevelWarn),
//		logger.WithJSONFormatter(),
//		logger.WithAttr(slog.String("region", "eu")),
//		logger.WithOutput(os.Stderr),
//	)
//
// Discard returns a logger that drops everything, which is handy in tests.
//
// # Attribute Helpers
//
// Helpers return an empty slog.Attr for nil input. slog ignores empty attributes,
// so errors can be logged without explicit nil checks:
//
//	log.Warn("entropy source failed",
//		logger.Error(err),
//		logger.Component("random"),
//		logger.Action("otp"),
//		logger.Count("length", n),
//	)
//
//	log.Error("multiple failures", logger.Errors(err1, err2))
package logger
