// Package logger provides structured logging with context extraction and
// optional Sentry integration.
//
// It extends log/slog with two capabilities: automatic injection of
// context-scoped attributes (e.g., a dispatch reference ID) and fan-out of
// warnings and errors to Sentry when a DSN is configured. With no DSN the
// same code path degrades to stdout-only JSON logging, so development and
// production share one setup.
//
// Basic usage:
//
//	log := logger.New(logger.Config{Level: "debug"})
//	log.Info("starting", slog.String("provider", "mailgun"))
//
// With Sentry:
//
//	log := logger.NewWithSentry(logger.Config{}, logger.SentryConfig{
//		DSN:         os.Getenv("SENTRY_DSN"),
//		Environment: "production",
//	})
package logger
