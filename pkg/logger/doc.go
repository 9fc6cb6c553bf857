// Package logger builds the slog loggers used by tabula and its demo server.
//
// Tables log through whatever *slog.Logger they are given and fall back to
// NewNope. Applications usually create one logger from Config:
//
//	log := logger.NewWithConfig(cfg.Log, os.Stdout,
//		logger.FromContextValue(requestIDKey{}, "request_id"),
//	)
//
// # Context Extractors
//
// A ContextExtractor pulls a request-scoped attribute out of the context on
// every log call. LogHandlerDecorator wraps any slog.Handler with a set of
// extractors, so the same values reach stdout and Sentry.
//
// # Sentry
//
// When Config.Sentry.DSN is set, records are also forwarded to Sentry:
// errors create issues and warnings are kept as breadcrumbs. A failed
// Sentry initialization is logged and the logger keeps writing to its
// primary output.
package logger
