package logger

import (
	"context"
	"log/slog"
)

// FromContextValue builds an extractor that logs the string stored in ctx
// under key as attribute name. Empty values are skipped.
func FromContextValue(key any, name string) ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		v, ok := ctx.Value(key).(string)
		if !ok || v == "" {
			return slog.Attr{}, false
		}
		return slog.String(name, v), true
	}
}
