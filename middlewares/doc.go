// Package middlewares provides net/http middlewares for servers that render
// tables. They share chi's func(http.Handler) http.Handler signature.
//
// # Request ID
//
// RequestID assigns a unique ID to each request, keeping an upstream
// X-Request-ID when present. Pair it with RequestIDExtractor so every log
// line written with the request context carries it:
//
//	log := logger.New(middlewares.RequestIDExtractor())
//	r.Use(middlewares.RequestID())
//
// # Recover
//
// Recover catches panics, logs them with a stack trace and answers 500.
// WithRecoverErrorHandler customizes the response; the handler receives a
// *PanicError.
//
// # Language
//
// Language resolves the display language from the "lang" query parameter,
// the "lang" cookie or Accept-Language, and stores it in the request
// context. Tables read it from there before falling back to their own
// Accept-Language negotiation:
//
//	r.Use(middlewares.Language(translations.Languages()))
//
// # Timeout
//
// Timeout puts a deadline on the request context. Table queries stop when it
// expires and the table handler answers 504.
//
//	handler := middlewares.Chain(mux,
//		middlewares.RequestID(),
//		middlewares.Recover(middlewares.WithRecoverLogger(log)),
//		middlewares.Timeout(10*time.Second),
//		middlewares.Language([]string{"en", "fr"}),
//	)
package middlewares
