package middlewares

import (
	"net/http"

	"github.com/dmitrymomot/tabula/internal"
	"github.com/dmitrymomot/tabula/pkg/i18n"
)

// LanguageConfig configures the Language middleware.
type LanguageConfig struct {
	Extractor internal.Extractor
	Default   string
	// Cookie is set when the language comes from the query string. Empty disables it.
	Cookie string
}

// LanguageOption configures LanguageConfig.
type LanguageOption func(*LanguageConfig)

// WithLanguageExtractor sets a custom language extractor chain.
func WithLanguageExtractor(ext internal.Extractor) LanguageOption {
	return func(cfg *LanguageConfig) {
		cfg.Extractor = ext
	}
}

// WithLanguageDefault sets the language used when nothing matches.
func WithLanguageDefault(lang string) LanguageOption {
	return func(cfg *LanguageConfig) {
		cfg.Default = lang
	}
}

// WithLanguageCookie sets the cookie remembering an explicit choice.
func WithLanguageCookie(name string) LanguageOption {
	return func(cfg *LanguageConfig) {
		cfg.Cookie = name
	}
}

// Language returns middleware that resolves the request language among
// available and stores it in the context, where tables pick it up.
//
// The default chain is: "lang" query parameter, "lang" cookie, then the
// Accept-Language header.
func Language(available []string, opts ...LanguageOption) Middleware {
	cfg := &LanguageConfig{
		Extractor: internal.NewExtractor(
			internal.FromQuery("lang"),
			internal.FromCookie("lang"),
			internal.FromAcceptLanguage(available),
		),
		Cookie: "lang",
	}
	if len(available) > 0 {
		cfg.Default = available[0]
	}
	for _, opt := range opts {
		opt(cfg)
	}

	// Unsupported values fall through to the next source.
	supported := func(v string) (string, bool) {
		lang := i18n.Supported(v, available)
		return lang, lang != ""
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang := cfg.Default
			if v, ok := cfg.Extractor.ExtractWith(r, supported); ok {
				lang = v
			}

			if cfg.Cookie != "" && r.URL.Query().Get("lang") == lang && lang != "" {
				http.SetCookie(w, &http.Cookie{
					Name:     cfg.Cookie,
					Value:    lang,
					Path:     "/",
					MaxAge:   365 * 24 * 60 * 60,
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			if lang != "" {
				r = r.WithContext(internal.ContextWithLanguage(r.Context(), lang))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// GetLanguage returns the language resolved by Language, or "".
func GetLanguage(r *http.Request) string {
	return internal.LanguageFromContext(r.Context())
}
