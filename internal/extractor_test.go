package internal_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/tabula/internal"
)

func TestExtractor(t *testing.T) {
	t.Parallel()

	t.Run("empty sources returns false", func(t *testing.T) {
		t.Parallel()

		v, ok := internal.NewExtractor().Extract(httptest.NewRequest(http.MethodGet, "/", nil))
		require.False(t, ok)
		require.Empty(t, v)
	})

	t.Run("first non-empty source wins", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/?lang=de", nil)
		req.Header.Set("X-Lang", "it")
		req.AddCookie(&http.Cookie{Name: "lang", Value: "es"})

		ext := internal.NewExtractor(
			internal.FromCookie("missing"),
			internal.FromHeader("X-Missing"),
			internal.FromQuery("lang"),
			internal.FromHeader("X-Lang"),
		)
		v, ok := ext.Extract(req)
		require.True(t, ok)
		require.Equal(t, "de", v)

		v, ok = internal.NewExtractor(internal.FromCookie("lang")).Extract(req)
		require.True(t, ok)
		require.Equal(t, "es", v)
	})

	t.Run("rejected values fall through", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/?lang=xx", nil)
		req.Header.Set("X-Lang", "FR")
		ext := internal.NewExtractor(internal.FromQuery("lang"), internal.FromHeader("X-Lang"))

		accept := func(v string) (string, bool) {
			v = strings.ToLower(v)
			return v, v == "fr"
		}
		v, ok := ext.ExtractWith(req, accept)
		require.True(t, ok)
		require.Equal(t, "fr", v)

		_, ok = internal.NewExtractor(internal.FromQuery("lang")).ExtractWith(req, accept)
		require.False(t, ok)
	})

	t.Run("context language", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		_, ok := internal.FromContextLanguage()(req)
		require.False(t, ok)

		req = req.WithContext(internal.ContextWithLanguage(req.Context(), "fr"))
		v, ok := internal.FromContextLanguage()(req)
		require.True(t, ok)
		require.Equal(t, "fr", v)
		require.Equal(t, "fr", internal.LanguageFromContext(req.Context()))
	})

	t.Run("accept language", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		src := internal.FromAcceptLanguage([]string{"en", "fr"})

		_, ok := src(req)
		require.False(t, ok)

		req.Header.Set("Accept-Language", "fr-FR,fr;q=0.9")
		v, ok := src(req)
		require.True(t, ok)
		require.Equal(t, "fr", v)
	})
}

func TestAsHTTPError(t *testing.T) {
	t.Parallel()

	require.Nil(t, internal.AsHTTPError(nil))

	own := internal.NewHTTPError(http.StatusNotFound, "Not here", nil)
	require.Same(t, own, internal.AsHTTPError(own))

	wrapped := internal.AsHTTPError(errors.Join(errors.New("ctx"), context.DeadlineExceeded))
	require.Equal(t, http.StatusGatewayTimeout, wrapped.Code)
	require.ErrorIs(t, wrapped, context.DeadlineExceeded)

	require.Equal(t, internal.StatusClientClosedRequest, internal.AsHTTPError(context.Canceled).Code)

	other := internal.AsHTTPError(internal.ErrNoColumns)
	require.Equal(t, http.StatusInternalServerError, other.StatusCode())
	require.Equal(t, "Internal Server Error", other.StatusText())
	require.Equal(t, "Internal Server Error", other.Error())
}
