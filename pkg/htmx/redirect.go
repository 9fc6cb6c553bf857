package htmx

import (
	"net/http"
)

// Redirect redirects regular requests with 303 and HTMX requests through HX-Redirect.
// 303 makes browsers follow a POST (row deletion) with a GET of the table page.
func Redirect(w http.ResponseWriter, r *http.Request, url string) {
	if IsHTMX(r) {
		w.Header().Set(HeaderHXRedirect, url)
		// HTMX requires 200; the redirect happens client-side.
		w.WriteHeader(http.StatusOK)
		return
	}

	http.Redirect(w, r, url, http.StatusSeeOther)
}
