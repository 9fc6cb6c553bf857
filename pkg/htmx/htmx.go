package htmx

import (
	"net/http"
	"strings"
)

// IsHTMX returns true if the request originated from HTMX.
func IsHTMX(r *http.Request) bool {
	return r.Header.Get(HeaderHXRequest) == "true"
}

// IsBoosted returns true for requests made by hx-boost links and forms.
func IsBoosted(r *http.Request) bool {
	return r.Header.Get(HeaderHXBoosted) == "true"
}

// IsHistoryRestore returns true when HTMX restores a page missing from its
// history cache. Such requests need the full page.
func IsHistoryRestore(r *http.Request) bool {
	return r.Header.Get(HeaderHXHistoryRestoreRequest) == "true"
}

// Target returns the id of the element the request will swap, without "#".
func Target(r *http.Request) string {
	return strings.TrimPrefix(r.Header.Get(HeaderHXTarget), "#")
}

// TargetsElement reports whether an HTMX request will swap the element with id.
// Boosted and history restore requests always expect a full page.
func TargetsElement(r *http.Request, id string) bool {
	if !IsHTMX(r) || IsBoosted(r) || IsHistoryRestore(r) {
		return false
	}
	return id != "" && Target(r) == id
}

// CurrentURL returns the browser URL sent with HTMX requests.
func CurrentURL(r *http.Request) string {
	return r.Header.Get(HeaderHXCurrentURL)
}
