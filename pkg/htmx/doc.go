// Package htmx helps tables refresh in place with HTMX.
//
// Sort links, pagination and the search form carry hx-get attributes built
// with [Attrs]. The handler then answers requests whose HX-Target is the table
// container with just the table:
//
//	if htmx.TargetsElement(r, view.ID) {
//		htmx.NewConfig(htmx.WithPushURL(r.URL.String())).ApplyHeaders(w)
//		return view.Render(ctx, w)
//	}
//
// Boosted and history restore requests are treated as full page loads.
package htmx
