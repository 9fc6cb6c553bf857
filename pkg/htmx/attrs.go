package htmx

import (
	"html"
	"strings"
)

// Attrs describes the hx-* attributes of an element.
type Attrs struct {
	Method  string // "get" when empty
	URL     string
	Target  string // CSS selector
	Swap    SwapStrategy
	PushURL bool
	Confirm string
	Include string
}

// String renders the attributes with a leading space, escaped for an HTML tag.
// It returns an empty string when URL is empty.
//
// Example:
//
//	htmx.Attrs{URL: "/users?page=2", Target: "#users", Swap: htmx.SwapOuterHTML, PushURL: true}.String()
//	// ` hx-get="/users?page=2" hx-target="#users" hx-swap="outerHTML" hx-push-url="true"`
func (a Attrs) String() string {
	if a.URL == "" {
		return ""
	}

	method := strings.ToLower(a.Method)
	if method == "" {
		method = "get"
	}

	var b strings.Builder
	write := func(name, value string) {
		b.WriteString(" ")
		b.WriteString(name)
		b.WriteString(`="`)
		b.WriteString(html.EscapeString(value))
		b.WriteString(`"`)
	}

	write("hx-"+method, a.URL)
	if a.Target != "" {
		write("hx-target", a.Target)
	}
	if a.Swap != "" {
		write("hx-swap", string(a.Swap))
	}
	if a.PushURL {
		write("hx-push-url", "true")
	}
	if a.Confirm != "" {
		write("hx-confirm", a.Confirm)
	}
	if a.Include != "" {
		write("hx-include", a.Include)
	}
	return b.String()
}
