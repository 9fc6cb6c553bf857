package sanitizer

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictPolicy *bluemonday.Policy
	cellPolicy   *bluemonday.Policy
	initOnce     sync.Once
)

func initPolicies() {
	initOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()
		cellPolicy = CellPolicy()
	})
}

// CellPolicy returns a new policy for table cell content: inline formatting,
// links, badges and icon markup. Callers may extend the returned policy.
func CellPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowStandardURLs()
	p.AllowElements(
		"span", "small", "br",
		"strong", "b", "em", "i", "u", "del", "mark",
		"code", "kbd", "abbr",
	)
	p.AllowAttrs("href", "target").OnElements("a")
	p.AllowAttrs("title").OnElements("a", "abbr", "span", "i")
	p.AllowAttrs("aria-hidden", "aria-label").OnElements("i", "span")
	p.AllowAttrs("class").Matching(bluemonday.SpaceSeparatedTokens).Globally()
	p.RequireNoFollowOnFullyQualifiedLinks(true)
	p.AddTargetBlankToFullyQualifiedLinks(true)
	return p
}

// SanitizeCell keeps the markup allowed by CellPolicy and drops the rest,
// including scripts, event handlers and javascript: URLs.
func SanitizeCell(s string) string {
	initPolicies()
	return cellPolicy.Sanitize(s)
}

// StripHTML removes every tag and returns plain text.
// Entities produced by the policy are decoded so the text can be escaped again by templates.
func StripHTML(s string) string {
	initPolicies()
	return strings.TrimSpace(html.UnescapeString(strictPolicy.Sanitize(s)))
}

// SanitizeHTMLCustom applies a custom bluemonday policy.
// Returns input unchanged if policy is nil.
func SanitizeHTMLCustom(s string, policy *bluemonday.Policy) string {
	if policy == nil {
		return s
	}
	return policy.Sanitize(s)
}
