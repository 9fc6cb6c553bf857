package views

import (
	"html"
	"html/template"
	"maps"
	"regexp"
	"slices"
	"strings"
)

// Funcs returns the functions available in every template.
//
//   - attrs: renders a map[string]string as escaped tag attributes
//   - classes: joins class names, skipping empty ones
func Funcs() template.FuncMap {
	return template.FuncMap{
		"attrs":   Attrs,
		"classes": Classes,
	}
}

var attrNamePattern = regexp.MustCompile(`^[A-Za-z_:][-A-Za-z0-9_:.]*$`)

// Attrs renders attributes sorted by name, each preceded by a space.
// Invalid names and event handler attributes are dropped.
func Attrs(attrs map[string]string) template.HTMLAttr {
	if len(attrs) == 0 {
		return ""
	}

	var b strings.Builder
	for _, name := range slices.Sorted(maps.Keys(attrs)) {
		if !attrNamePattern.MatchString(name) || strings.HasPrefix(strings.ToLower(name), "on") {
			continue
		}
		b.WriteString(" ")
		b.WriteString(name)
		b.WriteString(`="`)
		b.WriteString(html.EscapeString(attrs[name]))
		b.WriteString(`"`)
	}
	// Names are validated and values escaped above.
	return template.HTMLAttr(b.String()) //nolint:gosec
}

// Classes joins non-empty class names with single spaces.
func Classes(classes ...string) string {
	out := make([]string, 0, len(classes))
	for _, c := range classes {
		out = append(out, strings.Fields(c)...)
	}
	return strings.Join(out, " ")
}
