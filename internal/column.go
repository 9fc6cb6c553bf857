package internal

import (
	"fmt"
	"html/template"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dmitrymomot/tabula/pkg/sanitizer"
	"github.com/dmitrymomot/tabula/pkg/source"
)

// Column describes how an attribute of the rows is displayed.
type Column struct {
	table     *Table
	attribute string
	title     string

	sortable      bool
	sortByDefault bool
	sortDir       Direction

	searchable   bool
	searchFields []string

	dateTimeFormat string
	button         bool
	buttonClasses  []string
	link           link

	prepend       string
	prependAlways bool
	append        string
	appendAlways  bool

	stringLimit int
	value       func(Row, *Column) string
	html        func(Row, *Column) string
	markdown    bool
	classes     []string
}

// Attribute returns the row field the column displays.
func (c *Column) Attribute() string {
	return c.attribute
}

// Table returns the table the column belongs to.
func (c *Column) Table() *Table {
	return c.table
}

// Title sets the header title. The default is the "attributes.<attribute>"
// translation, or the humanized attribute.
func (c *Column) Title(title string) *Column {
	c.title = title
	return c
}

// Sortable allows sorting by the column. With byDefault the table is sorted
// by it when the request does not ask for another column.
func (c *Column) Sortable(byDefault bool, dir Direction) *Column {
	c.sortable = true
	c.sortByDefault = byDefault
	if dir != Desc {
		dir = Asc
	}
	c.sortDir = dir
	return c
}

// Searchable includes the column in searches. Fields replace the attribute
// as search targets, e.g. joined "companies.name".
func (c *Column) Searchable(fields ...string) *Column {
	c.searchable = true
	c.searchFields = fields
	return c
}

// DateTimeFormat formats time values, and RFC 3339 strings, with a Go layout.
func (c *Column) DateTimeFormat(layout string) *Column {
	c.dateTimeFormat = layout
	return c
}

// Button wraps the value in a button with the given classes.
func (c *Column) Button(classes ...string) *Column {
	c.button = true
	c.buttonClasses = classes
	return c
}

// Link turns the value into a link to url. An empty url links each cell
// to its own displayed value.
func (c *Column) Link(url string) *Column {
	if url == "" {
		c.link = link{kind: LinkValue}
	} else {
		c.link = link{kind: LinkLiteral, url: url}
	}
	return c
}

// LinkFunc turns the value into a link computed for each row.
func (c *Column) LinkFunc(fn func(Row, *Column) string) *Column {
	if fn == nil {
		c.link = link{}
	} else {
		c.link = link{kind: LinkCallback, fn: fn}
	}
	return c
}

// LinkKind returns how cells of the column are linked.
func (c *Column) LinkKind() LinkKind {
	return c.link.kind
}

// LinkURL returns the literal link URL, empty unless LinkKind is LinkLiteral.
func (c *Column) LinkURL() string {
	return c.link.url
}

// Prepend renders html before the value. With showWhenNoValue it is also
// rendered in cells without a value.
func (c *Column) Prepend(html string, showWhenNoValue bool) *Column {
	c.prepend = html
	c.prependAlways = showWhenNoValue
	return c
}

// Append renders html after the value. With showWhenNoValue it is also
// rendered in cells without a value.
func (c *Column) Append(html string, showWhenNoValue bool) *Column {
	c.append = html
	c.appendAlways = showWhenNoValue
	return c
}

// StringLimit truncates displayed values to n runes.
func (c *Column) StringLimit(n int) *Column {
	c.stringLimit = max(n, 0)
	return c
}

// Value sets a closure computing the displayed value.
func (c *Column) Value(fn func(Row, *Column) string) *Column {
	c.value = fn
	return c
}

// HTML sets a closure computing the whole cell content. It overrides every
// other display setting of the column.
func (c *Column) HTML(fn func(Row, *Column) string) *Column {
	c.html = fn
	return c
}

// Markdown renders the value as inline markdown.
func (c *Column) Markdown() *Column {
	c.markdown = true
	return c
}

// Classes adds classes to the column header and cells.
func (c *Column) Classes(classes ...string) *Column {
	c.classes = append(c.classes, classes...)
	return c
}

func (c *Column) hasClosure() bool {
	return c.value != nil || c.html != nil
}

func (c *Column) searchTargets() []string {
	if len(c.searchFields) > 0 {
		return c.searchFields
	}
	return []string{c.attribute}
}

// CellView is the template context of a body cell.
type CellView struct {
	Attribute string
	Classes   string

	// Value is the full displayed value; Title repeats it for the anchor title.
	Value string
	Title string

	// Content is the escaped, possibly truncated value, or the HTML of a
	// markdown or HTML column.
	Content template.HTML
	IsHTML  bool

	URL           string
	IsButton      bool
	ButtonClasses string

	Prepend     template.HTML
	ShowPrepend bool
	Append      template.HTML
	ShowAppend  bool
}

// cell computes the content of the column for row.
func (c *Column) cell(row Row, sanitize func(string) string) (CellView, error) {
	t := c.table
	cell := CellView{
		Attribute: c.attribute,
		Classes:   joinClasses(t.tdClasses, c.classes),
	}

	if c.html != nil {
		cell.IsHTML = true
		cell.Content = template.HTML(sanitize(c.html(row, c))) //nolint:gosec
		return cell, nil
	}

	value := c.displayValue(row)
	cell.Value = value
	cell.Title = value

	if c.markdown && value != "" {
		out, err := c.markdownContent(value, sanitize)
		if err != nil {
			return cell, fmt.Errorf("column %q: %w", c.attribute, err)
		}
		cell.Content = out
	} else {
		cell.Content = template.HTML(template.HTMLEscapeString(truncate(value, c.stringLimit))) //nolint:gosec
	}

	cell.URL = c.link.resolve(row, c, value)
	cell.IsButton = c.button && value != ""
	cell.ButtonClasses = joinClasses(c.buttonClasses)

	if c.prepend != "" && (value != "" || c.prependAlways) {
		cell.ShowPrepend = true
		cell.Prepend = template.HTML(sanitize(c.prepend)) //nolint:gosec
	}
	if c.append != "" && (value != "" || c.appendAlways) {
		cell.ShowAppend = true
		cell.Append = template.HTML(sanitize(c.append)) //nolint:gosec
	}
	return cell, nil
}

// markdownContent renders value with the table policy. Over the string
// limit, the rendered text is truncated and shown without markup.
func (c *Column) markdownContent(value string, sanitize func(string) string) (template.HTML, error) {
	out, err := sanitizer.RenderMarkdown(value)
	if err != nil {
		return "", err
	}
	out = sanitize(out)

	if c.stringLimit > 0 {
		if text := sanitizer.StripHTML(out); utf8.RuneCountInString(text) > c.stringLimit {
			out = template.HTMLEscapeString(truncate(text, c.stringLimit))
		}
	}
	return template.HTML(out), nil //nolint:gosec
}

// displayValue returns the custom value, the formatted date or the raw attribute.
func (c *Column) displayValue(row Row) string {
	if c.value != nil {
		return c.value(row, c)
	}

	raw, _ := row.Value(c.attribute)
	if c.dateTimeFormat != "" {
		if ts, ok := asTime(raw); ok {
			return ts.Format(c.dateTimeFormat)
		}
	}
	return source.FormatValue(raw)
}

func asTime(v any) (time.Time, bool) {
	switch val := v.(type) {
	case time.Time:
		return val, !val.IsZero()
	case *time.Time:
		if val == nil || val.IsZero() {
			return time.Time{}, false
		}
		return *val, true
	case string:
		ts, err := time.Parse(time.RFC3339, val)
		if err != nil {
			return time.Time{}, false
		}
		return ts, true
	default:
		return time.Time{}, false
	}
}

// truncate shortens s to limit runes followed by "...". Zero means no limit.
func truncate(s string, limit int) string {
	if limit <= 0 || utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return strings.TrimRight(string(runes[:limit]), " ") + "..."
}

func joinClasses(groups ...[]string) string {
	var out []string
	for _, g := range groups {
		for _, c := range g {
			out = append(out, strings.Fields(c)...)
		}
	}
	return strings.Join(out, " ")
}
