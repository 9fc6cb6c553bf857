package internal

import "html/template"

// Result is a line rendered after the rows, such as a total.
type Result struct {
	title   string
	html    func([]Row) string
	classes []string
}

// Title sets the label of the line.
func (r *Result) Title(title string) *Result {
	r.title = title
	return r
}

// HTML sets the closure computing the line content from the displayed rows.
func (r *Result) HTML(fn func(displayed []Row) string) *Result {
	r.html = fn
	return r
}

// Classes adds classes to the line.
func (r *Result) Classes(classes ...string) *Result {
	r.classes = append(r.classes, classes...)
	return r
}

// ResultView is the template context of a result line.
type ResultView struct {
	Title   string
	HTML    template.HTML
	Classes string
}

func (r *Result) view(rows []Row, sanitize func(string) string) ResultView {
	v := ResultView{Title: r.title, Classes: joinClasses(r.classes)}
	if r.html != nil {
		v.HTML = template.HTML(sanitize(r.html(rows))) //nolint:gosec
	}
	return v
}
