// Package views renders the table templates.
//
// Templates are plain html/template files named "<name>.html". The
// embedded "bootstrap" set is always available; applications override any
// of its files, or add their own sets, by passing file systems to New:
//
//	r := views.New(views.WithFS(os.DirFS("templates")))
//	html, err := r.RenderHTML("bootstrap/thead", view)
//
// Parsed templates are cached per renderer. Rendering output never is.
package views
