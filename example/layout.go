package main

import (
	"context"
	"html"
	"io"
	"net/http"
	"strings"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/tabula/middlewares"
)

const (
	pageHead = `<!doctype html>
<html lang="%LANG%">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>%TITLE%</title>
<link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/bootstrap@4.6.2/dist/css/bootstrap.min.css">
<link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/@fortawesome/fontawesome-free@6.5.2/css/all.min.css">
<script src="https://unpkg.com/htmx.org@2.0.4"></script>
</head>
<body>
<main class="container py-4" hx-boost="true">
<h1 class="h3 mb-4">%TITLE%</h1>
`
	pageFoot = `</main>
<script>
document.addEventListener("submit", function (e) {
  var msg = e.target.getAttribute("data-confirm");
  if (msg && !e.target.hasAttribute("hx-confirm") && !confirm(msg)) { e.preventDefault(); }
});
</script>
</body>
</html>
`
)

// page wraps body in the demo page shell.
func page(r *http.Request, title string, body templ.Component) templ.Component {
	lang := middlewares.GetLanguage(r)
	if lang == "" {
		lang = "en"
	}

	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		head := strings.NewReplacer("%TITLE%", html.EscapeString(title), "%LANG%", html.EscapeString(lang)).Replace(pageHead)
		if _, err := io.WriteString(w, head); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, pageFoot)
		return err
	})
}

func usersLayout(r *http.Request, table templ.Component) templ.Component {
	return page(r, "Users", table)
}
