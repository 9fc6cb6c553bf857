package views_test

import (
	"bytes"
	"html/template"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/tabula/pkg/views"
)

func TestRenderer(t *testing.T) {
	t.Parallel()

	t.Run("embedded defaults", func(t *testing.T) {
		t.Parallel()

		r := views.New()
		for _, name := range []string{"table", "thead", "tbody", "tfoot", "results", "show", "edit", "destroy"} {
			assert.True(t, r.Has("bootstrap/"+name), name)
		}
		assert.False(t, r.Has("bootstrap/missing"))
		assert.Same(t, views.Default(), views.Default())
	})

	t.Run("overrides win in order", func(t *testing.T) {
		t.Parallel()

		first := fstest.MapFS{"custom/cell.html": {Data: []byte(`first {{ . }}`)}}
		second := fstest.MapFS{
			"custom/cell.html":    {Data: []byte(`second {{ . }}`)},
			"bootstrap/show.html": {Data: []byte(`overridden`)},
		}
		r := views.New(views.WithFS(first, nil, second))

		out, err := r.RenderHTML("custom/cell", "<b>")
		require.NoError(t, err)
		assert.Equal(t, template.HTML("first &lt;b&gt;"), out)

		out, err = r.RenderHTML("bootstrap/show.html", nil)
		require.NoError(t, err)
		assert.Equal(t, template.HTML("overridden"), out)
	})

	t.Run("parsed templates are cached", func(t *testing.T) {
		t.Parallel()

		fsys := fstest.MapFS{"x.html": {Data: []byte(`v1`)}}
		r := views.New(views.WithFS(fsys))

		var buf bytes.Buffer
		require.NoError(t, r.Render(&buf, "x", nil))

		fsys["x.html"] = &fstest.MapFile{Data: []byte(`v2`)}
		require.NoError(t, r.Render(&buf, "x", nil))
		assert.Equal(t, "v1v1", buf.String())
	})

	t.Run("custom funcs", func(t *testing.T) {
		t.Parallel()

		fsys := fstest.MapFS{"f.html": {Data: []byte(`{{ upper . }}`)}}
		r := views.New(views.WithFS(fsys), views.WithFuncs(template.FuncMap{"upper": strings.ToUpper}))

		out, err := r.RenderHTML("f", "ok")
		require.NoError(t, err)
		assert.Equal(t, template.HTML("OK"), out)
	})

	t.Run("errors", func(t *testing.T) {
		t.Parallel()

		fsys := fstest.MapFS{
			"broken.html": {Data: []byte(`{{ if }}`)},
			"fails.html":  {Data: []byte(`{{ .Missing }}`)},
		}
		r := views.New(views.WithFS(fsys))

		_, err := r.RenderHTML("nope", nil)
		require.ErrorIs(t, err, views.ErrTemplateNotFound)

		_, err = r.RenderHTML("  ", nil)
		require.ErrorIs(t, err, views.ErrInvalidName)

		_, err = r.RenderHTML("../etc/passwd", nil)
		require.ErrorIs(t, err, views.ErrInvalidName)

		_, err = r.RenderHTML("broken", nil)
		require.ErrorIs(t, err, views.ErrParseFailed)

		_, err = r.RenderHTML("fails", 42)
		require.ErrorIs(t, err, views.ErrRenderFailed)
	})
}

func TestAttrs(t *testing.T) {
	t.Parallel()

	assert.Equal(t, template.HTMLAttr(""), views.Attrs(nil))
	assert.Equal(t,
		template.HTMLAttr(` data-confirm="Are you &#34;sure&#34;?" hx-post="/x"`),
		views.Attrs(map[string]string{
			"hx-post":      "/x",
			"data-confirm": `Are you "sure"?`,
			"onclick":      "alert(1)",
			"bad name":     "x",
		}),
	)
}

func TestClasses(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a b c", views.Classes("a", "", "  b   c "))
	assert.Empty(t, views.Classes())
}
