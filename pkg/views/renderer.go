package views

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"strings"
	"sync"
)

//go:embed templates
var embedded embed.FS

// Renderer resolves template names to "<name>.html" files in a chain of
// file systems. The first file system containing the file wins, so
// application overrides go before the embedded defaults.
type Renderer struct {
	chain []fs.FS
	funcs template.FuncMap

	// Parsed templates only; output is never cached.
	cache map[string]*template.Template
	mu    sync.RWMutex
}

// Option configures the renderer.
type Option func(*Renderer)

// WithFS adds file systems searched before the embedded defaults,
// in the order given.
func WithFS(fsys ...fs.FS) Option {
	return func(r *Renderer) {
		for _, f := range fsys {
			if f != nil {
				r.chain = append(r.chain, f)
			}
		}
	}
}

// WithFuncs adds template functions. They override the built-in ones.
func WithFuncs(funcs template.FuncMap) Option {
	return func(r *Renderer) {
		for name, fn := range funcs {
			r.funcs[name] = fn
		}
	}
}

// New creates a renderer.
//
// Example:
//
//	//go:embed views
//	var overrides embed.FS
//
//	sub, _ := fs.Sub(overrides, "views")
//	r := views.New(views.WithFS(sub))
func New(opts ...Option) *Renderer {
	r := &Renderer{
		funcs: Funcs(),
		cache: make(map[string]*template.Template),
	}
	for _, opt := range opts {
		opt(r)
	}

	defaults, _ := fs.Sub(embedded, "templates")
	r.chain = append(r.chain, defaults)
	return r
}

// Default returns a renderer with the embedded templates only.
func Default() *Renderer {
	defaultOnce.Do(func() {
		defaultRenderer = New()
	})
	return defaultRenderer
}

var (
	defaultRenderer *Renderer
	defaultOnce     sync.Once
)

// Has reports whether name resolves to a template file.
func (r *Renderer) Has(name string) bool {
	_, _, err := r.find(name)
	return err == nil
}

// Render executes the named template with data.
func (r *Renderer) Render(w io.Writer, name string, data any) error {
	tmpl, err := r.lookup(name)
	if err != nil {
		return err
	}
	if err := tmpl.Execute(w, data); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrRenderFailed, name, err)
	}
	return nil
}

// RenderHTML executes the named template and returns its output.
func (r *Renderer) RenderHTML(name string, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.Render(&buf, name, data); err != nil {
		return "", err
	}
	// Output of an html/template execution is already escaped.
	return template.HTML(buf.String()), nil //nolint:gosec
}

// lookup returns a cached template or parses and caches it.
func (r *Renderer) lookup(name string) (*template.Template, error) {
	r.mu.RLock()
	if tmpl, ok := r.cache[name]; ok {
		r.mu.RUnlock()
		return tmpl, nil
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()

	if tmpl, ok := r.cache[name]; ok {
		return tmpl, nil
	}

	fsys, path, err := r.find(name)
	if err != nil {
		return nil, err
	}

	content, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrTemplateNotFound, name, err)
	}

	tmpl, err := template.New(name).Funcs(r.funcs).Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrParseFailed, name, err)
	}

	r.cache[name] = tmpl
	return tmpl, nil
}

func (r *Renderer) find(name string) (fs.FS, string, error) {
	name = strings.TrimSuffix(strings.TrimSpace(name), ".html")
	path := name + ".html"
	if name == "" || !fs.ValidPath(path) {
		return nil, "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	for _, fsys := range r.chain {
		if _, err := fs.Stat(fsys, path); err == nil {
			return fsys, path, nil
		} else if !errors.Is(err, fs.ErrNotExist) {
			return nil, "", fmt.Errorf("%w: %s: %v", ErrTemplateNotFound, name, err)
		}
	}
	return nil, "", fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
}
