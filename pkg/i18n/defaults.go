package i18n

import (
	"embed"
	"io/fs"
)

// TableNamespace is the namespace of the built-in table strings.
const TableNamespace = "table"

//go:embed locales
var locales embed.FS

// WithDefaults loads the built-in table translations (English and French).
// Apply it before application options so they can override single keys.
func WithDefaults() Option {
	return func(i *I18n) error {
		sub, err := fs.Sub(locales, "locales")
		if err != nil {
			return err
		}
		return WithYAMLDir(sub)(i)
	}
}

// NewDefault creates an instance with the built-in table translations
// followed by opts.
func NewDefault(opts ...Option) (*I18n, error) {
	return New(append([]Option{WithDefaults()}, opts...)...)
}
