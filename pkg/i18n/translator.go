package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Translator fixes the language and namespace of an I18n instance.
type Translator struct {
	i18n      *I18n
	printer   *message.Printer
	language  string
	namespace string
}

// NewTranslator creates a Translator. An empty language selects the
// instance default.
func NewTranslator(i18n *I18n, lang, namespace string) *Translator {
	if i18n == nil {
		panic("i18n: service is not provided")
	}
	if lang == "" {
		lang = i18n.DefaultLanguage()
	}

	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.Make(i18n.DefaultLanguage())
	}

	return &Translator{
		i18n:      i18n,
		printer:   message.NewPrinter(tag),
		language:  lang,
		namespace: namespace,
	}
}

// T translates key.
func (t *Translator) T(key string, placeholders ...M) string {
	return t.i18n.T(t.language, t.namespace, key, placeholders...)
}

// Has reports whether key has a translation in any fallback language.
func (t *Translator) Has(key string) bool {
	_, ok := t.i18n.Lookup(t.language, t.namespace, key)
	return ok
}

// FormatNumber formats n with the language's digit grouping ("12,345" in English).
func (t *Translator) FormatNumber(n int) string {
	return t.printer.Sprintf("%d", n)
}

// Language returns the translator's language.
func (t *Translator) Language() string {
	return t.language
}

// Namespace returns the translator's namespace.
func (t *Translator) Namespace() string {
	return t.namespace
}
