package i18n

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// DefaultLang is the fallback language when none is configured.
const DefaultLang = "en"

// M holds placeholder values for a translation.
type M map[string]any

// I18n stores flattened translations.
// It is immutable after New returns and safe for concurrent use.
type I18n struct {
	// Key format: "lang:namespace:key.path"
	translations map[string]string

	missingKeyHandler func(lang, namespace, key string)

	defaultLang string
	languages   []string
}

// Option configures the I18n instance during construction.
type Option func(*I18n) error

// New creates an I18n instance.
func New(opts ...Option) (*I18n, error) {
	i := &I18n{
		translations: make(map[string]string),
		defaultLang:  DefaultLang,
	}

	for _, opt := range opts {
		if err := opt(i); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if i.defaultLang == "" {
		return nil, ErrEmptyLanguage
	}

	i.languages = i.buildLanguagesList()

	return i, nil
}

// WithDefaultLanguage sets the fallback language.
func WithDefaultLanguage(lang string) Option {
	return func(i *I18n) error {
		if lang == "" {
			return ErrEmptyLanguage
		}
		i.defaultLang = lang
		return nil
	}
}

// WithLanguages restricts the languages offered during negotiation.
// The default language is always first; the others are sorted.
// Without this option every language with translations is offered.
func WithLanguages(langs ...string) Option {
	return func(i *I18n) error {
		set := make(map[string]struct{}, len(langs))
		for _, lang := range langs {
			if lang != "" && lang != i.defaultLang {
				set[lang] = struct{}{}
			}
		}
		i.languages = append([]string{i.defaultLang}, slices.Sorted(maps.Keys(set))...)
		return nil
	}
}

// WithTranslations registers translations for a language and namespace.
// Nested maps are flattened into dotted keys.
func WithTranslations(lang, namespace string, translations map[string]any) Option {
	return func(i *I18n) error {
		if lang == "" {
			return ErrEmptyLanguage
		}
		if namespace == "" {
			return ErrEmptyNamespace
		}
		i.add(lang, namespace, translations)
		return nil
	}
}

// WithMissingKeyHandler sets a function called when a key is missing in
// every fallback language.
func WithMissingKeyHandler(handler func(lang, namespace, key string)) Option {
	return func(i *I18n) error {
		i.missingKeyHandler = handler
		return nil
	}
}

// T returns the translation of key, trying lang, its base language and the
// default language in that order. Missing keys return the key itself.
func (i *I18n) T(lang, namespace, key string, placeholders ...M) string {
	if translation, ok := i.Lookup(lang, namespace, key); ok {
		return replacePlaceholdersWithMerge(translation, placeholders...)
	}

	if i.missingKeyHandler != nil {
		i.missingKeyHandler(lang, namespace, key)
	}
	return key
}

// Lookup returns the raw translation of key and whether one exists,
// applying the same fallbacks as T.
func (i *I18n) Lookup(lang, namespace, key string) (string, bool) {
	if translation, ok := i.translations[buildKey(lang, namespace, key)]; ok {
		return translation, true
	}

	base := baseLanguage(lang)
	if base != lang {
		if translation, ok := i.translations[buildKey(base, namespace, key)]; ok {
			return translation, true
		}
	}

	if lang != i.defaultLang && base != i.defaultLang {
		if translation, ok := i.translations[buildKey(i.defaultLang, namespace, key)]; ok {
			return translation, true
		}
	}

	return "", false
}

// Languages returns the available languages, default first.
func (i *I18n) Languages() []string {
	return i.languages
}

// DefaultLanguage returns the fallback language.
func (i *I18n) DefaultLanguage() string {
	return i.defaultLang
}

func (i *I18n) add(lang, namespace string, translations map[string]any) {
	for key, value := range flattenTranslations(translations, "") {
		i.translations[buildKey(lang, namespace, key)] = value
	}
}

func (i *I18n) buildLanguagesList() []string {
	if len(i.languages) > 0 {
		return i.languages
	}

	set := make(map[string]struct{})
	for key := range i.translations {
		lang, _, _ := strings.Cut(key, ":")
		if lang != i.defaultLang {
			set[lang] = struct{}{}
		}
	}
	return append([]string{i.defaultLang}, slices.Sorted(maps.Keys(set))...)
}

func buildKey(lang, namespace, key string) string {
	return lang + ":" + namespace + ":" + key
}

func flattenTranslations(data map[string]any, prefix string) map[string]string {
	result := make(map[string]string)

	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			result[fullKey] = v
		case map[string]any:
			maps.Copy(result, flattenTranslations(v, fullKey))
		case map[string]string:
			for subKey, subVal := range v {
				result[fullKey+"."+subKey] = subVal
			}
		case nil:
			result[fullKey] = ""
		default:
			result[fullKey] = fmt.Sprint(v)
		}
	}

	return result
}

func replacePlaceholdersWithMerge(template string, placeholders ...M) string {
	switch len(placeholders) {
	case 0:
		return template
	case 1:
		return ReplacePlaceholders(template, placeholders[0])
	}

	merged := make(M)
	for _, p := range placeholders {
		maps.Copy(merged, p)
	}
	return ReplacePlaceholders(template, merged)
}

// baseLanguage strips the region from a language tag ("fr-CA" -> "fr").
func baseLanguage(lang string) string {
	if i := strings.IndexAny(lang, "-_"); i > 0 {
		return lang[:i]
	}
	return lang
}
