// Package i18n translates the strings tables render: headings, search
// placeholders, navigation text and action labels.
//
// Translations are flattened into "lang:namespace:key" entries at
// construction, so an [I18n] is immutable and safe for concurrent use.
//
// # Built-in strings
//
// English and French strings for the "table" namespace are embedded:
//
//	tr, err := i18n.NewDefault(
//		i18n.WithTranslations("en", i18n.TableNamespace, map[string]any{
//			"attributes": map[string]any{"created_at": "Signed up"},
//		}),
//	)
//
// # File-based translations
//
// Load YAML bundles laid out as {lang}/{namespace}.yaml:
//
//	//go:embed translations
//	var translationsFS embed.FS
//
//	sub, _ := fs.Sub(translationsFS, "translations")
//	inst, err := i18n.New(i18n.WithYAMLDir(sub))
//
// # Fallback
//
// A missing key falls back to the base language ("fr-CA" to "fr"), then to
// the default language, then to the key itself.
//
// # Language negotiation
//
// [Negotiate] matches an Accept-Language header against the available
// languages with golang.org/x/text/language. [Translator.FormatNumber]
// groups digits the way the chosen language does.
package i18n
