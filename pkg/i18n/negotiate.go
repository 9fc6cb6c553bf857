package i18n

import (
	"golang.org/x/text/language"
)

// maxAcceptLanguageLength bounds the header parsed from untrusted clients.
const maxAcceptLanguageLength = 4096

// Negotiate picks the best language from available for an Accept-Language
// header. Empty or unparsable headers, and headers matching nothing, select
// available[0].
//
// Example:
//
//	Negotiate("fr-CA,fr;q=0.9,en;q=0.8", []string{"en", "fr"}) // "fr"
func Negotiate(header string, available []string) string {
	if len(available) == 0 {
		return ""
	}
	if header == "" {
		return available[0]
	}
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	desired, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(desired) == 0 {
		return available[0]
	}

	_, index, confidence := matcher(available).Match(desired...)
	if confidence == language.No {
		return available[0]
	}
	return available[index]
}

// Supported returns lang when it matches one of available, or "" otherwise.
// Region variants match their base language ("fr-CA" matches "fr").
func Supported(lang string, available []string) string {
	if lang == "" || len(available) == 0 {
		return ""
	}

	tag, err := language.Parse(lang)
	if err != nil {
		return ""
	}

	_, index, confidence := matcher(available).Match(tag)
	if confidence < language.High {
		return ""
	}
	return available[index]
}

func matcher(available []string) language.Matcher {
	tags := make([]language.Tag, len(available))
	for i, lang := range available {
		tags[i] = language.Make(lang)
	}
	return language.NewMatcher(tags)
}

// Negotiate picks the best of the instance's languages for header.
func (i *I18n) Negotiate(header string) string {
	return Negotiate(header, i.languages)
}
