package internal

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// humanize turns an attribute into a title: "users.created_at" becomes "Created at".
func humanize(attribute string) string {
	if i := strings.LastIndexByte(attribute, '.'); i >= 0 {
		attribute = attribute[i+1:]
	}
	attribute = strings.TrimSuffix(attribute, "_id")

	words := strings.FieldsFunc(attribute, func(r rune) bool {
		return r == '_' || r == '-' || unicode.IsSpace(r)
	})
	if len(words) == 0 {
		return ""
	}

	s := strings.ToLower(strings.Join(words, " "))
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
