package sanitizer

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var markdown = goldmark.New(
	goldmark.WithExtensions(extension.Strikethrough, extension.Linkify),
)

// Markdown renders s as inline markdown and sanitizes the result with CellPolicy.
// A single wrapping paragraph is removed so the output fits in a table cell.
func Markdown(s string) (string, error) {
	out, err := RenderMarkdown(s)
	if err != nil {
		return "", err
	}
	return SanitizeCell(out), nil
}

// RenderMarkdown converts s like Markdown but leaves sanitizing to the caller.
// Raw HTML in s is omitted by the converter either way.
func RenderMarkdown(s string) (string, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(s), &buf); err != nil {
		return "", err
	}

	out := strings.TrimSpace(buf.String())
	if strings.HasPrefix(out, "<p>") && strings.HasSuffix(out, "</p>") && strings.Count(out, "<p>") == 1 {
		out = strings.TrimSuffix(strings.TrimPrefix(out, "<p>"), "</p>")
	}
	return out, nil
}
