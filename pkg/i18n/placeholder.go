package i18n

import (
	"fmt"
	"strings"
)

// ReplacePlaceholders replaces {{name}} placeholders with values from the map.
// Unknown placeholders are left as they are.
//
// Example:
//
//	ReplacePlaceholders("Showing {{start}} to {{stop}}", M{"start": 1, "stop": 20})
//	// "Showing 1 to 20"
func ReplacePlaceholders(template string, placeholders M) string {
	if len(placeholders) == 0 || !strings.Contains(template, "{{") {
		return template
	}

	pairs := make([]string, 0, len(placeholders)*2)
	for key, value := range placeholders {
		pairs = append(pairs, "{{"+key+"}}", fmt.Sprint(value))
	}
	return strings.NewReplacer(pairs...).Replace(template)
}
