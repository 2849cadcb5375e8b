package notification

import (
	"regexp"
	"strings"
)

// placeholderPattern matches both ${key} and {{key}} placeholder forms
var placeholderPattern = regexp.MustCompile(`\$\{([a-zA-Z0-9_]+)\}|\{\{([a-zA-Z0-9_]+)\}\}`)

// placeholderAliases maps a placeholder to the legacy keys it may arrive
// under. Lookup tries the placeholder itself first, then each alias in order.
var placeholderAliases = map[string][]string{
	"employee_name": {"staff_name", "user_name"},
}

// Render substitutes every placeholder in text from data. Placeholders with
// no value, after alias fallback, render as an empty string.
func Render(text string, data map[string]string) string {
	return placeholderPattern.ReplaceAllStringFunc(text, func(match string) string {
		key := extractKey(match)
		if value, ok := resolve(key, data); ok {
			return value
		}
		return ""
	})
}

// RenderTemplate renders the subject and body of a template
func RenderTemplate(tpl Template, data map[string]string) (subject, body string) {
	return Render(tpl.Subject, data), Render(tpl.Body, data)
}

func extractKey(match string) string {
	if strings.HasPrefix(match, "${") {
		return match[2 : len(match)-1]
	}
	return match[2 : len(match)-2]
}

func resolve(key string, data map[string]string) (string, bool) {
	if value, ok := data[key]; ok {
		return value, true
	}
	for _, alias := range placeholderAliases[key] {
		if value, ok := data[alias]; ok {
			return value, true
		}
	}
	return "", false
}
