package sanitization

import (
	"html/template"
	"regexp"
	"strings"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

// EscapeHTML escapes a user-supplied value for use in HTML text or a quoted attribute
func EscapeHTML(input string) string {
	return template.HTMLEscapeString(input)
}

// SingleLine collapses all whitespace runs, including newlines, to one space.
// Use it for header-like values such as an email subject.
func SingleLine(input string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(input, " "))
}

// MultilineHTML escapes input and turns its line breaks into <br /> tags
func MultilineHTML(input string) string {
	normalized := strings.ReplaceAll(input, "\r\n", "\n")
	return strings.ReplaceAll(EscapeHTML(normalized), "\n", "<br />")
}
