package utils

import (
	"regexp"
	"strings"
)

var invalidNameChars = regexp.MustCompile(`[^a-zA-Z0-9_ ]`)
var repeatedSpaces = regexp.MustCompile(`\s+`)

// FormatName normalizes a display name the way the signup form expects:
// invalid characters removed, spaces collapsed, each word capitalized.
func FormatName(s string) string {
	if s == "" {
		return ""
	}

	s = invalidNameChars.ReplaceAllString(s, "")
	s = strings.TrimSpace(repeatedSpaces.ReplaceAllString(s, " "))

	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}
	return strings.Join(words, " ")
}
