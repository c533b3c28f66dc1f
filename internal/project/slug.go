package project

import (
	"regexp"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var slugDisallowed = regexp.MustCompile(`[^a-zA-Z0-9\-_]`)

// Slug lowercases name and replaces every rune outside [a-zA-Z0-9-_] with a
// hyphen, one hyphen per rune. "My Cool App!" becomes "my-cool-app-".
func Slug(name string) string {
	lower := cases.Lower(language.Und).String(name)
	return slugDisallowed.ReplaceAllString(lower, "-")
}
