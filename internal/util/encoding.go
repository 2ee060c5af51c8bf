package util

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Lower returns the language-neutral lowercase form of s. Composed and
// decomposed accents are left as they are.
func Lower(s string) string {
	return cases.Lower(language.Und).String(s)
}
