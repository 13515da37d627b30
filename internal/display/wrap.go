package display

import (
	"github.com/muesli/reflow/wordwrap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const DefaultWidth = 78

var titler = cases.Title(language.English, cases.NoLower)

// Wrap word-wraps narrative text to DefaultWidth, preserving ANSI
// escape sequences.
func Wrap(text string) string {
	return wordwrap.String(text, DefaultWidth)
}

// Capitalize returns s with its first word title-cased, for message
// fragments promoted to sentence starts.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	return titler.String(s[:1]) + s[1:]
}
