package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// FoldText trims, lower-cases and strips diacritics so that
// "Málaga", "MALAGA" and "malaga" compare equal.
func FoldText(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return folded
}

// FoldPtr folds an optional value; nil folds to ""
func FoldPtr(s *string) string {
	if s == nil {
		return ""
	}
	return FoldText(*s)
}
