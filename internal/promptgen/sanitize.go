package promptgen

import (
	"regexp"
	"strings"
)

const (
	maxFreeTextLen = 500
	minFreeTextLen = 3
)

var (
	unsafeChars      = regexp.MustCompile(`[";<>]`)
	multiSpace       = regexp.MustCompile(`\s{2,}`)
	spaceBeforePunct = regexp.MustCompile(`\s+([.,!?;:])`)
	punctThenLetter  = regexp.MustCompile(`([.,!?;:])([A-Za-z])`)
)

// Sanitize strips characters unsafe for downstream consumption, truncates
// to the free-text limit and trims surrounding whitespace.
func Sanitize(text string) string {
	clean := unsafeChars.ReplaceAllString(text, "")
	if runes := []rune(clean); len(runes) > maxFreeTextLen {
		clean = string(runes[:maxFreeTextLen])
	}
	return strings.TrimSpace(clean)
}

// cleanupGrammar normalizes spacing around sentence punctuation: collapses
// runs of whitespace, removes space before punctuation and guarantees one
// space between punctuation and a following letter.
func cleanupGrammar(text string) string {
	text = multiSpace.ReplaceAllString(text, " ")
	text = spaceBeforePunct.ReplaceAllString(text, "$1")
	text = punctThenLetter.ReplaceAllString(text, "$1 $2")
	return strings.TrimSpace(text)
}

func validFreeText(text string) bool {
	return len(strings.TrimSpace(text)) >= minFreeTextLen
}
