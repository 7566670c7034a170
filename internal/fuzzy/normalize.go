package fuzzy

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const NumPlaceholder = "<NUM>"

var digitRun = regexp.MustCompile(`[0-9]+`)

// Lower applies full Unicode lower-casing, including the Greek final sigma.
// Unlike case folding it leaves ß alone. Runbook keywords go through the same
// function so both sides of a lookup agree.
func Lower(s string) string {
	// A Caser keeps state and is not safe for concurrent use.
	return cases.Lower(language.Und).String(s)
}

// Normalize lower-cases msg, replaces every run of digits with <NUM> and
// collapses whitespace runs to single spaces.
func Normalize(msg string) string {
	msg = Lower(msg)
	msg = digitRun.ReplaceAllString(msg, NumPlaceholder)
	return strings.Join(strings.Fields(msg), " ")
}
