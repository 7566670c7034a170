package report

import (
	"strings"

	"github.com/ricardonunez-io/triage/internal/prompt"
)

type field int

const (
	fieldSummary field = iota
	fieldSeverity
	fieldRootCause
	fieldActionItems
	fieldNone
)

var labels = [...]string{
	fieldSummary:     prompt.LabelSummary,
	fieldSeverity:    prompt.LabelSeverity,
	fieldRootCause:   prompt.LabelRootCause,
	fieldActionItems: prompt.LabelActionItems,
}

// terminators holds the label that closes each field's span; action items
// run to the end of the text.
var terminators = [...]field{
	fieldSummary:     fieldSeverity,
	fieldSeverity:    fieldRootCause,
	fieldRootCause:   fieldActionItems,
	fieldActionItems: fieldNone,
}

// mark is one label occurrence; start is where the label begins and end is
// where its value begins.
type mark struct {
	field      field
	start, end int
}

// Extract parses loosely formatted generator output into a TriageReport.
// Fields may share a line, appear out of order or be missing; anything that
// cannot be recovered keeps its default. Extract never fails.
func Extract(text string) TriageReport {
	r := Default()
	marks := scanLabels(text)

	if m, ok := first(marks, fieldSummary); ok {
		r.Summary = strings.TrimSpace(span(text, marks, m))
	}

	for _, m := range marks {
		if m.field != fieldSeverity {
			continue
		}
		if sev, ok := parseSeverity(span(text, marks, m)); ok {
			r.Severity = sev
			break
		}
	}

	if m, ok := first(marks, fieldRootCause); ok {
		r.RootCause = strings.TrimSpace(span(text, marks, m))
	}

	if m, ok := first(marks, fieldActionItems); ok {
		r.ActionItems = splitActions(span(text, marks, m))
	}

	return r
}

// scanLabels walks the text once and records every label occurrence,
// matching labels case-insensitively.
func scanLabels(text string) []mark {
	var marks []mark
	for i := 0; i < len(text); {
		matched := false
		for f, label := range labels {
			if hasPrefixFold(text[i:], label) {
				marks = append(marks, mark{field: field(f), start: i, end: i + len(label)})
				i += len(label)
				matched = true
				break
			}
		}
		if !matched {
			i++
		}
	}
	return marks
}

func first(marks []mark, f field) (mark, bool) {
	for _, m := range marks {
		if m.field == f {
			return m, true
		}
	}
	return mark{}, false
}

// span returns the raw value after m, up to the next occurrence of the
// field's terminator label or the end of the text.
func span(text string, marks []mark, m mark) string {
	stop := len(text)
	term := terminators[m.field]
	for _, next := range marks {
		if next.field == term && next.start >= m.end {
			stop = next.start
			break
		}
	}
	return text[m.end:stop]
}

// parseSeverity accepts only "P" followed by one digit within ValidSeverities.
func parseSeverity(raw string) (string, bool) {
	s := strings.ToUpper(strings.TrimSpace(raw))
	for _, v := range ValidSeverities {
		if s == v {
			return s, true
		}
	}
	return "", false
}

func splitActions(raw string) []string {
	raw = strings.ReplaceAll(raw, prompt.TargetMarker, "")
	items := []string{}
	for _, part := range strings.Split(raw, ",") {
		if item := strings.TrimSpace(part); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// hasPrefixFold is an ASCII case-insensitive strings.HasPrefix; labels are ASCII.
func hasPrefixFold(s, prefix string) bool {
	if len(s) < len(prefix) {
		return false
	}
	for i := 0; i < len(prefix); i++ {
		if lower(s[i]) != lower(prefix[i]) {
			return false
		}
	}
	return true
}

func lower(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}
