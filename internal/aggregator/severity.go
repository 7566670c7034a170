package aggregator

import "strings"

type severity string
type severityOptions []severity

func (option severity) Match(input string) bool {
	return strings.ToUpper(input) == string(option)
}

func (options severityOptions) Includes(input string) bool {
	for _, i := range options {
		if i.Match(input) {
			return true
		}
	}
	return false
}

const (
	MEDIUM severity = "MEDIUM"
	SEVERE severity = "SEVERE"
)

var ValidLogSeverities severityOptions = severityOptions{
	"MEDIUM", // groups WARN and ERROR records
	"SEVERE", // groups only ERROR records
}

// ShouldSkipLog reports whether a record's level is outside the actionable set.
// Levels are compared exactly as they appear in the log line.
func ShouldSkipLog(level string, logSeverity string) bool {
	if SEVERE.Match(logSeverity) {
		return level != "ERROR"
	}
	return level != "ERROR" && level != "WARN"
}
