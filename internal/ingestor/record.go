package ingestor

import (
	"regexp"
	"strings"
)

type LogRecord struct {
	Timestamp string `json:"timestamp"`
	Service   string `json:"service"`
	Level     string `json:"level"`
	Message   string `json:"message"`
}

// Separators accept any Unicode space (U+00A0, U+2003, ...), not just ASCII
// whitespace, and the level may hold any letters or digits.
var lineGrammar = regexp.MustCompile(
	`^([^\s\p{Z}\x{85}]+)[\s\p{Z}\x{85}]+\[([^\]]+)\][\s\p{Z}\x{85}]+([\p{L}\p{N}_]+):[\s\p{Z}\x{85}]+(.*)$`,
)

// ParseLine turns one raw line of the form "<ts> [<service>] <LEVEL>: <message>"
// into a LogRecord. Empty and malformed lines yield ok == false.
func ParseLine(line string) (LogRecord, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return LogRecord{}, false
	}

	m := lineGrammar.FindStringSubmatch(line)
	if m == nil {
		return LogRecord{}, false
	}

	return LogRecord{
		Timestamp: m[1],
		Service:   m[2],
		Level:     m[3],
		Message:   m[4],
	}, true
}

// Render formats a record back into the line grammar accepted by ParseLine.
func (r LogRecord) Render() string {
	return r.Timestamp + " [" + r.Service + "] " + r.Level + ": " + r.Message
}
