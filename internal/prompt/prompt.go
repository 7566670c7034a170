package prompt

import (
	"fmt"
	"strings"

	"github.com/ricardonunez-io/triage/internal/fuzzy"
	"github.com/ricardonunez-io/triage/internal/ingestor"
)

// MaxRecentRecords bounds how many log lines of an incident go into a prompt.
const MaxRecentRecords = 5

type Retriever interface {
	Retrieve(pattern string) string
}

type Builder struct {
	retriever Retriever
}

func NewBuilder(r Retriever) *Builder {
	return &Builder{retriever: r}
}

// Build renders the few-shot prompt for one incident. The result ends right
// after the target "Report:" marker so the generator continues with fields.
func (b *Builder) Build(key fuzzy.Key, records []ingestor.LogRecord) string {
	runbookContext := b.retriever.Retrieve(key.Pattern)

	var sb strings.Builder
	sb.WriteString(instruction)
	sb.WriteString("\n\n")
	sb.WriteString(workedExample)
	sb.WriteString("\n\n")
	fmt.Fprintf(&sb, targetSection, RenderLogs(records), runbookContext)
	return sb.String()
}

// RenderLogs formats the most recent records as "timestamp [level] message",
// one per line.
func RenderLogs(records []ingestor.LogRecord) string {
	if len(records) > MaxRecentRecords {
		records = records[len(records)-MaxRecentRecords:]
	}
	lines := make([]string, len(records))
	for i, r := range records {
		lines[i] = fmt.Sprintf("%s [%s] %s", r.Timestamp, r.Level, r.Message)
	}
	return strings.Join(lines, "\n")
}
