package output

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/invopop/jsonschema"
	"github.com/ricardonunez-io/triage/internal/report"
	"github.com/ricardonunez-io/triage/internal/triage"
)

// Document is the JSON document emitted for one run.
type Document struct {
	RunID       string          `json:"run_id" jsonschema:"description=Unique id of this triage run"`
	GeneratedAt string          `json:"generated_at" jsonschema:"description=RFC 3339 time the document was produced"`
	Incidents   []IncidentEntry `json:"incidents" jsonschema:"description=Incidents in first-seen order"`
}

type IncidentEntry struct {
	Number    int                  `json:"incident"`
	Service   string               `json:"service"`
	Pattern   string               `json:"pattern"`
	Count     int                  `json:"count"`
	FirstSeen string               `json:"first_seen"`
	LastSeen  string               `json:"last_seen"`
	Report    *report.TriageReport `json:"report,omitempty"`
	Error     string               `json:"error,omitempty"`
}

// NewDocument converts runner results into the output document, keeping
// their order.
func NewDocument(results []triage.Result, now time.Time) Document {
	doc := Document{
		RunID:       uuid.NewString(),
		GeneratedAt: now.UTC().Format(time.RFC3339),
		Incidents:   make([]IncidentEntry, 0, len(results)),
	}

	for i, res := range results {
		entry := IncidentEntry{
			Number:    i + 1,
			Service:   res.Incident.Key.Service,
			Pattern:   res.Incident.Key.Pattern,
			Count:     res.Incident.Count(),
			FirstSeen: res.Incident.FirstSeen(),
			LastSeen:  res.Incident.LastSeen(),
		}
		if res.Err != nil {
			entry.Error = res.Err.Error()
		} else {
			r := res.Report
			entry.Report = &r
		}
		doc.Incidents = append(doc.Incidents, entry)
	}

	return doc
}

func Write(w io.Writer, doc Document, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode report document: %w", err)
	}
	return nil
}

// Schema returns the JSON Schema of Document.
func Schema() map[string]any {
	r := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	s := r.Reflect(&Document{})
	b, _ := json.Marshal(s)
	var m map[string]any
	_ = json.Unmarshal(b, &m)
	return m
}
