package report

const (
	DefaultSummary   = "N/A"
	DefaultSeverity  = "P3"
	DefaultRootCause = "N/A"
)

// ValidSeverities are the priorities a report may carry.
var ValidSeverities = []string{"P1", "P2", "P3", "P4"}

type TriageReport struct {
	Summary     string   `json:"summary" jsonschema:"description=One-line description of the incident"`
	Severity    string   `json:"severity" jsonschema:"enum=P1,enum=P2,enum=P3,enum=P4,description=Incident priority"`
	RootCause   string   `json:"root_cause" jsonschema:"description=Most likely root cause"`
	ActionItems []string `json:"action_items" jsonschema:"description=Ordered remediation steps"`
}

func Default() TriageReport {
	return TriageReport{
		Summary:     DefaultSummary,
		Severity:    DefaultSeverity,
		RootCause:   DefaultRootCause,
		ActionItems: []string{},
	}
}
