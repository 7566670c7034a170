package prompt

// Field labels shared by the worked example and the report extractor. The
// generator imitates the example, so both sides must agree on these literals.
const (
	LabelSummary     = "Summary:"
	LabelSeverity    = "Severity:"
	LabelRootCause   = "Root Cause:"
	LabelActionItems = "Action Items:"
)

const (
	ExampleMarker = "[EXAMPLE]"
	TargetMarker  = "[TARGET]"
	ReportMarker  = "Report:"
)

const instruction = "Given the logs, output a triage report."

const workedExample = ExampleMarker + `
Input Logs: 2024-01-01 [orders] ERROR connection timed out
Runbook context: Check DB.
` + ReportMarker + `
` + LabelSummary + ` Database connection failing intermittently.
` + LabelSeverity + ` P2
` + LabelRootCause + ` High database load or network partition.
` + LabelActionItems + ` Check RDS CPU, Investigate VPC logs`

// targetSection takes the rendered logs and the runbook context.
const targetSection = TargetMarker + `
Input Logs:
%s
Runbook context: %s
` + ReportMarker
