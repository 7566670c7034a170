package aggregator

import (
	"github.com/ricardonunez-io/triage/internal/fuzzy"
	"github.com/ricardonunez-io/triage/internal/ingestor"
)

// Incident is every actionable record sharing one key, in input order.
type Incident struct {
	Key     fuzzy.Key
	Records []ingestor.LogRecord
}

func (i Incident) Count() int {
	return len(i.Records)
}

func (i Incident) FirstSeen() string {
	if len(i.Records) == 0 {
		return ""
	}
	return i.Records[0].Timestamp
}

func (i Incident) LastSeen() string {
	if len(i.Records) == 0 {
		return ""
	}
	return i.Records[len(i.Records)-1].Timestamp
}

// Group partitions ERROR and WARN records by incident key.
func Group(records []ingestor.LogRecord) []Incident {
	return GroupWithSeverity(records, string(MEDIUM))
}

// GroupWithSeverity returns incidents ordered by the first time each key was
// seen; records inside an incident keep their input order.
func GroupWithSeverity(records []ingestor.LogRecord, logSeverity string) []Incident {
	index := make(map[fuzzy.Key]int)
	var incidents []Incident

	for _, rec := range records {
		if ShouldSkipLog(rec.Level, logSeverity) {
			continue
		}

		key := fuzzy.DeriveKey(rec)
		i, ok := index[key]
		if !ok {
			i = len(incidents)
			index[key] = i
			incidents = append(incidents, Incident{Key: key})
		}
		incidents[i].Records = append(incidents[i].Records, rec)
	}

	return incidents
}
