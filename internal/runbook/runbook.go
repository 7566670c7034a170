package runbook

import (
	"strings"

	"github.com/ricardonunez-io/triage/internal/fuzzy"
)

// Fallback is returned when no keyword matches a pattern.
const Fallback = "No specific runbook found. Follow general triage SOP."

type Entry struct {
	Keyword string `yaml:"keyword"`
	Runbook string `yaml:"runbook"`
}

// KnowledgeBase is an ordered, read-only set of runbook entries. Order is
// significant: the first matching keyword wins.
type KnowledgeBase struct {
	entries []Entry
}

// New copies entries so later changes by the caller cannot affect lookups.
// Keywords are lower-cased the way patterns are normalized.
func New(entries []Entry) *KnowledgeBase {
	kb := &KnowledgeBase{entries: make([]Entry, len(entries))}
	for i, e := range entries {
		kb.entries[i] = Entry{Keyword: fuzzy.Lower(e.Keyword), Runbook: e.Runbook}
	}
	return kb
}

func (kb *KnowledgeBase) Entries() []Entry {
	out := make([]Entry, len(kb.entries))
	copy(out, kb.entries)
	return out
}

func (kb *KnowledgeBase) Len() int {
	return len(kb.entries)
}

// Lookup returns the first entry, in declared order, whose keyword is a
// substring of the normalized pattern.
func (kb *KnowledgeBase) Lookup(pattern string) (Entry, bool) {
	for _, e := range kb.entries {
		if strings.Contains(pattern, e.Keyword) {
			return e, true
		}
	}
	return Entry{}, false
}

// Retrieve returns the matched runbook text or Fallback.
func (kb *KnowledgeBase) Retrieve(pattern string) string {
	if e, ok := kb.Lookup(pattern); ok {
		return e.Runbook
	}
	return Fallback
}

// Default returns the built-in knowledge base.
func Default() *KnowledgeBase {
	return New([]Entry{
		{
			Keyword: "database connection timeout",
			Runbook: "RUNBOOK-DB-001: Check RDS CPU utilization. If > 80%, scale up read replicas. If normal, check VPC security groups.",
		},
		{
			Keyword: "payment gateway timeout",
			Runbook: "RUNBOOK-PAY-99: Verify Stripe API status page. If Stripe is up, check internal NAT gateway latency.",
		},
		{
			Keyword: "token signature validation",
			Runbook: "RUNBOOK-AUTH-55: Rotate JWT public keys. Check if client clock skew > 5 minutes.",
		},
		{
			Keyword: "slow response",
			Runbook: "RUNBOOK-PERF-12: Check Redis cache hit rate. If < 50%, flush cache or increase memory.",
		},
	})
}
