package metrics

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestPipeline_Counters(t *testing.T) {
	p := NewPipeline()
	p.ObserveLines(8, 2)
	p.ObserveIncidents(3)
	p.ObserveGeneration(nil)
	p.ObserveGeneration(nil)
	p.ObserveGeneration(errors.New("timeout"))
	p.ObserveReport("P1")

	if got := testutil.ToFloat64(p.LinesTotal.WithLabelValues("parsed")); got != 8 {
		t.Errorf("parsed lines: got %v, want 8", got)
	}
	if got := testutil.ToFloat64(p.LinesTotal.WithLabelValues("dropped")); got != 2 {
		t.Errorf("dropped lines: got %v, want 2", got)
	}
	if got := testutil.ToFloat64(p.IncidentsTotal); got != 3 {
		t.Errorf("incidents: got %v, want 3", got)
	}
	if got := testutil.ToFloat64(p.GenerationsTotal.WithLabelValues("ok")); got != 2 {
		t.Errorf("ok generations: got %v, want 2", got)
	}
	if got := testutil.ToFloat64(p.GenerationsTotal.WithLabelValues("error")); got != 1 {
		t.Errorf("failed generations: got %v, want 1", got)
	}
	if got := testutil.ToFloat64(p.ReportsTotal.WithLabelValues("P1")); got != 1 {
		t.Errorf("P1 reports: got %v, want 1", got)
	}
}

func TestPipeline_Isolated(t *testing.T) {
	a := NewPipeline()
	b := NewPipeline()
	a.ObserveIncidents(1)
	if got := testutil.ToFloat64(b.IncidentsTotal); got != 0 {
		t.Errorf("pipelines should not share state: got %v", got)
	}
}

func TestPipeline_WriteTextfile(t *testing.T) {
	p := NewPipeline()
	p.ObserveIncidents(2)

	path := filepath.Join(t.TempDir(), "triage.prom")
	if err := p.WriteTextfile(path); err != nil {
		t.Fatalf("WriteTextfile: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), "triage_incidents_total 2") {
		t.Errorf("textfile should contain the incidents counter, got:\n%s", b)
	}
}
