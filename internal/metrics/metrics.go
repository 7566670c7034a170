package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Pipeline holds the Prometheus metrics for one triage run.
type Pipeline struct {
	registry *prometheus.Registry

	LinesTotal       *prometheus.CounterVec
	IncidentsTotal   prometheus.Counter
	GenerationsTotal *prometheus.CounterVec
	ReportsTotal     *prometheus.CounterVec
}

// NewPipeline registers the metrics on a private registry so runs and tests
// never collide on the global one.
func NewPipeline() *Pipeline {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Pipeline{
		registry: reg,
		LinesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "triage",
			Name:      "lines_total",
			Help:      "Total number of input log lines by parse result.",
		}, []string{"result"}), // result: parsed, dropped
		IncidentsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "triage",
			Name:      "incidents_total",
			Help:      "Total number of incident groups built.",
		}),
		GenerationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "triage",
			Name:      "generations_total",
			Help:      "Total number of report generations by status.",
		}, []string{"status"}), // status: ok, error
		ReportsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "triage",
			Name:      "reports_total",
			Help:      "Total number of extracted triage reports by severity.",
		}, []string{"severity"}),
	}
}

func (p *Pipeline) ObserveLines(parsed, dropped int) {
	p.LinesTotal.WithLabelValues("parsed").Add(float64(parsed))
	p.LinesTotal.WithLabelValues("dropped").Add(float64(dropped))
}

func (p *Pipeline) ObserveIncidents(n int) {
	p.IncidentsTotal.Add(float64(n))
}

func (p *Pipeline) ObserveGeneration(err error) {
	if err != nil {
		p.GenerationsTotal.WithLabelValues("error").Inc()
		return
	}
	p.GenerationsTotal.WithLabelValues("ok").Inc()
}

func (p *Pipeline) ObserveReport(severity string) {
	p.ReportsTotal.WithLabelValues(severity).Inc()
}

// WriteTextfile writes the metrics in the node-exporter textfile format.
func (p *Pipeline) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, p.registry)
}
