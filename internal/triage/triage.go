package triage

import (
	"context"
	"fmt"

	"github.com/ricardonunez-io/triage/internal/aggregator"
	"github.com/ricardonunez-io/triage/internal/analyzer"
	"github.com/ricardonunez-io/triage/internal/metrics"
	"github.com/ricardonunez-io/triage/internal/prompt"
	"github.com/ricardonunez-io/triage/internal/report"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// Result is the outcome for one incident. Err is set when generation failed,
// in which case Report is empty.
type Result struct {
	Incident aggregator.Incident
	Report   report.TriageReport
	Err      error
}

type Config struct {
	// Concurrency bounds in-flight generations; values below 1 mean 1.
	Concurrency int
	// RateLimit caps generations per second; 0 disables the limit.
	RateLimit   float64
	Metrics     *metrics.Pipeline
}

type Runner struct {
	builder     *prompt.Builder
	generator   analyzer.Generator
	concurrency int
	limiter     *rate.Limiter
	metrics     *metrics.Pipeline
}

func NewRunner(builder *prompt.Builder, gen analyzer.Generator, cfg Config) *Runner {
	concurrency := cfg.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}

	limiter := rate.NewLimiter(rate.Inf, 1)
	if cfg.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), 1)
	}

	return &Runner{
		builder:     builder,
		generator:   gen,
		concurrency: concurrency,
		limiter:     limiter,
		metrics:     cfg.Metrics,
	}
}

// Run produces one Result per incident, in the same order as incidents. A
// failing generation only affects its own incident.
func (r *Runner) Run(ctx context.Context, incidents []aggregator.Incident) []Result {
	results := make([]Result, len(incidents))

	var g errgroup.Group
	g.SetLimit(r.concurrency)

	for i, inc := range incidents {
		i, inc := i, inc
		g.Go(func() error {
			results[i] = r.triage(ctx, i+1, inc)
			return nil
		})
	}
	_ = g.Wait()

	return results
}

func (r *Runner) triage(ctx context.Context, n int, inc aggregator.Incident) Result {
	res := Result{Incident: inc}

	log.Info().
		Int("incident", n).
		Str("service", inc.Key.Service).
		Int("events", inc.Count()).
		Msg("Triaging incident")

	text, err := r.generate(ctx, r.builder.Build(inc.Key, inc.Records))
	if r.metrics != nil {
		r.metrics.ObserveGeneration(err)
	}
	if err != nil {
		log.Err(err).Int("incident", n).Str("key", inc.Key.String()).Msg("Report generation failed")
		res.Err = err
		return res
	}

	res.Report = report.Extract(text)
	if r.metrics != nil {
		r.metrics.ObserveReport(res.Report.Severity)
	}
	return res
}

func (r *Runner) generate(ctx context.Context, p string) (string, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("waiting for generation slot: %w", err)
	}
	return r.generator.Generate(ctx, p)
}
