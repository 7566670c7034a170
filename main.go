package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/ricardonunez-io/triage/internal/aggregator"
	"github.com/ricardonunez-io/triage/internal/analyzer"
	"github.com/ricardonunez-io/triage/internal/config"
	"github.com/ricardonunez-io/triage/internal/ingestor"
	"github.com/ricardonunez-io/triage/internal/metrics"
	"github.com/ricardonunez-io/triage/internal/output"
	"github.com/ricardonunez-io/triage/internal/prompt"
	"github.com/ricardonunez-io/triage/internal/runbook"
	slackpkg "github.com/ricardonunez-io/triage/internal/slack"
	"github.com/ricardonunez-io/triage/internal/triage"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	if len(os.Args) > 1 && os.Args[1] == "schema" {
		if err := printSchema(os.Stdout); err != nil {
			log.Fatal().Err(err).Msg("Failed to print schema")
		}
		return
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	level, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil || level == zerolog.NoLevel {
		log.Warn().Str("value", cfg.LogLevel).Msg("Invalid LOG_LEVEL, defaulting to info")
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	log.Info().Msg("Starting incident triage")

	if cfg.AnthropicAPIKey == "" {
		log.Fatal().Msg("ANTHROPIC_API_KEY is required")
	}

	if cfg.Source != config.SourceFile && cfg.Source != config.SourceDataDog {
		log.Warn().Str("value", cfg.Source).Msg("Invalid TRIAGE_SOURCE, defaulting to file")
		cfg.Source = config.SourceFile
	}

	if !aggregator.ValidLogSeverities.Includes(cfg.LogSeverity) {
		log.Warn().Str("value", cfg.LogSeverity).Msg("Invalid LOG_SEVERITY, defaulting to MEDIUM")
		cfg.LogSeverity = "MEDIUM"
	}

	if !ingestor.ValidTimeIntervals.Includes(cfg.TimeInterval) {
		log.Warn().Str("value", cfg.TimeInterval).Msg("Invalid TIME_INTERVAL, defaulting to FIFTEEN_MINUTES")
		cfg.TimeInterval = ingestor.DefaultTimeInterval
	}

	kb := runbook.Default()
	if cfg.RunbookPath != "" {
		kb, err = runbook.Load(cfg.RunbookPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.RunbookPath).Msg("Failed to load runbooks")
		}
	}

	analyzerCfg := analyzer.DefaultConfig(cfg.AnthropicAPIKey)
	analyzerCfg.Model = cfg.AnthropicModel
	analyzerCfg.MaxTokens = cfg.AnthropicMaxTokens
	analyzerCfg.Temperature = cfg.AnthropicTemperature
	generator, err := analyzer.NewAnthropicGenerator(analyzerCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create generator")
	}

	log.Info().
		Str("source", cfg.Source).
		Str("logSeverity", cfg.LogSeverity).
		Int("runbooks", kb.Len()).
		Str("model", analyzerCfg.Model).
		Int("concurrency", cfg.GenerationConcurrency).
		Msg("Configuration loaded")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		log.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	m := metrics.NewPipeline()

	if err := run(ctx, cfg, kb, generator, m); err != nil {
		log.Error().Err(err).Msg("Triage run failed")
		writeMetrics(cfg, m)
		os.Exit(exitCode(err))
	}
	writeMetrics(cfg, m)

	log.Info().Msg("Incident triage finished")
}

// exitCode maps a run error to the process status. A missing log file only
// means there is nothing to triage, so it exits cleanly after being logged.
func exitCode(err error) int {
	if err == nil || errors.Is(err, os.ErrNotExist) {
		return 0
	}
	return 1
}

func run(ctx context.Context, cfg *config.Config, kb *runbook.KnowledgeBase, gen analyzer.Generator, m *metrics.Pipeline) error {
	records, dropped, err := acquire(ctx, cfg)
	m.ObserveLines(len(records), dropped)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("log input not found: %w", err)
		}
		return fmt.Errorf("failed to acquire logs: %w", err)
	}

	log.Info().Int("records", len(records)).Msg("Total parsed log entries")

	incidents := aggregator.GroupWithSeverity(records, cfg.LogSeverity)
	m.ObserveIncidents(len(incidents))
	log.Info().Int("incidents", len(incidents)).Msg("Total incident groups")

	runner := triage.NewRunner(prompt.NewBuilder(kb), gen, triage.Config{
		Concurrency: cfg.GenerationConcurrency,
		RateLimit:   cfg.GenerationRateLimit,
		Metrics:     m,
	})
	doc := output.NewDocument(runner.Run(ctx, incidents), time.Now())

	if err := writeDocument(cfg, doc); err != nil {
		return err
	}

	notify(cfg, doc)
	return nil
}

func acquire(ctx context.Context, cfg *config.Config) ([]ingestor.LogRecord, int, error) {
	if cfg.Source == config.SourceDataDog {
		ddCfg := ingestor.DataDogConfig{
			APIKey:         cfg.DDAPIKey,
			ApplicationKey: cfg.DDApplicationKey,
			Query:          cfg.DDQuery,
			TimeInterval:   cfg.TimeInterval,
		}
		if ddCfg.APIKey == "" || ddCfg.ApplicationKey == "" {
			return nil, 0, errors.New("DD_API_KEY and DD_APPLICATION_KEY are required for the datadog source")
		}
		return ingestor.FetchDataDog(ctx, ingestor.InitializeDataDog(ddCfg), ddCfg)
	}
	return ingestor.LoadFile(cfg.LogPath)
}

func writeDocument(cfg *config.Config, doc output.Document) error {
	if cfg.OutputPath == "" {
		return output.Write(os.Stdout, doc, cfg.PrettyJSON)
	}

	f, err := os.Create(cfg.OutputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := output.Write(f, doc, cfg.PrettyJSON); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}

	log.Info().Str("path", cfg.OutputPath).Msg("Report document written")
	return nil
}

func notify(cfg *config.Config, doc output.Document) {
	slackCfg := slackpkg.Config{
		BotToken:  cfg.SlackBotToken,
		ChannelID: cfg.SlackChannelID,
	}
	if !slackCfg.Enabled() {
		return
	}

	for _, entry := range doc.Incidents {
		if entry.Report == nil {
			continue
		}
		if err := slackpkg.SendIncident(entry, slackCfg); err != nil {
			log.Err(err).Int("incident", entry.Number).Msg("Error sending incident to Slack")
		}
	}
}

func writeMetrics(cfg *config.Config, m *metrics.Pipeline) {
	if cfg.MetricsTextfile == "" {
		return
	}
	if err := m.WriteTextfile(cfg.MetricsTextfile); err != nil {
		log.Err(err).Str("path", cfg.MetricsTextfile).Msg("Failed to write metrics textfile")
	}
}

func printSchema(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(output.Schema())
}
