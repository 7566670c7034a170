package ingestor

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/DataDog/datadog-api-client-go/v2/api/datadog"
	"github.com/DataDog/datadog-api-client-go/v2/api/datadogV2"
	"github.com/rs/zerolog/log"
)

type DataDogConfig struct {
	APIKey         string
	ApplicationKey string
	Query          string
	TimeInterval   string
}

func InitializeDataDog(cfg DataDogConfig) *datadog.APIClient {
	configuration := datadog.NewConfiguration()
	configuration.AddDefaultHeader("DD-APPLICATION-KEY", cfg.ApplicationKey)
	return datadog.NewAPIClient(configuration)
}

// FetchDataDog pulls the configured lookback window from DataDog and converts
// each log into a LogRecord through the same line grammar used for files.
func FetchDataDog(ctx context.Context, client *datadog.APIClient, cfg DataDogConfig) ([]LogRecord, int, error) {
	duration, ok := Lookback(cfg.TimeInterval)
	if !ok {
		duration, _ = Lookback(DefaultTimeInterval)
	}

	ctx = context.WithValue(ctx, datadog.ContextAPIKeys, map[string]datadog.APIKey{
		"apiKeyAuth": {Key: cfg.APIKey},
		"appKeyAuth": {Key: cfg.ApplicationKey},
	})

	from, to := Window(duration, time.Now())
	logs, err := IngestFromDataDog(ctx, from, to, client, cfg.Query)
	if err != nil {
		return nil, 0, err
	}

	records, dropped := ConvertDataDogLogs(logs)
	log.Info().
		Int("records", len(records)).
		Int("dropped", dropped).
		Msg("Converted DataDog logs")
	return records, dropped, nil
}

func IngestFromDataDog(ctx context.Context, from, to time.Time, client *datadog.APIClient, query string) ([]datadogV2.Log, error) {
	api := datadogV2.NewLogsApi(client)

	log.Info().
		Str("query", query).
		Str("start", from.String()).
		Str("end", to.String()).
		Msg("Ingesting logs within time range")

	var allLogs []datadogV2.Log
	var cursor *string

	for {
		params := datadogV2.NewListLogsGetOptionalParameters()
		sort := datadogV2.LOGSSORT_TIMESTAMP_ASCENDING
		params.Sort = &sort
		params.FilterFrom = &from
		params.FilterTo = &to
		params.FilterQuery = &query

		if cursor != nil {
			params.PageCursor = cursor
		}

		resp, _, err := api.ListLogsGet(ctx, *params)
		if err != nil {
			return allLogs, fmt.Errorf("datadog list logs: %w", err)
		}

		allLogs = append(allLogs, resp.Data...)

		if resp.Meta == nil || resp.Meta.Page == nil || resp.Meta.Page.After == nil {
			break
		}

		after := *resp.Meta.Page.After
		if after == "" {
			break
		}
		cursor = &after
	}

	log.Info().
		Int("logCount", len(allLogs)).
		Msg("Successfully retrieved logs from DataDog")

	return allLogs, nil
}

// ConvertDataDogLogs renders each DataDog log into a single line and parses it.
// Logs without a message, or whose message spans lines, are dropped.
func ConvertDataDogLogs(logs []datadogV2.Log) ([]LogRecord, int) {
	var records []LogRecord
	dropped := 0

	for _, l := range logs {
		line, ok := renderDataDogLog(l)
		if !ok {
			dropped++
			continue
		}
		rec, ok := ParseLine(line)
		if !ok {
			dropped++
			continue
		}
		records = append(records, rec)
	}

	return records, dropped
}

func renderDataDogLog(l datadogV2.Log) (string, bool) {
	attrs := l.Attributes
	if attrs == nil || attrs.Message == nil || *attrs.Message == "" {
		return "", false
	}

	ts := "-"
	if attrs.Timestamp != nil {
		ts = attrs.Timestamp.UTC().Format(time.RFC3339)
	}

	service := "unknown"
	if attrs.Service != nil && *attrs.Service != "" {
		service = *attrs.Service
	} else if attrs.Host != nil && *attrs.Host != "" {
		service = *attrs.Host
	}

	level := "INFO"
	if attrs.Status != nil {
		level = statusToLevel(*attrs.Status)
	}

	rec := LogRecord{Timestamp: ts, Service: service, Level: level, Message: *attrs.Message}
	return rec.Render(), true
}

func statusToLevel(status string) string {
	switch strings.ToLower(status) {
	case "error", "critical", "alert", "emergency":
		return "ERROR"
	case "warn", "warning":
		return "WARN"
	case "":
		return "INFO"
	default:
		return strings.ToUpper(status)
	}
}
