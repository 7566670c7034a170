package config

import (
	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Source      string `env:"TRIAGE_SOURCE" envDefault:"file"`
	LogPath     string `env:"LOG_PATH" envDefault:"logs.txt"`
	LogSeverity string `env:"LOG_SEVERITY" envDefault:"MEDIUM"`
	RunbookPath string `env:"RUNBOOK_PATH"`

	AnthropicAPIKey      string  `env:"ANTHROPIC_API_KEY"`
	AnthropicModel       string  `env:"ANTHROPIC_MODEL" envDefault:"claude-sonnet-4-5"`
	AnthropicMaxTokens   int64   `env:"ANTHROPIC_MAX_TOKENS" envDefault:"512"`
	AnthropicTemperature float64 `env:"ANTHROPIC_TEMPERATURE" envDefault:"0"`

	GenerationConcurrency int     `env:"GENERATION_CONCURRENCY" envDefault:"1"`
	GenerationRateLimit   float64 `env:"GENERATION_RATE_LIMIT" envDefault:"0"`

	DDAPIKey         string `env:"DD_API_KEY"`
	DDApplicationKey string `env:"DD_APPLICATION_KEY"`
	DDQuery          string `env:"DD_QUERY" envDefault:"*"`
	TimeInterval     string `env:"TIME_INTERVAL" envDefault:"FIFTEEN_MINUTES"`

	SlackBotToken  string `env:"SLACK_BOT_TOKEN"`
	SlackChannelID string `env:"SLACK_CHANNEL_ID"`

	MetricsTextfile string `env:"METRICS_TEXTFILE"`
	OutputPath      string `env:"OUTPUT_PATH"`
	PrettyJSON      bool   `env:"PRETTY_JSON" envDefault:"true"`
	LogLevel        string `env:"LOG_LEVEL" envDefault:"info"`
}

const (
	SourceFile    = "file"
	SourceDataDog = "datadog"
)

// Load reads configuration from the environment, after loading a .env file
// when one is present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
