package analyzer

type Config struct {
	APIKey      string
	Model       string
	MaxTokens   int64
	Temperature float64
}

func DefaultConfig(apiKey string) Config {
	return Config{
		APIKey:      apiKey,
		Model:       "claude-sonnet-4-5",
		MaxTokens:   512,
		Temperature: 0,
	}
}
