package config

import (
	"generate-reel-api/domain"
	"os"
	"strconv"
	"time"
)

type RunwayConfig struct {
	ApiUrl       string
	ApiKey       string
	ApiVersion   string
	Model        string
	Ratio        string
	PollInterval time.Duration
	MaxPolls     int
}

func GetRunwayConfig() (*RunwayConfig, error) {
	apiUrl := os.Getenv("RUNWAY_API_URL")
	if apiUrl == "" {
		return nil, &domain.ConfigError{Name: "RUNWAY_API_URL"}
	}
	apiKey := os.Getenv("RUNWAY_API_KEY")
	if apiKey == "" {
		return nil, &domain.ConfigError{Name: "RUNWAY_API_KEY"}
	}

	model := os.Getenv("RUNWAY_MODEL")
	if model == "" {
		model = "gen4_turbo"
	}

	maxPolls := 60
	if raw := os.Getenv("RUNWAY_MAX_POLLS"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			return nil, &domain.ConfigError{Name: "RUNWAY_MAX_POLLS"}
		}
		maxPolls = parsed
	}

	return &RunwayConfig{
		ApiUrl:       apiUrl,
		ApiKey:       apiKey,
		ApiVersion:   "2024-11-06",
		Model:        model,
		Ratio:        "720:1280",
		PollInterval: 10 * time.Second,
		MaxPolls:     maxPolls,
	}, nil
}
