package config

import (
	"generate-reel-api/domain"
	"os"
	"strconv"
)

type GptConfig struct {
	ApiUrl    string
	ApiKey    string
	Model     string
	MaxTokens int
}

func GetGptConfig() (*GptConfig, error) {
	apiUrl := os.Getenv("GPT_API_URL")
	if apiUrl == "" {
		return nil, &domain.ConfigError{Name: "GPT_API_URL"}
	}
	apiKey := os.Getenv("GPT_API_KEY")
	if apiKey == "" {
		return nil, &domain.ConfigError{Name: "GPT_API_KEY"}
	}
	model := os.Getenv("GPT_MODEL")
	if model == "" {
		return nil, &domain.ConfigError{Name: "GPT_MODEL"}
	}

	maxTokens := 100
	if raw := os.Getenv("GPT_MAX_TOKENS"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			return nil, &domain.ConfigError{Name: "GPT_MAX_TOKENS"}
		}
		maxTokens = parsed
	}

	return &GptConfig{
		ApiUrl:    apiUrl,
		ApiKey:    apiKey,
		Model:     model,
		MaxTokens: maxTokens,
	}, nil
}
