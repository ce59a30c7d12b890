package config

import (
	"generate-reel-api/domain"
	"os"
	"strconv"
)

type ImageConfig struct {
	ApiKey string
	Model  string
	Size   string
	Count  int
}

func GetImageConfig() (*ImageConfig, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, &domain.ConfigError{Name: "OPENAI_API_KEY"}
	}

	model := os.Getenv("IMAGE_MODEL")
	if model == "" {
		model = "gpt-image-1"
	}

	// 9:16, portrait, sized for vertical video.
	size := os.Getenv("IMAGE_SIZE")
	if size == "" {
		size = "1024x1536"
	}

	count := 4
	if raw := os.Getenv("IMAGE_COUNT"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			return nil, &domain.ConfigError{Name: "IMAGE_COUNT"}
		}
		count = parsed
	}

	return &ImageConfig{
		ApiKey: apiKey,
		Model:  model,
		Size:   size,
		Count:  count,
	}, nil
}
