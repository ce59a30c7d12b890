package config

import (
	"errors"
	"generate-reel-api/domain"
	"testing"
	"time"
)

func TestGetGptConfig_MissingKey(t *testing.T) {
	t.Setenv("GPT_API_URL", "https://api.deepseek.com/chat/completions")
	t.Setenv("GPT_API_KEY", "")
	t.Setenv("GPT_MODEL", "deepseek-chat")

	_, err := GetGptConfig()
	var cfgErr *domain.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("err = %v, want ConfigError", err)
	}
	if cfgErr.Name != "GPT_API_KEY" {
		t.Fatalf("name = %q", cfgErr.Name)
	}
}

func TestGetGptConfig_Defaults(t *testing.T) {
	t.Setenv("GPT_API_URL", "https://api.deepseek.com/chat/completions")
	t.Setenv("GPT_API_KEY", "key")
	t.Setenv("GPT_MODEL", "deepseek-chat")
	t.Setenv("GPT_MAX_TOKENS", "")

	cfg, err := GetGptConfig()
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	if cfg.MaxTokens != 100 {
		t.Fatalf("max tokens = %d, want 100", cfg.MaxTokens)
	}
}

func TestGetPollyConfig_Defaults(t *testing.T) {
	t.Setenv("POLLY_VOICE_ID", "")
	t.Setenv("POLLY_ENGINE", "")
	t.Setenv("POLLY_LANGUAGE_CODE", "")

	cfg := GetPollyConfig()
	if cfg.VoiceID != "Joanna" || cfg.Engine != "neural" || cfg.LanguageCode != "en-US" {
		t.Fatalf("config = %+v", cfg)
	}
	if cfg.OutputFormat != "mp3" {
		t.Fatalf("output format = %q", cfg.OutputFormat)
	}
}

func TestGetRunwayConfig_Defaults(t *testing.T) {
	t.Setenv("RUNWAY_API_URL", "https://api.dev.runwayml.com/v1")
	t.Setenv("RUNWAY_API_KEY", "key")
	t.Setenv("RUNWAY_MODEL", "")
	t.Setenv("RUNWAY_MAX_POLLS", "")

	cfg, err := GetRunwayConfig()
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	if cfg.Model != "gen4_turbo" || cfg.Ratio != "720:1280" {
		t.Fatalf("config = %+v", cfg)
	}
	if cfg.PollInterval != 10*time.Second || cfg.MaxPolls != 60 {
		t.Fatalf("poll bounds = %v x %d", cfg.PollInterval, cfg.MaxPolls)
	}
}

func TestGetS3Config_MissingBucket(t *testing.T) {
	t.Setenv("BUCKET_NAME", "")
	t.Setenv("REGION", "us-east-1")

	_, err := GetS3Config()
	var cfgErr *domain.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("err = %v, want ConfigError", err)
	}
}
