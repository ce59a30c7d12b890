package config

import "os"

type PollyConfig struct {
	VoiceID      string
	Engine       string
	LanguageCode string
	OutputFormat string
}

// GetPollyConfig never fails: the synthesis voice has sensible defaults
// and only needs overriding for non-English subjects.
func GetPollyConfig() *PollyConfig {
	cfg := &PollyConfig{
		VoiceID:      "Joanna",
		Engine:       "neural",
		LanguageCode: "en-US",
		OutputFormat: "mp3",
	}
	if voice := os.Getenv("POLLY_VOICE_ID"); voice != "" {
		cfg.VoiceID = voice
	}
	if engine := os.Getenv("POLLY_ENGINE"); engine != "" {
		cfg.Engine = engine
	}
	if lang := os.Getenv("POLLY_LANGUAGE_CODE"); lang != "" {
		cfg.LanguageCode = lang
	}
	return cfg
}
