package adapters

import (
	"context"
	"errors"
	"fmt"
	"generate-reel-api/application/ports/outbound"
	"generate-reel-api/config"
	"generate-reel-api/domain"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/polly"
	"github.com/aws/aws-sdk-go/service/polly/pollyiface"
	"github.com/google/uuid"
)

type pollySpeechSynthesizer struct {
	logger      outbound.LoggerPort
	pollySvc    pollyiface.PollyAPI
	pollyConfig *config.PollyConfig
	mediaStore  outbound.MediaStorePort
}

func NewPollySpeechSynthesizer(logger outbound.LoggerPort, pollySvc pollyiface.PollyAPI,
	pollyConfig *config.PollyConfig, mediaStore outbound.MediaStorePort) outbound.SpeechSynthesizerPort {
	return &pollySpeechSynthesizer{
		logger:      logger,
		pollySvc:    pollySvc,
		pollyConfig: pollyConfig,
		mediaStore:  mediaStore,
	}
}

// Synthesize speaks the script through Polly and persists the audio
// under audio/<uuid>.mp3, returning the key so the rest of the pipeline
// never holds the payload in memory.
func (p *pollySpeechSynthesizer) Synthesize(ctx context.Context, script string) (string, error) {
	input := &polly.SynthesizeSpeechInput{
		OutputFormat: aws.String(p.pollyConfig.OutputFormat),
		Text:         aws.String(script),
		VoiceId:      aws.String(p.pollyConfig.VoiceID),
		Engine:       aws.String(p.pollyConfig.Engine),
		LanguageCode: aws.String(p.pollyConfig.LanguageCode),
	}

	output, err := p.pollySvc.SynthesizeSpeechWithContext(ctx, input)
	if err != nil {
		p.logger.Error(err, "Failed to synthesize speech")
		return "", &domain.SynthesisError{Capability: "speech", Err: err}
	}

	if output.AudioStream == nil {
		return "", &domain.SynthesisError{Capability: "speech", Err: errors.New("no audio stream returned")}
	}
	defer func() {
		if err := output.AudioStream.Close(); err != nil {
			p.logger.Error(err, "Failed to close audio stream")
		}
	}()

	audioKey := fmt.Sprintf("audio/%s.mp3", uuid.NewString())
	if err := p.mediaStore.Upload(ctx, audioKey, output.AudioStream, "audio/mpeg"); err != nil {
		return "", err
	}

	p.logger.DebugWithFields("Audio persisted", map[string]interface{}{
		"key": audioKey,
	})

	return audioKey, nil
}
