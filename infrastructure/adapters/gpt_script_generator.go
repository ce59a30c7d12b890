package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"generate-reel-api/application/ports/outbound"
	"generate-reel-api/config"
	"generate-reel-api/domain"
	"io"
	"net/http"
	"strings"

	"github.com/donovanhide/eventsource"
)

const DoneSignal = "[DONE]"
const MaxStreamRetries = 3

// disallowedPhrases must never survive into a published script; the
// prompt forbids them but the model occasionally ignores that.
var disallowedPhrases = []string{
	"as an ai",
	"ai-generated",
	"ai generated",
	"language model",
}

type chatGptRequest struct {
	Stream      bool             `json:"stream"`
	Model       string           `json:"model"`
	MaxTokens   int              `json:"max_tokens"`
	Temperature float64          `json:"temperature"`
	Messages    []chatGptMessage `json:"messages"`
}

type chatGptMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatGptChunkBody struct {
	Choices []chatGptResponseChoice `json:"choices"`
}

type chatGptResponseChoice struct {
	Index int `json:"index"`
	Delta struct {
		Content string `json:"content"`
	} `json:"delta"`
}

type gptScriptGenerator struct {
	logger    outbound.LoggerPort
	gptConfig *config.GptConfig
}

func NewGptScriptGenerator(gptConfig *config.GptConfig, logger outbound.LoggerPort) outbound.ScriptGeneratorPort {
	return &gptScriptGenerator{
		logger:    logger,
		gptConfig: gptConfig,
	}
}

func (s *gptScriptGenerator) Generate(ctx context.Context, subjectName string) (string, error) {
	req, err := s.createRequest(ctx, subjectName)
	if err != nil {
		s.logger.Error(err, "Failed to create HTTP request for script stream")
		return "", &domain.GenerationError{Capability: "script", Err: err}
	}

	script, err := s.collectStream(ctx, req)
	if err != nil {
		return "", &domain.GenerationError{Capability: "script", Err: err}
	}

	script = strings.TrimSpace(script)
	if script == "" {
		return "", &domain.GenerationError{Capability: "script", Err: domain.ErrEmptyScript}
	}

	lowered := strings.ToLower(script)
	for _, phrase := range disallowedPhrases {
		if strings.Contains(lowered, phrase) {
			s.logger.WarnWithFields("script contains disallowed phrase", map[string]interface{}{
				"phrase": phrase,
			})
			return "", &domain.GenerationError{Capability: "script", Err: domain.ErrDisallowedContent}
		}
	}

	return script, nil
}

func (s *gptScriptGenerator) collectStream(ctx context.Context, req *http.Request) (string, error) {
	stream, err := eventsource.SubscribeWithRequest("", req)
	if err != nil {
		s.logger.Error(err, "Failed to subscribe to script stream")
		return "", err
	}
	defer stream.Close()

	var builder strings.Builder
	retryCount := 0

	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case ev := <-stream.Events:
			if ev.Data() == DoneSignal {
				return builder.String(), nil
			}
			payload, err := s.extractPayload(ev)
			if err != nil {
				return "", err
			}
			builder.WriteString(payload)
			retryCount = 0
		case err := <-stream.Errors:
			if err == io.EOF {
				s.logger.Debug("Script stream closed")
				return builder.String(), nil
			}
			if retryCount < MaxStreamRetries {
				s.logger.ErrorWithFields(err, "Error occurred during streaming, retrying", map[string]interface{}{
					"retry_count": retryCount})
				retryCount++
				continue
			}
			s.logger.Error(err, "Error occurred during streaming, max retries reached")
			return "", err
		}
	}
}

func (s *gptScriptGenerator) extractPayload(event eventsource.Event) (string, error) {
	var chunkBody chatGptChunkBody
	err := json.Unmarshal([]byte(event.Data()), &chunkBody)
	if err != nil {
		s.logger.Error(err, "Failed to unmarshal event data")
		return "", err
	}
	if len(chunkBody.Choices) == 0 {
		return "", nil
	}

	return chunkBody.Choices[0].Delta.Content, nil
}

func (s *gptScriptGenerator) createRequest(ctx context.Context, subjectName string) (*http.Request, error) {
	systemMessage := chatGptMessage{
		Role:    "system",
		Content: "You are a creative scriptwriter for sports videos.",
	}
	userMessage := chatGptMessage{
		Role: "user",
		Content: fmt.Sprintf("Write a short, engaging video script (about 10 seconds) about the sports celebrity %s, "+
			"focusing on their achievements, unique qualities, and what makes them inspiring. "+
			"Do not mention that this is AI-generated.", subjectName),
	}

	promptReq := chatGptRequest{
		Stream:      true,
		Model:       s.gptConfig.Model,
		MaxTokens:   s.gptConfig.MaxTokens,
		Temperature: 0.8,
		Messages:    []chatGptMessage{systemMessage, userMessage},
	}

	payloadBytes, err := json.Marshal(promptReq)
	if err != nil {
		s.logger.Error(err, "Failed to marshal the request body")
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", s.gptConfig.ApiUrl, bytes.NewBuffer(payloadBytes))
	if err != nil {
		s.logger.Error(err, "Failed to create the HTTP request")
		return nil, err
	}

	req.Header.Set("Authorization", "Bearer "+s.gptConfig.ApiKey)
	req.Header.Set("Content-Type", "application/json")

	return req, nil
}
