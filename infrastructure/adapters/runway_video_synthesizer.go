package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"generate-reel-api/application/ports/outbound"
	"generate-reel-api/config"
	"generate-reel-api/domain"
	"net/http"
	"time"
)

const (
	taskStatusSucceeded = "SUCCEEDED"
	taskStatusFailed    = "FAILED"
)

type imageToVideoRequest struct {
	Model       string `json:"model"`
	PromptImage string `json:"promptImage"`
	PromptText  string `json:"promptText"`
	Ratio       string `json:"ratio"`
}

type imageToVideoResponse struct {
	ID string `json:"id"`
}

type taskStatusResponse struct {
	ID      string   `json:"id"`
	Status  string   `json:"status"`
	Output  []string `json:"output"`
	Failure string   `json:"failure"`
}

type runwayVideoSynthesizer struct {
	ContentFetcher
	logger       outbound.LoggerPort
	runwayConfig *config.RunwayConfig
}

func NewRunwayVideoSynthesizer(contentFetcher ContentFetcher, runwayConfig *config.RunwayConfig,
	logger outbound.LoggerPort) outbound.VideoSynthesizerPort {
	return &runwayVideoSynthesizer{
		ContentFetcher: contentFetcher,
		logger:         logger,
		runwayConfig:   runwayConfig,
	}
}

// Synthesize submits the first image to the image-to-video endpoint and
// polls the task on a fixed interval until it reaches a terminal state.
// The loop is bounded: exhausting MaxPolls surfaces a TimeoutError so a
// stuck upstream job cannot block the pipeline forever.
func (r *runwayVideoSynthesizer) Synthesize(ctx context.Context, imageURLs []string, promptText string) (string, error) {
	if len(imageURLs) == 0 {
		return "", &domain.SynthesisError{Capability: "video", Err: errors.New("no prompt images provided")}
	}

	taskID, err := r.createTask(ctx, imageURLs[0], promptText)
	if err != nil {
		return "", &domain.SynthesisError{Capability: "video", Err: err}
	}

	r.logger.DebugWithFields("Video task created", map[string]interface{}{
		"task_id": taskID,
	})

	for attempt := 1; attempt <= r.runwayConfig.MaxPolls; attempt++ {
		select {
		case <-ctx.Done():
			return "", &domain.SynthesisError{Capability: "video", Err: ctx.Err()}
		case <-time.After(r.runwayConfig.PollInterval):
		}

		task, err := r.retrieveTask(ctx, taskID)
		if err != nil {
			return "", &domain.SynthesisError{Capability: "video", Err: err}
		}

		switch task.Status {
		case taskStatusSucceeded:
			if len(task.Output) == 0 || task.Output[0] == "" {
				return "", &domain.SynthesisError{Capability: "video", Err: errors.New("task succeeded with no output")}
			}
			return task.Output[0], nil
		case taskStatusFailed:
			return "", &domain.SynthesisError{Capability: "video", Err: fmt.Errorf("task failed: %s", task.Failure)}
		}
	}

	return "", &domain.TimeoutError{Op: "video synthesis", Attempts: r.runwayConfig.MaxPolls}
}

func (r *runwayVideoSynthesizer) createTask(ctx context.Context, promptImage string, promptText string) (string, error) {
	reqBody := imageToVideoRequest{
		Model:       r.runwayConfig.Model,
		PromptImage: promptImage,
		PromptText:  promptText,
		Ratio:       r.runwayConfig.Ratio,
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		r.logger.Error(err, "Failed to marshal the task request body")
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", r.runwayConfig.ApiUrl+"/image_to_video", bytes.NewBuffer(payload))
	if err != nil {
		r.logger.Error(err, "Failed to create the HTTP request")
		return "", err
	}
	r.setHeaders(req)
	req.Header.Set("Content-Type", "application/json")

	rawRes, err := r.FetchContent(req)
	if err != nil {
		return "", err
	}

	var res imageToVideoResponse
	if err := json.Unmarshal(rawRes, &res); err != nil {
		r.logger.Error(err, "Failed to unmarshal the task response")
		return "", err
	}
	if res.ID == "" {
		return "", errors.New("no task id returned")
	}

	return res.ID, nil
}

func (r *runwayVideoSynthesizer) retrieveTask(ctx context.Context, taskID string) (*taskStatusResponse, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", r.runwayConfig.ApiUrl+"/tasks/"+taskID, nil)
	if err != nil {
		r.logger.Error(err, "Failed to create the HTTP request")
		return nil, err
	}
	r.setHeaders(req)

	rawRes, err := r.FetchContent(req)
	if err != nil {
		return nil, err
	}

	var task taskStatusResponse
	if err := json.Unmarshal(rawRes, &task); err != nil {
		r.logger.Error(err, "Failed to unmarshal the task status")
		return nil, err
	}

	return &task, nil
}

func (r *runwayVideoSynthesizer) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+r.runwayConfig.ApiKey)
	req.Header.Set("X-Runway-Version", r.runwayConfig.ApiVersion)
}
