package services

import (
	"context"
	"errors"
	"fmt"
	"generate-reel-api/application/ports/inbound"
	"generate-reel-api/application/ports/outbound"
	"generate-reel-api/domain"
	"sync"

	"github.com/google/uuid"
	"github.com/panjf2000/ants/v2"
)

const videoPromptText = "A cinematic video"

type reelPipelineOrchestrator struct {
	logger            outbound.LoggerPort
	workerPool        *ants.Pool
	scriptGenerator   outbound.ScriptGeneratorPort
	speechSynthesizer outbound.SpeechSynthesizerPort
	imageGenerator    outbound.ImageGeneratorPort
	videoSynthesizer  outbound.VideoSynthesizerPort
	audioMerger       outbound.AudioMergerPort
	mediaStore        outbound.MediaStorePort
	jobTracker        outbound.JobTrackerPort
}

func NewReelPipelineOrchestrator(logger outbound.LoggerPort, workerPool *ants.Pool,
	scriptGenerator outbound.ScriptGeneratorPort, speechSynthesizer outbound.SpeechSynthesizerPort,
	imageGenerator outbound.ImageGeneratorPort, videoSynthesizer outbound.VideoSynthesizerPort,
	audioMerger outbound.AudioMergerPort, mediaStore outbound.MediaStorePort,
	jobTracker outbound.JobTrackerPort) inbound.ReelGeneratorPort {
	return &reelPipelineOrchestrator{
		logger:            logger,
		workerPool:        workerPool,
		scriptGenerator:   scriptGenerator,
		speechSynthesizer: speechSynthesizer,
		imageGenerator:    imageGenerator,
		videoSynthesizer:  videoSynthesizer,
		audioMerger:       audioMerger,
		mediaStore:        mediaStore,
		jobTracker:        jobTracker,
	}
}

func (o *reelPipelineOrchestrator) GenerateAndUpload(ctx context.Context, subjectName string) error {
	if subjectName == "" {
		return &domain.GenerationError{Capability: "script", Err: errors.New("subject name is empty")}
	}

	job := domain.GenerationJob{
		ID:      uuid.NewString(),
		Subject: subjectName,
		Status:  domain.JobStatusPending,
	}
	o.track(ctx, job)

	script, err := o.scriptGenerator.Generate(ctx, subjectName)
	if err != nil {
		o.logger.Error(err, "failed to generate script")
		return o.fail(ctx, job, err)
	}

	audioKey, imageURLs, err := o.generateMedia(ctx, subjectName, script)
	if err != nil {
		return o.fail(ctx, job, err)
	}

	videoRef, err := o.videoSynthesizer.Synthesize(ctx, imageURLs, videoPromptText)
	if err != nil {
		o.logger.Error(err, "failed to synthesize video")
		return o.fail(ctx, job, err)
	}

	combined, err := o.audioMerger.Merge(ctx, videoRef, audioKey)
	if err != nil {
		var audioErr *domain.AudioProcessingError
		if !errors.As(err, &audioErr) {
			o.logger.Error(err, "unexpected error merging audio into video")
			return o.fail(ctx, job, err)
		}
		o.logger.WarnWithFields("audio merge failed, continuing with silent video", map[string]interface{}{
			"stage": audioErr.Stage,
			"video": videoRef,
		})
		combined = videoRef
	}

	reelKey := fmt.Sprintf("reels/%s.mp4", uuid.NewString())
	if err := o.mediaStore.UploadFromRef(ctx, reelKey, combined, "video/mp4"); err != nil {
		o.logger.Error(err, "failed to upload reel")
		return o.fail(ctx, job, err)
	}

	o.logger.InfoWithFields("reel uploaded", map[string]interface{}{
		"subject": subjectName,
		"key":     reelKey,
	})

	job.Status = domain.JobStatusSucceeded
	job.ReelKey = reelKey
	o.track(ctx, job)

	return nil
}

// generateMedia runs speech synthesis and image generation concurrently;
// the two branches only share the worker pool. Both must succeed.
func (o *reelPipelineOrchestrator) generateMedia(ctx context.Context, subjectName string, script string) (string, []string, error) {
	var (
		wg        sync.WaitGroup
		audioKey  string
		audioErr  error
		imageURLs []string
		imagesErr error
	)

	wg.Add(1)
	if err := o.workerPool.Submit(func() {
		defer wg.Done()
		audioKey, audioErr = o.speechSynthesizer.Synthesize(ctx, script)
	}); err != nil {
		wg.Done()
		audioErr = err
	}

	wg.Add(1)
	if err := o.workerPool.Submit(func() {
		defer wg.Done()
		imageURLs, imagesErr = o.imageGenerator.Generate(ctx, subjectName)
	}); err != nil {
		wg.Done()
		imagesErr = err
	}

	wg.Wait()

	if audioErr != nil {
		o.logger.Error(audioErr, "failed to synthesize speech")
		return "", nil, audioErr
	}
	if imagesErr != nil {
		o.logger.Error(imagesErr, "failed to generate images")
		return "", nil, imagesErr
	}

	return audioKey, imageURLs, nil
}

func (o *reelPipelineOrchestrator) fail(ctx context.Context, job domain.GenerationJob, cause error) error {
	job.Status = domain.JobStatusFailed
	job.Detail = cause.Error()
	o.track(ctx, job)
	return cause
}

// track is best effort: a broken tracker never fails the job.
func (o *reelPipelineOrchestrator) track(ctx context.Context, job domain.GenerationJob) {
	if err := o.jobTracker.Track(ctx, job); err != nil {
		o.logger.ErrorWithFields(err, "failed to track job status", map[string]interface{}{
			"job_id": job.ID,
			"status": job.Status,
		})
	}
}
