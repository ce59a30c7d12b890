package adapters

import (
	"context"
	"errors"
	"generate-reel-api/application/ports/outbound"
	"generate-reel-api/domain"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

const audioFetchExpiry = 15 * time.Minute

type ffmpegAudioMerger struct {
	ContentFetcher
	logger     outbound.LoggerPort
	mediaStore outbound.MediaStorePort
}

func NewFFmpegAudioMerger(contentFetcher ContentFetcher, mediaStore outbound.MediaStorePort,
	logger outbound.LoggerPort) outbound.AudioMergerPort {
	return &ffmpegAudioMerger{
		ContentFetcher: contentFetcher,
		logger:         logger,
		mediaStore:     mediaStore,
	}
}

// Merge multiplexes the stored audio track into the silent video. The
// video stream is copied untouched, the audio is re-encoded to aac and
// the output is truncated to the shorter of the two streams. Every
// failure comes back as an AudioProcessingError so the caller can fall
// back to the silent video.
func (m *ffmpegAudioMerger) Merge(ctx context.Context, videoRef string, audioKey string) (string, error) {
	audioURL, err := m.mediaStore.PresignedURL(audioKey, audioFetchExpiry)
	if err != nil {
		return "", &domain.AudioProcessingError{Stage: "presign-audio", Err: err}
	}

	tmpDir := os.TempDir()
	videoFile := filepath.Join(tmpDir, "input-"+uuid.NewString()+".mp4")
	audioFile := filepath.Join(tmpDir, "audio-"+uuid.NewString()+".mp3")
	outputFile := filepath.Join(tmpDir, "output-"+uuid.NewString()+".mp4")

	defer m.removeScratch(videoFile, audioFile)

	if err := m.fetchVideo(ctx, videoRef, videoFile); err != nil {
		return "", &domain.AudioProcessingError{Stage: "fetch-video", Err: err}
	}

	if err := m.fetchToFile(ctx, audioURL, audioFile); err != nil {
		return "", &domain.AudioProcessingError{Stage: "fetch-audio", Err: err}
	}

	cmd := exec.CommandContext(ctx, "ffmpeg",
		"-i", videoFile,
		"-i", audioFile,
		"-c:v", "copy",
		"-c:a", "aac",
		"-map", "0:v",
		"-map", "1:a",
		"-shortest",
		outputFile)
	if err := cmd.Run(); err != nil {
		m.logger.Error(err, "error merging audio into video")
		return "", &domain.AudioProcessingError{Stage: "ffmpeg", Err: err}
	}

	info, err := os.Stat(outputFile)
	if err != nil || info.Size() == 0 {
		return "", &domain.AudioProcessingError{Stage: "verify-output", Err: errors.New("output file is missing or empty")}
	}

	return outputFile, nil
}

func (m *ffmpegAudioMerger) fetchVideo(ctx context.Context, videoRef string, dest string) error {
	if strings.HasPrefix(videoRef, "http://") || strings.HasPrefix(videoRef, "https://") {
		return m.fetchToFile(ctx, videoRef, dest)
	}

	payload, err := os.ReadFile(videoRef)
	if err != nil {
		m.logger.Error(err, "error reading local video file")
		return err
	}
	return os.WriteFile(dest, payload, 0o600)
}

func (m *ffmpegAudioMerger) fetchToFile(ctx context.Context, url string, dest string) error {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		m.logger.Error(err, "error creating fetch request")
		return err
	}

	payload, err := m.FetchContent(req)
	if err != nil {
		return err
	}

	return os.WriteFile(dest, payload, 0o600)
}

func (m *ffmpegAudioMerger) removeScratch(files ...string) {
	for _, file := range files {
		if err := os.Remove(file); err != nil && !os.IsNotExist(err) {
			m.logger.Error(err, "error removing scratch file")
		}
	}
}
