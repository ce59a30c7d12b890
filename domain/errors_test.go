package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestAudioProcessingErrorIsDistinguishable(t *testing.T) {
	var err error = &AudioProcessingError{Stage: "ffmpeg", Err: errors.New("exit status 1")}
	wrapped := fmt.Errorf("merge step: %w", err)

	var audioErr *AudioProcessingError
	if !errors.As(wrapped, &audioErr) {
		t.Fatal("expected AudioProcessingError through wrapping")
	}
	if audioErr.Stage != "ffmpeg" {
		t.Fatalf("stage = %q", audioErr.Stage)
	}

	var storageErr *StorageError
	if errors.As(wrapped, &storageErr) {
		t.Fatal("AudioProcessingError must not match StorageError")
	}
}

func TestGenerationErrorUnwrapsSentinels(t *testing.T) {
	err := &GenerationError{Capability: "script", Err: ErrEmptyScript}
	if !errors.Is(err, ErrEmptyScript) {
		t.Fatal("expected ErrEmptyScript through GenerationError")
	}

	err = &GenerationError{Capability: "script", Err: ErrDisallowedContent}
	if !errors.Is(err, ErrDisallowedContent) {
		t.Fatal("expected ErrDisallowedContent through GenerationError")
	}
}

func TestTimeoutErrorIsNotSynthesisError(t *testing.T) {
	var err error = &TimeoutError{Op: "video synthesis", Attempts: 60}

	var synthErr *SynthesisError
	if errors.As(err, &synthErr) {
		t.Fatal("TimeoutError must not match SynthesisError")
	}
}

func TestConfigErrorMessage(t *testing.T) {
	err := &ConfigError{Name: "BUCKET_NAME"}
	if err.Error() != "BUCKET_NAME must be set" {
		t.Fatalf("message = %q", err.Error())
	}
}
