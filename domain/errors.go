package domain

import (
	"errors"
	"fmt"
)

// ErrEmptyScript is returned (wrapped in a GenerationError) when the
// upstream completion succeeds but produces no usable text.
var ErrEmptyScript = errors.New("generated script is empty")

// ErrDisallowedContent marks script text containing a disclosure phrase
// that must never appear in a published reel.
var ErrDisallowedContent = errors.New("generated script contains disallowed content")

// ConfigError reports a missing or invalid environment setting.
type ConfigError struct {
	Name string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s must be set", e.Name)
}

// GenerationError reports that a content-generation capability failed or
// returned unusable output. Fatal to the job.
type GenerationError struct {
	Capability string
	Err        error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("%s generation failed: %v", e.Capability, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// SynthesisError reports a speech or video synthesis failure. Fatal to
// the job.
type SynthesisError struct {
	Capability string
	Err        error
}

func (e *SynthesisError) Error() string {
	return fmt.Sprintf("%s synthesis failed: %v", e.Capability, e.Err)
}

func (e *SynthesisError) Unwrap() error {
	return e.Err
}

// StorageError reports an object-store operation failure.
type StorageError struct {
	Op  string
	Key string
	Err error
}

func (e *StorageError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("storage %s failed: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("storage %s failed for %q: %v", e.Op, e.Key, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// AudioProcessingError reports a failure while merging the audio track
// into the video. Callers detect it with errors.As and degrade to the
// silent video instead of failing the job.
type AudioProcessingError struct {
	Stage string
	Err   error
}

func (e *AudioProcessingError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("audio processing failed at %s", e.Stage)
	}
	return fmt.Sprintf("audio processing failed at %s: %v", e.Stage, e.Err)
}

func (e *AudioProcessingError) Unwrap() error {
	return e.Err
}

// TimeoutError reports that a bounded poll loop exhausted its attempts
// before the upstream job reached a terminal state.
type TimeoutError struct {
	Op       string
	Attempts int
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("%s timed out after %d attempts", e.Op, e.Attempts)
}
