package outbound

import "context"

// AudioMergerPort multiplexes the stored audio track into the silent
// video and returns the local path of the combined file. All failures
// are reported as domain.AudioProcessingError so callers can degrade to
// the silent video.
type AudioMergerPort interface {
	Merge(ctx context.Context, videoRef string, audioKey string) (string, error)
}
