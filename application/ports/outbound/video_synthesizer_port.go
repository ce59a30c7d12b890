package outbound

import "context"

// VideoSynthesizerPort turns a set of image URLs into a silent video and
// returns a reference to it (URL or local path).
type VideoSynthesizerPort interface {
	Synthesize(ctx context.Context, imageURLs []string, promptText string) (string, error)
}
