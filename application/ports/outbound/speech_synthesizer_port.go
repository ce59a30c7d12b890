package outbound

import "context"

// SpeechSynthesizerPort turns a script into spoken audio, persists it to
// the media store and returns the audio object key.
type SpeechSynthesizerPort interface {
	Synthesize(ctx context.Context, script string) (string, error)
}
