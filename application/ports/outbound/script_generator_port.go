package outbound

import "context"

// ScriptGeneratorPort produces a short narration script for the given
// subject. Implementations must never return an empty script: empty or
// unusable upstream output surfaces as a domain.GenerationError.
type ScriptGeneratorPort interface {
	Generate(ctx context.Context, subjectName string) (string, error)
}
