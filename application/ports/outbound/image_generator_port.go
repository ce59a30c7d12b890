package outbound

import "context"

// ImageGeneratorPort generates still images of the subject sized for
// vertical video, persists them and returns presigned access URLs.
// Partial results are valid; an empty result is an error.
type ImageGeneratorPort interface {
	Generate(ctx context.Context, subjectName string) ([]string, error)
}
