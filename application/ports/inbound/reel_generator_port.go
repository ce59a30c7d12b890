package inbound

import "context"

// ReelGeneratorPort runs the whole generation pipeline for one subject.
// The only observable result is a new stored reel; the caller gets no
// payload back.
type ReelGeneratorPort interface {
	GenerateAndUpload(ctx context.Context, subjectName string) error
}
