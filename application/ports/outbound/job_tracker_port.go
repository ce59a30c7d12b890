package outbound

import (
	"context"
	"generate-reel-api/domain"
)

// JobTrackerPort records generation-job status transitions. Tracking is
// best-effort observability; implementations must not be load-bearing
// for the pipeline itself.
type JobTrackerPort interface {
	Track(ctx context.Context, job domain.GenerationJob) error
}
