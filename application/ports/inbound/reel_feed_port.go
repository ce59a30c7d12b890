package inbound

import (
	"context"
	"generate-reel-api/domain"
)

type ListReelsParams struct {
	Limit   int
	Cursor  string
	Shuffle bool
}

// ReelFeedPort serves one page of the reel feed with fresh presigned
// URLs. Pagination state lives entirely in the cursor echoed by the
// caller.
type ReelFeedPort interface {
	List(ctx context.Context, params ListReelsParams) (*domain.ReelFeed, error)
}
