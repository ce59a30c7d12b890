package outbound

import (
	"context"
	"generate-reel-api/domain"
	"io"
	"time"
)

// ListObjectsParams drives one page of an object listing. Cursor is the
// opaque continuation token from the previous page, empty for the first.
type ListObjectsParams struct {
	Prefix string
	Limit  int64
	Cursor string
}

// ListObjectsResult carries one page plus the continuation token for the
// next one; an empty NextCursor means the listing is exhausted.
type ListObjectsResult struct {
	Objects    []domain.StoredObject
	NextCursor string
}

// MediaStorePort abstracts the durable object store backing all reel
// media: uploads, listings and time-limited access URLs.
type MediaStorePort interface {
	Upload(ctx context.Context, key string, body io.Reader, contentType string) error

	// UploadFromRef uploads the content behind ref, which is either an
	// http(s) URL or a local file path.
	UploadFromRef(ctx context.Context, key string, ref string, contentType string) error

	List(ctx context.Context, params ListObjectsParams) (*ListObjectsResult, error)

	PresignedURL(key string, expires time.Duration) (string, error)
}
