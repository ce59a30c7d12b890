package domain

import "time"

// StoredObject is one entry from an object-store listing.
type StoredObject struct {
	Key          string
	LastModified time.Time
	Size         int64
}

// StoredReel is the durable record of one uploaded reel. The feed never
// represents reels by any other identity.
type StoredReel struct {
	ID           string
	Key          string
	LastModified time.Time
	Size         int64
}

// ReelFeedItem is derived per request from a StoredReel plus a presigned
// URL. It is never persisted; presigned URLs expire and are regenerated
// on every fetch.
type ReelFeedItem struct {
	ID        string `json:"id"`
	VideoURL  string `json:"videoUrl"`
	Caption   string `json:"caption"`
	Likes     int    `json:"likes"`
	Comments  int    `json:"comments"`
	CreatedAt string `json:"createdAt"`
}

// ReelFeed is one page of the reel feed. NextCursor is the opaque
// continuation token the caller passes back to resume the listing.
type ReelFeed struct {
	Items      []ReelFeedItem
	NextCursor string
	HasMore    bool
}

type JobStatus string

const (
	JobStatusPending   JobStatus = "pending"
	JobStatusSucceeded JobStatus = "succeeded"
	JobStatusFailed    JobStatus = "failed"
)

// GenerationJob tracks the lifecycle of one reel-generation request.
type GenerationJob struct {
	ID      string
	Subject string
	Status  JobStatus
	ReelKey string
	Detail  string
}
