package services

import (
	"context"
	"fmt"
	"generate-reel-api/application/ports/inbound"
	"generate-reel-api/application/ports/outbound"
	"generate-reel-api/domain"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/panjf2000/ants/v2"
)

const (
	reelsPrefix        = "reels/"
	defaultPageSize    = 5
	maxPresignAttempts = 3
	presignBackoff     = 500 * time.Millisecond
	presignExpiry      = time.Hour
)

var videoExtensions = []string{".mp4", ".mov", ".avi", ".webm"}

type reelFeedProvider struct {
	logger     outbound.LoggerPort
	workerPool *ants.Pool
	mediaStore outbound.MediaStorePort
}

func NewReelFeedProvider(logger outbound.LoggerPort, workerPool *ants.Pool,
	mediaStore outbound.MediaStorePort) inbound.ReelFeedPort {
	return &reelFeedProvider{
		logger:     logger,
		workerPool: workerPool,
		mediaStore: mediaStore,
	}
}

func (p *reelFeedProvider) List(ctx context.Context, params inbound.ListReelsParams) (*domain.ReelFeed, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}

	listing, err := p.mediaStore.List(ctx, outbound.ListObjectsParams{
		Prefix: reelsPrefix,
		Limit:  int64(limit),
		Cursor: params.Cursor,
	})
	if err != nil {
		p.logger.Error(err, "failed to list reels")
		return nil, err
	}

	reels := make([]domain.StoredReel, 0, len(listing.Objects))
	for _, obj := range listing.Objects {
		if !isVideoKey(obj.Key) {
			continue
		}
		reels = append(reels, domain.StoredReel{
			ID:           uuid.NewString(),
			Key:          obj.Key,
			LastModified: obj.LastModified,
			Size:         obj.Size,
		})
	}

	items := p.resolveItems(ctx, reels)

	if params.Shuffle {
		rand.Shuffle(len(items), func(i, j int) {
			items[i], items[j] = items[j], items[i]
		})
	}

	return &domain.ReelFeed{
		Items:      items,
		NextCursor: listing.NextCursor,
		HasMore:    listing.NextCursor != "",
	}, nil
}

// resolveItems presigns every reel concurrently, keeping listing order.
// A reel whose URL cannot be resolved is dropped, never the whole page.
func (p *reelFeedProvider) resolveItems(ctx context.Context, reels []domain.StoredReel) []domain.ReelFeedItem {
	resolved := make([]*domain.ReelFeedItem, len(reels))

	var wg sync.WaitGroup
	for i, reel := range reels {
		i, reel := i, reel
		wg.Add(1)
		if err := p.workerPool.Submit(func() {
			defer wg.Done()
			resolved[i] = p.resolveItem(ctx, reel)
		}); err != nil {
			// Pool saturated, resolve on the caller instead.
			resolved[i] = p.resolveItem(ctx, reel)
			wg.Done()
		}
	}
	wg.Wait()

	items := make([]domain.ReelFeedItem, 0, len(reels))
	for _, item := range resolved {
		if item != nil {
			items = append(items, *item)
		}
	}
	return items
}

func (p *reelFeedProvider) resolveItem(ctx context.Context, reel domain.StoredReel) *domain.ReelFeedItem {
	var (
		url string
		err error
	)

	for attempt := 1; attempt <= maxPresignAttempts; attempt++ {
		url, err = p.mediaStore.PresignedURL(reel.Key, presignExpiry)
		if err == nil {
			break
		}
		p.logger.WarnWithFields("failed to presign reel", map[string]interface{}{
			"key":     reel.Key,
			"attempt": attempt,
		})
		if attempt == maxPresignAttempts {
			p.logger.ErrorWithFields(err, "dropping reel from feed", map[string]interface{}{
				"key": reel.Key,
			})
			return nil
		}
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(presignBackoff):
		}
	}

	createdAt := reel.LastModified
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	return &domain.ReelFeedItem{
		ID:        reel.ID,
		VideoURL:  url,
		Caption:   fmt.Sprintf("Reel #%s", reel.ID),
		Likes:     rand.Intn(10000),
		Comments:  rand.Intn(1000),
		CreatedAt: createdAt.Format(time.RFC3339),
	}
}

func isVideoKey(key string) bool {
	lowered := strings.ToLower(key)
	for _, ext := range videoExtensions {
		if strings.HasSuffix(lowered, ext) {
			return true
		}
	}
	return false
}
