package services

import (
	"context"
	"errors"
	"generate-reel-api/application/ports/inbound"
	"generate-reel-api/application/ports/outbound"
	"generate-reel-api/domain"
	"io"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/panjf2000/ants/v2"
)

type feedPage struct {
	objects    []domain.StoredObject
	nextCursor string
}

// fakeFeedStore serves canned listing pages keyed by cursor and lets
// individual keys fail presigning a configured number of times.
type fakeFeedStore struct {
	mu              sync.Mutex
	pages           map[string]feedPage
	listErr         error
	presignFailures map[string]int
	presignAttempts map[string]int
}

func newFakeFeedStore() *fakeFeedStore {
	return &fakeFeedStore{
		pages:           make(map[string]feedPage),
		presignFailures: make(map[string]int),
		presignAttempts: make(map[string]int),
	}
}

func (f *fakeFeedStore) Upload(_ context.Context, _ string, _ io.Reader, _ string) error {
	return nil
}

func (f *fakeFeedStore) UploadFromRef(_ context.Context, _ string, _ string, _ string) error {
	return nil
}

func (f *fakeFeedStore) List(_ context.Context, params outbound.ListObjectsParams) (*outbound.ListObjectsResult, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	page := f.pages[params.Cursor]
	return &outbound.ListObjectsResult{
		Objects:    page.objects,
		NextCursor: page.nextCursor,
	}, nil
}

func (f *fakeFeedStore) PresignedURL(key string, _ time.Duration) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.presignAttempts[key]++
	if f.presignFailures[key] > 0 {
		f.presignFailures[key]--
		return "", &domain.StorageError{Op: "presign", Key: key, Err: errors.New("throttled")}
	}
	return "https://signed.example/" + key, nil
}

func newFeedProvider(t *testing.T, store outbound.MediaStorePort) inbound.ReelFeedPort {
	t.Helper()

	pool, err := ants.NewPool(10)
	if err != nil {
		t.Fatal("Failed to create worker pool:", err)
	}
	t.Cleanup(pool.Release)

	return NewReelFeedProvider(newTestLogger(), pool, store)
}

func reelObject(key string) domain.StoredObject {
	return domain.StoredObject{
		Key:          key,
		LastModified: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		Size:         1024,
	}
}

func TestReelFeedProvider_EmptyListing(t *testing.T) {
	store := newFakeFeedStore()
	provider := newFeedProvider(t, store)

	feed, err := provider.List(context.Background(), inbound.ListReelsParams{Limit: 5})
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	if len(feed.Items) != 0 {
		t.Fatalf("items = %d, want 0", len(feed.Items))
	}
	if feed.HasMore {
		t.Fatal("HasMore = true, want false")
	}
}

func TestReelFeedProvider_FiltersNonVideoKeys(t *testing.T) {
	store := newFakeFeedStore()
	store.pages[""] = feedPage{objects: []domain.StoredObject{
		reelObject("reels/a.mp4"),
		reelObject("reels/notes.txt"),
		reelObject("reels/b.MOV"),
		reelObject("reels/thumb.png"),
	}}
	provider := newFeedProvider(t, store)

	feed, err := provider.List(context.Background(), inbound.ListReelsParams{Limit: 5})
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	if len(feed.Items) != 2 {
		t.Fatalf("items = %d, want 2", len(feed.Items))
	}
}

func TestReelFeedProvider_PreservesListingOrder(t *testing.T) {
	store := newFakeFeedStore()
	store.pages[""] = feedPage{objects: []domain.StoredObject{
		reelObject("reels/a.mp4"),
		reelObject("reels/b.mp4"),
		reelObject("reels/c.mp4"),
		reelObject("reels/d.mp4"),
	}}
	provider := newFeedProvider(t, store)

	feed, err := provider.List(context.Background(), inbound.ListReelsParams{Limit: 5})
	if err != nil {
		t.Fatal("unexpected error:", err)
	}

	want := []string{
		"https://signed.example/reels/a.mp4",
		"https://signed.example/reels/b.mp4",
		"https://signed.example/reels/c.mp4",
		"https://signed.example/reels/d.mp4",
	}
	for i, item := range feed.Items {
		if item.VideoURL != want[i] {
			t.Fatalf("item %d url = %q, want %q", i, item.VideoURL, want[i])
		}
	}
}

func TestReelFeedProvider_DropsItemThatNeverPresigns(t *testing.T) {
	store := newFakeFeedStore()
	store.pages[""] = feedPage{objects: []domain.StoredObject{
		reelObject("reels/good.mp4"),
		reelObject("reels/bad.mp4"),
	}}
	store.presignFailures["reels/bad.mp4"] = 5
	provider := newFeedProvider(t, store)

	feed, err := provider.List(context.Background(), inbound.ListReelsParams{Limit: 5})
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	if len(feed.Items) != 1 {
		t.Fatalf("items = %d, want 1", len(feed.Items))
	}
	if feed.Items[0].VideoURL != "https://signed.example/reels/good.mp4" {
		t.Fatalf("surviving item = %q", feed.Items[0].VideoURL)
	}
	if attempts := store.presignAttempts["reels/bad.mp4"]; attempts != 3 {
		t.Fatalf("attempts for bad key = %d, want 3", attempts)
	}
}

func TestReelFeedProvider_RetriesTransientPresignFailure(t *testing.T) {
	store := newFakeFeedStore()
	store.pages[""] = feedPage{objects: []domain.StoredObject{
		reelObject("reels/flaky.mp4"),
	}}
	store.presignFailures["reels/flaky.mp4"] = 2
	provider := newFeedProvider(t, store)

	feed, err := provider.List(context.Background(), inbound.ListReelsParams{Limit: 5})
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	if len(feed.Items) != 1 {
		t.Fatalf("items = %d, want 1", len(feed.Items))
	}
}

func TestReelFeedProvider_CursorIsIdempotent(t *testing.T) {
	store := newFakeFeedStore()
	store.pages["cursor-1"] = feedPage{
		objects: []domain.StoredObject{
			reelObject("reels/a.mp4"),
			reelObject("reels/b.mp4"),
		},
		nextCursor: "cursor-2",
	}
	provider := newFeedProvider(t, store)

	params := inbound.ListReelsParams{Limit: 2, Cursor: "cursor-1"}
	first, err := provider.List(context.Background(), params)
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	second, err := provider.List(context.Background(), params)
	if err != nil {
		t.Fatal("unexpected error:", err)
	}

	if first.NextCursor != "cursor-2" || second.NextCursor != "cursor-2" {
		t.Fatalf("cursors = %q, %q, want cursor-2", first.NextCursor, second.NextCursor)
	}
	if !first.HasMore || !second.HasMore {
		t.Fatal("HasMore = false, want true")
	}
	if len(first.Items) != len(second.Items) {
		t.Fatalf("item counts differ: %d vs %d", len(first.Items), len(second.Items))
	}
	for i := range first.Items {
		if first.Items[i].VideoURL != second.Items[i].VideoURL {
			t.Fatalf("item %d differs between identical requests", i)
		}
	}
}

func TestReelFeedProvider_ShuffleKeepsItemSet(t *testing.T) {
	store := newFakeFeedStore()
	objects := []domain.StoredObject{
		reelObject("reels/a.mp4"),
		reelObject("reels/b.mp4"),
		reelObject("reels/c.mp4"),
		reelObject("reels/d.mp4"),
		reelObject("reels/e.mp4"),
	}
	store.pages[""] = feedPage{objects: objects}
	provider := newFeedProvider(t, store)

	feed, err := provider.List(context.Background(), inbound.ListReelsParams{Limit: 5, Shuffle: true})
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	if len(feed.Items) != len(objects) {
		t.Fatalf("items = %d, want %d", len(feed.Items), len(objects))
	}

	urls := make([]string, len(feed.Items))
	for i, item := range feed.Items {
		urls[i] = item.VideoURL
	}
	sort.Strings(urls)
	want := []string{
		"https://signed.example/reels/a.mp4",
		"https://signed.example/reels/b.mp4",
		"https://signed.example/reels/c.mp4",
		"https://signed.example/reels/d.mp4",
		"https://signed.example/reels/e.mp4",
	}
	for i := range want {
		if urls[i] != want[i] {
			t.Fatalf("shuffled set changed: got %v", urls)
		}
	}
}

func TestReelFeedProvider_ListingFailureIsFatal(t *testing.T) {
	store := newFakeFeedStore()
	store.listErr = &domain.StorageError{Op: "list", Err: errors.New("bucket unreachable")}
	provider := newFeedProvider(t, store)

	_, err := provider.List(context.Background(), inbound.ListReelsParams{Limit: 5})
	var storageErr *domain.StorageError
	if !errors.As(err, &storageErr) {
		t.Fatalf("err = %v, want StorageError", err)
	}
}
