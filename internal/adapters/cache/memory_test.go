package cache_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"pulse-share/internal/adapters/cache"
	"pulse-share/internal/domain"
	"pulse-share/test/fixtures"
)

func sampleSet(text string) domain.ShareSet {
	return domain.ShareSet{
		domain.Twitter: domain.NewGeneratedContent(text, "#NewMusic", 280),
	}
}

func TestNormalizedKey_ReturnsCorrectFormat(t *testing.T) {
	// Arrange
	item := fixtures.MusicItem()

	// Act
	key := cache.NormalizedKey(domain.Music, item)

	// Assert
	if !strings.HasPrefix(key, "/music/trk_001/") {
		t.Errorf("got %v, want prefix /music/trk_001/", key)
	}
	if len(key) != len("/music/trk_001/")+16 {
		t.Errorf("fingerprint should be 16 hex chars, got %v", key)
	}
}

func TestNormalizedKey_ChangesWithContent(t *testing.T) {
	original := fixtures.MusicItem()
	edited := fixtures.MusicItem()
	edited.Title = "Digital Dreams (Remix)"

	if cache.NormalizedKey(domain.Music, original) == cache.NormalizedKey(domain.Music, edited) {
		t.Error("editing the title should change the key")
	}
	if cache.NormalizedKey(domain.Music, original) != cache.NormalizedKey(domain.Music, fixtures.MusicItem()) {
		t.Error("identical items should share a key")
	}
}

func TestMemoryCache_SetAndGet_ReturnsSet(t *testing.T) {
	// Arrange
	c := cache.NewMemoryCache(5 * time.Minute)
	defer c.Close()
	item := fixtures.MusicItem()
	set := sampleSet("Hello world")

	// Act
	c.Set(context.Background(), domain.Music, item, set)
	result, found := c.Get(context.Background(), domain.Music, item)

	// Assert
	if !found {
		t.Fatal("expected set to be found")
	}
	if result[domain.Twitter].Text != "Hello world" {
		t.Errorf("Text: got %v, want Hello world", result[domain.Twitter].Text)
	}
}

func TestMemoryCache_GetNonExistent_ReturnsNotFound(t *testing.T) {
	// Arrange
	c := cache.NewMemoryCache(5 * time.Minute)
	defer c.Close()

	// Act
	_, found := c.Get(context.Background(), domain.Video, fixtures.VideoItem())

	// Assert
	if found {
		t.Error("expected set to not be found")
	}
}

func TestMemoryCache_ExpiredEntry_ReturnsNotFound(t *testing.T) {
	// Arrange
	c := cache.NewMemoryCache(10 * time.Millisecond)
	defer c.Close()
	item := fixtures.MusicItem()

	// Act
	c.Set(context.Background(), domain.Music, item, sampleSet("x"))
	time.Sleep(20 * time.Millisecond)
	_, found := c.Get(context.Background(), domain.Music, item)

	// Assert
	if found {
		t.Error("expected expired set to not be found")
	}
	if c.Len() != 0 {
		t.Errorf("expired entry should be evicted on read, %d left", c.Len())
	}
}

func TestMemoryCache_DifferentTypes_SameID_AreSeparate(t *testing.T) {
	// Arrange
	c := cache.NewMemoryCache(5 * time.Minute)
	defer c.Close()
	fields := domain.ContentFields{ID: "123", Title: "Shared"}
	music := domain.NewContentItem(domain.Music, fields)
	video := domain.NewContentItem(domain.Video, fields)

	// Act
	c.Set(context.Background(), domain.Music, music, sampleSet("music post"))
	c.Set(context.Background(), domain.Video, video, sampleSet("video post"))
	result1, found1 := c.Get(context.Background(), domain.Music, music)
	result2, found2 := c.Get(context.Background(), domain.Video, video)

	// Assert
	if !found1 || !found2 {
		t.Fatal("expected both sets to be found")
	}
	if result1[domain.Twitter].Text != "music post" {
		t.Errorf("music: got %v", result1[domain.Twitter].Text)
	}
	if result2[domain.Twitter].Text != "video post" {
		t.Errorf("video: got %v", result2[domain.Twitter].Text)
	}
}

func TestMemoryCache_OverwriteExisting_UpdatesSet(t *testing.T) {
	// Arrange
	c := cache.NewMemoryCache(5 * time.Minute)
	defer c.Close()
	item := fixtures.MusicItem()

	// Act
	c.Set(context.Background(), domain.Music, item, sampleSet("Original"))
	c.Set(context.Background(), domain.Music, item, sampleSet("Updated"))
	result, found := c.Get(context.Background(), domain.Music, item)

	// Assert
	if !found {
		t.Fatal("expected set to be found")
	}
	if result[domain.Twitter].Text != "Updated" {
		t.Errorf("got %v, want Updated", result[domain.Twitter].Text)
	}
}

func TestMemoryCache_ReturnedSet_IsIndependentCopy(t *testing.T) {
	// Arrange
	c := cache.NewMemoryCache(5 * time.Minute)
	defer c.Close()
	item := fixtures.MusicItem()
	stored := sampleSet("Original")
	c.Set(context.Background(), domain.Music, item, stored)

	// Act
	stored[domain.Twitter] = domain.GeneratedContent{Text: "changed after Set"}
	first, _ := c.Get(context.Background(), domain.Music, item)
	first[domain.Twitter] = domain.GeneratedContent{Text: "changed after Get"}
	delete(first, domain.Twitter)
	second, found := c.Get(context.Background(), domain.Music, item)

	// Assert
	if !found {
		t.Fatal("expected set to be found")
	}
	if second[domain.Twitter].Text != "Original" {
		t.Errorf("got %q, want Original", second[domain.Twitter].Text)
	}
}

func TestMemoryCache_Close_IsIdempotent(t *testing.T) {
	c := cache.NewMemoryCache(time.Minute)

	if err := c.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := c.Close(); err != nil {
		t.Fatalf("unexpected error on second close: %v", err)
	}
}
