package dataset

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeDataset(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write dataset: %v", err)
	}
}

const cacheCSV = `Word,Meaning,Sentence,Translation,Set
apple,a fruit,An apple a day.,사과,Set 1
banana,a long fruit,The banana is ripe.,바나나,Set 2
`

func TestCacheServesLoadedSets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.csv")
	writeDataset(t, path, cacheCSV)

	cache := NewCache(path, DefaultChunkSize, time.Minute)

	sets, err := cache.Sets(context.Background())
	if err != nil {
		t.Fatalf("Sets returned error: %v", err)
	}
	if len(sets) != 2 {
		t.Fatalf("Expected 2 sets, got %d", len(sets))
	}

	items, err := cache.Items(context.Background())
	if err != nil {
		t.Fatalf("Items returned error: %v", err)
	}
	if len(items) != 2 {
		t.Errorf("Expected 2 items, got %d", len(items))
	}
}

func TestCacheServesStaleCopyWithinTTL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.csv")
	writeDataset(t, path, cacheCSV)

	cache := NewCache(path, DefaultChunkSize, time.Hour)
	first, err := cache.Sets(context.Background())
	if err != nil {
		t.Fatalf("Sets returned error: %v", err)
	}

	// The file changes, but the cached copy is still fresh.
	writeDataset(t, path, "Word,Meaning,Sentence,Translation\nx,y,z,w\n")

	again, err := cache.Sets(context.Background())
	if err != nil {
		t.Fatalf("Sets returned error: %v", err)
	}
	if len(again) != len(first) || again[0] != first[0] {
		t.Error("Expected the cached sets to be reused within the TTL")
	}
}

func TestCacheKeepsLastGoodResultOnRefreshFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.csv")
	writeDataset(t, path, cacheCSV)

	cache := NewCache(path, DefaultChunkSize, time.Nanosecond)
	first, err := cache.Sets(context.Background())
	if err != nil {
		t.Fatalf("Sets returned error: %v", err)
	}

	if err := os.Remove(path); err != nil {
		t.Fatalf("Failed to remove dataset: %v", err)
	}
	time.Sleep(time.Millisecond)

	sets, err := cache.Sets(context.Background())
	if err != nil {
		t.Fatalf("Expected the last good result, got error: %v", err)
	}
	if len(sets) != len(first) {
		t.Errorf("Expected %d sets, got %d", len(first), len(sets))
	}
}

func TestCacheFirstLoadFailure(t *testing.T) {
	cache := NewCache(filepath.Join(t.TempDir(), "missing.csv"), DefaultChunkSize, time.Minute)
	if _, err := cache.Sets(context.Background()); err == nil {
		t.Fatal("Expected an error when the first load fails")
	}
}
