package dataset

import (
	"errors"
	"fmt"
	"testing"

	"wordpractice/internal/models"
)

func makeItems(n int) []models.WordItem {
	items := make([]models.WordItem, n)
	for i := range items {
		items[i] = models.WordItem{Word: fmt.Sprintf("word%d", i+1)}
	}
	return items
}

func TestBuildSetsChunking(t *testing.T) {
	tests := []struct {
		name      string
		items     int
		chunkSize int
		wantSets  int
		wantLast  int
	}{
		{name: "even split", items: 20, chunkSize: 10, wantSets: 2, wantLast: 10},
		{name: "short trailing set", items: 25, chunkSize: 10, wantSets: 3, wantLast: 5},
		{name: "fewer items than chunk", items: 4, chunkSize: 10, wantSets: 1, wantLast: 4},
		{name: "zero size falls back to default", items: 15, chunkSize: 0, wantSets: 2, wantLast: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sets, err := BuildSets(makeItems(tt.items), false, tt.chunkSize)
			if err != nil {
				t.Fatalf("BuildSets returned error: %v", err)
			}
			if len(sets) != tt.wantSets {
				t.Fatalf("Expected %d sets, got %d", tt.wantSets, len(sets))
			}
			for i, set := range sets {
				wantName := fmt.Sprintf("Set %d", i+1)
				if set.Name != wantName {
					t.Errorf("Expected set name %q, got %q", wantName, set.Name)
				}
			}
			last := sets[len(sets)-1]
			if len(last.Items) != tt.wantLast {
				t.Errorf("Expected %d items in last set, got %d", tt.wantLast, len(last.Items))
			}
		})
	}
}

func TestBuildSetsGroupedNumericOrder(t *testing.T) {
	var items []models.WordItem
	for _, set := range []string{"Set 10", "Set 2", "Set 1", "Set 2"} {
		items = append(items, models.WordItem{Word: "w-" + set, Set: set})
	}

	sets, err := BuildSets(items, true, DefaultChunkSize)
	if err != nil {
		t.Fatalf("BuildSets returned error: %v", err)
	}

	wantOrder := []string{"Set 1", "Set 2", "Set 10"}
	if len(sets) != len(wantOrder) {
		t.Fatalf("Expected %d sets, got %d", len(wantOrder), len(sets))
	}
	for i, want := range wantOrder {
		if sets[i].Name != want {
			t.Errorf("Expected set %q at position %d, got %q", want, i, sets[i].Name)
		}
	}
	if len(sets[1].Items) != 2 {
		t.Errorf("Expected 2 items in Set 2, got %d", len(sets[1].Items))
	}
}

func TestBuildSetsGroupedDigitlessNamesLast(t *testing.T) {
	items := []models.WordItem{
		{Word: "a", Set: "Extras"},
		{Word: "b", Set: "Set 3"},
		{Word: "c", Set: "Basics"},
		{Word: "d", Set: "Set 1"},
	}

	sets, err := BuildSets(items, true, DefaultChunkSize)
	if err != nil {
		t.Fatalf("BuildSets returned error: %v", err)
	}

	wantOrder := []string{"Set 1", "Set 3", "Extras", "Basics"}
	for i, want := range wantOrder {
		if sets[i].Name != want {
			t.Errorf("Expected set %q at position %d, got %q", want, i, sets[i].Name)
		}
	}
}

func TestBuildSetsEmpty(t *testing.T) {
	_, err := BuildSets(nil, false, 10)
	if !errors.Is(err, ErrNoSets) {
		t.Errorf("Expected ErrNoSets, got %v", err)
	}

	_, err = BuildSets(nil, true, 10)
	if !errors.Is(err, ErrNoSets) {
		t.Errorf("Expected ErrNoSets for grouped input, got %v", err)
	}
}
