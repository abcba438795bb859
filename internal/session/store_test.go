package session

import (
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"wordpractice/internal/models"
	"wordpractice/internal/practice"
	"wordpractice/internal/quiz"
)

func newTracker() *practice.Tracker {
	set := &models.WordSet{Name: "Set 1", Items: []models.WordItem{
		{Word: "apple", Meaning: "a fruit", Sentence: "An apple a day."},
	}}
	rng := rand.New(rand.NewSource(1))
	return practice.NewTracker(set, quiz.NewGenerator(rng), rng)
}

func TestStoreGetOrCreate(t *testing.T) {
	store := NewStore(time.Hour)

	created := 0
	create := func() *practice.Tracker {
		created++
		return newTracker()
	}

	first := store.GetOrCreate("session-a", create)
	again := store.GetOrCreate("session-a", create)
	if first != again {
		t.Error("Expected the same tracker for the same session id")
	}
	if created != 1 {
		t.Errorf("Expected create to run once, ran %d times", created)
	}

	other := store.GetOrCreate("session-b", create)
	if other == first {
		t.Error("Expected a distinct tracker for a distinct session id")
	}
	if store.Len() != 2 {
		t.Errorf("Expected 2 live sessions, got %d", store.Len())
	}
}

func TestStoreSweep(t *testing.T) {
	store := NewStore(time.Millisecond)
	store.GetOrCreate("stale", newTracker)

	time.Sleep(5 * time.Millisecond)
	store.GetOrCreate("fresh", newTracker)

	removed := store.Sweep()
	if removed != 1 {
		t.Errorf("Expected 1 expired session removed, got %d", removed)
	}
	if store.Len() != 1 {
		t.Errorf("Expected 1 live session after sweep, got %d", store.Len())
	}
}

func TestGenerateIDUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := GenerateID()
		if id == "" {
			t.Fatal("Expected a non-empty session id")
		}
		if seen[id] {
			t.Fatalf("Duplicate session id %q", id)
		}
		seen[id] = true
	}
}

func TestIsSecureRequest(t *testing.T) {
	tests := []struct {
		name  string
		setup func(r *http.Request)
		want  bool
	}{
		{
			name:  "plain http",
			setup: func(r *http.Request) {},
			want:  false,
		},
		{
			name: "forwarded proto https",
			setup: func(r *http.Request) {
				r.Header.Set("X-Forwarded-Proto", "https")
			},
			want: true,
		},
		{
			name: "forwarded proto http",
			setup: func(r *http.Request) {
				r.Header.Set("X-Forwarded-Proto", "http")
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			tt.setup(r)
			if got := IsSecureRequest(r); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestNewCookie(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	expires := time.Now().Add(24 * time.Hour)

	c := NewCookie(r, "abc", expires)
	if c.Name != CookieName {
		t.Errorf("Expected name %q, got %q", CookieName, c.Name)
	}
	if c.Value != "abc" {
		t.Errorf("Expected value abc, got %q", c.Value)
	}
	if !c.HttpOnly {
		t.Error("Expected HttpOnly cookie")
	}
	if c.SameSite != http.SameSiteLaxMode {
		t.Error("Expected SameSite Lax")
	}
	if c.Secure {
		t.Error("Expected Secure unset for a plain http request")
	}
}
