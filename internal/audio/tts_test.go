package audio

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestService(handler http.Handler) (*Service, *httptest.Server) {
	server := httptest.NewServer(handler)
	svc := NewService()
	svc.endpoint = server.URL
	return svc, server
}

func TestSynthesize(t *testing.T) {
	var requests int
	svc, server := newTestService(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		if got := r.URL.Query().Get("q"); got != "hello" {
			t.Errorf("Expected q=hello, got %q", got)
		}
		if got := r.URL.Query().Get("tl"); got != "en" {
			t.Errorf("Expected tl=en, got %q", got)
		}
		if got := r.URL.Query().Get("client"); got != "tw-ob" {
			t.Errorf("Expected client=tw-ob, got %q", got)
		}
		if r.Header.Get("User-Agent") == "" {
			t.Error("Expected a browser user agent")
		}
		w.Write([]byte("mp3-bytes"))
	}))
	defer server.Close()

	data, err := svc.Synthesize(context.Background(), "hello", "en")
	if err != nil {
		t.Fatalf("Synthesize returned error: %v", err)
	}
	if string(data) != "mp3-bytes" {
		t.Errorf("Expected audio payload, got %q", data)
	}
	if requests != 1 {
		t.Errorf("Expected 1 request, got %d", requests)
	}
}

func TestSynthesizeCachesResults(t *testing.T) {
	var requests int
	svc, server := newTestService(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Write([]byte("audio"))
	}))
	defer server.Close()

	for i := 0; i < 3; i++ {
		if _, err := svc.Synthesize(context.Background(), "hello", "en"); err != nil {
			t.Fatalf("Synthesize returned error: %v", err)
		}
	}
	if requests != 1 {
		t.Errorf("Expected repeated calls to hit the cache, got %d requests", requests)
	}

	// A different language is a different cache entry.
	if _, err := svc.Synthesize(context.Background(), "hello", "ko"); err != nil {
		t.Fatalf("Synthesize returned error: %v", err)
	}
	if requests != 2 {
		t.Errorf("Expected a new request for a new language, got %d requests", requests)
	}
}

func TestSynthesizeErrorStatus(t *testing.T) {
	var requests int
	svc, server := newTestService(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	if _, err := svc.Synthesize(context.Background(), "hello", "en"); err == nil {
		t.Fatal("Expected an error for a non-200 response")
	}

	// Failures are not cached; the next call retries.
	svc.Synthesize(context.Background(), "hello", "en")
	if requests != 2 {
		t.Errorf("Expected failed responses to bypass the cache, got %d requests", requests)
	}
}
