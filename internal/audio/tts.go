// Package audio is the text-to-speech collaborator: text in, encoded
// audio bytes out. Failures are non-fatal to practice; callers show a
// degradation notice instead of audio.
package audio

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"
)

const defaultEndpoint = "https://translate.google.com/translate_tts"

const requestTimeout = 10 * time.Second

// maxCacheEntries caps the in-memory audio cache, one entry per
// distinct (text, lang) pair.
const maxCacheEntries = 1000

// Service fetches text-to-speech audio and caches the encoded bytes in
// memory. Failed requests are never cached.
type Service struct {
	endpoint string
	client   *http.Client

	mu    sync.RWMutex
	cache map[string][]byte
}

// NewService creates a TTS service backed by Google Translate's
// text-to-speech endpoint (free, no API key needed).
func NewService() *Service {
	return &Service{
		endpoint: defaultEndpoint,
		client:   &http.Client{Timeout: requestTimeout},
		cache:    make(map[string][]byte),
	}
}

// Synthesize returns MP3 bytes for text spoken in lang (e.g. "en").
func (s *Service) Synthesize(ctx context.Context, text, lang string) ([]byte, error) {
	key := lang + "|" + text

	s.mu.RLock()
	cached, ok := s.cache[key]
	s.mu.RUnlock()
	if ok {
		return cached, nil
	}

	params := url.Values{}
	params.Set("ie", "UTF-8")
	params.Set("q", text)
	params.Set("tl", lang)
	params.Set("client", "tw-ob")
	params.Set("textlen", fmt.Sprintf("%d", len(text)))

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	// Set user agent (required by Google)
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch audio: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio: %w", err)
	}

	s.mu.Lock()
	if len(s.cache) >= maxCacheEntries {
		// dropping everything beats tracking recency at this size
		s.cache = make(map[string][]byte)
	}
	s.cache[key] = data
	s.mu.Unlock()

	return data, nil
}
