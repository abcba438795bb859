package main

import (
	"context"
	"html/template"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"wordpractice/internal/audio"
	"wordpractice/internal/config"
	"wordpractice/internal/dataset"
	"wordpractice/internal/handlers"
	"wordpractice/internal/quiz"
	"wordpractice/internal/session"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Dataset cache: one CSV load shared by every view, refreshed on a
	// short TTL.
	cache := dataset.NewCache(cfg.DatasetSource, cfg.ChunkSize, cfg.DatasetTTL)

	// Warm the cache so schema problems show up in the log at startup.
	// Views still surface the error themselves if loading keeps failing.
	if sets, err := cache.Sets(context.Background()); err != nil {
		log.Printf("Warning: failed to load dataset from %s: %v", cfg.DatasetSource, err)
	} else {
		log.Printf("Dataset loaded: %d word sets", len(sets))
	}

	// Load templates
	templates, err := loadTemplates(cfg.TemplatesPath)
	if err != nil {
		log.Fatalf("Failed to load templates: %v", err)
	}

	log.Println("Templates loaded successfully")

	// Shared services. The generator draws from the process-wide locked
	// random source; sessions are scoped per browser.
	rng := quiz.GlobalRand{}
	gen := quiz.NewGenerator(rng)
	tts := audio.NewService()
	store := session.NewStore(cfg.SessionDuration)

	// Initialize handlers
	middleware := handlers.NewMiddleware(cfg.SessionDuration)
	wordlistHandler := handlers.NewWordlistHandler(cache, templates)
	reviewHandler := handlers.NewReviewHandler(cache, tts, cfg.TTSLang, templates)
	practiceHandler := handlers.NewPracticeHandler(cache, store, gen, rng, tts, cfg.TTSLang, templates)

	// Setup routes
	mux := http.NewServeMux()

	// Static files
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticFilesPath))))

	mux.HandleFunc("GET /", wordlistHandler.Home)
	mux.HandleFunc("GET /wordlist", wordlistHandler.Wordlist)

	mux.HandleFunc("GET /review", reviewHandler.Show)
	mux.HandleFunc("POST /review", reviewHandler.Study)

	// Practice routes
	mux.HandleFunc("GET /practice/{mode}", middleware.WithSession(practiceHandler.Show))
	mux.HandleFunc("POST /practice/{mode}/start", middleware.WithSession(practiceHandler.Start))
	mux.HandleFunc("POST /practice/{mode}/answer", middleware.WithSession(practiceHandler.Answer))
	mux.HandleFunc("POST /practice/{mode}/reset", middleware.WithSession(practiceHandler.Reset))
	mux.HandleFunc("POST /practice/set", middleware.WithSession(practiceHandler.ChangeSet))

	// Wrap with logging middleware
	handler := handlers.Logging(mux)

	// Start server
	addr := ":" + cfg.ServerPort
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start background session cleanup
	go cleanupExpiredSessions(store)

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on http://localhost%s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")
}

// loadTemplates loads all template files
func loadTemplates(templatesPath string) (*template.Template, error) {
	funcMap := template.FuncMap{
		"add": func(a, b int) int {
			return a + b
		},
	}

	pattern := filepath.Join(templatesPath, "*.tmpl")
	return template.New("").Funcs(funcMap).ParseGlob(pattern)
}

// cleanupExpiredSessions periodically drops idle practice sessions
func cleanupExpiredSessions(store *session.Store) {
	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()

	for range ticker.C {
		if removed := store.Sweep(); removed > 0 {
			log.Printf("Removed %d expired practice sessions (%d live)", removed, store.Len())
		}
	}
}
