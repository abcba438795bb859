package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"wordpractice/internal/session"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

const SessionIDContextKey ContextKey = "sessionID"

// Middleware holds dependencies for middleware functions
type Middleware struct {
	sessionDuration time.Duration
}

// NewMiddleware creates a new middleware instance
func NewMiddleware(sessionDuration time.Duration) *Middleware {
	return &Middleware{sessionDuration: sessionDuration}
}

// WithSession ensures the request carries a session cookie, minting one
// for first-time visitors, and puts the session id on the context.
// Sessions are anonymous; the id only scopes practice state to one
// browser.
func (m *Middleware) WithSession(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var id string
		if cookie, err := r.Cookie(session.CookieName); err == nil {
			id = cookie.Value
		}
		if id == "" {
			id = session.GenerateID()
			http.SetCookie(w, session.NewCookie(r, id, time.Now().Add(m.sessionDuration)))
		}

		ctx := context.WithValue(r.Context(), SessionIDContextKey, id)
		next(w, r.WithContext(ctx))
	}
}

// SessionIDFromContext retrieves the session id set by WithSession.
func SessionIDFromContext(ctx context.Context) string {
	id, ok := ctx.Value(SessionIDContextKey).(string)
	if !ok {
		return ""
	}
	return id
}

// Logging middleware logs HTTP requests
func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		next.ServeHTTP(w, r)

		log.Printf("%s %s %s", r.Method, r.URL.Path, time.Since(start))
	})
}
