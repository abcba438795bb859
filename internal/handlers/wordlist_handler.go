package handlers

import (
	"html/template"
	"log"
	"net/http"

	"wordpractice/internal/dataset"
)

// WordlistHandler serves the home page and the full word list table.
type WordlistHandler struct {
	cache     *dataset.Cache
	templates *template.Template
}

// NewWordlistHandler creates a new word list handler
func NewWordlistHandler(cache *dataset.Cache, templates *template.Template) *WordlistHandler {
	return &WordlistHandler{cache: cache, templates: templates}
}

// Home renders the landing page.
func (h *WordlistHandler) Home(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	data := map[string]interface{}{
		"Title": "Word Practice",
	}
	if err := h.templates.ExecuteTemplate(w, "home.tmpl", data); err != nil {
		log.Printf("Error rendering home template: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

// Wordlist renders the whole loaded dataset as a table.
func (h *WordlistHandler) Wordlist(w http.ResponseWriter, r *http.Request) {
	items, err := h.cache.Items(r.Context())
	if err != nil {
		// Schema errors surface verbatim; nothing renders on a broken
		// dataset.
		respondWithError(w, http.StatusInternalServerError, err.Error(), "Error loading dataset", err)
		return
	}

	view := WordlistView{
		Title: "Word List",
		Items: items,
	}
	if err := h.templates.ExecuteTemplate(w, "wordlist.tmpl", view); err != nil {
		log.Printf("Error rendering wordlist template: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
