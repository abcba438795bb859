package handlers

import (
	"html/template"
	"log"
	"net/http"

	"wordpractice/internal/audio"
	"wordpractice/internal/dataset"
	"wordpractice/internal/models"
)

// ReviewHandler serves the review page: pick a set, pick words, study
// them with highlighted example sentences and sentence audio.
type ReviewHandler struct {
	cache     *dataset.Cache
	tts       *audio.Service
	ttsLang   string
	templates *template.Template
}

// NewReviewHandler creates a new review handler
func NewReviewHandler(cache *dataset.Cache, tts *audio.Service, ttsLang string, templates *template.Template) *ReviewHandler {
	return &ReviewHandler{cache: cache, tts: tts, ttsLang: ttsLang, templates: templates}
}

// Show renders the set selector and word checkboxes.
func (h *ReviewHandler) Show(w http.ResponseWriter, r *http.Request) {
	sets, err := h.cache.Sets(r.Context())
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, err.Error(), "Error loading dataset", err)
		return
	}

	active := pickSet(sets, r.URL.Query().Get("set"))
	view := ReviewView{
		Title:     "Review",
		ActiveSet: active.Name,
		Items:     active.Items,
		Selected:  map[string]bool{},
	}
	for _, set := range sets {
		view.SetNames = append(view.SetNames, set.Name)
	}

	h.render(w, view)
}

// Study renders the selected words with meaning, highlighted example
// sentence, translation and sentence audio.
func (h *ReviewHandler) Study(w http.ResponseWriter, r *http.Request) {
	sets, err := h.cache.Sets(r.Context())
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, err.Error(), "Error loading dataset", err)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	active := pickSet(sets, r.FormValue("set"))
	selected := r.Form["words"]

	view := ReviewView{
		Title:     "Review",
		ActiveSet: active.Name,
		Items:     active.Items,
		Selected:  map[string]bool{},
	}
	for _, set := range sets {
		view.SetNames = append(view.SetNames, set.Name)
	}
	for _, word := range selected {
		view.Selected[word] = true
	}

	if len(selected) == 0 {
		view.Warning = "You did not select any words."
		h.render(w, view)
		return
	}

	items, err := h.cache.Items(r.Context())
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, err.Error(), "Error loading dataset", err)
		return
	}

	for _, word := range selected {
		item, ok := active.Find(word)
		if !ok {
			// fall back to the whole table when the word is not in the
			// selected set
			item, ok = findItem(items, word)
		}
		if !ok {
			continue
		}

		entry := ReviewEntry{
			Index:        len(view.Entries) + 1,
			Word:         item.Word,
			Meaning:      item.Meaning,
			Translation:  item.Translation,
			SentenceHTML: highlightHTML(item.Sentence, item.Word),
		}

		data, err := h.tts.Synthesize(r.Context(), item.Sentence, h.ttsLang)
		if err != nil {
			log.Printf("Error synthesizing audio for sentence of %q: %v", item.Word, err)
			entry.AudioWarning = true
		} else {
			entry.AudioURL = audioDataURL(data)
		}

		view.Entries = append(view.Entries, entry)
	}

	h.render(w, view)
}

func (h *ReviewHandler) render(w http.ResponseWriter, view ReviewView) {
	if err := h.templates.ExecuteTemplate(w, "review.tmpl", view); err != nil {
		log.Printf("Error rendering review template: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func pickSet(sets []*models.WordSet, name string) *models.WordSet {
	for _, set := range sets {
		if set.Name == name {
			return set
		}
	}
	return sets[0]
}

func findItem(items []models.WordItem, word string) (models.WordItem, bool) {
	for _, item := range items {
		if item.Word == word {
			return item, true
		}
	}
	return models.WordItem{}, false
}
