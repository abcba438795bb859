package handlers

import (
	"errors"
	"html/template"
	"log"
	"net/http"
	"net/url"

	"wordpractice/internal/audio"
	"wordpractice/internal/dataset"
	"wordpractice/internal/models"
	"wordpractice/internal/practice"
	"wordpractice/internal/quiz"
	"wordpractice/internal/session"
)

// PracticeHandler serves the three practice modes.
type PracticeHandler struct {
	cache     *dataset.Cache
	store     *session.Store
	gen       *quiz.Generator
	rng       quiz.Rand
	tts       *audio.Service
	ttsLang   string
	templates *template.Template
}

// NewPracticeHandler creates a new practice handler
func NewPracticeHandler(cache *dataset.Cache, store *session.Store, gen *quiz.Generator, rng quiz.Rand, tts *audio.Service, ttsLang string, templates *template.Template) *PracticeHandler {
	return &PracticeHandler{
		cache:     cache,
		store:     store,
		gen:       gen,
		rng:       rng,
		tts:       tts,
		ttsLang:   ttsLang,
		templates: templates,
	}
}

// load resolves the word sets and this browser's tracker. Dataset and
// schema errors halt the view here, before any practice logic runs.
func (h *PracticeHandler) load(w http.ResponseWriter, r *http.Request) ([]*models.WordSet, *practice.Tracker, bool) {
	sets, err := h.cache.Sets(r.Context())
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, err.Error(), "Error loading dataset", err)
		return nil, nil, false
	}

	id := SessionIDFromContext(r.Context())
	tracker := h.store.GetOrCreate(id, func() *practice.Tracker {
		return practice.NewTracker(sets[0], h.gen, h.rng)
	})
	return sets, tracker, true
}

func (h *PracticeHandler) mode(w http.ResponseWriter, r *http.Request) (models.Mode, bool) {
	mode, ok := models.ParseMode(r.PathValue("mode"))
	if !ok {
		http.Error(w, "Unknown practice mode", http.StatusNotFound)
		return "", false
	}
	return mode, true
}

// Show displays the current state of one practice mode.
func (h *PracticeHandler) Show(w http.ResponseWriter, r *http.Request) {
	mode, ok := h.mode(w, r)
	if !ok {
		return
	}
	sets, tracker, ok := h.load(w, r)
	if !ok {
		return
	}

	h.render(w, r, sets, tracker, mode, "", "", nil)
}

// Start handles the Start / Continue button: draws a new question unless
// one is already pending or the set is complete.
func (h *PracticeHandler) Start(w http.ResponseWriter, r *http.Request) {
	mode, ok := h.mode(w, r)
	if !ok {
		return
	}
	sets, tracker, ok := h.load(w, r)
	if !ok {
		return
	}

	notice := ""
	if _, err := tracker.Session(mode).StartOrContinue(); err != nil {
		if errors.Is(err, practice.ErrCompleted) {
			notice = NoticeSetCompleted
		} else {
			respondWithError(w, http.StatusInternalServerError, "Failed to build a question", "Error starting question", err)
			return
		}
	}

	h.render(w, r, sets, tracker, mode, notice, "", nil)
}

// Answer handles an answer submission for the current question.
func (h *PracticeHandler) Answer(w http.ResponseWriter, r *http.Request) {
	mode, ok := h.mode(w, r)
	if !ok {
		return
	}
	sets, tracker, ok := h.load(w, r)
	if !ok {
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	sess := tracker.Session(mode)
	current := sess.Current()
	result, err := sess.Submit(r.FormValue("answer"))
	if err != nil {
		var notice, warning string
		switch {
		case errors.Is(err, practice.ErrEmptySelection):
			warning = WarnEmptySelection
		case errors.Is(err, practice.ErrCompleted):
			notice = NoticeSetCompleted
		case errors.Is(err, practice.ErrNoQuestion):
			notice = NoticeStartFirst
		default:
			respondWithError(w, http.StatusInternalServerError, "Failed to check the answer", "Error checking answer", err)
			return
		}
		h.render(w, r, sets, tracker, mode, notice, warning, nil)
		return
	}

	feedback := &Feedback{
		Correct:       result.Correct,
		JustCompleted: result.JustCompleted,
		CorrectWord:   result.CorrectWord,
	}
	if mode == models.ModeCloze && current != nil {
		// After a submission the cloze tab also shows the original
		// sentence with the target highlighted.
		feedback.SentenceHTML = highlightHTML(current.Target.Sentence, current.Target.Word)
	}

	h.render(w, r, sets, tracker, mode, "", "", feedback)
}

// Reset clears all progress of one practice mode for the active set.
func (h *PracticeHandler) Reset(w http.ResponseWriter, r *http.Request) {
	mode, ok := h.mode(w, r)
	if !ok {
		return
	}
	sets, tracker, ok := h.load(w, r)
	if !ok {
		return
	}

	tracker.Session(mode).Reset()
	h.render(w, r, sets, tracker, mode, NoticeReset, "", nil)
}

// ChangeSet switches the active word set, resetting every practice
// mode, then returns to the tab the change came from.
func (h *PracticeHandler) ChangeSet(w http.ResponseWriter, r *http.Request) {
	sets, tracker, ok := h.load(w, r)
	if !ok {
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	name := r.FormValue("set")
	if name != tracker.ActiveSet().Name {
		for _, set := range sets {
			if set.Name == name {
				tracker.ChangeSet(set)
				break
			}
		}
	}

	mode, ok := models.ParseMode(r.FormValue("mode"))
	if !ok {
		mode = models.ModeMeaning
	}
	http.Redirect(w, r, "/practice/"+url.PathEscape(string(mode)), http.StatusSeeOther)
}

func (h *PracticeHandler) render(w http.ResponseWriter, r *http.Request, sets []*models.WordSet, tracker *practice.Tracker, mode models.Mode, notice, warning string, feedback *Feedback) {
	sess := tracker.Session(mode)
	solved, total := sess.Progress()

	view := PracticeView{
		Title:       "Word Practice",
		Mode:        mode,
		Tabs:        modeTabs(mode),
		ActiveSet:   tracker.ActiveSet().Name,
		IsSpelling:  mode == models.ModeSpelling,
		SolvedCount: solved,
		TotalCount:  total,
		Completed:   sess.Completed(),
		Notice:      notice,
		Warning:     warning,
		Feedback:    feedback,
	}
	for _, set := range sets {
		view.SetNames = append(view.SetNames, set.Name)
	}
	if feedback != nil && feedback.JustCompleted {
		view.Notice = NoticeCelebration
	}

	if q := sess.Current(); q != nil && !sess.Completed() {
		view.HasQuestion = true
		view.Prompt = q.Prompt
		view.Translation = q.Translation
		view.Options = q.Options

		if q.Kind == quiz.KindSpelling {
			// Audio failure degrades to a warning; typing still works.
			data, err := h.tts.Synthesize(r.Context(), q.Target.Word, h.ttsLang)
			if err != nil {
				log.Printf("Error synthesizing audio for %q: %v", q.Target.Word, err)
				view.AudioWarning = true
				view.Warning = WarnAudioUnavailable
			} else {
				view.AudioURL = audioDataURL(data)
			}
		}
	}

	if err := h.templates.ExecuteTemplate(w, "practice.tmpl", view); err != nil {
		log.Printf("Error rendering practice template: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
