package practice

import (
	"wordpractice/internal/models"
	"wordpractice/internal/quiz"
)

// Modes lists every practice mode a tracker maintains.
var Modes = []models.Mode{models.ModeMeaning, models.ModeCloze, models.ModeSpelling}

// Tracker owns one session per practice mode, all scoped to the same
// active word set. Switching sets is a hard reset across every mode,
// not just the one on screen.
type Tracker struct {
	gen      *quiz.Generator
	rng      quiz.Rand
	set      *models.WordSet
	sessions map[models.Mode]*Session
}

// NewTracker creates a tracker with fresh sessions against set.
func NewTracker(set *models.WordSet, gen *quiz.Generator, rng quiz.Rand) *Tracker {
	t := &Tracker{gen: gen, rng: rng}
	t.ChangeSet(set)
	return t
}

// Session returns the session for mode. Unknown modes return nil.
func (t *Tracker) Session(mode models.Mode) *Session {
	return t.sessions[mode]
}

// ActiveSet returns the set every session currently practices.
func (t *Tracker) ActiveSet() *models.WordSet { return t.set }

// ChangeSet rebuilds every mode's session against set, discarding all
// prior progress.
func (t *Tracker) ChangeSet(set *models.WordSet) {
	t.set = set
	t.sessions = make(map[models.Mode]*Session, len(Modes))
	for _, mode := range Modes {
		t.sessions[mode] = NewSession(mode, set, t.gen, t.rng)
	}
}
