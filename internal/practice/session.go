// Package practice tracks per-mode, per-set study progress: which words
// remain, which are solved, and what the current question is.
package practice

import (
	"errors"
	"fmt"
	"strings"

	"wordpractice/internal/models"
	"wordpractice/internal/quiz"
)

// State of a session within one word set.
type State int

const (
	// StateIdle has no current question: nothing solved yet, or just
	// reset.
	StateIdle State = iota
	// StateActive has a pending, not yet correctly answered question.
	StateActive
	// StateSolved means the current question was answered correctly;
	// the next start draws a new one.
	StateSolved
	// StateCompleted means every word in the set has been solved.
	StateCompleted
)

var (
	// ErrCompleted signals that the whole set is solved; the learner
	// resets to practice it again.
	ErrCompleted = errors.New("practice set already completed")

	// ErrEmptySelection is returned for a submission with no choice
	// made. It never mutates session state.
	ErrEmptySelection = errors.New("no answer selected")

	// ErrNoQuestion is returned when an answer arrives without an
	// active question.
	ErrNoQuestion = errors.New("no active question")
)

// Session tracks progress for one practice mode over one word set.
// Progress is consumed only by answering: while a question is pending,
// StartOrContinue keeps returning it instead of drawing a new one, so a
// hard word cannot be skipped.
type Session struct {
	mode models.Mode
	set  *models.WordSet
	gen  *quiz.Generator
	rng  quiz.Rand

	solved        map[string]bool
	current       *quiz.Question
	solvedCurrent bool
	completed     bool
}

// NewSession creates a fresh session for mode against set.
func NewSession(mode models.Mode, set *models.WordSet, gen *quiz.Generator, rng quiz.Rand) *Session {
	return &Session{
		mode:   mode,
		set:    set,
		gen:    gen,
		rng:    rng,
		solved: make(map[string]bool),
	}
}

// State derives the machine state from the tracked fields.
func (s *Session) State() State {
	switch {
	case s.completed:
		return StateCompleted
	case s.current == nil:
		return StateIdle
	case s.solvedCurrent:
		return StateSolved
	default:
		return StateActive
	}
}

// remaining lists the set's words not yet solved, in set order.
func (s *Session) remaining() []string {
	var out []string
	for _, w := range s.set.Words() {
		if !s.solved[w] {
			out = append(out, w)
		}
	}
	return out
}

// StartOrContinue returns the question for the next turn. A pending
// unanswered question is returned again unchanged; once the set is
// exhausted the session reports ErrCompleted until reset.
func (s *Session) StartOrContinue() (*quiz.Question, error) {
	if s.completed {
		return nil, ErrCompleted
	}
	if s.current != nil && !s.solvedCurrent {
		return s.current, nil
	}

	remaining := s.remaining()
	if len(remaining) == 0 {
		s.completed = true
		return nil, ErrCompleted
	}

	target := remaining[s.rng.Intn(len(remaining))]
	item, ok := s.set.Find(target)
	if !ok {
		// remaining is derived from the set itself, so a miss here
		// means the set mutated underneath us
		return nil, fmt.Errorf("word %q not found in set %q", target, s.set.Name)
	}

	s.current = s.question(item)
	s.solvedCurrent = false
	return s.current, nil
}

func (s *Session) question(item models.WordItem) *quiz.Question {
	switch s.mode {
	case models.ModeCloze:
		return s.gen.Cloze(item, s.set)
	case models.ModeSpelling:
		return s.gen.Spelling(item)
	default:
		return s.gen.Meaning(item, s.set, quiz.MeaningOptions)
	}
}

// Result reports the outcome of one submitted answer.
type Result struct {
	Correct       bool
	JustCompleted bool   // this answer solved the last remaining word
	CorrectWord   string // shown with the incorrect-answer feedback
}

// Submit checks choice against the current question. A wrong answer
// keeps the question in place so the learner can retry it; only a
// correct answer advances progress.
func (s *Session) Submit(choice string) (Result, error) {
	switch s.State() {
	case StateActive:
	case StateCompleted:
		return Result{}, ErrCompleted
	default:
		return Result{}, ErrNoQuestion
	}
	if strings.TrimSpace(choice) == "" {
		return Result{}, ErrEmptySelection
	}

	res := Result{CorrectWord: s.current.Target.Word}
	if !s.current.Check(choice) {
		return res, nil
	}

	res.Correct = true
	s.solved[s.current.Target.Word] = true
	s.solvedCurrent = true
	if len(s.remaining()) == 0 {
		s.completed = true
		res.JustCompleted = true
	}
	return res, nil
}

// Reset returns the session to a fresh state against the same set:
// nothing solved, no current question, not completed.
func (s *Session) Reset() {
	s.solved = make(map[string]bool)
	s.current = nil
	s.solvedCurrent = false
	s.completed = false
}

// Current returns the pending question, or nil.
func (s *Session) Current() *quiz.Question { return s.current }

// Completed reports whether the whole set has been solved.
func (s *Session) Completed() bool { return s.completed }

// Set returns the word set this session practices.
func (s *Session) Set() *models.WordSet { return s.set }

// Progress reports how many entries of the set are solved. The total
// counts rows, not distinct words, matching what the learner sees in
// the set listing.
func (s *Session) Progress() (solved, total int) {
	return len(s.solved), len(s.set.Items)
}
