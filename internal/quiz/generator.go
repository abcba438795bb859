// Package quiz builds single practice questions: sentence cloze MCQs,
// meaning MCQs and listen-and-spell items.
package quiz

import (
	"math/rand"

	"wordpractice/internal/match"
	"wordpractice/internal/models"
)

const (
	// Sentinel is the fixed trailing option of cloze questions. It is
	// always last, never shuffled, and never the correct answer.
	Sentinel = "None of the above"

	// Blank replaces the masked phrase in a cloze sentence.
	Blank = "________"

	// ClozeDistractors is how many wrong options a cloze question
	// carries when the set is large enough.
	ClozeDistractors = 3

	// MeaningOptions is the total option count for meaning questions.
	MeaningOptions = 5
)

// Rand is the random source for draws and shuffles. math/rand's *Rand
// satisfies it, which lets tests inject a fixed-seed source and assert
// exact orderings.
type Rand interface {
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

// GlobalRand draws from math/rand's shared locked source, safe for
// concurrent sessions.
type GlobalRand struct{}

func (GlobalRand) Intn(n int) int                     { return rand.Intn(n) }
func (GlobalRand) Shuffle(n int, swap func(i, j int)) { rand.Shuffle(n, swap) }

// Generator builds practice questions for words within their owning set.
type Generator struct {
	rng Rand
}

func NewGenerator(rng Rand) *Generator {
	return &Generator{rng: rng}
}

// Cloze builds a sentence cloze question: the target phrase is masked in
// its example sentence and up to three distractors from the rest of the
// set are shuffled together with the correct word, followed by the
// sentinel. Small sets degrade to fewer options, never an error.
func (g *Generator) Cloze(item models.WordItem, set *models.WordSet) *Question {
	masked := match.Compile(item.Word).MaskFirst(item.Sentence, Blank)

	options := g.mcqOptions(item.Word, set.Words(), ClozeDistractors)
	options = append(options, Sentinel)

	return &Question{
		Kind:        KindCloze,
		Target:      item,
		Prompt:      masked,
		Translation: item.Translation,
		Options:     options,
		HasSentinel: true,
	}
}

// Meaning builds a question showing the meaning text with exactly k
// options including the correct word. No sentinel in this mode. A
// non-positive k falls back to the default.
func (g *Generator) Meaning(item models.WordItem, set *models.WordSet, k int) *Question {
	if k <= 0 {
		k = MeaningOptions
	}

	options := g.mcqOptions(item.Word, dedup(set.Words()), k-1)
	if len(options) > k {
		options = options[:k]
	}

	return &Question{
		Kind:    KindMeaning,
		Target:  item,
		Prompt:  item.Meaning,
		Options: options,
	}
}

// Spelling builds a listen-and-spell item. The question is the target
// word itself; audio is produced by the audio collaborator and answers
// are checked after normalization.
func (g *Generator) Spelling(item models.WordItem) *Question {
	return &Question{Kind: KindSpelling, Target: item}
}

// mcqOptions draws up to n distinct distractors from pool (excluding the
// correct word), appends the correct word and shuffles the result.
func (g *Generator) mcqOptions(correct string, pool []string, n int) []string {
	distractors := make([]string, 0, len(pool))
	for _, w := range pool {
		if w != correct {
			distractors = append(distractors, w)
		}
	}

	g.rng.Shuffle(len(distractors), func(i, j int) {
		distractors[i], distractors[j] = distractors[j], distractors[i]
	})
	if len(distractors) > n {
		distractors = distractors[:n]
	}

	options := append(distractors, correct)
	g.rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	return options
}

func dedup(words []string) []string {
	seen := make(map[string]bool, len(words))
	out := make([]string, 0, len(words))
	for _, w := range words {
		if !seen[w] {
			seen[w] = true
			out = append(out, w)
		}
	}
	return out
}
