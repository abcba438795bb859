package quiz

import (
	"regexp"
	"strings"

	"wordpractice/internal/models"
)

// Kind distinguishes the question shapes.
type Kind int

const (
	KindMeaning Kind = iota
	KindCloze
	KindSpelling
)

// Question is one practice turn. It belongs to the session turn that
// created it and is replaced wholesale on the next draw or reset.
type Question struct {
	Kind        Kind
	Target      models.WordItem
	Prompt      string // masked sentence (cloze) or meaning text (meaning)
	Translation string
	Options     []string
	HasSentinel bool
}

// Check reports whether answer solves the question. Choice answers must
// match the target word exactly; spelling answers are compared after
// normalization and an all-punctuation answer never passes.
func (q *Question) Check(answer string) bool {
	if q.Kind == KindSpelling {
		norm := Normalize(answer)
		return norm != "" && norm == Normalize(q.Target.Word)
	}
	return answer == q.Target.Word
}

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Normalize lowercases s and strips every non-alphanumeric character, so
// differences in case, spacing and punctuation never fail a spelling
// check.
func Normalize(s string) string {
	return nonAlnum.ReplaceAllString(strings.ToLower(s), "")
}
