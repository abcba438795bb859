// Package match locates a target word or phrase inside an example
// sentence, tolerating the inflections that sentences apply to a lead
// auxiliary verb ("be good at" appears as "was good at").
package match

import (
	"regexp"
	"strings"
)

// auxForms lists the accepted inflections for the auxiliary verbs that
// can lead a target expression. Extending the lexicon is a data change,
// not a new code path.
var auxForms = map[string][]string{
	"be":   {"am", "is", "are", "was", "were", "be", "being", "been"},
	"have": {"have", "has", "had", "having"},
	"do":   {"do", "does", "did", "doing"},
}

// Matcher matches a compiled phrase in sentences, whole-word and
// case-insensitive. A Matcher is reusable and safe for concurrent use.
type Matcher struct {
	re *regexp.Regexp
}

// Compile builds a matcher for phrase. When the first token is a known
// auxiliary and more tokens follow, any form of that auxiliary is
// accepted in its place; otherwise the phrase must appear verbatim.
func Compile(phrase string) *Matcher {
	trimmed := strings.TrimSpace(phrase)
	parts := strings.Fields(trimmed)

	var pattern string
	if len(parts) > 1 {
		if forms, ok := auxForms[strings.ToLower(parts[0])]; ok {
			rest := regexp.QuoteMeta(strings.Join(parts[1:], " "))
			pattern = `\b(?:` + strings.Join(forms, "|") + `)\s+` + rest + `\b`
		}
	}
	if pattern == "" {
		pattern = `\b` + regexp.QuoteMeta(trimmed) + `\b`
	}

	return &Matcher{re: regexp.MustCompile(`(?i)` + pattern)}
}

// FindFirst returns the span of the first match in sentence.
func (m *Matcher) FindFirst(sentence string) (start, end int, ok bool) {
	loc := m.re.FindStringIndex(sentence)
	if loc == nil {
		return 0, 0, false
	}
	return loc[0], loc[1], true
}

// ReplaceAll applies render to every match. Sentences without a match
// are returned unchanged.
func (m *Matcher) ReplaceAll(sentence string, render func(matched string) string) string {
	return m.re.ReplaceAllStringFunc(sentence, render)
}

// MaskFirst blanks only the first occurrence of the phrase. A sentence
// whose target cannot be located comes back unchanged; the caller shows
// it unmasked rather than failing the question.
func (m *Matcher) MaskFirst(sentence, blank string) string {
	start, end, ok := m.FindFirst(sentence)
	if !ok {
		return sentence
	}
	return sentence[:start] + blank + sentence[end:]
}
