package handlers

import (
	"encoding/base64"
	"html/template"
	"strings"

	"wordpractice/internal/match"
	"wordpractice/internal/models"
)

// ModeTab is one entry of the practice mode navigation.
type ModeTab struct {
	Mode   models.Mode
	Label  string
	Active bool
}

var modeLabels = map[models.Mode]string{
	models.ModeMeaning:  "Practice 1: Word & Meaning",
	models.ModeCloze:    "Practice 2: Word in Sentence",
	models.ModeSpelling: "Practice 3: Spelling",
}

func modeTabs(active models.Mode) []ModeTab {
	tabs := []ModeTab{
		{Mode: models.ModeMeaning},
		{Mode: models.ModeCloze},
		{Mode: models.ModeSpelling},
	}
	for i := range tabs {
		tabs[i].Label = modeLabels[tabs[i].Mode]
		tabs[i].Active = tabs[i].Mode == active
	}
	return tabs
}

// Feedback is the outcome banner rendered after an answer submission.
type Feedback struct {
	Correct       bool
	JustCompleted bool
	CorrectWord   string
	// SentenceHTML shows the original sentence with every occurrence
	// of the target highlighted (cloze mode only).
	SentenceHTML template.HTML
}

// PracticeView is the data for the practice page template.
type PracticeView struct {
	Title     string
	Mode      models.Mode
	Tabs      []ModeTab
	SetNames  []string
	ActiveSet string

	HasQuestion bool
	Prompt      string // masked sentence or meaning text
	Translation string
	Options     []string
	IsSpelling  bool

	AudioURL     template.URL
	AudioWarning bool

	SolvedCount int
	TotalCount  int
	Completed   bool

	Notice   string
	Warning  string
	Feedback *Feedback
}

// ReviewEntry is one studied word on the review page.
type ReviewEntry struct {
	Index        int
	Word         string
	Meaning      string
	Translation  string
	SentenceHTML template.HTML
	AudioURL     template.URL
	AudioWarning bool
}

// ReviewView is the data for the review page template.
type ReviewView struct {
	Title     string
	SetNames  []string
	ActiveSet string
	Items     []models.WordItem
	Selected  map[string]bool
	Entries   []ReviewEntry
	Warning   string
}

// WordlistView is the data for the word list page template.
type WordlistView struct {
	Title string
	Items []models.WordItem
}

// audioDataURL embeds MP3 bytes as a data URI so pages need no second
// round trip for playback (and iOS plays it inline). Typed as
// template.URL because html/template rejects data: URLs otherwise.
func audioDataURL(data []byte) template.URL {
	return template.URL("data:audio/mp3;base64," + base64.StdEncoding.EncodeToString(data))
}

// highlightHTML escapes sentence and wraps every occurrence of phrase in
// a highlight span so templates can render it as trusted HTML. The
// markers cannot appear in real text, so the escape pass never touches
// them.
func highlightHTML(sentence, phrase string) template.HTML {
	marked := match.Compile(phrase).ReplaceAll(sentence, func(matched string) string {
		return "\x00" + matched + "\x01"
	})
	escaped := template.HTMLEscapeString(marked)
	escaped = strings.ReplaceAll(escaped, "\x00", `<span class="highlight">`)
	escaped = strings.ReplaceAll(escaped, "\x01", `</span>`)
	return template.HTML(escaped)
}
