package models

// Mode identifies one of the practice modes.
type Mode string

const (
	// ModeMeaning asks for the word matching a displayed meaning.
	ModeMeaning Mode = "meaning"
	// ModeCloze asks for the word masked out of its example sentence.
	ModeCloze Mode = "cloze"
	// ModeSpelling plays the word's audio and asks for its spelling.
	ModeSpelling Mode = "spelling"
)

// ParseMode validates a mode value from a request path.
func ParseMode(s string) (Mode, bool) {
	switch Mode(s) {
	case ModeMeaning, ModeCloze, ModeSpelling:
		return Mode(s), true
	}
	return "", false
}
