package models

// WordItem is one vocabulary entry loaded from the dataset. Items are
// immutable once loaded.
type WordItem struct {
	Word        string // target word or phrase, the answer
	Meaning     string
	Sentence    string // example usage containing the word or an inflected form
	Translation string
	Set         string // grouping value from the source data, empty when chunked
}

// WordSet is a named, ordered collection of word items. Sets are built
// once at load time and read-only afterwards, so they may be shared
// across sessions without coordination.
type WordSet struct {
	Name  string
	Items []WordItem
}

// Words returns the word column of the set in order.
func (s *WordSet) Words() []string {
	words := make([]string, len(s.Items))
	for i, item := range s.Items {
		words[i] = item.Word
	}
	return words
}

// Find returns the first item whose Word matches word exactly.
func (s *WordSet) Find(word string) (WordItem, bool) {
	for _, item := range s.Items {
		if item.Word == word {
			return item, true
		}
	}
	return WordItem{}, false
}
