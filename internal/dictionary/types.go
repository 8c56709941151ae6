// Package dictionary talks to the dictionaryapi.dev REST API and exposes
// its response shape with explicit optional fields and defined fallbacks.
package dictionary

// Entry is one dictionary result for a word. The API returns an array of
// entries; only the first is consumed.
type Entry struct {
	Word       string     `json:"word"`
	Phonetic   string     `json:"phonetic,omitempty"`
	Phonetics  []Phonetic `json:"phonetics,omitempty"`
	Meanings   []Meaning  `json:"meanings"`
	SourceURLs []string   `json:"sourceUrls,omitempty"`
}

// Phonetic is one pronunciation variant. Text may be empty.
type Phonetic struct {
	Text  string `json:"text,omitempty"`
	Audio string `json:"audio,omitempty"`
}

// Meaning is one part-of-speech grouping within an entry.
type Meaning struct {
	PartOfSpeech string       `json:"partOfSpeech"`
	Definitions  []Definition `json:"definitions"`
	Synonyms     []string     `json:"synonyms,omitempty"`
	Antonyms     []string     `json:"antonyms,omitempty"`
}

// Definition is one sense of a meaning.
type Definition struct {
	Definition string   `json:"definition"`
	Example    string   `json:"example,omitempty"`
	Synonyms   []string `json:"synonyms,omitempty"`
	Antonyms   []string `json:"antonyms,omitempty"`
}

// PhoneticText resolves the pronunciation to display: the entry-level
// phonetic, then the first non-empty phonetics-array text, then "N/A".
func (e *Entry) PhoneticText() string {
	if e.Phonetic != "" {
		return e.Phonetic
	}
	for _, p := range e.Phonetics {
		if p.Text != "" {
			return p.Text
		}
	}
	return "N/A"
}

// FirstSourceURL returns the first non-empty source URL, or "".
func (e *Entry) FirstSourceURL() string {
	for _, u := range e.SourceURLs {
		if u != "" {
			return u
		}
	}
	return ""
}
