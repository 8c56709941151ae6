package dictionary

// LexicalSet holds the synonyms and antonyms aggregated from an entry,
// deduplicated and in first-seen order.
type LexicalSet struct {
	Synonyms []string
	Antonyms []string
}

// Empty reports whether the set holds no synonyms and no antonyms.
func (s LexicalSet) Empty() bool {
	return len(s.Synonyms) == 0 && len(s.Antonyms) == 0
}

// Aggregate walks every meaning and every definition of the entry and
// collects synonym and antonym lists from both levels, in encounter order.
// Display order matters, so duplicates are dropped keeping the first
// occurrence rather than collected into an unordered set.
func Aggregate(e *Entry) LexicalSet {
	var synonyms, antonyms []string

	for _, m := range e.Meanings {
		synonyms = append(synonyms, m.Synonyms...)
		antonyms = append(antonyms, m.Antonyms...)
		for _, d := range m.Definitions {
			synonyms = append(synonyms, d.Synonyms...)
			antonyms = append(antonyms, d.Antonyms...)
		}
	}

	return LexicalSet{
		Synonyms: dedupe(synonyms),
		Antonyms: dedupe(antonyms),
	}
}

func dedupe(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, v := range in {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
