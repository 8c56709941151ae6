// Package suggest offers spelling corrections for words the dictionary
// API does not know, ranked by edit distance against a frequency-ordered
// word list.
package suggest

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

//go:embed words.txt
var embeddedWords string

// Index holds a lowercase word list, most common words first. It is
// immutable after construction and safe for concurrent use.
type Index struct {
	words       []string
	maxDistance int
}

// New builds an Index over the embedded word list.
func New(maxDistance int) *Index {
	idx, _ := fromReader(strings.NewReader(embeddedWords), maxDistance)
	return idx
}

// Load builds an Index from a word list file: one word per line, ordered
// by descending frequency, '#' starts a comment.
func Load(path string, maxDistance int) (*Index, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("suggest: open word list: %w", err)
	}
	defer f.Close()

	idx, err := fromReader(f, maxDistance)
	if err != nil {
		return nil, fmt.Errorf("suggest: read word list %s: %w", path, err)
	}
	return idx, nil
}

func fromReader(r io.Reader, maxDistance int) (*Index, error) {
	var words []string
	seen := make(map[string]struct{})
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		word := strings.ToLower(line)
		if _, ok := seen[word]; ok {
			continue
		}
		seen[word] = struct{}{}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return &Index{words: words, maxDistance: maxDistance}, nil
}

// Len reports the number of indexed words.
func (ix *Index) Len() int {
	return len(ix.words)
}

// Suggest returns up to max candidate corrections for word, closest edit
// distance first; ties keep word-list (frequency) order. An exact match
// is never suggested. The result may be empty.
func (ix *Index) Suggest(word string, max int) []string {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" || max <= 0 {
		return nil
	}

	type candidate struct {
		word     string
		distance int
	}

	var candidates []candidate
	for _, w := range ix.words {
		// Length difference is a lower bound on edit distance.
		if diff := len(w) - len(word); diff > ix.maxDistance || -diff > ix.maxDistance {
			continue
		}
		if w == word {
			continue
		}
		if d := levenshtein.ComputeDistance(word, w); d <= ix.maxDistance {
			candidates = append(candidates, candidate{word: w, distance: d})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].distance < candidates[j].distance
	})

	if len(candidates) > max {
		candidates = candidates[:max]
	}
	out := make([]string, len(candidates))
	for i, c := range candidates {
		out[i] = c.word
	}
	return out
}
