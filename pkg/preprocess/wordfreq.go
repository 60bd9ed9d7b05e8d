package preprocess

import (
	"sort"
	"strings"
)

// WordCount is one word with its occurrence count.
type WordCount struct {
	Word  string
	Count int
}

// Frequencies counts word occurrences across texts, splitting on
// whitespace. When stopwords is non-nil, stopword tokens are excluded.
// Feeds the frequency charts built by the visualization collaborators.
func Frequencies(texts []string, stopwords *StopwordSet) map[string]int {
	freq := make(map[string]int)
	for _, text := range texts {
		for _, word := range strings.Fields(text) {
			if stopwords != nil && stopwords.Contains(word) {
				continue
			}
			freq[word]++
		}
	}
	return freq
}

// TopN returns the n most frequent words in descending count order; ties
// break alphabetically so output is deterministic.
func TopN(freq map[string]int, n int) []WordCount {
	counts := make([]WordCount, 0, len(freq))
	for word, count := range freq {
		counts = append(counts, WordCount{Word: word, Count: count})
	}

	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Word < counts[j].Word
	})

	if n < len(counts) {
		counts = counts[:n]
	}
	return counts
}
