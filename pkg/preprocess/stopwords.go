package preprocess

import (
	"bufio"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/blevesearch/vellum"
)

// StopwordSet holds the stopword list in an FST for fast lookups during
// preprocessing. The plain text file stays the source of truth for edits;
// the FST file is derived and rebuilt on demand.
type StopwordSet struct {
	fst     *vellum.FST
	words   map[string]struct{}
	fstPath string
	txtPath string
	mu      sync.RWMutex
}

// NewStopwordSet loads a stopword list from a text file (one word per
// line, # comments allowed) and opens or builds the FST next to it.
func NewStopwordSet(txtPath string) (*StopwordSet, error) {
	fstPath := strings.TrimSuffix(txtPath, ".txt") + ".fst"

	s := &StopwordSet{
		words:   make(map[string]struct{}, 256),
		fstPath: fstPath,
		txtPath: txtPath,
	}

	if err := s.loadTextFile(); err != nil {
		return nil, err
	}

	if err := s.loadOrBuildFST(); err != nil {
		return nil, err
	}

	return s, nil
}

// loadTextFile reads words from the source text file.
func (s *StopwordSet) loadTextFile() error {
	file, err := os.Open(s.txtPath)
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		s.words[strings.ToLower(word)] = struct{}{}
	}
	return scanner.Err()
}

// loadOrBuildFST opens an existing FST or builds one from the word set.
func (s *StopwordSet) loadOrBuildFST() error {
	if fst, err := vellum.Open(s.fstPath); err == nil {
		s.fst = fst
		return nil
	}

	return s.rebuild()
}

// Contains reports whether word is a stopword (case-insensitive).
func (s *StopwordSet) Contains(word string) bool {
	lower := strings.ToLower(word)

	s.mu.RLock()
	defer s.mu.RUnlock()

	_, exists, _ := s.fst.Get([]byte(lower))
	return exists
}

// Add inserts a word and rebuilds the FST.
func (s *StopwordSet) Add(word string) error {
	lower := strings.ToLower(word)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.words[lower] = struct{}{}
	return s.rebuild()
}

// Remove deletes a word and rebuilds the FST.
func (s *StopwordSet) Remove(word string) error {
	lower := strings.ToLower(word)

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.words, lower)
	return s.rebuild()
}

// Rebuild regenerates the FST from the current word set and persists both
// files.
func (s *StopwordSet) Rebuild() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rebuild()
}

// rebuild regenerates without locking (caller must hold the lock).
func (s *StopwordSet) rebuild() error {
	if s.fst != nil {
		s.fst.Close()
		s.fst = nil
	}

	sorted := s.sortedWords()

	fstFile, err := os.Create(s.fstPath)
	if err != nil {
		return err
	}

	builder, err := vellum.New(fstFile, nil)
	if err != nil {
		fstFile.Close()
		return err
	}

	for _, word := range sorted {
		if err := builder.Insert([]byte(word), 0); err != nil {
			builder.Close()
			fstFile.Close()
			return err
		}
	}

	if err := builder.Close(); err != nil {
		fstFile.Close()
		return err
	}
	fstFile.Close()

	fst, err := vellum.Open(s.fstPath)
	if err != nil {
		return err
	}
	s.fst = fst

	return s.saveTextFile(sorted)
}

// sortedWords returns the word set in lexicographic order, as vellum
// requires for insertion.
func (s *StopwordSet) sortedWords() []string {
	sorted := make([]string, 0, len(s.words))
	for word := range s.words {
		sorted = append(sorted, word)
	}
	sort.Strings(sorted)
	return sorted
}

// saveTextFile writes the word set back to the source text file.
func (s *StopwordSet) saveTextFile(sorted []string) error {
	file, err := os.Create(s.txtPath)
	if err != nil {
		return err
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	for _, word := range sorted {
		if _, err := w.WriteString(word + "\n"); err != nil {
			return err
		}
	}
	return w.Flush()
}

// Close releases FST resources.
func (s *StopwordSet) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.fst != nil {
		err := s.fst.Close()
		s.fst = nil
		return err
	}
	return nil
}

// Len returns the number of stopwords.
func (s *StopwordSet) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.words)
}
