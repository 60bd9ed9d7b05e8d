package preprocess

import (
	"strings"

	"github.com/kljensen/snowball"
)

// Options control which preprocessing steps run.
type Options struct {
	Lowercase         bool
	RemovePunctuation bool
	RemoveStopwords   bool
	Stem              bool
}

// DefaultOptions enables every step.
func DefaultOptions() Options {
	return Options{
		Lowercase:         true,
		RemovePunctuation: true,
		RemoveStopwords:   true,
		Stem:              true,
	}
}

// Preprocessor turns normalized text into a reduced token stream for
// frequency analysis and downstream modeling.
type Preprocessor struct {
	stopwords *StopwordSet
	opts      Options
}

// NewPreprocessor creates a preprocessor backed by the stopword list at
// stopwordPath.
func NewPreprocessor(stopwordPath string, opts Options) (*Preprocessor, error) {
	stopwords, err := NewStopwordSet(stopwordPath)
	if err != nil {
		return nil, err
	}
	return &Preprocessor{stopwords: stopwords, opts: opts}, nil
}

// NewPreprocessorNoStopwords creates a preprocessor without a stopword
// list; the RemoveStopwords option is ignored.
func NewPreprocessorNoStopwords(opts Options) *Preprocessor {
	return &Preprocessor{opts: opts}
}

// Tokens returns the preprocessed tokens of text, applying the configured
// steps in order: split, lowercase, stopword filter, stem.
func (p *Preprocessor) Tokens(text string) []string {
	var out []string
	for _, tok := range SplitWords(text) {
		if tok.Kind != KindWord {
			if !p.opts.RemovePunctuation {
				if trimmed := strings.TrimSpace(tok.Text); trimmed != "" {
					out = append(out, trimmed)
				}
			}
			continue
		}

		word := tok.Text
		if p.opts.Lowercase {
			word = strings.ToLower(word)
		}
		if p.opts.RemoveStopwords && p.stopwords != nil && p.stopwords.Contains(word) {
			continue
		}
		if p.opts.Stem {
			word = StemEnglish(word)
		}
		out = append(out, word)
	}
	return out
}

// Process returns the preprocessed text as a single space-joined string.
func (p *Preprocessor) Process(text string) string {
	return strings.Join(p.Tokens(text), " ")
}

// StopwordCount returns the size of the loaded stopword list (0 when none
// is loaded).
func (p *Preprocessor) StopwordCount() int {
	if p.stopwords == nil {
		return 0
	}
	return p.stopwords.Len()
}

// Close releases stopword set resources.
func (p *Preprocessor) Close() error {
	if p.stopwords == nil {
		return nil
	}
	return p.stopwords.Close()
}

// StemEnglish applies the English Snowball stemmer.
func StemEnglish(s string) string {
	stemmed, err := snowball.Stem(s, "english", true)
	if err != nil {
		return s
	}
	return stemmed
}
