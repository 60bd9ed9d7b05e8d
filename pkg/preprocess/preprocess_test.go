package preprocess

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitWords(t *testing.T) {
	tests := []struct {
		input string
		words []string
	}{
		{"how much is 50000 USD", []string{"how", "much", "is", "50000", "USD"}},
		{"hello, world!", []string{"hello", "world"}},
		{"", nil},
		{"...", nil},
	}

	for _, tt := range tests {
		var words []string
		for _, tok := range SplitWords(tt.input) {
			if tok.Kind == KindWord {
				words = append(words, tok.Text)
			}
		}
		assert.Equal(t, tt.words, words, "input %q", tt.input)
	}
}

func TestSplitWords_Offsets(t *testing.T) {
	tokens := SplitWords("ab cd")
	require.Len(t, tokens, 3)
	assert.Equal(t, Token{Text: "ab", Kind: KindWord, Start: 0, End: 2}, tokens[0])
	assert.Equal(t, Token{Text: " ", Kind: KindSeparator, Start: 2, End: 3}, tokens[1])
	assert.Equal(t, Token{Text: "cd", Kind: KindWord, Start: 3, End: 5}, tokens[2])
}

func TestPreprocessor_Tokens(t *testing.T) {
	path := writeStopwordFile(t, "the", "is", "a", "my")

	p, err := NewPreprocessor(path, Options{
		Lowercase:         true,
		RemovePunctuation: true,
		RemoveStopwords:   true,
	})
	require.NoError(t, err)
	defer p.Close()

	tokens := p.Tokens("The balance is 50000 USD, roughly.")
	assert.Equal(t, []string{"balance", "50000", "usd", "roughly"}, tokens)
}

func TestPreprocessor_KeepPunctuation(t *testing.T) {
	p := NewPreprocessorNoStopwords(Options{
		Lowercase:         true,
		RemovePunctuation: false,
	})

	tokens := p.Tokens("Enough? Yes!")
	assert.Equal(t, []string{"enough", "?", "yes", "!"}, tokens)
}

func TestPreprocessor_Stemming(t *testing.T) {
	p := NewPreprocessorNoStopwords(Options{
		Lowercase: true,
		Stem:      true,
	})

	tests := []struct {
		input    string
		expected string
	}{
		{"running", "run"},
		{"accounts", "account"},
		{"cats", "cat"},
	}

	for _, tt := range tests {
		tokens := p.Tokens(tt.input)
		require.Len(t, tokens, 1)
		assert.Equal(t, tt.expected, tokens[0])
	}
}

func TestPreprocessor_Process(t *testing.T) {
	path := writeStopwordFile(t, "i", "and", "per")

	p, err := NewPreprocessor(path, Options{
		Lowercase:         true,
		RemovePunctuation: true,
		RemoveStopwords:   true,
	})
	require.NoError(t, err)
	defer p.Close()

	assert.Equal(t, "save 10000 usd year", p.Process("I save 10000 USD per year"))
}

func TestStemEnglish_NeverEmpty(t *testing.T) {
	// Stemmer output varies across words; just confirm it always yields
	// something for typical finance vocabulary.
	words := []string{"savings", "invested", "mortgage", "dividends", "budgeting"}
	for _, w := range words {
		assert.NotEmpty(t, StemEnglish(w))
	}
}
