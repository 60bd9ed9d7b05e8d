package preprocess

import (
	"unicode"
)

// TokenKind identifies the kind of raw token.
type TokenKind int

const (
	KindWord TokenKind = iota
	KindSeparator
)

// Token represents a span of input before any normalization.
type Token struct {
	Text  string
	Kind  TokenKind
	Start int
	End   int
}

// SplitWords splits text into word and separator tokens.
// Word characters: letters and numbers. Everything else separates.
func SplitWords(text string) []Token {
	var tokens []Token
	runes := []rune(text)

	if len(runes) == 0 {
		return tokens
	}

	start := 0
	current := kindOf(runes[0])

	for i := 1; i <= len(runes); i++ {
		var next TokenKind
		if i < len(runes) {
			next = kindOf(runes[i])
		} else {
			next = TokenKind(-1) // Force flush
		}

		if next != current {
			tokens = append(tokens, Token{
				Text:  string(runes[start:i]),
				Kind:  current,
				Start: start,
				End:   i,
			})
			start = i
			current = next
		}
	}

	return tokens
}

func kindOf(r rune) TokenKind {
	if unicode.IsLetter(r) || unicode.IsNumber(r) {
		return KindWord
	}
	return KindSeparator
}
