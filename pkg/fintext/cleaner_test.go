package fintext

import (
	"testing"
)

func TestStripHTML(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"<b>bold</b> advice", "bold advice"},
		{"no markup", "no markup"},
		{"<a href=\"x\">link</a>", "link"},
	}

	for _, tt := range tests {
		result := StripHTML(tt.input)
		if result != tt.expected {
			t.Errorf("StripHTML(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}

func TestStripURLs(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"see https://example.com/page for more", "see   for more"},
		{"visit www.example.com today", "visit   today"},
		{"no links", "no links"},
	}

	for _, tt := range tests {
		result := StripURLs(tt.input)
		if result != tt.expected {
			t.Errorf("StripURLs(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}

func TestStripNoiseChars(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"amount | currency", "amount  currency"},
		{"“quoted”", "quoted"},
		{"don’t", "don't"},
		// Periods and hyphens survive: currency parsing needs them.
		{"$2.5M and 40-50K", "$2.5M and 40-50K"},
	}

	for _, tt := range tests {
		result := StripNoiseChars(tt.input)
		if result != tt.expected {
			t.Errorf("StripNoiseChars(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}

func TestExpandAbbreviations(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"U.S. markets", "US markets"},
		{"a check-cashing place", "a check cashing place"},
		{"Check Cashing fees", "check cashing fees"},
	}

	for _, tt := range tests {
		result := ExpandAbbreviations(tt.input)
		if result != tt.expected {
			t.Errorf("ExpandAbbreviations(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}

func TestCollapseWhitespace(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"  a \t b\n\nc  ", "a b c"},
		{"already clean", "already clean"},
		{"", ""},
	}

	for _, tt := range tests {
		result := CollapseWhitespace(tt.input)
		if result != tt.expected {
			t.Errorf("CollapseWhitespace(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}

func TestCleaner_Clean(t *testing.T) {
	c := NewCleaner()

	input := "Check <b>this</b>   out: https://example.com | about $50K ish"
	expected := "Check this out: about $50K ish"
	if result := c.Clean(input); result != expected {
		t.Errorf("Clean(%q) = %q, want %q", input, result, expected)
	}
}

func TestNewCleanerWithSteps(t *testing.T) {
	// Custom pipeline: only whitespace collapsing.
	c := NewCleanerWithSteps(CollapseWhitespace)

	result := c.Clean("  <b>kept</b>   markup  ")
	expected := "<b>kept</b> markup"
	if result != expected {
		t.Errorf("custom Clean = %q, want %q", result, expected)
	}
}

func TestPipeline_Run(t *testing.T) {
	p := NewPipeline()

	tests := []struct {
		input    string
		expected string
	}{
		{
			"I'd   pay <i>about</i> $50K for it",
			"I'd pay 50000 USD approx. for it",
		},
		{
			"see https://example.com — 40-50K range",
			"see — 40000-50000 USD range",
		},
	}

	for _, tt := range tests {
		result := p.Run(tt.input)
		if result != tt.expected {
			t.Errorf("Run(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}
