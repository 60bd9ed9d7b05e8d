package fintext

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// StepFunc defines a single text cleaning step.
type StepFunc func(string) string

// Cleaner applies a configurable pipeline of cleaning steps. It prepares
// raw dataset text (HTML fragments, URLs, inconsistent abbreviations)
// before currency normalization; NormalizeText alone never alters
// non-monetary text.
type Cleaner struct {
	steps []StepFunc
}

// NewCleaner creates a cleaner with the default pipeline.
func NewCleaner() *Cleaner {
	return &Cleaner{
		steps: []StepFunc{
			NFKCFold,
			StripHTML,
			StripURLs,
			StripNoiseChars,
			DropFillerPhrases,
			ExpandAbbreviations,
			CollapseWhitespace,
		},
	}
}

// NewCleanerWithSteps creates a cleaner with a custom pipeline.
func NewCleanerWithSteps(steps ...StepFunc) *Cleaner {
	return &Cleaner{steps: steps}
}

// Clean applies all configured steps in order.
func (c *Cleaner) Clean(s string) string {
	for _, step := range c.steps {
		s = step(s)
	}
	return s
}

// NFKCFold applies Unicode NFKC normalization.
// Folds fullwidth forms: ＄ → $, １００ → 100.
func NFKCFold(s string) string {
	return norm.NFKC.String(s)
}

var htmlTagPat = regexp.MustCompile(`<[^>]*>`)

// StripHTML removes HTML tags.
func StripHTML(s string) string {
	return htmlTagPat.ReplaceAllString(s, "")
}

var urlPat = regexp.MustCompile(`https?://\S+|www\.\S+`)

// StripURLs replaces URLs with a single space.
func StripURLs(s string) string {
	return urlPat.ReplaceAllString(s, " ")
}

// noiseReplacer drops pipe and box-drawing characters and straightens
// fancy quotes. Periods and hyphens are kept: decimals and ranges must
// survive into currency normalization.
var noiseReplacer = strings.NewReplacer(
	"|", "",
	"ǀ", "",
	"│", "",
	"“", "", // left double quote
	"”", "", // right double quote
	"‘", "'", // left single quote
	"’", "'", // right single quote
)

// StripNoiseChars removes scraping artifacts that carry no meaning.
func StripNoiseChars(s string) string {
	return noiseReplacer.Replace(s)
}

var fillerPhrasePat = regexp.MustCompile(`(?i)see,? for starters at least,?`)

// DropFillerPhrases removes boilerplate phrases specific to the source
// forum data.
func DropFillerPhrases(s string) string {
	return fillerPhrasePat.ReplaceAllString(s, "")
}

var (
	usAbbrevPat     = regexp.MustCompile(`\bU\.S\.`)
	checkCashingPat = regexp.MustCompile(`(?i)check[- ]cashing`)
)

// ExpandAbbreviations standardizes abbreviation spellings that otherwise
// fragment token counts downstream.
func ExpandAbbreviations(s string) string {
	s = usAbbrevPat.ReplaceAllString(s, "US")
	s = checkCashingPat.ReplaceAllString(s, "check cashing")
	return s
}

var whitespacePat = regexp.MustCompile(`\s+`)

// CollapseWhitespace collapses runs of whitespace to single spaces and
// trims the ends.
func CollapseWhitespace(s string) string {
	return strings.TrimSpace(whitespacePat.ReplaceAllString(s, " "))
}
