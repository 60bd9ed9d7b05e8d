package fintext

import (
	"regexp"
	"strings"
)

// numberPat matches a numeric literal with optional thousands separators
// and an optional decimal part: 100, 1,000, 2.5.
const numberPat = `\d+(?:,\d{3})*(?:\.\d+)?`

// Rule pairs one recognizable surface form with its canonicalization.
// Rules are evaluated in catalog order: more specific forms (ranges,
// approximations) run before the plain forms they contain, so a plain
// rule never pre-consumes part of a range.
type Rule struct {
	Name    string
	Pattern *regexp.Regexp
	// Rewrite receives the submatches (full match first) and returns the
	// canonical replacement. ok=false declines the match and leaves the
	// original span untouched.
	Rewrite func(groups []string) (replacement string, ok bool)
}

// retirementPlans are number+letter tokens that name retirement accounts,
// never amounts of money.
var retirementPlans = map[string]struct{}{
	"401k": {},
	"403b": {},
	"457b": {},
}

func isRetirementPlan(literal, mult string) bool {
	_, ok := retirementPlans[strings.ToLower(literal+mult)]
	return ok
}

// resolveCurrency maps a symbol capture to its code, defaulting to USD
// when no symbol was captured.
func resolveCurrency(symbol string) (string, bool) {
	if symbol == "" {
		return DefaultCurrency, true
	}
	return CurrencyFromSymbol(symbol)
}

// rangeMultipliers resolves per-endpoint multipliers. A multiplier present
// on only one endpoint distributes to both, so "40-50K" scales both sides.
func rangeMultipliers(m1, m2 string) (Multiplier, Multiplier) {
	if m1 == "" {
		m1 = m2
	}
	if m2 == "" {
		m2 = m1
	}
	return ParseMultiplier(m1), ParseMultiplier(m2)
}

// DefaultCatalog returns the standard rule list in priority order:
//
//  1. symbol-range       $40-$50, €1M-€2M, $40-50K
//  2. range-multiplier   40-50K, 5K-10K, 1M-2M
//  3. approx-trailing    30k ish, $2M-ish
//  4. approx-leading     about 30k, around $2M, ~50k
//  5. symbol-multiplier  $50K, €2.5M
//  6. symbol-plain       $100
//  7. code-suffix        50k USD, 100 EUR
//  8. bare-multiplier    30k (currency defaults to USD)
//
// Multiplier letters and qualifier words match case-insensitively.
func DefaultCatalog() []Rule {
	return []Rule{
		{
			Name: "symbol-range",
			Pattern: regexp.MustCompile(
				`([$€£])\s*(` + numberPat + `)([KkMmBb])?\s*[-–—]\s*([$€£]?)\s*(` + numberPat + `)([KkMmBb])?\b`),
			Rewrite: rewriteSymbolRange,
		},
		{
			Name: "range-multiplier",
			Pattern: regexp.MustCompile(
				`\b(` + numberPat + `)([KkMmBb])?\s*[-–—]\s*(` + numberPat + `)([KkMmBb])?\b`),
			Rewrite: rewriteBareRange,
		},
		{
			Name: "approx-trailing",
			Pattern: regexp.MustCompile(
				`(?i)([$€£])?\s*\b(` + numberPat + `)([KMB])?[\s-]*ish\b`),
			Rewrite: rewriteApprox,
		},
		{
			Name: "approx-leading",
			Pattern: regexp.MustCompile(
				`(?i)(?:\b(?:about|around|approximately|roughly)\s+|~\s*)([$€£])?\s*\b(` + numberPat + `)([KMB])?\b`),
			Rewrite: rewriteApprox,
		},
		{
			Name: "symbol-multiplier",
			Pattern: regexp.MustCompile(
				`([$€£])\s*\b(` + numberPat + `)\s*([KkMmBb])\b`),
			Rewrite: rewriteSymbolAmount,
		},
		{
			Name: "symbol-plain",
			Pattern: regexp.MustCompile(
				`([$€£])\s*\b(` + numberPat + `)\b`),
			Rewrite: rewriteSymbolPlain,
		},
		{
			Name: "code-suffix",
			Pattern: regexp.MustCompile(
				`(?i)\b(` + numberPat + `)\s*([KMB])?\s*(USD|EUR|GBP)\b`),
			Rewrite: rewriteCodeSuffix,
		},
		{
			Name: "bare-multiplier",
			Pattern: regexp.MustCompile(
				`(?i)\b(` + numberPat + `)([KMB])\b`),
			Rewrite: rewriteBareMultiplier,
		},
	}
}

func rewriteSymbolRange(g []string) (string, bool) {
	sym1, low, m1, sym2, high, m2 := g[1], g[2], g[3], g[4], g[5], g[6]
	if sym2 != "" && sym2 != sym1 {
		// Mixed-currency span, e.g. "$50-€100". Leave it for the
		// single-amount rules to handle piecewise.
		return "", false
	}
	currency, ok := CurrencyFromSymbol(sym1)
	if !ok {
		return "", false
	}
	lowMult, highMult := rangeMultipliers(m1, m2)
	expr, ok := newRange(g[0], low, lowMult, high, highMult, currency)
	if !ok {
		return "", false
	}
	return expr.Render(), true
}

func rewriteBareRange(g []string) (string, bool) {
	low, m1, high, m2 := g[1], g[2], g[3], g[4]
	if m1 == "" && m2 == "" {
		// Plain "40-50" is not recognizably monetary.
		return "", false
	}
	lowMult, highMult := rangeMultipliers(m1, m2)
	expr, ok := newRange(g[0], low, lowMult, high, highMult, DefaultCurrency)
	if !ok {
		return "", false
	}
	return expr.Render(), true
}

func rewriteApprox(g []string) (string, bool) {
	sym, literal, mult := g[1], g[2], g[3]
	if sym == "" && mult == "" {
		// "about 30" alone is not recognizably monetary.
		return "", false
	}
	if sym == "" && isRetirementPlan(literal, mult) {
		return "", false
	}
	currency, ok := resolveCurrency(sym)
	if !ok {
		return "", false
	}
	expr, ok := newAmount(g[0], literal, ParseMultiplier(mult), currency, QualifierApprox)
	if !ok {
		return "", false
	}
	return expr.Render(), true
}

func rewriteSymbolAmount(g []string) (string, bool) {
	sym, literal, mult := g[1], g[2], g[3]
	currency, ok := CurrencyFromSymbol(sym)
	if !ok {
		return "", false
	}
	expr, ok := newAmount(g[0], literal, ParseMultiplier(mult), currency, QualifierNone)
	if !ok {
		return "", false
	}
	return expr.Render(), true
}

func rewriteSymbolPlain(g []string) (string, bool) {
	sym, literal := g[1], g[2]
	currency, ok := CurrencyFromSymbol(sym)
	if !ok {
		return "", false
	}
	expr, ok := newAmount(g[0], literal, MultiplierNone, currency, QualifierNone)
	if !ok {
		return "", false
	}
	return expr.Render(), true
}

func rewriteCodeSuffix(g []string) (string, bool) {
	literal, mult, code := g[1], g[2], g[3]
	expr, ok := newAmount(g[0], literal, ParseMultiplier(mult), strings.ToUpper(code), QualifierNone)
	if !ok {
		return "", false
	}
	return expr.Render(), true
}

func rewriteBareMultiplier(g []string) (string, bool) {
	literal, mult := g[1], g[2]
	if isRetirementPlan(literal, mult) {
		return "", false
	}
	expr, ok := newAmount(g[0], literal, ParseMultiplier(mult), DefaultCurrency, QualifierNone)
	if !ok {
		return "", false
	}
	return expr.Render(), true
}
