package fintext

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Multiplier scales a numeric literal to base currency units.
type Multiplier int64

const (
	MultiplierNone     Multiplier = 1
	MultiplierThousand Multiplier = 1_000
	MultiplierMillion  Multiplier = 1_000_000
	MultiplierBillion  Multiplier = 1_000_000_000
)

// ParseMultiplier maps a suffix letter (k/K, m/M, b/B) to its scale.
// Anything else, including the empty string, means no scaling.
func ParseMultiplier(s string) Multiplier {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "K":
		return MultiplierThousand
	case "M":
		return MultiplierMillion
	case "B":
		return MultiplierBillion
	default:
		return MultiplierNone
	}
}

// Qualifier marks an amount as exact or approximate.
type Qualifier int

const (
	QualifierNone Qualifier = iota
	QualifierApprox
)

// DefaultCurrency is assumed when an amount carries a multiplier or ISO
// code context but no currency symbol.
const DefaultCurrency = "USD"

// currencySymbols maps recognized symbols to ISO 4217 codes. Symbols
// outside this table never produce a match.
var currencySymbols = map[string]string{
	"$": "USD",
	"€": "EUR",
	"£": "GBP",
}

// CurrencyFromSymbol resolves a currency symbol to its ISO code.
func CurrencyFromSymbol(symbol string) (string, bool) {
	code, ok := currencySymbols[symbol]
	return code, ok
}

// MonetaryExpression is the structured form of one matched currency span.
// It exists only for the duration of a single replacement; only the
// rendered canonical string persists in the output text.
type MonetaryExpression struct {
	Raw       string
	Low       decimal.Decimal
	High      decimal.Decimal
	Currency  string
	Qualifier Qualifier
	IsRange   bool
}

// parseAmount parses a numeric literal and applies the multiplier, rounding
// half-up to whole base units (fractional cents are not meaningful here).
// Commas are treated as thousands separators. Returns false when the
// literal is not a number.
func parseAmount(literal string, mult Multiplier) (decimal.Decimal, bool) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(literal), ",", "")
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d.Mul(decimal.NewFromInt(int64(mult))).Round(0), true
}

// newAmount builds a single-amount expression from captured components.
func newAmount(raw, literal string, mult Multiplier, currency string, q Qualifier) (MonetaryExpression, bool) {
	v, ok := parseAmount(literal, mult)
	if !ok {
		return MonetaryExpression{}, false
	}
	return MonetaryExpression{
		Raw:       raw,
		Low:       v,
		High:      v,
		Currency:  currency,
		Qualifier: q,
	}, true
}

// newRange builds a range expression. Multipliers are applied to each
// endpoint independently before comparison; endpoints arriving reversed
// are swapped so Low <= High always holds.
func newRange(raw, lowLit string, lowMult Multiplier, highLit string, highMult Multiplier, currency string) (MonetaryExpression, bool) {
	low, ok := parseAmount(lowLit, lowMult)
	if !ok {
		return MonetaryExpression{}, false
	}
	high, ok := parseAmount(highLit, highMult)
	if !ok {
		return MonetaryExpression{}, false
	}
	if low.GreaterThan(high) {
		low, high = high, low
	}
	return MonetaryExpression{
		Raw:      raw,
		Low:      low,
		High:     high,
		Currency: currency,
		IsRange:  true,
	}, true
}

// Render produces the canonical token: "<amount> <CCY>" for single
// amounts, "<low>-<high> <CCY>" for ranges, with " approx." appended for
// approximate amounts. Canonical output never re-matches a catalog rule
// except as an identity rewrite.
func (m MonetaryExpression) Render() string {
	var b strings.Builder
	b.WriteString(m.Low.String())
	if m.IsRange {
		b.WriteByte('-')
		b.WriteString(m.High.String())
	}
	b.WriteByte(' ')
	b.WriteString(m.Currency)
	if m.Qualifier == QualifierApprox {
		b.WriteString(" approx.")
	}
	return b.String()
}
