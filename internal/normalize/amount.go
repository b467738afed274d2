// Package normalize provides the pure value normalizers used by every
// parser: locale-tolerant amount parsing and multi-pattern date parsing.
// Both functions accept arbitrary text and never return an error; an
// unrecognized value yields the absent/empty result instead.
package normalize

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"fjacquet/bank-import/internal/models"
)

// currencyNoise matches currency symbols, letter currency codes, and
// whitespace that may surround a numeric amount in bank exports.
var currencyNoise = regexp.MustCompile(`[€$£¥₣₤₧₹₺₽₩฿₫₲₴₸₼₪A-Za-z\s']`)

// ParseAmount converts a raw cell value into a signed decimal amount.
// It strips currency symbols and thousands separators, honors the
// accounting convention that a parenthesized value is negative, and
// returns the absent value when the remainder is not a valid decimal.
func ParseAmount(raw string) decimal.NullDecimal {
	s := strings.TrimSpace(raw)
	if s == "" {
		return models.NoAmount()
	}

	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = s[1 : len(s)-1]
	}

	s = currencyNoise.ReplaceAllString(s, "")
	s = normalizeSeparators(s)

	if s == "" || s == "-" || s == "+" {
		return models.NoAmount()
	}

	amount, err := decimal.NewFromString(s)
	if err != nil {
		return models.NoAmount()
	}
	if negative {
		amount = amount.Neg()
	}
	return models.NullAmount(amount)
}

// normalizeSeparators rewrites European decimal commas and thousands
// separators into the plain form decimal.NewFromString accepts.
func normalizeSeparators(s string) string {
	hasComma := strings.Contains(s, ",")
	hasDot := strings.Contains(s, ".")

	switch {
	case hasComma && hasDot:
		if strings.LastIndex(s, ".") < strings.LastIndex(s, ",") {
			// European style: 1.234,56
			s = strings.ReplaceAll(s, ".", "")
			s = strings.ReplaceAll(s, ",", ".")
		} else {
			// US style: 1,234.56
			s = strings.ReplaceAll(s, ",", "")
		}
	case hasComma:
		parts := strings.Split(s, ",")
		if len(parts[len(parts)-1]) <= 2 {
			// Decimal comma: 1234,56
			s = strings.ReplaceAll(s, ",", ".")
		} else {
			// Thousands comma: 1,234
			s = strings.ReplaceAll(s, ",", "")
		}
	}
	return s
}

// LooksNumeric reports whether a raw cell value parses as an amount. The
// role detector uses this for content sniffing.
func LooksNumeric(raw string) bool {
	return ParseAmount(raw).Valid
}
