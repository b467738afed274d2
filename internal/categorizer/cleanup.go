package categorizer

import (
	"regexp"
	"strings"
)

// Cleanup passes applied in order to raw merchant descriptions. Each
// pattern removes one class of bank-added noise; what survives is the
// merchant name.
var (
	// Point-of-sale processor prefixes: "POS ", "TST* ", "SQ *", etc.
	posPrefixPattern = regexp.MustCompile(`(?i)^(POS\s+|TST\*\s*|SQ\s*\*\s*|PP\*\s*|PAYPAL\s*\*\s*|CHECKCARD\s+|DEBIT CARD PURCHASE\s+|PURCHASE\s+AUTHORIZED\s+ON\s+\d{2}/\d{2}\s+)`)

	// Masked card suffixes: "XXXX1234", "****1234", "X1234".
	maskedCardPattern = regexp.MustCompile(`(?i)\s*[X*]{2,}\d{2,6}\s*$`)

	// Trailing city/state/zip: "SEATTLE WA", "AUSTIN TX 78701". The city is
	// restricted to a single word so merchant words are not swallowed.
	cityStatePattern = regexp.MustCompile(`\s+[A-Z]{4,}\s+[A-Z]{2}(\s+\d{5}(-\d{4})?)?\s*$`)

	// Trailing long numeric ids the processor appends.
	trailingIDPattern = regexp.MustCompile(`\s+[#\d]{6,}\s*$`)

	whitespacePattern = regexp.MustCompile(`\s+`)
)

// CleanMerchantName normalizes a raw transaction description into a
// presentable merchant name: processor prefixes, masked-card suffixes,
// trailing location tokens, and long trailing ids are stripped, the
// canonical-name table is applied, and an all-uppercase survivor is
// title-cased.
func CleanMerchantName(raw string) string {
	name := strings.TrimSpace(raw)
	if name == "" {
		return ""
	}

	name = posPrefixPattern.ReplaceAllString(name, "")
	name = maskedCardPattern.ReplaceAllString(name, "")
	name = trailingIDPattern.ReplaceAllString(name, "")
	name = cityStatePattern.ReplaceAllString(name, "")
	name = whitespacePattern.ReplaceAllString(name, " ")
	name = strings.TrimSpace(name)
	if name == "" {
		return strings.TrimSpace(raw)
	}

	upper := strings.ToUpper(name)
	for _, rule := range merchantRules {
		if strings.Contains(upper, rule.fragment) {
			return rule.canonical
		}
	}

	if name == upper {
		return titleCase(name)
	}
	return name
}

// titleCase capitalizes the first letter of each word of an all-uppercase
// string, leaving short tokens like "LLC" or "USA" as they are.
func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		if len(w) <= 3 && isInitialism(strings.ToUpper(w)) {
			words[i] = strings.ToUpper(w)
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

var initialisms = map[string]bool{
	"LLC": true,
	"INC": true,
	"USA": true,
	"ATM": true,
	"POS": true,
}

func isInitialism(s string) bool {
	return initialisms[s]
}
