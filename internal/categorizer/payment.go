package categorizer

import (
	"regexp"
	"strings"
)

// Payment kinds recovered from a raw description. The kind pre-seeds the
// transaction type and drives review-queue prioritization upstream.
const (
	PaymentKindCheck        = "check"
	PaymentKindBill         = "bill"
	PaymentKindSubscription = "subscription"
)

// PaymentInfo is the outcome of payment-type detection.
type PaymentInfo struct {
	Kind        string
	CheckNumber string
}

// checkPatterns are tried in order against the raw description; the first
// capture that validates as a 3-8 digit number wins.
var checkPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bCHECK\s*(?:#|NO\.?|NUM(?:BER)?)?\s*(\d+)\b`),
	regexp.MustCompile(`(?i)\bCHK\s*#?\s*(\d+)\b`),
	regexp.MustCompile(`(?i)\bCHEQUE\s*#?\s*(\d+)\b`),
}

// DetectPaymentType inspects a raw description for an embedded check
// number or a known subscription/bill merchant. It returns the zero
// PaymentInfo when nothing matches.
func DetectPaymentType(description string) PaymentInfo {
	for _, pattern := range checkPatterns {
		m := pattern.FindStringSubmatch(description)
		if m == nil {
			continue
		}
		if validCheckNumber(m[1]) {
			return PaymentInfo{Kind: PaymentKindCheck, CheckNumber: m[1]}
		}
	}

	upper := strings.ToUpper(description)
	for _, fragment := range subscriptionMerchants {
		if strings.Contains(upper, fragment) {
			return PaymentInfo{Kind: PaymentKindSubscription}
		}
	}
	for _, fragment := range billMerchants {
		if strings.Contains(upper, fragment) {
			return PaymentInfo{Kind: PaymentKindBill}
		}
	}

	return PaymentInfo{}
}

// validCheckNumber accepts 3-8 digit check numbers; anything shorter is
// too ambiguous and anything longer is a reference id, not a check.
func validCheckNumber(s string) bool {
	return len(s) >= 3 && len(s) <= 8
}
