// Package fingerprint derives short duplicate-suspicion keys from
// transaction fields.
//
// The hash is deliberately simple and collision-prone: it is a client-side
// hint for flagging probable duplicates in a review UI, not an identifier.
// The persistence layer's exact-match check is the authoritative duplicate
// test. Do not upgrade this to a cryptographic hash without renegotiating
// that contract.
package fingerprint

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

const separator = "|"

// Generate returns a stable key for (date, amount, description).
// Inputs are normalized first: the date is used as provided or empty, the
// amount becomes its decimal string form or "0", and the description is
// lower-cased and trimmed, so case variants of the same description
// fingerprint identically.
func Generate(date string, amount decimal.NullDecimal, description string) string {
	amountStr := "0"
	if amount.Valid {
		amountStr = amount.Decimal.String()
	}
	key := date + separator + amountStr + separator +
		strings.ToLower(strings.TrimSpace(description))
	return strconv.FormatUint(uint64(rollingHash(key)), 36)
}

// rollingHash is a djb2-style rolling hash; wrap-around on overflow is
// intentional.
func rollingHash(s string) uint32 {
	var h uint32 = 5381
	for i := 0; i < len(s); i++ {
		h = h*33 + uint32(s[i])
	}
	return h
}
