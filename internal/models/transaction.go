// Package models provides the data structures shared by every stage of the
// import pipeline. All values are created fresh per parse invocation and are
// treated as immutable once returned.
package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParsedTransaction is one inferred transaction row produced by a parser.
//
// Date is an ISO calendar date (YYYY-MM-DD) or empty when the source value
// could not be parsed. Amount is a currency-agnostic signed decimal; its
// Valid flag is false when no amount could be recovered. RawData preserves
// the original column or tag values keyed by source label for audit.
// Fingerprint is the duplicate-suspicion key stamped by the importer.
type ParsedTransaction struct {
	Date        string              `csv:"Date"`
	Amount      decimal.NullDecimal `csv:"Amount"`
	Description string              `csv:"Description"`
	Memo        string              `csv:"Memo"`
	CheckNumber string              `csv:"CheckNumber"`
	ReferenceID string              `csv:"ReferenceID"`
	Type        string              `csv:"Type"`
	Fingerprint string              `csv:"Fingerprint"`
	RawData     map[string]string   `csv:"-"`
	RowNumber   int                 `csv:"RowNumber"`
}

// HasAmount reports whether an amount was recovered for this row.
func (t *ParsedTransaction) HasAmount() bool {
	return t.Amount.Valid
}

// AmountOrZero returns the amount, or decimal.Zero when none was recovered.
func (t *ParsedTransaction) AmountOrZero() decimal.Decimal {
	if !t.Amount.Valid {
		return decimal.Zero
	}
	return t.Amount.Decimal
}

// IsDebit reports whether the transaction moves money out of the account.
func (t *ParsedTransaction) IsDebit() bool {
	return t.Type == TransactionTypeDebit || t.Type == TransactionTypeCheck
}

// IsEmpty reports whether the row carried zero signal: no date, no amount,
// and a description that fell back to the placeholder. Such rows are dropped
// by the assembler rather than surfaced as errors.
func (t *ParsedTransaction) IsEmpty() bool {
	return t.Date == "" && !t.Amount.Valid &&
		(t.Description == "" || t.Description == UnknownDescription)
}

// NullAmount wraps a decimal in a valid NullDecimal.
func NullAmount(d decimal.Decimal) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: d, Valid: true}
}

// NoAmount returns the invalid (absent) NullDecimal.
func NoAmount() decimal.NullDecimal {
	return decimal.NullDecimal{}
}

// ClassifyType derives the canonical transaction type from the recovered
// fields: a check number wins, otherwise the amount sign decides between
// debit and credit. Rows without an amount default to debit.
func ClassifyType(amount decimal.NullDecimal, checkNumber string) string {
	if strings.TrimSpace(checkNumber) != "" {
		return TransactionTypeCheck
	}
	if amount.Valid && amount.Decimal.Sign() > 0 {
		return TransactionTypeCredit
	}
	return TransactionTypeDebit
}
