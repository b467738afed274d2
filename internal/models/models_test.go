package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMappingBuilderValid(t *testing.T) {
	m, err := NewMappingBuilder().
		WithColumn(RoleDate, "Date").
		WithColumn(RoleAmount, "Amount").
		WithColumn(RoleDescription, "Description").
		Build()

	require.NoError(t, err)
	assert.Equal(t, "Date", m.Date)
	assert.Equal(t, "Amount", m.Amount)
	assert.False(t, m.IsSplit())
}

func TestMappingBuilderSplit(t *testing.T) {
	m, err := NewMappingBuilder().
		WithColumn(RoleDate, "Date").
		WithColumn(RoleDebit, "Withdrawals").
		WithColumn(RoleCredit, "Deposits").
		Build()

	require.NoError(t, err)
	assert.True(t, m.IsSplit())
	assert.Equal(t, "Withdrawals", m.Column(RoleDebit))
	assert.Equal(t, "Deposits", m.Column(RoleCredit))
}

func TestMappingBuilderRejectsAmountWithSplit(t *testing.T) {
	_, err := NewMappingBuilder().
		WithColumn(RoleAmount, "Amount").
		WithColumn(RoleDebit, "Debit").
		Build()

	assert.Error(t, err)
}

func TestMappingBuilderRejectsSharedColumn(t *testing.T) {
	_, err := NewMappingBuilder().
		WithColumn(RoleDate, "Posted").
		WithColumn(RoleMemo, "Posted").
		Build()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Posted")
}

func TestMappingBuilderEmptyColumnIsNoOp(t *testing.T) {
	m, err := NewMappingBuilder().
		WithColumn(RoleDate, "Date").
		WithColumn(RoleMemo, "").
		Build()

	require.NoError(t, err)
	assert.Equal(t, "", m.Memo)
}

func TestMappingBuilderUnknownRole(t *testing.T) {
	_, err := NewMappingBuilder().
		WithColumn(Role("bogus"), "Col").
		Build()

	assert.Error(t, err)
}

func TestDetectedFormatToMappingSingle(t *testing.T) {
	f := &DetectedFormat{
		DateColumn:        "Date",
		AmountColumn:      "Amount",
		DescriptionColumn: "Payee",
		AmountStyle:       AmountStyleSingle,
	}

	m, err := f.ToMapping()
	require.NoError(t, err)
	assert.Equal(t, "Amount", m.Amount)
	assert.False(t, m.IsSplit())
}

func TestDetectedFormatToMappingSplitIgnoresAmount(t *testing.T) {
	// A split-style format never carries its amount column into the mapping,
	// so the builder's conflict rule cannot trip on detected formats.
	f := &DetectedFormat{
		DateColumn:   "Date",
		AmountColumn: "Amount",
		DebitColumn:  "Debit",
		CreditColumn: "Credit",
		AmountStyle:  AmountStyleSplit,
	}

	m, err := f.ToMapping()
	require.NoError(t, err)
	assert.True(t, m.IsSplit())
	assert.Equal(t, "", m.Amount)
}

func TestClassifyType(t *testing.T) {
	tests := []struct {
		name        string
		amount      decimal.NullDecimal
		checkNumber string
		expected    string
	}{
		{"Check number wins", NullAmount(decimal.NewFromInt(100)), "1047", TransactionTypeCheck},
		{"Positive is credit", NullAmount(decimal.NewFromInt(50)), "", TransactionTypeCredit},
		{"Negative is debit", NullAmount(decimal.NewFromInt(-50)), "", TransactionTypeDebit},
		{"Zero is debit", NullAmount(decimal.Zero), "", TransactionTypeDebit},
		{"No amount defaults to debit", NoAmount(), "", TransactionTypeDebit},
		{"Blank check number ignored", NullAmount(decimal.NewFromInt(10)), "   ", TransactionTypeCredit},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ClassifyType(tc.amount, tc.checkNumber))
		})
	}
}

func TestIsEmpty(t *testing.T) {
	assert.True(t, (&ParsedTransaction{}).IsEmpty())
	assert.True(t, (&ParsedTransaction{Description: UnknownDescription}).IsEmpty())
	assert.False(t, (&ParsedTransaction{Date: "2024-01-15"}).IsEmpty())
	assert.False(t, (&ParsedTransaction{Amount: NullAmount(decimal.NewFromInt(1))}).IsEmpty())
	assert.False(t, (&ParsedTransaction{Description: "Coffee"}).IsEmpty())
}

func TestIsDebit(t *testing.T) {
	assert.True(t, (&ParsedTransaction{Type: TransactionTypeDebit}).IsDebit())
	assert.True(t, (&ParsedTransaction{Type: TransactionTypeCheck}).IsDebit())
	assert.False(t, (&ParsedTransaction{Type: TransactionTypeCredit}).IsDebit())
}

func TestAmountOrZero(t *testing.T) {
	tx := &ParsedTransaction{Amount: NullAmount(decimal.RequireFromString("12.34"))}
	assert.Equal(t, "12.34", tx.AmountOrZero().String())

	empty := &ParsedTransaction{}
	assert.True(t, empty.AmountOrZero().IsZero())
}

func TestFailedResult(t *testing.T) {
	r := Failed(FileKindCSV, "input is empty")

	assert.False(t, r.Success)
	assert.Empty(t, r.Transactions)
	require.Len(t, r.Errors, 1)
	assert.Equal(t, SeverityError, r.Errors[0].Severity)
	assert.Equal(t, "input is empty", r.Errors[0].Message)
}

func TestParseErrorString(t *testing.T) {
	withRow := ParseError{Row: 3, Message: "bad date"}
	assert.Equal(t, "row 3: bad date", withRow.String())

	fileLevel := ParseError{Message: "no header"}
	assert.Equal(t, "no header", fileLevel.String())
}
