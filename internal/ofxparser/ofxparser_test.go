package ofxparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fjacquet/bank-import/internal/models"
)

const sampleOFX = `OFXHEADER:100
DATA:OFXSGML
VERSION:102

<OFX>
<BANKMSGSRSV1>
<STMTTRNRS>
<STMTRS>
<BANKACCTFROM>
<BANKID>021000021
<ACCTID>123456789012
<ACCTTYPE>CHECKING
</BANKACCTFROM>
<BANKTRANLIST>
<STMTTRN>
<TRNTYPE>DEBIT</TRNTYPE>
<DTPOSTED>20240115120000[-5:EST]</DTPOSTED>
<TRNAMT>-4.50</TRNAMT>
<FITID>2024011501</FITID>
<NAME>COFFEE SHOP</NAME>
<MEMO>CARD 1234</MEMO>
</STMTTRN>
<STMTTRN>
<TRNTYPE>CREDIT
<DTPOSTED>20240116
<TRNAMT>2500.00
<FITID>2024011602
<NAME>ACME PAYROLL
</STMTTRN>
</BANKTRANLIST>
</STMTRS>
</STMTTRNRS>
</BANKMSGSRSV1>
</OFX>`

func TestParseMixedClosingStyles(t *testing.T) {
	result := Parse(sampleOFX, nil)

	require.True(t, result.Success)
	require.Len(t, result.Transactions, 2)

	first := result.Transactions[0]
	assert.Equal(t, "2024-01-15", first.Date)
	assert.Equal(t, "-4.5", first.Amount.Decimal.String())
	assert.Equal(t, "COFFEE SHOP - CARD 1234", first.Description)
	assert.Equal(t, "CARD 1234", first.Memo)
	assert.Equal(t, "2024011501", first.ReferenceID)
	assert.Equal(t, models.TransactionTypeDebit, first.Type)
	assert.Equal(t, 1, first.RowNumber)

	second := result.Transactions[1]
	assert.Equal(t, "2024-01-16", second.Date)
	assert.Equal(t, "ACME PAYROLL", second.Description)
	assert.Equal(t, models.TransactionTypeCredit, second.Type)
	assert.Equal(t, 2, second.RowNumber)
}

func TestParseRecoversAccount(t *testing.T) {
	result := Parse(sampleOFX, nil)

	require.NotNil(t, result.Account)
	assert.Equal(t, "****9012", result.Account.MaskedNumber)
	assert.Equal(t, models.AccountTypeChecking, result.Account.AccountType)
	assert.Equal(t, "021000021", result.Account.BankID)
}

func TestParseCreditCardAccount(t *testing.T) {
	text := `<OFX><CREDITCARDMSGSRSV1><CCSTMTRS>
<CCACCTFROM><ACCTID>4111111111111111</CCACCTFROM>
<BANKTRANLIST>
<STMTTRN><TRNTYPE>DEBIT<DTPOSTED>20240201<TRNAMT>-19.99<NAME>STREAMING SVC
</BANKTRANLIST></CCSTMTRS></CREDITCARDMSGSRSV1></OFX>`

	result := Parse(text, nil)

	require.True(t, result.Success)
	require.NotNil(t, result.Account)
	assert.Equal(t, models.AccountTypeCreditCard, result.Account.AccountType)
	assert.Equal(t, "****1111", result.Account.MaskedNumber)
}

func TestParseUnknownAccountTypeMapsToOther(t *testing.T) {
	text := `<BANKACCTFROM><ACCTID>99<ACCTTYPE>SOMETHINGNEW</BANKACCTFROM>
<STMTTRN><DTPOSTED>20240115<TRNAMT>-1.00<NAME>X`

	result := Parse(text, nil)

	require.True(t, result.Success)
	require.NotNil(t, result.Account)
	assert.Equal(t, models.AccountTypeOther, result.Account.AccountType)
	assert.Equal(t, "99", result.Account.MaskedNumber)
}

func TestParseMemoOnlyDescription(t *testing.T) {
	text := `<STMTTRN><DTPOSTED>20240115<TRNAMT>-5.00<MEMO>POS PURCHASE 889</MEMO></STMTTRN>`

	result := Parse(text, nil)

	require.True(t, result.Success)
	assert.Equal(t, "POS PURCHASE 889", result.Transactions[0].Description)
}

func TestParseCheckTransaction(t *testing.T) {
	text := `<STMTTRN><TRNTYPE>CHECK<DTPOSTED>20240120<TRNAMT>-250.00<CHECKNUM>1047<NAME>CHECK 1047`

	result := Parse(text, nil)

	require.True(t, result.Success)
	tx := result.Transactions[0]
	assert.Equal(t, models.TransactionTypeCheck, tx.Type)
	assert.Equal(t, "1047", tx.CheckNumber)
}

func TestParseNoBlocksIsOnlyFailure(t *testing.T) {
	result := Parse("<OFX><BANKMSGSRSV1></BANKMSGSRSV1></OFX>", nil)

	assert.False(t, result.Success)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, models.SeverityError, result.Errors[0].Severity)
	assert.Contains(t, result.Errors[0].Message, "no transaction blocks")
}

func TestParseBadPostedDateIsWarning(t *testing.T) {
	text := `<STMTTRN><DTPOSTED>JANUARY<TRNAMT>-5.00<NAME>SHOP`

	result := Parse(text, nil)

	require.True(t, result.Success)
	assert.Empty(t, result.Transactions[0].Date)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, models.SeverityWarning, result.Errors[0].Severity)
}

func TestParseLowercaseDialect(t *testing.T) {
	text := `<stmttrn><trntype>debit<dtposted>20240115<trnamt>-7.25<name>Lunch Cart No. 5<memo>Card 1234`

	result := Parse(text, nil)

	require.True(t, result.Success)
	require.Len(t, result.Transactions, 1)
	tx := result.Transactions[0]
	assert.Equal(t, "2024-01-15", tx.Date)
	assert.Equal(t, models.TransactionTypeDebit, tx.Type)
	// Lowercase tags must not cost the values their original case.
	assert.Equal(t, "Lunch Cart No. 5 - Card 1234", tx.Description)
	assert.Equal(t, "Card 1234", tx.Memo)
}

func TestParseWhitespaceHeavyDialect(t *testing.T) {
	text := "< STMTTRN >\n    < DTPOSTED >20240115\n    < TRNAMT >-3.00\n    < NAME >Corner Kiosk\n< /STMTTRN >"

	result := Parse(text, nil)

	require.True(t, result.Success)
	require.Len(t, result.Transactions, 1)
	assert.Equal(t, "2024-01-15", result.Transactions[0].Date)
	assert.Equal(t, "Corner Kiosk", result.Transactions[0].Description,
		"whitespace normalization must leave value case alone")
}

func TestParseCompactDate(t *testing.T) {
	tests := []struct {
		raw      string
		expected string
	}{
		{"20240115", "2024-01-15"},
		{"20240115120000", "2024-01-15"},
		{"20240115120000[-5:EST]", "2024-01-15"},
		{" 20240115 ", "2024-01-15"},
		{"2024011", ""},
		{"2024-01-15", ""},
		{"20241315", ""},
		{"ABCDEFGH", ""},
		{"", ""},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.expected, parseCompactDate(tc.raw), "input %q", tc.raw)
	}
}
