// Package ofxparser extracts account and transaction data from SGML-style
// financial exchange exports (OFX, QFX, QBO). The format predates XML and
// many bank dialects never close their tags, so extraction is built on
// ordered pattern chains rather than a markup parser.
package ofxparser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"fjacquet/bank-import/internal/logging"
	"fjacquet/bank-import/internal/models"
	"fjacquet/bank-import/internal/normalize"
	"fjacquet/bank-import/internal/parsererror"
)

// transactionTags are the per-block fields recovered from each
// transaction block.
var transactionTags = []string{"TRNTYPE", "DTPOSTED", "TRNAMT", "FITID", "CHECKNUM", "NAME", "MEMO"}

// trnTypeMap maps exchange-format TRNTYPE tokens to canonical transaction
// types. Unlisted tokens fall back to amount-sign classification.
var trnTypeMap = map[string]string{
	"CHECK":       models.TransactionTypeCheck,
	"DEBIT":       models.TransactionTypeDebit,
	"POS":         models.TransactionTypeDebit,
	"ATM":         models.TransactionTypeDebit,
	"FEE":         models.TransactionTypeDebit,
	"SRVCHG":      models.TransactionTypeDebit,
	"PAYMENT":     models.TransactionTypeDebit,
	"DIRECTDEBIT": models.TransactionTypeDebit,
	"REPEATPMT":   models.TransactionTypeDebit,
	"CREDIT":      models.TransactionTypeCredit,
	"DEP":         models.TransactionTypeCredit,
	"DIRECTDEP":   models.TransactionTypeCredit,
	"INT":         models.TransactionTypeCredit,
	"DIV":         models.TransactionTypeCredit,
	"XFER":        models.TransactionTypeTransfer,
}

// accountTypeMap maps ACCTTYPE tokens to the closed account-type set.
// Unrecognized tokens map to the generic other category rather than
// failing the parse.
var accountTypeMap = map[string]string{
	"CHECKING":   models.AccountTypeChecking,
	"SAVINGS":    models.AccountTypeSavings,
	"MONEYMRKT":  models.AccountTypeMoneyMarket,
	"CREDITLINE": models.AccountTypeCreditLine,
}

// Parse extracts transactions and account identity from exchange-format
// text. The only failure mode is zero transaction blocks across all
// boundary strategies; individual malformed fields degrade to warnings.
func Parse(text string, logger logging.Logger) (result *models.ParseResult) {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Recovered from panic in exchange-format parser",
				logging.Field{Key: "panic", Value: r})
			result = models.Failed(models.FileKindOFX, fmt.Sprintf("internal parser failure: %v", r))
		}
	}()

	normalized := strings.ReplaceAll(text, "\r\n", "\n")
	normalized = strings.ReplaceAll(normalized, "\r", "\n")

	var blocks []string
	for _, strategy := range blockStrategies {
		blocks = strategy.extract(normalized)
		if len(blocks) > 0 {
			logger.Debug("Located transaction blocks",
				logging.Field{Key: "strategy", Value: strategy.name},
				logging.Field{Key: "blocks", Value: len(blocks)})
			break
		}
	}
	if len(blocks) == 0 {
		err := &parsererror.NoBlocksError{PatternsTried: len(blockStrategies)}
		return models.Failed(models.FileKindOFX, err.Error())
	}

	result = &models.ParseResult{FileKind: models.FileKindOFX}
	result.Account = detectAccount(normalized)

	for i, block := range blocks {
		tx, keep := assembleBlock(block, i+1, result)
		if keep {
			result.Transactions = append(result.Transactions, tx)
		}
	}

	if len(result.Transactions) == 0 {
		return models.Failed(models.FileKindOFX, "transaction blocks were found but none carried usable data")
	}

	result.Success = true
	logger.Info("Parsed exchange-format file",
		logging.Field{Key: "transactions", Value: len(result.Transactions)})
	return result
}

// assembleBlock converts one transaction block into a canonical
// transaction. The second return value is false for blocks with zero
// signal.
func assembleBlock(block string, rowNumber int, result *models.ParseResult) (models.ParsedTransaction, bool) {
	raw := make(map[string]string, len(transactionTags))
	for _, tag := range transactionTags {
		if v := tagValue(block, tag); v != "" {
			raw[tag] = v
		}
	}

	date := parseCompactDate(raw["DTPOSTED"])
	amount := normalize.ParseAmount(raw["TRNAMT"])
	name := raw["NAME"]
	memo := raw["MEMO"]

	tx := models.ParsedTransaction{
		Date:        date,
		Amount:      amount,
		Description: buildDescription(name, memo),
		Memo:        memo,
		CheckNumber: raw["CHECKNUM"],
		ReferenceID: raw["FITID"],
		Type:        classify(raw["TRNTYPE"], amount, raw["CHECKNUM"]),
		RawData:     raw,
		RowNumber:   rowNumber,
	}

	if tx.IsEmpty() {
		return models.ParsedTransaction{}, false
	}

	if raw["DTPOSTED"] != "" && date == "" {
		fieldErr := &parsererror.FieldError{
			Field: "DTPOSTED",
			Value: raw["DTPOSTED"],
			Err:   errors.New("expected compact YYYYMMDD form"),
		}
		result.AddError(rowNumber, "DTPOSTED", fieldErr.Error(), models.SeverityWarning)
	}

	return tx, true
}

// buildDescription prefers the payee name, falls back to the memo, and
// appends the memo as a suffix when both exist and differ.
func buildDescription(name, memo string) string {
	name = strings.TrimSpace(name)
	memo = strings.TrimSpace(memo)
	switch {
	case name == "" && memo == "":
		return models.UnknownDescription
	case name == "":
		return memo
	case memo == "" || strings.EqualFold(name, memo):
		return name
	default:
		return name + " - " + memo
	}
}

// classify derives the canonical type from the TRNTYPE token when it is
// recognized, otherwise from the check number and amount sign.
func classify(trnType string, amount decimal.NullDecimal, checkNumber string) string {
	if t, ok := trnTypeMap[strings.ToUpper(strings.TrimSpace(trnType))]; ok {
		return t
	}
	return models.ClassifyType(amount, checkNumber)
}

// detectAccount recovers best-effort account identity from the account
// block when one is present. A credit-card account block implies the
// creditcard type regardless of ACCTTYPE.
func detectAccount(text string) *models.DetectedAccount {
	acctID := tagValue(text, "ACCTID")
	bankID := tagValue(text, "BANKID")
	acctType := strings.ToUpper(tagValue(text, "ACCTTYPE"))

	if acctID == "" && bankID == "" && acctType == "" {
		return nil
	}

	accountType := models.AccountTypeOther
	if t, ok := accountTypeMap[acctType]; ok {
		accountType = t
	}
	if containsFold(text, "<CCACCTFROM>") {
		accountType = models.AccountTypeCreditCard
	}

	return &models.DetectedAccount{
		MaskedNumber: maskAccountID(acctID),
		AccountType:  accountType,
		BankID:       bankID,
	}
}

// maskAccountID keeps only the last four characters of an account id.
func maskAccountID(id string) string {
	id = strings.TrimSpace(id)
	if len(id) <= 4 {
		return id
	}
	return "****" + id[len(id)-4:]
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToUpper(haystack), strings.ToUpper(needle))
}
