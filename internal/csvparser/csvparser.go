// Package csvparser is the single delimited-text pipeline: tokenizing,
// column-role detection, value normalization, and transaction assembly.
// The spreadsheet adapter funnels sheet data through this same path so the
// assembly logic exists exactly once.
package csvparser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"fjacquet/bank-import/internal/columns"
	"fjacquet/bank-import/internal/logging"
	"fjacquet/bank-import/internal/models"
	"fjacquet/bank-import/internal/normalize"
	"fjacquet/bank-import/internal/parsererror"
	"fjacquet/bank-import/internal/tokenizer"
)

// Parse converts delimited text into a ParseResult. When mapping is nil the
// column roles are detected from headers and sampled content; a detection
// below the confidence threshold is surfaced as a warning, never an abort.
// Parse never panics across its contract: internal failures become a
// success=false result with a single error diagnostic.
func Parse(text string, mapping *models.ColumnMapping, opts models.ParseOptions, logger logging.Logger) (result *models.ParseResult) {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Recovered from panic in delimited-text parser",
				logging.Field{Key: "panic", Value: r})
			result = models.Failed(models.FileKindCSV, fmt.Sprintf("internal parser failure: %v", r))
		}
	}()

	rows := tokenizer.Tokenize(text)
	if len(rows) == 0 {
		err := &parsererror.EmptyInputError{Kind: "delimited text"}
		return models.Failed(models.FileKindCSV, err.Error())
	}

	if opts.SkipRows > 0 {
		if opts.SkipRows >= len(rows) {
			return models.Failed(models.FileKindCSV, "all rows were skipped")
		}
		rows = rows[opts.SkipRows:]
	}

	result = &models.ParseResult{FileKind: models.FileKindCSV}

	var headers []string
	var dataRows [][]string
	headerOffset := 0
	if opts.HasHeaderRow {
		headers = rows[0]
		dataRows = rows[1:]
		headerOffset = 1
	} else {
		dataRows = rows
		headers = syntheticHeaders(dataRows)
	}
	result.Headers = headers

	if len(dataRows) == 0 {
		return models.Failed(models.FileKindCSV, "file contains a header row but no data rows")
	}

	if mapping == nil {
		format := columns.Detect(headers, dataRows)
		result.Format = &format
		threshold := opts.MinConfidence
		if threshold <= 0 {
			threshold = columns.LowConfidenceThreshold
		}
		if format.Confidence < threshold {
			result.AddWarning(fmt.Sprintf(
				"column detection confidence is low (%.2f); review the mapping before importing",
				format.Confidence))
		}
		built, err := format.ToMapping()
		if err != nil {
			return models.Failed(models.FileKindCSV, fmt.Sprintf("detected column mapping is invalid: %v", err))
		}
		mapping = built
		logger.Debug("Detected column mapping",
			logging.Field{Key: "confidence", Value: format.Confidence},
			logging.Field{Key: "amount_style", Value: format.AmountStyle})
	}

	index := headerIndex(headers)
	assembled := 0
	for i, row := range dataRows {
		rowNumber := opts.SkipRows + headerOffset + i + 1
		tx, keep := assembleRow(row, rowNumber, headers, index, mapping, opts, result)
		if keep {
			result.Transactions = append(result.Transactions, tx)
			assembled++
		}
	}

	if assembled == 0 {
		return models.Failed(models.FileKindCSV, "no transactions could be extracted from the file")
	}

	result.Success = true
	logger.Info("Parsed delimited text",
		logging.Field{Key: "rows", Value: len(dataRows)},
		logging.Field{Key: "transactions", Value: assembled})
	return result
}

// assembleRow merges one row's mapped cells into a canonical transaction.
// The second return value is false when the row carried zero signal and is
// silently dropped.
func assembleRow(row []string, rowNumber int, headers []string, index map[string]int,
	mapping *models.ColumnMapping, opts models.ParseOptions, result *models.ParseResult) (models.ParsedTransaction, bool) {

	resolve := func(role models.Role) string {
		col := mapping.Column(role)
		if col == "" {
			return ""
		}
		i, ok := index[col]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	rawDate := resolve(models.RoleDate)
	date := normalize.ParseDate(rawDate)

	amount := resolveAmount(resolve, opts)

	description := strings.TrimSpace(resolve(models.RoleDescription))
	memo := strings.TrimSpace(resolve(models.RoleMemo))
	if description == "" {
		if memo != "" {
			description = memo
		} else {
			description = models.UnknownDescription
		}
	}

	checkNumber := strings.TrimSpace(resolve(models.RoleCheckNumber))

	tx := models.ParsedTransaction{
		Date:        date,
		Amount:      amount,
		Description: description,
		Memo:        memo,
		CheckNumber: checkNumber,
		ReferenceID: strings.TrimSpace(resolve(models.RoleReference)),
		Type:        models.ClassifyType(amount, checkNumber),
		RawData:     rawData(headers, row),
		RowNumber:   rowNumber,
	}

	if tx.IsEmpty() {
		return models.ParsedTransaction{}, false
	}

	if rawDate != "" && date == "" {
		fieldErr := &parsererror.FieldError{
			Field: "date",
			Value: rawDate,
			Err:   errors.New("no date pattern matched"),
		}
		result.AddError(rowNumber, mapping.Date, fieldErr.Error(), models.SeverityWarning)
	}

	return tx, true
}

// resolveAmount parses the single amount column, or folds split
// debit/credit columns into one signed amount. A nonzero debit takes
// precedence over a nonzero credit; its sign follows the caller's
// AmountIsNegativeForDebits flag.
func resolveAmount(resolve func(models.Role) string, opts models.ParseOptions) decimal.NullDecimal {
	debitRaw := resolve(models.RoleDebit)
	creditRaw := resolve(models.RoleCredit)

	if debitRaw == "" && creditRaw == "" {
		return normalize.ParseAmount(resolve(models.RoleAmount))
	}

	if debit := normalize.ParseAmount(debitRaw); debit.Valid && !debit.Decimal.IsZero() {
		magnitude := debit.Decimal.Abs()
		if opts.AmountIsNegativeForDebits {
			return models.NullAmount(magnitude.Neg())
		}
		return models.NullAmount(magnitude)
	}
	if credit := normalize.ParseAmount(creditRaw); credit.Valid && !credit.Decimal.IsZero() {
		return models.NullAmount(credit.Decimal.Abs())
	}
	return models.NoAmount()
}

func headerIndex(headers []string) map[string]int {
	index := make(map[string]int, len(headers))
	for i, h := range headers {
		if _, exists := index[h]; !exists {
			index[h] = i
		}
	}
	return index
}

func rawData(headers []string, row []string) map[string]string {
	raw := make(map[string]string, len(row))
	for i, cell := range row {
		if i < len(headers) && headers[i] != "" {
			raw[headers[i]] = cell
		} else {
			raw[fmt.Sprintf("Column%d", i+1)] = cell
		}
	}
	return raw
}

// syntheticHeaders names columns Column1..N for headerless files so role
// detection can still run on content alone.
func syntheticHeaders(rows [][]string) []string {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	headers := make([]string, width)
	for i := range headers {
		headers[i] = fmt.Sprintf("Column%d", i+1)
	}
	return headers
}
