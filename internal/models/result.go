package models

import "fmt"

// ParseError is one row- or file-level diagnostic. Row is 1-indexed as
// presented to the user; zero means the error is not tied to a row.
type ParseError struct {
	Row      int
	Column   string
	Message  string
	Severity Severity
}

func (e ParseError) String() string {
	if e.Row > 0 {
		return fmt.Sprintf("row %d: %s", e.Row, e.Message)
	}
	return e.Message
}

// DetectedFormat is the outcome of column-role detection. Column fields hold
// the source header name assigned to each role, empty when unassigned.
type DetectedFormat struct {
	DateColumn        string
	AmountColumn      string
	DescriptionColumn string
	MemoColumn        string
	DebitColumn       string
	CreditColumn      string
	CheckNumberColumn string
	BalanceColumn     string
	ReferenceColumn   string
	DateFormat        string
	AmountStyle       string
	Confidence        float64
}

// ToMapping converts a detected format into an explicit column mapping,
// validated by the mapping builder.
func (f *DetectedFormat) ToMapping() (*ColumnMapping, error) {
	b := NewMappingBuilder().
		WithColumn(RoleDate, f.DateColumn).
		WithColumn(RoleDescription, f.DescriptionColumn).
		WithColumn(RoleMemo, f.MemoColumn).
		WithColumn(RoleCheckNumber, f.CheckNumberColumn).
		WithColumn(RoleBalance, f.BalanceColumn).
		WithColumn(RoleReference, f.ReferenceColumn)
	if f.AmountStyle == AmountStyleSplit {
		b = b.WithColumn(RoleDebit, f.DebitColumn).
			WithColumn(RoleCredit, f.CreditColumn)
	} else {
		b = b.WithColumn(RoleAmount, f.AmountColumn)
	}
	return b.Build()
}

// DetectedAccount is a best-effort account identity recovered from file
// content. MaskedNumber keeps only the last four digits of the account.
type DetectedAccount struct {
	MaskedNumber string
	AccountType  string
	BankID       string
}

// ParseResult is the outcome of parsing one file. Success is false only when
// zero transactions were extracted; rows with warnings still count as
// success.
type ParseResult struct {
	RunID        string
	Success      bool
	Transactions []ParsedTransaction
	Headers      []string
	FileKind     FileKind
	Format       *DetectedFormat
	Account      *DetectedAccount
	Errors       []ParseError
	Warnings     []string
}

// AddError appends a diagnostic to the result.
func (r *ParseResult) AddError(row int, column, message string, severity Severity) {
	r.Errors = append(r.Errors, ParseError{
		Row:      row,
		Column:   column,
		Message:  message,
		Severity: severity,
	})
}

// AddWarning appends a free-text warning to the result.
func (r *ParseResult) AddWarning(message string) {
	r.Warnings = append(r.Warnings, message)
}

// Failed builds a failure result with a single error-severity diagnostic,
// the only shape in which Success may be false.
func Failed(kind FileKind, message string) *ParseResult {
	r := &ParseResult{FileKind: kind}
	r.AddError(0, "", message, SeverityError)
	return r
}

// Category is a caller-supplied category a suggestion may resolve to.
type Category struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

// CategorySuggestion is a local, rule-derived category guess for a
// transaction description. Reason names the rule that matched. CategoryID
// is set when the suggestion resolved to a caller-supplied category.
type CategorySuggestion struct {
	CategoryID   string
	CategoryName string
	Confidence   float64
	Reason       string
}

// MerchantCleanup records a merchant-name normalization.
type MerchantCleanup struct {
	Original   string
	Cleaned    string
	Confidence float64
}

// ParseOptions is the caller-supplied options bag accepted by every parser
// entry point. Use DefaultParseOptions for the documented defaults.
type ParseOptions struct {
	HasHeaderRow              bool
	SkipRows                  int
	AmountIsNegativeForDebits bool
	SheetIndex                int
	MaxRows                   int
	MinConfidence             float64
}

// DefaultParseOptions returns the documented option defaults: a header row
// is expected, debits in split mappings come out negative, the first sheet
// is read, spreadsheet reads are bounded at 50000 rows, and detections
// scoring below 0.5 draw a warning.
func DefaultParseOptions() ParseOptions {
	return ParseOptions{
		HasHeaderRow:              true,
		SkipRows:                  0,
		AmountIsNegativeForDebits: true,
		SheetIndex:                0,
		MaxRows:                   50000,
		MinConfidence:             0.5,
	}
}
