package models

// FileKind classifies a source export file.
type FileKind string

// Supported file kinds. Unknown is a valid terminal classification that
// callers must surface as a user-facing error rather than a crash.
const (
	FileKindCSV     FileKind = "csv"
	FileKindXLSX    FileKind = "xlsx"
	FileKindOFX     FileKind = "ofx"
	FileKindUnknown FileKind = "unknown"
)

// Transaction types
const (
	TransactionTypeDebit    = "debit"
	TransactionTypeCredit   = "credit"
	TransactionTypeCheck    = "check"
	TransactionTypeTransfer = "transfer"
)

// Role is the semantic meaning assigned to a source column.
type Role string

// Column roles recognized by the role detector and the mapping builder.
const (
	RoleDate        Role = "date"
	RoleAmount      Role = "amount"
	RoleDescription Role = "description"
	RoleMemo        Role = "memo"
	RoleDebit       Role = "debit"
	RoleCredit      Role = "credit"
	RoleCheckNumber Role = "checkNumber"
	RoleBalance     Role = "balance"
	RoleReference   Role = "reference"
)

// AllRoles lists every recognized role in a stable order.
var AllRoles = []Role{
	RoleDate,
	RoleAmount,
	RoleDescription,
	RoleMemo,
	RoleDebit,
	RoleCredit,
	RoleCheckNumber,
	RoleBalance,
	RoleReference,
}

// Amount styles
const (
	AmountStyleSingle = "single"
	AmountStyleSplit  = "split"
)

// Account types recovered from exchange-format account blocks.
const (
	AccountTypeChecking    = "checking"
	AccountTypeSavings     = "savings"
	AccountTypeCreditCard  = "creditcard"
	AccountTypeMoneyMarket = "moneymarket"
	AccountTypeCreditLine  = "creditline"
	AccountTypeOther       = "other"
)

// Severity levels for parse diagnostics.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// UnknownDescription is the placeholder used when a row carries no usable
// description, memo, or payee text.
const UnknownDescription = "Unknown"
