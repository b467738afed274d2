package logging

// Standardized field names for structured logging. Using these constants
// keeps log output consistent across parsers and commands.
const (
	FieldFile         = "file_path"
	FieldKind         = "file_kind"
	FieldParser       = "parser"
	FieldRunID        = "run_id"
	FieldRows         = "rows"
	FieldTransactions = "transactions"
	FieldConfidence   = "confidence"
	FieldSheet        = "sheet"
	FieldCategory     = "category"
	FieldReason       = "reason"
	FieldError        = "error"
	FieldCount        = "count"
	FieldInputFile    = "input_file"
	FieldOutputFile   = "output_file"
)
