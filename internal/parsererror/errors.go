// Package parsererror defines the typed errors raised inside the import
// pipeline. Public entry points convert these into ParseResult diagnostics;
// they never cross the pipeline boundary as panics.
package parsererror

import "fmt"

// UnknownFormatError indicates a file whose kind could not be classified.
type UnknownFormatError struct {
	FileName string
}

func (e *UnknownFormatError) Error() string {
	return fmt.Sprintf("unable to determine file format for %q", e.FileName)
}

// EmptyInputError indicates an input with no parsable content at all.
type EmptyInputError struct {
	Kind string
}

func (e *EmptyInputError) Error() string {
	return fmt.Sprintf("%s input is empty", e.Kind)
}

// WorkbookError indicates a spreadsheet that could not be opened or that
// contained no sheets.
type WorkbookError struct {
	Reason string
	Err    error
}

func (e *WorkbookError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("unable to read workbook: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("unable to read workbook: %s", e.Reason)
}

func (e *WorkbookError) Unwrap() error {
	return e.Err
}

// NoBlocksError indicates an exchange-format file in which no transaction
// blocks were found by any boundary pattern.
type NoBlocksError struct {
	PatternsTried int
}

func (e *NoBlocksError) Error() string {
	return fmt.Sprintf("no transaction blocks found (%d boundary patterns tried)", e.PatternsTried)
}

// FieldError indicates a single field that could not be parsed. It is
// surfaced as a row-level warning, not a failure.
type FieldError struct {
	Field string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("failed to parse %s=%q: %v", e.Field, e.Value, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
