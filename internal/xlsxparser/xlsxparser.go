// Package xlsxparser adapts spreadsheet workbooks into the delimited-text
// pipeline. The selected sheet is extracted as a cell grid, serialized, and
// handed to the csvparser so detection and assembly exist exactly once.
// Both zip-container workbooks (.xlsx) and OLE2 legacy workbooks (.xls) are
// supported; the container signature decides which reader runs.
package xlsxparser

import (
	"bytes"
	"fmt"
	"os"

	"github.com/shakinm/xlsReader/xls"
	"github.com/xuri/excelize/v2"

	"fjacquet/bank-import/internal/csvparser"
	"fjacquet/bank-import/internal/logging"
	"fjacquet/bank-import/internal/models"
	"fjacquet/bank-import/internal/parsererror"
	"fjacquet/bank-import/internal/tokenizer"
)

// ole2Magic is the compound-document signature carried by pre-2007 BIFF
// workbooks. Zip-container workbooks start with "PK" instead.
var ole2Magic = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}

// Parse converts workbook bytes into a ParseResult. The sheet named by
// opts.SheetIndex is read; when the workbook has several sheets a warning
// names the one used, and an out-of-range index falls back to the first
// sheet with a warning. Reads are bounded by opts.MaxRows. A workbook that
// cannot be opened, or one without sheets, yields a success=false result
// with a single error diagnostic.
func Parse(data []byte, mapping *models.ColumnMapping, opts models.ParseOptions, logger logging.Logger) (result *models.ParseResult) {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Recovered from panic in workbook parser",
				logging.Field{Key: "panic", Value: r})
			result = models.Failed(models.FileKindXLSX, fmt.Sprintf("internal parser failure: %v", r))
		}
	}()

	rows, warnings, err := extractSheet(data, opts)
	if err != nil {
		logger.WithError(err).Error("Failed to read workbook")
		return models.Failed(models.FileKindXLSX, err.Error())
	}
	if len(rows) == 0 {
		return models.Failed(models.FileKindXLSX, "selected sheet contains no data")
	}

	result = csvparser.Parse(tokenizer.Serialize(rows), mapping, opts, logger)
	result.FileKind = models.FileKindXLSX
	result.Warnings = append(warnings, result.Warnings...)
	return result
}

// isLegacyWorkbook reports whether the bytes are an OLE2 compound document,
// the container of legacy .xls files.
func isLegacyWorkbook(data []byte) bool {
	return bytes.HasPrefix(data, ole2Magic)
}

// extractSheet opens the workbook and returns the selected sheet's rows,
// capped at opts.MaxRows, plus informational warnings about the selection.
func extractSheet(data []byte, opts models.ParseOptions) ([][]string, []string, error) {
	if isLegacyWorkbook(data) {
		return extractLegacySheet(data, opts)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, nil, &parsererror.WorkbookError{Reason: "file is not a readable workbook", Err: err}
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, &parsererror.WorkbookError{Reason: "workbook contains no sheets"}
	}

	index, warnings := resolveSheetIndex(opts.SheetIndex, len(sheets))
	sheet := sheets[index]

	if len(sheets) > 1 {
		warnings = append(warnings, fmt.Sprintf(
			"workbook has %d sheets; importing %q", len(sheets), sheet))
	}

	raw, err := f.GetRows(sheet)
	if err != nil {
		return nil, nil, &parsererror.WorkbookError{Reason: fmt.Sprintf("unable to read sheet %q", sheet), Err: err}
	}

	return boundRows(raw, sheet, opts, warnings)
}

// extractLegacySheet reads a pre-2007 BIFF workbook. The legacy reader
// works from a file path, so the bytes are staged in a temporary file
// first.
func extractLegacySheet(data []byte, opts models.ParseOptions) ([][]string, []string, error) {
	tmp, err := os.CreateTemp("", "bank-import-*.xls")
	if err != nil {
		return nil, nil, &parsererror.WorkbookError{Reason: "unable to stage legacy workbook", Err: err}
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return nil, nil, &parsererror.WorkbookError{Reason: "unable to stage legacy workbook", Err: err}
	}
	if err := tmp.Close(); err != nil {
		return nil, nil, &parsererror.WorkbookError{Reason: "unable to stage legacy workbook", Err: err}
	}

	wb, err := xls.OpenFile(tmp.Name())
	if err != nil {
		return nil, nil, &parsererror.WorkbookError{Reason: "file is not a readable legacy workbook", Err: err}
	}

	count := wb.GetNumberSheets()
	if count == 0 {
		return nil, nil, &parsererror.WorkbookError{Reason: "workbook contains no sheets"}
	}

	index, warnings := resolveSheetIndex(opts.SheetIndex, count)
	sheet, err := wb.GetSheet(index)
	if err != nil || sheet == nil {
		return nil, nil, &parsererror.WorkbookError{Reason: fmt.Sprintf("unable to read sheet %d", index), Err: err}
	}

	name := sheet.GetName()
	if count > 1 {
		warnings = append(warnings, fmt.Sprintf(
			"workbook has %d sheets; importing %q", count, name))
	}

	var raw [][]string
	for _, sheetRow := range sheet.GetRows() {
		var cells []string
		for _, col := range sheetRow.GetCols() {
			cells = append(cells, col.GetString())
		}
		raw = append(raw, cells)
	}

	return boundRows(raw, name, opts, warnings)
}

// resolveSheetIndex validates the requested sheet index against the sheet
// count. An out-of-range request falls back to the first sheet and is
// reported so the caller knows a different sheet was imported.
func resolveSheetIndex(requested, count int) (int, []string) {
	if requested >= 0 && requested < count {
		return requested, nil
	}
	return 0, []string{fmt.Sprintf(
		"sheet index %d does not exist in a workbook with %d sheets; importing the first sheet", requested, count)}
}

// boundRows caps the extracted grid at the configured row limit, warning
// when rows were left unread.
func boundRows(raw [][]string, sheet string, opts models.ParseOptions, warnings []string) ([][]string, []string, error) {
	maxRows := opts.MaxRows
	if maxRows <= 0 {
		maxRows = models.DefaultParseOptions().MaxRows
	}
	if len(raw) > maxRows {
		warnings = append(warnings, fmt.Sprintf(
			"sheet %q has %d rows; only the first %d were read", sheet, len(raw), maxRows))
		raw = raw[:maxRows]
	}
	return raw, warnings, nil
}
