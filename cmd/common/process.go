// Package common holds the file-processing logic shared by the convert and
// batch commands.
package common

import (
	"fmt"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"fjacquet/bank-import/internal/config"
	"fjacquet/bank-import/internal/fileutils"
	"fjacquet/bank-import/internal/importer"
	"fjacquet/bank-import/internal/logging"
	"fjacquet/bank-import/internal/models"
)

// OptionsFromConfig maps the loaded configuration onto parse options.
func OptionsFromConfig(cfg *config.Config) models.ParseOptions {
	opts := models.DefaultParseOptions()
	if cfg != nil {
		opts.MaxRows = cfg.Import.MaxRows
		opts.AmountIsNegativeForDebits = cfg.Import.NegativeDebits
		opts.MinConfidence = cfg.Import.ConfidenceThreshold
	}
	return opts
}

// ProcessFile imports one export file and writes the canonical transaction
// CSV. Warnings and row-level diagnostics are logged, not fatal; only a
// failed import or an unwritable output is an error.
func ProcessFile(inputPath, outputPath string, mapping *models.ColumnMapping, opts models.ParseOptions, logger logging.Logger) error {
	data, err := fileutils.ReadFile(inputPath)
	if err != nil {
		return err
	}

	result := importer.Import(filepath.Base(inputPath), data, mapping, opts, logger)

	for _, w := range result.Warnings {
		logger.Warn(w, logging.Field{Key: logging.FieldInputFile, Value: inputPath})
	}
	for _, e := range result.Errors {
		if e.Severity == models.SeverityWarning {
			logger.Warn(e.String(), logging.Field{Key: logging.FieldInputFile, Value: inputPath})
		}
	}

	if !result.Success {
		return fmt.Errorf("import of %s failed: %s", inputPath, firstErrorMessage(result))
	}

	out, err := ExportCSV(result.Transactions)
	if err != nil {
		return fmt.Errorf("failed to serialize transactions: %w", err)
	}
	if err := fileutils.WriteFile(outputPath, []byte(out), 0o600); err != nil {
		return err
	}

	logger.Info("Wrote canonical transactions",
		logging.Field{Key: logging.FieldOutputFile, Value: outputPath},
		logging.Field{Key: logging.FieldTransactions, Value: len(result.Transactions)})
	return nil
}

// ExportCSV renders transactions as the canonical output CSV.
func ExportCSV(transactions []models.ParsedTransaction) (string, error) {
	return gocsv.MarshalString(&transactions)
}

func firstErrorMessage(result *models.ParseResult) string {
	for _, e := range result.Errors {
		if e.Severity == models.SeverityError {
			return e.Message
		}
	}
	return "unknown error"
}
