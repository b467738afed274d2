// Package importer is the top-level entry point of the pipeline: it
// classifies a file, dispatches to the right parser, and stamps the result
// with a run id so log lines and diagnostics can be correlated.
package importer

import (
	"fmt"

	"github.com/google/uuid"

	"fjacquet/bank-import/internal/csvparser"
	"fjacquet/bank-import/internal/detect"
	"fjacquet/bank-import/internal/fingerprint"
	"fjacquet/bank-import/internal/logging"
	"fjacquet/bank-import/internal/models"
	"fjacquet/bank-import/internal/ofxparser"
	"fjacquet/bank-import/internal/parsererror"
	"fjacquet/bank-import/internal/xlsxparser"
)

// Import parses one export file. The kind is detected from the file name
// and content; an unknown kind is a user-facing failure, never a crash.
// When mapping is non-nil it overrides column detection for delimited and
// spreadsheet files; OFX files ignore it. Import never panics: internal
// failures surface as a success=false result.
func Import(fileName string, data []byte, mapping *models.ColumnMapping, opts models.ParseOptions, logger logging.Logger) (result *models.ParseResult) {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	runID := uuid.New().String()
	logger = logger.WithFields(
		logging.Field{Key: logging.FieldRunID, Value: runID},
		logging.Field{Key: logging.FieldFile, Value: fileName})

	defer func() {
		if r := recover(); r != nil {
			logger.Error("Recovered from panic in importer",
				logging.Field{Key: "panic", Value: r})
			result = models.Failed(models.FileKindUnknown, fmt.Sprintf("internal import failure: %v", r))
		}
		if result != nil {
			result.RunID = runID
		}
	}()

	kind := detect.Kind(fileName, string(data))
	logger.Debug("Detected file kind",
		logging.Field{Key: logging.FieldKind, Value: string(kind)})

	switch kind {
	case models.FileKindCSV:
		result = csvparser.Parse(string(data), mapping, opts, logger)
	case models.FileKindXLSX:
		result = xlsxparser.Parse(data, mapping, opts, logger)
	case models.FileKindOFX:
		result = ofxparser.Parse(string(data), logger)
	default:
		err := &parsererror.UnknownFormatError{FileName: fileName}
		result = models.Failed(models.FileKindUnknown, err.Error())
	}

	if result.Success {
		stampFingerprints(result)
		logger.Info("Import complete",
			logging.Field{Key: logging.FieldKind, Value: string(result.FileKind)},
			logging.Field{Key: logging.FieldTransactions, Value: len(result.Transactions)})
	} else {
		logger.Warn("Import produced no transactions",
			logging.Field{Key: logging.FieldKind, Value: string(result.FileKind)})
	}
	return result
}

// stampFingerprints assigns each transaction its duplicate-suspicion key
// and warns on repeats within the run. A matching fingerprint is a hint
// for review, never grounds for dropping a row.
func stampFingerprints(result *models.ParseResult) {
	seen := make(map[string]int, len(result.Transactions))
	for i := range result.Transactions {
		tx := &result.Transactions[i]
		tx.Fingerprint = fingerprint.Generate(tx.Date, tx.Amount, tx.Description)
		if prev, ok := seen[tx.Fingerprint]; ok {
			result.AddWarning(fmt.Sprintf(
				"row %d looks like a duplicate of row %d (fingerprint %s)",
				tx.RowNumber, prev, tx.Fingerprint))
			continue
		}
		seen[tx.Fingerprint] = tx.RowNumber
	}
}
