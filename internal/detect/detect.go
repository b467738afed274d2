// Package detect classifies raw export files by kind before any parsing
// happens. Extension wins; content sniffing is the fallback.
package detect

import (
	"path/filepath"
	"strings"

	"fjacquet/bank-import/internal/models"
)

// extensionKinds maps known file extensions to their kind. QBO, QFX and OFX
// are dialects of the same SGML exchange format and share one pipeline.
var extensionKinds = map[string]models.FileKind{
	".csv":  models.FileKindCSV,
	".txt":  models.FileKindCSV,
	".tsv":  models.FileKindCSV,
	".xlsx": models.FileKindXLSX,
	".xls":  models.FileKindXLSX,
	".ofx":  models.FileKindOFX,
	".qfx":  models.FileKindOFX,
	".qbo":  models.FileKindOFX,
}

// ofxSignatures are tokens whose presence identifies exchange-format
// content regardless of extension: header markers, characteristic tag
// names, and vendor identifiers.
var ofxSignatures = []string{
	"OFXHEADER",
	"<OFX>",
	"<STMTTRN>",
	"<CCSTMTRS>",
	"<BANKMSGSRSV1>",
	"INTU.BID",
}

// Kind classifies a file by name and optional content. The extension match
// takes precedence; when the extension is absent or unrecognized the
// content is sniffed for exchange-format signatures and, failing that, for
// a delimiter plus a line break. Unknown is a valid terminal answer;
// this function never fails.
func Kind(fileName string, content string) models.FileKind {
	ext := strings.ToLower(filepath.Ext(fileName))
	if kind, ok := extensionKinds[ext]; ok {
		return kind
	}

	if content == "" {
		return models.FileKindUnknown
	}

	upper := strings.ToUpper(content)
	for _, sig := range ofxSignatures {
		if strings.Contains(upper, sig) {
			return models.FileKindOFX
		}
	}

	if hasDelimiter(content) && strings.ContainsAny(content, "\r\n") {
		return models.FileKindCSV
	}

	return models.FileKindUnknown
}

func hasDelimiter(content string) bool {
	return strings.ContainsAny(content, ",;\t")
}
