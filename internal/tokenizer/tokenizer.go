// Package tokenizer converts raw delimited text into rows of string cells.
// It is deliberately more tolerant than encoding/csv: unterminated quotes,
// ragged rows, and stray carriage returns never produce an error, because
// real bank exports contain all three.
package tokenizer

import "strings"

// Tokenize splits text into rows of trimmed cells using a two-state
// character scan (in quotes / not in quotes). A doubled quote inside a
// quoted field is an escaped literal quote, a comma outside quotes ends a
// cell, and a line break outside quotes ends a row with \r\n counting as
// one break. Fully blank rows are dropped. An unterminated quote at end of
// input flushes the pending cell and row instead of failing.
func Tokenize(text string) [][]string {
	var rows [][]string
	var row []string
	var cell strings.Builder
	inQuotes := false

	runes := []rune(text)
	flushCell := func() {
		row = append(row, strings.TrimSpace(cell.String()))
		cell.Reset()
	}
	flushRow := func() {
		flushCell()
		if !isBlankRow(row) {
			rows = append(rows, row)
		}
		row = nil
	}

	for i := 0; i < len(runes); i++ {
		c := runes[i]
		switch {
		case c == '"':
			if inQuotes && i+1 < len(runes) && runes[i+1] == '"' {
				cell.WriteRune('"')
				i++
			} else {
				inQuotes = !inQuotes
			}
		case c == ',' && !inQuotes:
			flushCell()
		case (c == '\n' || c == '\r') && !inQuotes:
			if c == '\r' && i+1 < len(runes) && runes[i+1] == '\n' {
				i++
			}
			flushRow()
		default:
			cell.WriteRune(c)
		}
	}

	// Flush whatever is pending, quoted or not.
	if cell.Len() > 0 || len(row) > 0 {
		flushRow()
	}

	return rows
}

// Serialize is the inverse of Tokenize: it renders rows back into
// comma-delimited text, quoting any cell containing a comma, quote, or
// line break and doubling embedded quotes. The spreadsheet adapter uses it
// to funnel sheet data through the single delimited-text pipeline.
func Serialize(rows [][]string) string {
	var b strings.Builder
	for i, row := range rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		for j, cell := range row {
			if j > 0 {
				b.WriteByte(',')
			}
			b.WriteString(escapeCell(cell))
		}
	}
	return b.String()
}

func escapeCell(cell string) string {
	if strings.ContainsAny(cell, ",\"\n\r") {
		return `"` + strings.ReplaceAll(cell, `"`, `""`) + `"`
	}
	return cell
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}
