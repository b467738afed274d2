package ofxparser

import (
	"regexp"
	"strings"
)

// blockStrategy locates transaction blocks in exchange-format markup.
// Strategies are tried in order; the first one that yields at least one
// block wins. The list lives outside the parse function so new bank
// dialects can be appended without touching control flow.
type blockStrategy struct {
	name    string
	extract func(text string) []string
}

var blockStrategies = []blockStrategy{
	{"standard-tags", extractStandardBlocks},
	{"lowercase-tags", extractLowercaseBlocks},
	{"loose-whitespace", extractLooseBlocks},
}

// blockTerminators end an unclosed transaction block. The closing tag is
// optional in several dialects, so a block runs from its open tag to the
// next open tag or the first terminator, whichever comes first.
var blockTerminators = []string{"</STMTTRN>", "</BANKTRANLIST>", "<LEDGERBAL>", "<AVAILBAL>"}

var (
	tagGapPattern = regexp.MustCompile(`<\s*([/A-Za-z.0-9]+)\s*>`)
	indentPattern = regexp.MustCompile(`(?m)^[ \t]+`)
)

// extractStandardBlocks splits on <STMTTRN> open tags and trims each block
// at its optional closing tag. This single strategy covers both the
// paired-tag dialect and the no-closing-tag dialect, including files that
// mix the two.
func extractStandardBlocks(text string) []string {
	return sliceBlocks(text, blockSpans(text, "<STMTTRN>", blockTerminators))
}

// extractLowercaseBlocks handles vendors that emit lowercase tags. Block
// boundaries are located on an ASCII-upper-cased copy, but block text is
// sliced out of the original so payee and memo values keep their case.
func extractLowercaseBlocks(text string) []string {
	folded := asciiUpper(text)
	return sliceBlocks(text, blockSpans(folded, "<STMTTRN>", blockTerminators))
}

// extractLooseBlocks handles whitespace-heavy vendor variants by collapsing
// whitespace inside tag brackets and indentation before splitting. Only tag
// brackets and leading indentation are rewritten; values stay untouched.
func extractLooseBlocks(text string) []string {
	compact := tagGapPattern.ReplaceAllString(text, "<$1>")
	compact = indentPattern.ReplaceAllString(compact, "")
	return extractLowercaseBlocks(compact)
}

// blockSpans returns the [start, end) offsets of each block: from the byte
// after an open tag to the next open tag or the first terminator. Offsets
// found on a case-folded copy stay valid on the original because asciiUpper
// preserves byte positions.
func blockSpans(text, openTag string, terminators []string) [][2]int {
	var spans [][2]int
	pos := 0
	for {
		i := strings.Index(text[pos:], openTag)
		if i < 0 {
			break
		}
		start := pos + i + len(openTag)
		end := len(text)
		if j := strings.Index(text[start:], openTag); j >= 0 {
			end = start + j
		}
		for _, terminator := range terminators {
			if j := strings.Index(text[start:end], terminator); j >= 0 {
				end = start + j
			}
		}
		spans = append(spans, [2]int{start, end})
		pos = end
	}
	return spans
}

func sliceBlocks(text string, spans [][2]int) []string {
	var blocks []string
	for _, span := range spans {
		if block := text[span[0]:span[1]]; strings.TrimSpace(block) != "" {
			blocks = append(blocks, block)
		}
	}
	return blocks
}

// asciiUpper upper-cases ASCII letters only. Unlike strings.ToUpper it
// never changes byte length, so offsets computed on the folded text can be
// applied to the original.
func asciiUpper(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			b[i] = c - ('a' - 'A')
		}
	}
	return string(b)
}

// tagPatterns returns the ordered value-extraction patterns for one tag,
// from most strict (explicit closing tag) to most lenient (value runs to
// the next tag or line break). The first pattern yielding a non-empty
// trimmed value is accepted.
func tagPatterns(tag string) []*regexp.Regexp {
	return []*regexp.Regexp{
		regexp.MustCompile(`(?is)<` + tag + `>\s*(.*?)\s*</` + tag + `>`),
		regexp.MustCompile(`(?i)<` + tag + `>([^<\r\n]*)`),
	}
}

// tagValue extracts the value of a tag from a block using the strict-to-
// lenient pattern chain. Returns the empty string when no pattern yields a
// non-empty value.
func tagValue(block, tag string) string {
	for _, pattern := range tagPatterns(tag) {
		m := pattern.FindStringSubmatch(block)
		if m == nil {
			continue
		}
		if v := strings.TrimSpace(m[1]); v != "" {
			return v
		}
	}
	return ""
}

// parseCompactDate converts the exchange-format date (YYYYMMDD, optionally
// followed by a time and timezone suffix such as 20240115120000[-5:EST])
// into an ISO date by fixed-offset slicing: year is characters 0-3, month
// 4-5, day 6-7. Generic date parsing never sees this form because the
// compact layout is ambiguous to it.
func parseCompactDate(raw string) string {
	s := strings.TrimSpace(raw)
	if len(s) < 8 {
		return ""
	}
	for _, c := range s[:8] {
		if c < '0' || c > '9' {
			return ""
		}
	}
	year, month, day := s[0:4], s[4:6], s[6:8]
	if month < "01" || month > "12" || day < "01" || day > "31" {
		return ""
	}
	return year + "-" + month + "-" + day
}
