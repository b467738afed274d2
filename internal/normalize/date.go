package normalize

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// twoDigitYearPivot splits two-digit years: values below the pivot are
// 20xx, the rest 19xx.
const twoDigitYearPivot = 50

// DatePattern pairs a recognizing regexp with its own field-order parsing
// rule. The pattern list is deliberately external to ParseDate so new bank
// dialects can be appended without touching control flow. Order matters:
// the slash patterns are US month-first, the dash patterns day-first, and
// they must not be confused.
type DatePattern struct {
	Name  string
	re    *regexp.Regexp
	parse func(m []string) (time.Time, bool)
}

// DatePatterns is the ordered list of recognized calendar patterns.
var DatePatterns = []DatePattern{
	{
		Name: "MM/DD/YYYY",
		re:   regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`),
		parse: func(m []string) (time.Time, bool) {
			return makeDate(atoi(m[3]), atoi(m[1]), atoi(m[2]))
		},
	},
	{
		Name: "MM/DD/YY",
		re:   regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{2})$`),
		parse: func(m []string) (time.Time, bool) {
			return makeDate(expandYear(atoi(m[3])), atoi(m[1]), atoi(m[2]))
		},
	},
	{
		Name: "YYYY-MM-DD",
		re:   regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})$`),
		parse: func(m []string) (time.Time, bool) {
			return makeDate(atoi(m[1]), atoi(m[2]), atoi(m[3]))
		},
	},
	{
		Name: "DD-MM-YYYY",
		re:   regexp.MustCompile(`^(\d{1,2})-(\d{1,2})-(\d{4})$`),
		parse: func(m []string) (time.Time, bool) {
			return makeDate(atoi(m[3]), atoi(m[2]), atoi(m[1]))
		},
	},
	{
		Name: "DD-MMM-YY",
		re:   regexp.MustCompile(`^(\d{1,2})-([A-Za-z]{3})-(\d{2})$`),
		parse: func(m []string) (time.Time, bool) {
			month, ok := monthFromName(m[2])
			if !ok {
				return time.Time{}, false
			}
			return makeDate(expandYear(atoi(m[3])), month, atoi(m[1]))
		},
	},
	{
		Name: "MMM DD, YYYY",
		re:   regexp.MustCompile(`^([A-Za-z]{3,9})\.?\s+(\d{1,2}),?\s+(\d{4})$`),
		parse: func(m []string) (time.Time, bool) {
			month, ok := monthFromName(m[1])
			if !ok {
				return time.Time{}, false
			}
			return makeDate(atoi(m[3]), month, atoi(m[2]))
		},
	},
}

// fallbackLayouts is the generic parse attempted when no pattern regex
// matches, covering timestamped and dotted exports.
var fallbackLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006/01/02",
	"02.01.2006",
	"2.1.2006",
	"2 January 2006",
	"02 Jan 2006",
}

// ParseDate converts a raw cell value into an ISO calendar date
// (YYYY-MM-DD). It returns the empty string when no recognized pattern and
// no generic fallback matches. It never returns an error.
func ParseDate(raw string) string {
	iso, _ := ParseDateWithFormat(raw)
	return iso
}

// ParseDateWithFormat is ParseDate plus the name of the pattern that
// matched, which the role detector records as the file's date format.
func ParseDateWithFormat(raw string) (string, string) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", ""
	}
	s = regexp.MustCompile(`\s+`).ReplaceAllString(s, " ")

	for _, p := range DatePatterns {
		m := p.re.FindStringSubmatch(s)
		if m == nil {
			continue
		}
		if t, ok := p.parse(m); ok {
			return t.Format("2006-01-02"), p.Name
		}
	}

	for _, layout := range fallbackLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02"), layout
		}
	}

	return "", ""
}

// LooksLikeDate reports whether a raw cell value parses as a calendar date.
func LooksLikeDate(raw string) bool {
	iso, _ := ParseDateWithFormat(raw)
	return iso != ""
}

// makeDate builds a date and rejects field values that time.Date would
// silently normalize, such as month 13 or April 31.
func makeDate(year, month, day int) (time.Time, bool) {
	if month < 1 || month > 12 || day < 1 || day > 31 || year < 1 {
		return time.Time{}, false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}

func expandYear(yy int) int {
	if yy < twoDigitYearPivot {
		return 2000 + yy
	}
	return 1900 + yy
}

func monthFromName(name string) (int, bool) {
	for m := time.January; m <= time.December; m++ {
		full := m.String()
		if strings.EqualFold(name, full) || strings.EqualFold(name, full[:3]) {
			return int(m), true
		}
	}
	return 0, false
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
