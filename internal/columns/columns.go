// Package columns assigns a semantic role to each source column of a
// delimited export, combining header-name matching with content sniffing
// over a small sample of rows.
package columns

import (
	"strings"

	"fjacquet/bank-import/internal/models"
	"fjacquet/bank-import/internal/normalize"
)

// Detection tuning. The thresholds mirror what real exports need: five
// sampled rows, three agreeing values to accept a content claim, and a
// description column that is both long and diverse.
const (
	sampleSize          = 5
	contentMatchMinimum = 3
	shortTextThreshold  = 8
	minDistinctValues   = 2

	// LowConfidenceThreshold is the score below which callers should warn
	// the user instead of silently trusting the detection.
	LowConfidenceThreshold = 0.5

	headerClaimWeight  = 1.0
	contentClaimWeight = 0.8
)

// headerRule matches a role by curated header keywords. Rules are ordered
// most-specific first so "debit amount" claims debit before the generic
// amount rule sees it. Once a role is claimed it is never reassigned.
type headerRule struct {
	role     models.Role
	keywords []string
}

var headerRules = []headerRule{
	{models.RoleDate, []string{"date", "posted", "posting"}},
	{models.RoleCheckNumber, []string{"check number", "check no", "cheque", "check #", "chk"}},
	{models.RoleBalance, []string{"balance", "running total"}},
	{models.RoleDebit, []string{"debit", "withdrawal", "money out", "paid out"}},
	{models.RoleCredit, []string{"credit", "deposit", "money in", "paid in"}},
	{models.RoleAmount, []string{"amount", "value", "sum"}},
	{models.RoleMemo, []string{"memo", "note", "details", "remarks"}},
	{models.RoleReference, []string{"reference", "ref no", "fitid", "transaction id", "txn id"}},
	{models.RoleDescription, []string{"description", "payee", "merchant", "narrative", "particulars", "transaction"}},
}

// ruleResult is one scored detection outcome. The final confidence is a
// pure fold over the result list, so each rule is testable in isolation.
type ruleResult struct {
	role    models.Role
	earned  float64
	weight  float64
}

// score folds rule results into a confidence in [0,1].
func score(results []ruleResult) float64 {
	var earned, max float64
	for _, r := range results {
		earned += r.earned
		max += r.weight
	}
	if max == 0 {
		return 0
	}
	return earned / max
}

// Detect assigns roles to columns and returns the detected format with a
// confidence score. Headers are matched first; content sniffing runs only
// for roles still unresolved. First claim wins within a detection.
func Detect(headers []string, sampleRows [][]string) models.DetectedFormat {
	claims := make(map[models.Role]string)
	claimedHeaders := make(map[string]bool)
	var results []ruleResult

	// Pass 1: header-name matching.
	for _, header := range headers {
		lower := strings.ToLower(strings.TrimSpace(header))
		if lower == "" || claimedHeaders[header] {
			continue
		}
		for _, rule := range headerRules {
			if _, taken := claims[rule.role]; taken {
				continue
			}
			if matchesKeyword(lower, rule.keywords) {
				claims[rule.role] = header
				claimedHeaders[header] = true
				results = append(results, ruleResult{rule.role, headerClaimWeight, headerClaimWeight})
				break
			}
		}
	}

	// Pass 2: content sniffing for unresolved roles.
	dateFormat := ""
	for i, header := range headers {
		if claimedHeaders[header] {
			if claims[models.RoleDate] == header && dateFormat == "" {
				dateFormat = sniffDateFormat(sampleColumn(sampleRows, i))
			}
			continue
		}
		samples := sampleColumn(sampleRows, i)
		if len(samples) == 0 {
			continue
		}
		lower := strings.ToLower(header)

		if _, taken := claims[models.RoleDate]; !taken {
			if format, ok := sniffDates(samples); ok {
				claims[models.RoleDate] = header
				claimedHeaders[header] = true
				dateFormat = format
				results = append(results, ruleResult{models.RoleDate, contentClaimWeight, headerClaimWeight})
				continue
			}
		}
		if _, taken := claims[models.RoleAmount]; !taken {
			// Balance columns are numeric too and must never be taken for
			// the amount.
			if !strings.Contains(lower, "balance") && sniffNumeric(samples) {
				claims[models.RoleAmount] = header
				claimedHeaders[header] = true
				results = append(results, ruleResult{models.RoleAmount, contentClaimWeight, headerClaimWeight})
				continue
			}
		}
		if _, taken := claims[models.RoleDescription]; !taken {
			if sniffDescription(samples) {
				claims[models.RoleDescription] = header
				claimedHeaders[header] = true
				results = append(results, ruleResult{models.RoleDescription, contentClaimWeight, headerClaimWeight})
			}
		}
	}

	// Core roles count against the score even when unresolved; optional
	// roles only ever add points.
	results = padUnresolved(results, claims)

	format := models.DetectedFormat{
		DateColumn:        claims[models.RoleDate],
		AmountColumn:      claims[models.RoleAmount],
		DescriptionColumn: claims[models.RoleDescription],
		MemoColumn:        claims[models.RoleMemo],
		DebitColumn:       claims[models.RoleDebit],
		CreditColumn:      claims[models.RoleCredit],
		CheckNumberColumn: claims[models.RoleCheckNumber],
		BalanceColumn:     claims[models.RoleBalance],
		ReferenceColumn:   claims[models.RoleReference],
		DateFormat:        dateFormat,
		AmountStyle:       models.AmountStyleSingle,
		Confidence:        score(results),
	}

	if format.DebitColumn != "" && format.CreditColumn != "" {
		format.AmountStyle = models.AmountStyleSplit
		format.AmountColumn = ""
	}

	return format
}

// padUnresolved adds zero-earned entries for the core roles (date, amount
// or its split pair, description) that nothing claimed, so a detection
// that misses them scores low instead of dividing by a smaller maximum.
func padUnresolved(results []ruleResult, claims map[models.Role]string) []ruleResult {
	_, hasDate := claims[models.RoleDate]
	_, hasAmount := claims[models.RoleAmount]
	_, hasDebit := claims[models.RoleDebit]
	_, hasCredit := claims[models.RoleCredit]
	_, hasDescription := claims[models.RoleDescription]

	if !hasDate {
		results = append(results, ruleResult{models.RoleDate, 0, headerClaimWeight})
	}
	if !hasAmount && !(hasDebit && hasCredit) {
		results = append(results, ruleResult{models.RoleAmount, 0, headerClaimWeight})
	}
	if !hasDescription {
		results = append(results, ruleResult{models.RoleDescription, 0, headerClaimWeight})
	}
	return results
}

func matchesKeyword(lowerHeader string, keywords []string) bool {
	for _, kw := range keywords {
		if lowerHeader == kw || strings.Contains(lowerHeader, kw) {
			return true
		}
	}
	return false
}

// sampleColumn collects up to sampleSize non-empty values from one column.
func sampleColumn(rows [][]string, index int) []string {
	var samples []string
	for _, row := range rows {
		if len(samples) == sampleSize {
			break
		}
		if index < len(row) && strings.TrimSpace(row[index]) != "" {
			samples = append(samples, strings.TrimSpace(row[index]))
		}
	}
	return samples
}

func sniffDates(samples []string) (string, bool) {
	matched := 0
	format := ""
	for _, s := range samples {
		iso, f := normalize.ParseDateWithFormat(s)
		if iso == "" {
			continue
		}
		matched++
		if format == "" {
			format = f
		}
	}
	return format, matched >= contentMatchMinimum
}

func sniffDateFormat(samples []string) string {
	for _, s := range samples {
		if _, f := normalize.ParseDateWithFormat(s); f != "" {
			return f
		}
	}
	return ""
}

func sniffNumeric(samples []string) bool {
	matched := 0
	for _, s := range samples {
		if normalize.LooksNumeric(s) {
			matched++
		}
	}
	return matched >= contentMatchMinimum
}

func sniffDescription(samples []string) bool {
	total := 0
	distinct := make(map[string]bool)
	for _, s := range samples {
		total += len(s)
		distinct[s] = true
	}
	if len(samples) == 0 {
		return false
	}
	average := total / len(samples)
	return average > shortTextThreshold && len(distinct) > minDistinctValues
}
