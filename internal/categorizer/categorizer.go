// Package categorizer is the local, rule-based first pass over transaction
// descriptions: merchant-name cleanup, keyword category suggestion, and
// payment-type detection. It performs no I/O and calls no remote service;
// an external collaborator may later override its output with its own
// suggestions, which callers treat as equivalent input.
package categorizer

import (
	"strings"

	"fjacquet/bank-import/internal/logging"
	"fjacquet/bank-import/internal/models"
)

// Fixed confidences per match type. Name cleanup is more certain than
// category inference, so its confidence is higher.
const (
	MerchantCleanupConfidence  = 0.9
	MerchantCategoryConfidence = 0.7
	KeywordCategoryConfidence  = 0.6
)

// Engine applies the curated rule tables to descriptions. The zero-cost
// construction and immutable tables make one Engine safe for concurrent
// use across parses.
type Engine struct {
	rules  []CategoryRule
	logger logging.Logger
}

// NewEngine creates an Engine with the built-in category rules.
func NewEngine(logger logging.Logger) *Engine {
	return NewEngineWithRules(defaultCategoryRules, logger)
}

// NewEngineWithRules creates an Engine with caller-supplied category
// rules, typically loaded from a YAML file.
func NewEngineWithRules(rules []CategoryRule, logger logging.Logger) *Engine {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Engine{rules: rules, logger: logger}
}

// Categorize runs the merchant table and the keyword rules over a
// description. Either result may be nil: a suggestion is returned only
// when a rule matched, a cleanup only when the name actually changed.
// When the caller supplies its category list, a matching suggestion is
// resolved to that category's id.
func (e *Engine) Categorize(description string, categories []models.Category) (*models.CategorySuggestion, *models.MerchantCleanup) {
	trimmed := strings.TrimSpace(description)
	if trimmed == "" {
		return nil, nil
	}
	upper := strings.ToUpper(trimmed)

	var suggestion *models.CategorySuggestion
	var cleanup *models.MerchantCleanup

	// The merchant table is checked first and its first match wins; order
	// within the table is significant.
	for _, rule := range merchantRules {
		if strings.Contains(upper, rule.fragment) {
			suggestion = &models.CategorySuggestion{
				CategoryName: rule.category,
				Confidence:   MerchantCategoryConfidence,
				Reason:       "merchant pattern: " + rule.fragment,
			}
			cleanup = &models.MerchantCleanup{
				Original:   trimmed,
				Cleaned:    rule.canonical,
				Confidence: MerchantCleanupConfidence,
			}
			break
		}
	}

	if suggestion == nil {
		for _, rule := range e.rules {
			if kw, ok := matchKeyword(upper, rule.Keywords); ok {
				suggestion = &models.CategorySuggestion{
					CategoryName: rule.Name,
					Confidence:   KeywordCategoryConfidence,
					Reason:       "keyword: " + kw,
				}
				break
			}
		}
	}

	if cleanup == nil {
		if cleaned := CleanMerchantName(trimmed); cleaned != "" && cleaned != trimmed {
			cleanup = &models.MerchantCleanup{
				Original:   trimmed,
				Cleaned:    cleaned,
				Confidence: MerchantCleanupConfidence,
			}
		}
	}

	if suggestion != nil {
		resolveCategory(suggestion, categories)
		e.logger.Debug("Categorized description",
			logging.Field{Key: "category", Value: suggestion.CategoryName},
			logging.Field{Key: "reason", Value: suggestion.Reason})
	}

	return suggestion, cleanup
}

// resolveCategory attaches the caller's category id when a supplied
// category matches the suggested label by name.
func resolveCategory(suggestion *models.CategorySuggestion, categories []models.Category) {
	for _, c := range categories {
		if strings.EqualFold(c.Name, suggestion.CategoryName) {
			suggestion.CategoryID = c.ID
			return
		}
	}
}

func matchKeyword(upper string, keywords []string) (string, bool) {
	for _, kw := range keywords {
		if strings.Contains(upper, strings.ToUpper(kw)) {
			return kw, true
		}
	}
	return "", false
}
