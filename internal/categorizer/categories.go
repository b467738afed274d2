package categorizer

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// CategoryRule maps a category label to the keywords that suggest it.
// Rules are evaluated in order and the first keyword hit wins.
type CategoryRule struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// defaultCategoryRules is the built-in keyword table used when no rules
// file is configured. Keywords are matched case-insensitively as
// substrings of the description.
var defaultCategoryRules = []CategoryRule{
	{Name: "Income", Keywords: []string{"PAYROLL", "DIRECT DEP", "SALARY", "INTEREST PAYMENT", "DIVIDEND", "REFUND"}},
	{Name: "Groceries", Keywords: []string{"GROCERY", "SUPERMARKET", "MARKET", "FOODS"}},
	{Name: "Dining", Keywords: []string{"RESTAURANT", "CAFE", "COFFEE", "PIZZA", "BAR & GRILL", "DINER", "BAKERY"}},
	{Name: "Transport", Keywords: []string{"GAS STATION", "FUEL", "PARKING", "TRANSIT", "TOLL", "METRO", "RAILWAY"}},
	{Name: "Utilities", Keywords: []string{"ELECTRIC", "WATER", "UTILITY", "INTERNET", "WIRELESS", "CABLE"}},
	{Name: "Housing", Keywords: []string{"RENT", "MORTGAGE", "HOA", "LANDLORD"}},
	{Name: "Health", Keywords: []string{"PHARMACY", "MEDICAL", "DENTAL", "CLINIC", "HOSPITAL"}},
	{Name: "Entertainment", Keywords: []string{"CINEMA", "THEATRE", "STREAMING", "GAMING", "TICKETS"}},
	{Name: "Fees", Keywords: []string{"SERVICE FEE", "OVERDRAFT", "MAINTENANCE FEE", "ANNUAL FEE", "LATE FEE"}},
	{Name: "Cash", Keywords: []string{"ATM", "WITHDRAWAL", "CASH BACK"}},
	{Name: "Transfers", Keywords: []string{"TRANSFER", "ZELLE", "VENMO", "WIRE"}},
}

// LoadCategoryRules reads category keyword rules from a YAML file of the
// same shape as the built-in defaults.
func LoadCategoryRules(path string) ([]CategoryRule, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- rules path is user configuration
	if err != nil {
		return nil, fmt.Errorf("failed to read category rules: %w", err)
	}
	var rules []CategoryRule
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("failed to parse category rules: %w", err)
	}
	return rules, nil
}
