// Package categorize handles the local categorization command
package categorize

import (
	"github.com/spf13/cobra"

	"fjacquet/bank-import/cmd/root"
	"fjacquet/bank-import/internal/categorizer"
	"fjacquet/bank-import/internal/logging"
)

var description string

// Cmd represents the categorize command
var Cmd = &cobra.Command{
	Use:   "categorize",
	Short: "Categorize a transaction description using local rules",
	Long: `Run the local rule tables over a single transaction description:
merchant-name cleanup, category suggestion, and payment-type detection.
No network call is made. A custom keyword rules file can be configured
via categorization.rules_file.`,
	Run: categorizeFunc,
}

func init() {
	Cmd.Flags().StringVarP(&description, "description", "d", "", "Transaction description to categorize (required)")
	_ = Cmd.MarkFlagRequired("description")
}

func categorizeFunc(cmd *cobra.Command, args []string) {
	engine := newEngine()

	suggestion, cleanup := engine.Categorize(description, nil)
	payment := categorizer.DetectPaymentType(description)

	if cleanup != nil {
		root.Log.Info("Cleaned merchant name",
			logging.Field{Key: "merchant", Value: cleanup.Cleaned},
			logging.Field{Key: logging.FieldConfidence, Value: cleanup.Confidence})
	}
	if suggestion != nil {
		root.Log.Info("Suggested category",
			logging.Field{Key: logging.FieldCategory, Value: suggestion.CategoryName},
			logging.Field{Key: logging.FieldConfidence, Value: suggestion.Confidence},
			logging.Field{Key: logging.FieldReason, Value: suggestion.Reason})
	} else {
		root.Log.Info("No category rule matched")
	}
	if payment.Kind != "" {
		fields := []logging.Field{{Key: "payment_kind", Value: payment.Kind}}
		if payment.CheckNumber != "" {
			fields = append(fields, logging.Field{Key: "check_number", Value: payment.CheckNumber})
		}
		root.Log.Info("Detected payment type", fields...)
	}
}

// newEngine builds the categorization engine, loading a configured keyword
// rules file when one is set.
func newEngine() *categorizer.Engine {
	if root.Cfg != nil && root.Cfg.Categorization.RulesFile != "" {
		rules, err := categorizer.LoadCategoryRules(root.Cfg.Categorization.RulesFile)
		if err != nil {
			root.Log.WithError(err).Warn("Failed to load category rules file, using built-in rules")
		} else {
			return categorizer.NewEngineWithRules(rules, root.Log)
		}
	}
	return categorizer.NewEngine(root.Log)
}
