// Package convert handles single-file conversion commands
package convert

import (
	"github.com/spf13/cobra"

	"fjacquet/bank-import/cmd/common"
	"fjacquet/bank-import/cmd/root"
	"fjacquet/bank-import/internal/models"
)

var (
	sheetIndex     int
	skipRows       int
	noHeaderRow    bool
	positiveDebits bool

	dateColumn        string
	amountColumn      string
	descriptionColumn string
	debitColumn       string
	creditColumn      string
)

// Cmd represents the convert command
var Cmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a bank export file to the canonical transaction CSV",
	Long: `Convert one bank export file (CSV, XLSX, or OFX) to the canonical
transaction CSV. Column roles are detected automatically; pass explicit
column flags to override detection.`,
	Run: convertFunc,
}

func init() {
	Cmd.Flags().IntVar(&sheetIndex, "sheet", 0, "Sheet index for spreadsheet files")
	Cmd.Flags().IntVar(&skipRows, "skip-rows", 0, "Number of leading rows to skip")
	Cmd.Flags().BoolVar(&noHeaderRow, "no-header", false, "Treat the first row as data, not headers")
	Cmd.Flags().BoolVar(&positiveDebits, "positive-debits", false, "Emit split-column debits as positive amounts")

	Cmd.Flags().StringVar(&dateColumn, "date-column", "", "Source column holding the transaction date")
	Cmd.Flags().StringVar(&amountColumn, "amount-column", "", "Source column holding the signed amount")
	Cmd.Flags().StringVar(&descriptionColumn, "description-column", "", "Source column holding the description")
	Cmd.Flags().StringVar(&debitColumn, "debit-column", "", "Source column holding debit amounts")
	Cmd.Flags().StringVar(&creditColumn, "credit-column", "", "Source column holding credit amounts")
}

func convertFunc(cmd *cobra.Command, args []string) {
	if root.SharedFlags.Input == "" || root.SharedFlags.Output == "" {
		root.Log.Fatal("Both --input and --output are required")
	}

	opts := common.OptionsFromConfig(root.Cfg)
	opts.SheetIndex = sheetIndex
	opts.SkipRows = skipRows
	opts.HasHeaderRow = !noHeaderRow
	if positiveDebits {
		opts.AmountIsNegativeForDebits = false
	}

	mapping, err := buildMapping()
	if err != nil {
		root.Log.WithError(err).Fatal("Invalid column mapping flags")
	}

	if err := common.ProcessFile(root.SharedFlags.Input, root.SharedFlags.Output, mapping, opts, root.Log); err != nil {
		root.Log.WithError(err).Fatal("Conversion failed")
	}
	root.Log.Info("Conversion completed successfully!")
}

// buildMapping turns the column flags into an explicit mapping, or nil when
// no flags were set so detection runs.
func buildMapping() (*models.ColumnMapping, error) {
	if dateColumn == "" && amountColumn == "" && descriptionColumn == "" &&
		debitColumn == "" && creditColumn == "" {
		return nil, nil
	}
	return models.NewMappingBuilder().
		WithColumn(models.RoleDate, dateColumn).
		WithColumn(models.RoleAmount, amountColumn).
		WithColumn(models.RoleDescription, descriptionColumn).
		WithColumn(models.RoleDebit, debitColumn).
		WithColumn(models.RoleCredit, creditColumn).
		Build()
}
