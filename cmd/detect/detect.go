// Package detect handles the format-inspection command
package detect

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"fjacquet/bank-import/cmd/common"
	"fjacquet/bank-import/cmd/root"
	"fjacquet/bank-import/internal/fileutils"
	"fjacquet/bank-import/internal/importer"
	"fjacquet/bank-import/internal/models"
)

// Cmd represents the detect command
var Cmd = &cobra.Command{
	Use:   "detect",
	Short: "Inspect a bank export file without converting it",
	Long: `Detect a file's kind and, for delimited and spreadsheet files, the
inferred column mapping with its confidence. Nothing is written; the
report goes to stdout as YAML so it can be reviewed or turned into
explicit column flags for the convert command.`,
	Run: detectFunc,
}

// report is the YAML shape printed for a detection run.
type report struct {
	File         string                  `yaml:"file"`
	Kind         string                  `yaml:"kind"`
	Success      bool                    `yaml:"success"`
	Transactions int                     `yaml:"transactions"`
	Format       *formatReport           `yaml:"format,omitempty"`
	Account      *models.DetectedAccount `yaml:"account,omitempty"`
	Warnings     []string                `yaml:"warnings,omitempty"`
}

type formatReport struct {
	DateColumn        string  `yaml:"date_column,omitempty"`
	AmountColumn      string  `yaml:"amount_column,omitempty"`
	DescriptionColumn string  `yaml:"description_column,omitempty"`
	MemoColumn        string  `yaml:"memo_column,omitempty"`
	DebitColumn       string  `yaml:"debit_column,omitempty"`
	CreditColumn      string  `yaml:"credit_column,omitempty"`
	CheckNumberColumn string  `yaml:"check_number_column,omitempty"`
	BalanceColumn     string  `yaml:"balance_column,omitempty"`
	ReferenceColumn   string  `yaml:"reference_column,omitempty"`
	DateFormat        string  `yaml:"date_format,omitempty"`
	AmountStyle       string  `yaml:"amount_style,omitempty"`
	Confidence        float64 `yaml:"confidence"`
}

func detectFunc(cmd *cobra.Command, args []string) {
	if root.SharedFlags.Input == "" {
		root.Log.Fatal("--input is required")
	}

	data, err := fileutils.ReadFile(root.SharedFlags.Input)
	if err != nil {
		root.Log.WithError(err).Fatal("Failed to read input file")
	}

	opts := common.OptionsFromConfig(root.Cfg)
	result := importer.Import(filepath.Base(root.SharedFlags.Input), data, nil, opts, root.Log)

	r := report{
		File:         root.SharedFlags.Input,
		Kind:         string(result.FileKind),
		Success:      result.Success,
		Transactions: len(result.Transactions),
		Account:      result.Account,
		Warnings:     result.Warnings,
	}
	if f := result.Format; f != nil {
		r.Format = &formatReport{
			DateColumn:        f.DateColumn,
			AmountColumn:      f.AmountColumn,
			DescriptionColumn: f.DescriptionColumn,
			MemoColumn:        f.MemoColumn,
			DebitColumn:       f.DebitColumn,
			CreditColumn:      f.CreditColumn,
			CheckNumberColumn: f.CheckNumberColumn,
			BalanceColumn:     f.BalanceColumn,
			ReferenceColumn:   f.ReferenceColumn,
			DateFormat:        f.DateFormat,
			AmountStyle:       f.AmountStyle,
			Confidence:        f.Confidence,
		}
	}

	out, err := yaml.Marshal(&r)
	if err != nil {
		root.Log.WithError(err).Fatal("Failed to render detection report")
	}
	fmt.Print(string(out))
}
