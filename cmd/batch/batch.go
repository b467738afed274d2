// Package batch handles directory-level conversion commands
package batch

import (
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"fjacquet/bank-import/cmd/common"
	"fjacquet/bank-import/cmd/root"
	"fjacquet/bank-import/internal/fileutils"
	"fjacquet/bank-import/internal/logging"
)

var (
	inputDir  string
	outputDir string
)

// Cmd represents the batch command
var Cmd = &cobra.Command{
	Use:   "batch",
	Short: "Batch convert every importable file in a directory",
	Long: `Batch convert all importable bank export files in a directory to
canonical transaction CSVs. One output file is written per input, named
after the input with a .csv extension. A file that fails to import is
logged and skipped; the rest of the batch continues.`,
	Run: batchFunc,
}

func init() {
	Cmd.Flags().StringVar(&inputDir, "input-dir", "", "Directory containing export files (required)")
	Cmd.Flags().StringVar(&outputDir, "output-dir", "", "Directory for canonical CSVs (required)")
	_ = Cmd.MarkFlagRequired("input-dir")
	_ = Cmd.MarkFlagRequired("output-dir")
}

func batchFunc(cmd *cobra.Command, args []string) {
	files, err := fileutils.ListImportableFiles(inputDir)
	if err != nil {
		root.Log.WithError(err).Fatal("Failed to list input directory")
	}
	if len(files) == 0 {
		root.Log.Warn("No importable files found",
			logging.Field{Key: logging.FieldInputFile, Value: inputDir})
		return
	}

	if err := fileutils.EnsureDirectoryExists(outputDir); err != nil {
		root.Log.WithError(err).Fatal("Failed to create output directory")
	}

	opts := common.OptionsFromConfig(root.Cfg)
	converted := 0
	for _, file := range files {
		outputPath := filepath.Join(outputDir, outputName(file))
		if err := common.ProcessFile(file, outputPath, nil, opts, root.Log); err != nil {
			root.Log.WithError(err).Warn("Skipping file",
				logging.Field{Key: logging.FieldInputFile, Value: file})
			continue
		}
		converted++
	}

	root.Log.Info("Batch conversion finished",
		logging.Field{Key: logging.FieldCount, Value: converted},
		logging.Field{Key: "skipped", Value: len(files) - converted})
}

// outputName derives the output file name from an input path, replacing the
// extension with .csv.
func outputName(inputPath string) string {
	base := filepath.Base(inputPath)
	ext := filepath.Ext(base)
	return strings.TrimSuffix(base, ext) + ".csv"
}
