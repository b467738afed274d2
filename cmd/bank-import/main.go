// Package main provides the entry point for the bank-import CLI application.
package main

import (
	"os"

	"fjacquet/bank-import/cmd/batch"
	"fjacquet/bank-import/cmd/categorize"
	"fjacquet/bank-import/cmd/convert"
	"fjacquet/bank-import/cmd/detect"
	"fjacquet/bank-import/cmd/root"
)

func main() {
	root.Init()

	root.Cmd.AddCommand(convert.Cmd)
	root.Cmd.AddCommand(batch.Cmd)
	root.Cmd.AddCommand(detect.Cmd)
	root.Cmd.AddCommand(categorize.Cmd)

	if err := root.Cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
