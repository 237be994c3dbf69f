// Package main provides the CLI entry point for sheetjson.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/ukaji3/sheetjson/pkg/sheetjson"
)

const (
	inputFile  = "product_file.xlsx"
	outputFile = "product_file.json"
)

func main() {
	os.Exit(execute(newRootCmd()))
}

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sheetjson",
		Short: "Convert the first sheet of " + inputFile + " to JSON",
		Long: `sheetjson reads the first sheet of ` + inputFile + ` in the current directory
and writes its rows as a JSON array of records to ` + outputFile + `.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}
}

// execute runs cmd and maps its result to a process exit status.
func execute(cmd *cobra.Command) int {
	err := cmd.Execute()
	switch {
	case err == nil:
		return 0
	case errors.Is(err, sheetjson.ErrFileNotFound):
		fmt.Fprintf(cmd.OutOrStdout(), "File not found: %s\n", inputFile)
	default:
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
	}
	return 1
}

func run(cmd *cobra.Command, args []string) error {
	if err := sheetjson.Convert(inputFile, outputFile, sheetjson.DefaultOptions()); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Converted %s to %s\n", inputFile, outputFile)
	return nil
}
