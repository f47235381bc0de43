package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var filterCmd = &cobra.Command{
	Use:   "filter [file]",
	Short: "Filter a saved compiler log (or stdin)",
	Long: `Run the filter over an existing log file, or over stdin when no
file is given.

Examples:
  texsift filter thesis.log
  pdflatex thesis.tex | texsift filter`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFilter,
}

func init() {
	rootCmd.AddCommand(filterCmd)
}

func runFilter(cmd *cobra.Command, args []string) error {
	eng, cleanup, err := newEngine()
	if err != nil {
		return err
	}
	defer cleanup()

	var in io.Reader = os.Stdin
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
		in = f
	}
	return eng.Run(in)
}
