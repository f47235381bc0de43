// Command texsift wraps a LaTeX compiler invocation and condenses its
// notoriously noisy log output into a readable, colorized summary.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/texsift/texsift-go/internal/runner"
)

var (
	// root flags
	teePath   string
	noTee     bool
	noColor   bool
	stylePath string
	verbose   bool
)

// exitCode carries the wrapped compiler's exit status out of RunE so the
// wrapper can relay it. Launch and pipeline failures exit 1 instead.
var exitCode int

var rootCmd = &cobra.Command{
	Use:   "texsift compiler [args...]",
	Short: "Filter a LaTeX compiler's output into a readable summary",
	Long: `texsift runs a LaTeX compiler and filters its combined output,
keeping errors, warnings and box reports (each attributed to the source
file and page they occurred on) while discarding the noise.

The wrapper's exit status equals the compiler's, so texsift drops into
build scripts unchanged.

Examples:
  # Wrap a compiler run
  texsift pdflatex -interaction=nonstopmode thesis.tex

  # Filter a saved log file
  texsift filter thesis.log

  # Follow the log of a compiler started elsewhere
  texsift tail thesis.log`,
	Args:          cobra.MinimumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runWrap,
}

func init() {
	// Stop flag parsing at the compiler name so its own flags pass through.
	rootCmd.Flags().SetInterspersed(false)

	rootCmd.PersistentFlags().StringVar(&teePath, "tee", "texsift.out",
		"duplicate filtered output to this file")
	rootCmd.PersistentFlags().BoolVar(&noTee, "no-tee", false,
		"write to the terminal only")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false,
		"disable ANSI colors")
	rootCmd.PersistentFlags().StringVar(&stylePath, "styles", "",
		"YAML style file overriding the default palette")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"report parse anomalies to stderr")
}

func runWrap(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	eng, cleanup, err := newEngine()
	if err != nil {
		return err
	}
	defer cleanup()

	code, err := runner.Run(ctx, args[0], args[1:], eng.Run)
	if err != nil {
		return err
	}
	exitCode = code
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "texsift: %v\n", err)
		os.Exit(1)
	}
	os.Exit(exitCode)
}
