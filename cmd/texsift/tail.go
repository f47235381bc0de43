package main

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/nxadm/tail"
	"github.com/spf13/cobra"

	"github.com/texsift/texsift-go/internal/logfind"
)

var tailFromStart bool

var tailCmd = &cobra.Command{
	Use:   "tail [file]",
	Short: "Follow a growing log file and filter new lines",
	Long: `Follow a .log file being written by a compiler started elsewhere
(for example under latexmk -pvc) and filter lines as they arrive.

With no argument, the newest *.log file in the working directory is
followed.

Examples:
  texsift tail thesis.log
  texsift tail --from-start`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTailCmd,
}

func init() {
	tailCmd.Flags().BoolVar(&tailFromStart, "from-start", false,
		"filter the existing file content before following")
	rootCmd.AddCommand(tailCmd)
}

func runTailCmd(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	path := ""
	if len(args) == 1 {
		path = args[0]
	} else {
		p, err := logfind.Newest(".")
		if err != nil {
			return err
		}
		path = p
	}

	eng, cleanup, err := newEngine()
	if err != nil {
		return err
	}
	defer cleanup()

	cfg := tail.Config{
		Follow:    true,
		ReOpen:    true,
		MustExist: true,
		Logger:    tail.DiscardingLogger,
	}
	if !tailFromStart {
		cfg.Location = &tail.SeekInfo{Offset: 0, Whence: io.SeekEnd}
	}

	t, err := tail.TailFile(path, cfg)
	if err != nil {
		return fmt.Errorf("tailing %s: %w", path, err)
	}
	defer t.Cleanup()

	for {
		select {
		case <-ctx.Done():
			_ = t.Stop()
			return nil
		case line, ok := <-t.Lines:
			if !ok {
				return nil
			}
			if line.Err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "texsift: tail: %v\n", line.Err)
				continue
			}
			eng.ProcessLine(line.Text)
		}
	}
}
