package cmd

import (
	"fmt"
	"io"

	"github.com/harrison/renext/internal/display"
	"github.com/harrison/renext/internal/logger"
	"github.com/harrison/renext/internal/renamer"
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for renext
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   programName + " [options]",
		Short: "Batch-rename file extensions in a directory",
		Long: `renext renames every entry in one directory whose name ends with the
source extension (matched case-insensitively) so that it carries the target
extension instead. Use --preview to see the planned renames first.

` + usageText,
		Args: cobra.ArbitraryArgs,
		// Parse owns the flag syntax so it can be tested without a process exit
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
		RunE: func(cmd *cobra.Command, args []string) error {
			return execute(args, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	return cmd
}

// execute runs one invocation. Everything the user needs to see has been
// written to stdout/stderr by the time it returns; the error only carries
// the exit code.
func execute(args []string, stdout, stderr io.Writer) error {
	res := Parse(args)

	switch {
	case res.Err != nil:
		fmt.Fprintf(stderr, "Error: %s\n", res.Err.Message)
		if res.Err.ShowUsage {
			fmt.Fprint(stderr, usageText)
		}
		return &ExitError{Code: res.Err.ExitCode(), Err: res.Err}
	case res.Help:
		fmt.Fprint(stdout, usageText)
		return nil
	case res.Version:
		fmt.Fprintf(stdout, "%s version %s\n", programName, Version)
		return nil
	}

	cfg := res.Config
	reporter := display.NewReporter(stdout, stderr, display.ColorEnabled(stdout, cfg.NoColor))
	log := logger.NewConsoleLogger(stderr, cfg.LogLevel)
	if cfg.NoColor {
		log.DisableColor()
	}

	if _, err := renamer.New(cfg, reporter, log).Run(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return &ExitError{Code: 1, Err: err}
	}
	return nil
}
