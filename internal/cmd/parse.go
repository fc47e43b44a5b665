package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/harrison/renext/internal/config"
	"github.com/harrison/renext/internal/logger"
	"github.com/spf13/pflag"
)

const programName = "renext"

const usageText = `Usage: ` + programName + ` [options]
Options:
  -d, --directory <path>    Directory containing files (default: current directory)
  -f, --from <extension>    Source file extension (e.g., CHK)
  -t, --to <extension>      Target file extension (e.g., mp4)
  -p, --preview             Preview changes without renaming
  -c, --config <path>       YAML file with default option values
      --files-only          Skip subdirectories whose names match the extension
      --strict              Exit with code 1 if any file fails to rename
      --report <path>       Write a YAML report of the batch to <path>
      --log-level <level>   Diagnostic verbosity: trace, debug, info, warn, error (default: warn)
      --no-color            Disable coloured output
      --version             Print the version and exit
  -h, --help                Show this help message
`

// Usage returns the usage text.
func Usage() string {
	return usageText
}

// ParseResult is the outcome of Parse. Exactly one of Config, Help, Version
// or Err is set.
type ParseResult struct {
	Config  *config.Config
	Help    bool
	Version bool
	Err     *UsageError
}

type options struct {
	directory  string
	from       string
	to         string
	preview    bool
	configPath string
	filesOnly  bool
	strict     bool
	report     string
	logLevel   string
	noColor    bool
	version    bool
	help       bool
}

func newFlagSet(o *options) *pflag.FlagSet {
	fs := pflag.NewFlagSet(programName, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	fs.SortFlags = false

	fs.StringVarP(&o.directory, "directory", "d", ".", "Directory containing files")
	fs.StringVarP(&o.from, "from", "f", "", "Source file extension")
	fs.StringVarP(&o.to, "to", "t", "", "Target file extension")
	fs.BoolVarP(&o.preview, "preview", "p", false, "Preview changes without renaming")
	fs.StringVarP(&o.configPath, "config", "c", "", "YAML file with default option values")
	fs.BoolVar(&o.filesOnly, "files-only", false, "Skip matching subdirectories")
	fs.BoolVar(&o.strict, "strict", false, "Exit with code 1 if any file fails to rename")
	fs.StringVar(&o.report, "report", "", "Write a YAML report of the batch")
	fs.StringVar(&o.logLevel, "log-level", logger.DefaultLevel, "Diagnostic verbosity")
	fs.BoolVar(&o.noColor, "no-color", false, "Disable coloured output")
	fs.BoolVar(&o.version, "version", false, "Print the version and exit")
	fs.BoolVarP(&o.help, "help", "h", false, "Show this help message")

	return fs
}

// Parse turns the invocation arguments (program name excluded) into a
// validated configuration. It never exits the process or writes output.
func Parse(args []string) ParseResult {
	var o options
	fs := newFlagSet(&o)

	if err := fs.Parse(args); err != nil {
		// flags are applied in order, so help seen before the bad token wins
		if o.help {
			return ParseResult{Help: true}
		}
		return parseFailure(err, args)
	}

	if o.help {
		return ParseResult{Help: true}
	}
	if o.version {
		return ParseResult{Version: true}
	}
	if fs.NArg() > 0 {
		return usageFailure("unknown option: %s", fs.Arg(0))
	}

	cfg := config.DefaultConfig()
	if o.configPath != "" {
		loaded, err := config.LoadConfig(o.configPath)
		if err != nil {
			return ParseResult{Err: &UsageError{Message: err.Error()}}
		}
		cfg = loaded
	}

	cfg.MergeWithFlags(overrides(fs, &o))

	if err := cfg.Validate(); err != nil {
		return usageFailure("%v", err)
	}

	return ParseResult{Config: cfg}
}

// overrides collects the options given explicitly on the command line.
func overrides(fs *pflag.FlagSet, o *options) config.Overrides {
	var ov config.Overrides
	if fs.Changed("directory") {
		ov.Directory = &o.directory
	}
	if fs.Changed("from") {
		ov.From = &o.from
	}
	if fs.Changed("to") {
		ov.To = &o.to
	}
	if fs.Changed("preview") {
		ov.Preview = &o.preview
	}
	if fs.Changed("files-only") {
		ov.FilesOnly = &o.filesOnly
	}
	if fs.Changed("strict") {
		ov.Strict = &o.strict
	}
	if fs.Changed("report") {
		ov.ReportPath = &o.report
	}
	if fs.Changed("log-level") {
		ov.LogLevel = &o.logLevel
	}
	if fs.Changed("no-color") {
		ov.NoColor = &o.noColor
	}
	return ov
}

// parseFailure maps a pflag error onto the tool's usage messages.
func parseFailure(err error, args []string) ParseResult {
	var notExist *pflag.NotExistError
	var needsValue *pflag.ValueRequiredError
	var badSyntax *pflag.InvalidSyntaxError

	switch {
	case errors.As(err, &needsValue):
		// pflag only reports this when the option is the last argument
		return usageFailure("missing value for option %s", args[len(args)-1])
	case errors.As(err, &notExist):
		if notExist.GetSpecifiedShortnames() != "" {
			return usageFailure("unknown option: -%s", notExist.GetSpecifiedName())
		}
		return usageFailure("unknown option: --%s", notExist.GetSpecifiedName())
	case errors.As(err, &badSyntax):
		return usageFailure("unknown option: %s", badSyntax.GetSpecifiedFlag())
	}
	return usageFailure("%v", err)
}

func usageFailure(format string, args ...interface{}) ParseResult {
	return ParseResult{Err: &UsageError{
		Message:   fmt.Sprintf(format, args...),
		ShowUsage: true,
	}}
}
