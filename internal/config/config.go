package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/harrison/renext/internal/logger"
	"gopkg.in/yaml.v3"
)

// ErrMissingExtensions is returned by Validate when either extension is empty.
var ErrMissingExtensions = errors.New("both source (-f) and target (-t) extensions are required")

// Config represents the options for a single rename batch.
// It is built once per invocation and not modified after validation.
type Config struct {
	// Directory holds the files to rename (non-recursive)
	Directory string `yaml:"directory"`

	// From is the source extension, lower-cased, without the leading dot
	From string `yaml:"from"`

	// To is the target extension, lower-cased, without the leading dot
	To string `yaml:"to"`

	// Preview reports planned renames without touching the filesystem
	Preview bool `yaml:"preview"`

	// FilesOnly drops subdirectories from the batch even if their names match
	FilesOnly bool `yaml:"files_only"`

	// Strict turns per-file rename failures into a non-zero exit
	Strict bool `yaml:"strict"`

	// ReportPath, when set, receives a YAML report of the batch
	ReportPath string `yaml:"report"`

	// LogLevel sets the diagnostic verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// NoColor disables coloured output
	NoColor bool `yaml:"no_color"`

	// LockDir holds per-directory lock files; empty means os.TempDir()
	LockDir string `yaml:"lock_dir"`
}

// DefaultConfig returns a Config with the default option values
func DefaultConfig() *Config {
	return &Config{
		Directory: ".",
		LogLevel:  logger.DefaultLevel,
	}
}

// LoadConfig loads option defaults from a YAML file on top of DefaultConfig.
// Unlike flags, a file cannot unset a boolean: only true values are applied.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if fileCfg.Directory != "" {
		cfg.Directory = fileCfg.Directory
	}
	if fileCfg.From != "" {
		cfg.From = NormalizeExtension(fileCfg.From)
	}
	if fileCfg.To != "" {
		cfg.To = NormalizeExtension(fileCfg.To)
	}
	if fileCfg.Preview {
		cfg.Preview = true
	}
	if fileCfg.FilesOnly {
		cfg.FilesOnly = true
	}
	if fileCfg.Strict {
		cfg.Strict = true
	}
	if fileCfg.ReportPath != "" {
		cfg.ReportPath = fileCfg.ReportPath
	}
	if fileCfg.LogLevel != "" {
		cfg.LogLevel = strings.ToLower(strings.TrimSpace(fileCfg.LogLevel))
	}
	if fileCfg.NoColor {
		cfg.NoColor = true
	}
	if fileCfg.LockDir != "" {
		cfg.LockDir = fileCfg.LockDir
	}

	return cfg, nil
}

// Overrides carries values given explicitly on the command line.
// Nil fields leave the configuration untouched.
type Overrides struct {
	Directory  *string
	From       *string
	To         *string
	Preview    *bool
	FilesOnly  *bool
	Strict     *bool
	ReportPath *string
	LogLevel   *string
	NoColor    *bool
}

// MergeWithFlags merges CLI flags into the configuration.
// Non-nil values override configuration values so flags take precedence
// over the config file.
func (c *Config) MergeWithFlags(o Overrides) {
	if o.Directory != nil {
		c.Directory = *o.Directory
	}
	if o.From != nil {
		c.From = NormalizeExtension(*o.From)
	}
	if o.To != nil {
		c.To = NormalizeExtension(*o.To)
	}
	if o.Preview != nil {
		c.Preview = *o.Preview
	}
	if o.FilesOnly != nil {
		c.FilesOnly = *o.FilesOnly
	}
	if o.Strict != nil {
		c.Strict = *o.Strict
	}
	if o.ReportPath != nil {
		c.ReportPath = *o.ReportPath
	}
	if o.LogLevel != nil {
		c.LogLevel = strings.ToLower(strings.TrimSpace(*o.LogLevel))
	}
	if o.NoColor != nil {
		c.NoColor = *o.NoColor
	}
}

// NormalizeExtension lower-cases ext and strips a single leading dot.
func NormalizeExtension(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// Validate validates the configuration values
func (c *Config) Validate() error {
	if c.From == "" || c.To == "" {
		return ErrMissingExtensions
	}

	for _, ext := range []string{c.From, c.To} {
		if strings.ContainsAny(ext, `/\`) {
			return fmt.Errorf("extension %q must not contain a path separator", ext)
		}
		if strings.ContainsRune(ext, 0) {
			return fmt.Errorf("extension %q must not contain a NUL byte", ext)
		}
	}

	if c.Directory == "" {
		return errors.New("directory must not be empty")
	}

	if !logger.IsValidLevel(c.LogLevel) {
		return fmt.Errorf("invalid log_level %q, must be one of: trace, debug, info, warn, error", c.LogLevel)
	}

	return nil
}
