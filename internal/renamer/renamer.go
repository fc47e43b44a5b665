// Package renamer runs a rename batch: it lists one directory, selects the
// entries carrying the source extension, and renames (or, in preview mode,
// reports) each of them to the target extension.
//
// Entries are processed one at a time in byte-wise name order. A failure on
// one entry is reported and the batch moves on; only directory-level
// problems abort the run.
package renamer

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/harrison/renext/internal/config"
	"github.com/harrison/renext/internal/display"
	"github.com/harrison/renext/internal/filelock"
	"github.com/harrison/renext/internal/fileutil"
	"github.com/harrison/renext/internal/logger"
)

var (
	// ErrDirectoryNotFound is returned when the configured directory is absent.
	ErrDirectoryNotFound = fileutil.ErrNotExist

	// ErrNotDirectory is returned when the configured path is not a directory.
	ErrNotDirectory = fileutil.ErrNotDirectory

	// ErrDirectoryLocked is returned when another batch holds the directory lock.
	ErrDirectoryLocked = errors.New("another rename batch is running in this directory")

	// ErrTargetExists is the per-file error for a new name that is already taken.
	ErrTargetExists = errors.New("target already exists")

	// ErrRenameFailures is returned in strict mode when any entry failed.
	ErrRenameFailures = errors.New("some files could not be renamed")
)

// Logger receives diagnostics from the renamer.
type Logger interface {
	LogTrace(message string)
	LogDebug(message string)
	LogInfo(message string)
	LogWarn(message string)
	LogError(message string)
}

// Status is the result of processing one entry.
type Status string

const (
	StatusWouldRename Status = "would_rename"
	StatusRenamed     Status = "renamed"
	StatusUnchanged   Status = "unchanged"
	StatusFailed      Status = "failed"
)

// Outcome records what happened to one entry of the batch.
type Outcome struct {
	Plan   `yaml:",inline"`
	IsDir  bool   `yaml:"is_dir,omitempty"`
	Status Status `yaml:"status"`
	Error  string `yaml:"error,omitempty"`
}

// Result describes a finished batch.
type Result struct {
	RunID      string    `yaml:"run_id"`
	Directory  string    `yaml:"directory"`
	From       string    `yaml:"from"`
	To         string    `yaml:"to"`
	Preview    bool      `yaml:"preview"`
	StartedAt  time.Time `yaml:"started_at"`
	FinishedAt time.Time `yaml:"finished_at"`
	Matched    int       `yaml:"matched"`
	Renamed    int       `yaml:"renamed"`
	Unchanged  int       `yaml:"unchanged"`
	Failed     int       `yaml:"failed"`
	Outcomes   []Outcome `yaml:"outcomes"`
}

// FailedNames returns the original names of the entries that failed.
func (r *Result) FailedNames() []string {
	var names []string
	for _, o := range r.Outcomes {
		if o.Status == StatusFailed {
			names = append(names, o.Old)
		}
	}
	return names
}

func (r *Result) add(o Outcome) {
	r.Outcomes = append(r.Outcomes, o)
	switch o.Status {
	case StatusRenamed:
		r.Renamed++
	case StatusUnchanged:
		r.Unchanged++
	case StatusFailed:
		r.Failed++
	}
}

// Renamer performs one rename batch for a validated configuration.
type Renamer struct {
	cfg      config.Config
	reporter *display.Reporter
	logger   Logger
	rename   func(oldPath, newPath string) error
}

// New creates a Renamer. The configuration is copied so later changes by the
// caller do not affect the batch. A nil reporter or logger discards output.
func New(cfg *config.Config, reporter *display.Reporter, log Logger) *Renamer {
	if reporter == nil {
		reporter = display.NewReporter(nil, nil, false)
	}
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	return &Renamer{
		cfg:      *cfg,
		reporter: reporter,
		logger:   log,
		rename:   os.Rename,
	}
}

// Run executes the batch. Directory-level failures return an error and no
// entries are processed. Per-file failures are recorded in the Result and
// only surface as an error (ErrRenameFailures) in strict mode.
func (r *Renamer) Run() (*Result, error) {
	cfg := r.cfg
	result := &Result{
		RunID:     uuid.NewString(),
		Directory: cfg.Directory,
		From:      cfg.From,
		To:        cfg.To,
		Preview:   cfg.Preview,
		StartedAt: time.Now(),
		Outcomes:  make([]Outcome, 0),
	}
	if abs, err := filepath.Abs(cfg.Directory); err == nil {
		result.Directory = abs
	}

	r.logger.LogDebug(fmt.Sprintf("run %s: .%s -> .%s in %s (preview=%t)",
		result.RunID, cfg.From, cfg.To, result.Directory, cfg.Preview))

	if err := fileutil.EnsureDirectory(cfg.Directory); err != nil {
		return nil, err
	}

	if !cfg.Preview {
		unlock, err := r.lockDirectory()
		if err != nil {
			return nil, err
		}
		defer unlock()
	}

	listing, err := fileutil.ListEntries(cfg.Directory, fileutil.ListOptions{
		Extension: cfg.From,
		FilesOnly: cfg.FilesOnly,
	})
	if err != nil {
		return nil, err
	}
	r.logger.LogDebug(fmt.Sprintf("listed %d entries, %d match .%s", listing.Total, len(listing.Matches), cfg.From))
	if len(listing.Matches) > 0 {
		r.logger.LogTrace("matched: " + strings.Join(listing.Names(), ", "))
	}
	for _, dir := range listing.SkippedDirs {
		r.logger.LogInfo(fmt.Sprintf("skipping directory %s", dir))
	}

	result.Matched = len(listing.Matches)
	if result.Matched == 0 {
		r.reporter.NoMatches(cfg.From)
		return r.finish(result)
	}

	r.reporter.Found(result.Matched)
	for _, entry := range listing.Matches {
		result.add(r.process(entry))
	}

	r.reporter.Complete(cfg.Preview)
	if result.Failed > 0 {
		r.reporter.Warn(display.FailedFilesWarning(result.FailedNames(), result.Matched))
	}

	return r.finish(result)
}

func (r *Renamer) process(entry fileutil.Entry) Outcome {
	cfg := r.cfg

	if entry.IsDir {
		r.logger.LogTrace(fmt.Sprintf("%s is a directory, treating it as a file", entry.Name))
	}

	plan, err := PlanRename(entry.Name, cfg.From, cfg.To)
	if err != nil {
		r.reporter.RenameFailed(entry.Name, err)
		return Outcome{Plan: Plan{Old: entry.Name}, IsDir: entry.IsDir, Status: StatusFailed, Error: err.Error()}
	}
	outcome := Outcome{Plan: plan, IsDir: entry.IsDir}

	if plan.Unchanged() {
		r.reporter.Unchanged(plan.Old)
		outcome.Status = StatusUnchanged
		return outcome
	}

	if cfg.Preview {
		if err := r.checkTarget(plan); err != nil {
			r.logger.LogWarn(fmt.Sprintf("renaming %s would fail: %v", plan.Old, err))
		}
		r.reporter.WouldRename(plan.Old, plan.New)
		outcome.Status = StatusWouldRename
		return outcome
	}

	if err := r.renameEntry(plan); err != nil {
		r.logger.LogDebug(fmt.Sprintf("rename %s -> %s failed: %v", plan.Old, plan.New, err))
		r.reporter.RenameFailed(plan.Old, err)
		outcome.Status = StatusFailed
		outcome.Error = err.Error()
		return outcome
	}

	r.reporter.Renamed(plan.Old, plan.New)
	outcome.Status = StatusRenamed
	return outcome
}

func (r *Renamer) renameEntry(plan Plan) error {
	if err := r.checkTarget(plan); err != nil {
		return err
	}
	return r.rename(r.path(plan.Old), r.path(plan.New))
}

// checkTarget fails when plan.New names an existing entry other than
// plan.Old itself. os.Rename would silently replace a regular file on POSIX
// systems. The same-file case covers case-only renames on case-insensitive
// filesystems.
func (r *Renamer) checkTarget(plan Plan) error {
	target, err := os.Lstat(r.path(plan.New))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}

	if source, err := os.Lstat(r.path(plan.Old)); err == nil && os.SameFile(source, target) {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrTargetExists, plan.New)
}

func (r *Renamer) path(name string) string {
	return filepath.Join(r.cfg.Directory, name)
}

func (r *Renamer) lockDirectory() (func(), error) {
	lock, err := filelock.NewDirLock(r.cfg.LockDir, r.cfg.Directory)
	if err != nil {
		return nil, err
	}

	acquired, err := lock.TryLock()
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, fmt.Errorf("%w: %s (lock %s)", ErrDirectoryLocked, r.cfg.Directory, lock.Path())
	}
	r.logger.LogTrace(fmt.Sprintf("acquired %s", lock.Path()))

	return func() {
		if err := lock.Unlock(); err != nil {
			r.logger.LogWarn(err.Error())
		}
	}, nil
}

func (r *Renamer) finish(result *Result) (*Result, error) {
	result.FinishedAt = time.Now()

	if r.cfg.ReportPath != "" {
		if err := WriteReport(r.cfg.ReportPath, result); err != nil {
			return result, err
		}
		r.logger.LogInfo(fmt.Sprintf("wrote report to %s", r.cfg.ReportPath))
	}

	if r.cfg.Strict && result.Failed > 0 {
		return result, fmt.Errorf("%w: %d of %d failed", ErrRenameFailures, result.Failed, result.Matched)
	}
	return result, nil
}
