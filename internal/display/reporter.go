package display

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Reporter prints the progress of a rename batch.
type Reporter struct {
	out     io.Writer
	errOut  io.Writer
	colored bool

	label   *color.Color
	success *color.Color
	fail    *color.Color
	muted   *color.Color
}

// NewReporter creates a Reporter writing progress to out and failures to errOut.
// A nil writer discards its output.
func NewReporter(out, errOut io.Writer, colored bool) *Reporter {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}
	return &Reporter{
		out:     out,
		errOut:  errOut,
		colored: colored,
		label:   newColor(colored, color.FgCyan),
		success: newColor(colored, color.FgGreen),
		fail:    newColor(colored, color.FgRed),
		muted:   newColor(colored, color.FgHiBlack),
	}
}

// NoMatches reports that nothing in the directory carries the extension.
func (r *Reporter) NoMatches(ext string) {
	fmt.Fprintf(r.out, "No files found with extension .%s\n", ext)
}

// Found announces the size of the batch.
func (r *Reporter) Found(count int) {
	fmt.Fprintf(r.out, "Found %d files to process\n", count)
}

// WouldRename prints a preview decision.
func (r *Reporter) WouldRename(oldName, newName string) {
	fmt.Fprintf(r.out, "%s %s -> %s\n", r.label.Sprint("Would rename:"), oldName, newName)
}

// Renamed prints a completed rename.
func (r *Reporter) Renamed(oldName, newName string) {
	fmt.Fprintf(r.out, "%s %s -> %s\n", r.success.Sprint("Renamed:"), oldName, newName)
}

// Unchanged prints an entry whose new name equals its old name.
func (r *Reporter) Unchanged(name string) {
	fmt.Fprintf(r.out, "%s %s\n", r.muted.Sprint("Unchanged:"), name)
}

// RenameFailed prints a per-file failure to the error writer.
func (r *Reporter) RenameFailed(name string, err error) {
	fmt.Fprintf(r.errOut, "%s %v\n", r.fail.Sprintf("Error renaming %s:", name), err)
}

// Complete prints the closing line of the batch.
func (r *Reporter) Complete(preview bool) {
	if preview {
		fmt.Fprintln(r.out, "\nPreview mode - no files were renamed")
		return
	}
	fmt.Fprintf(r.out, "\n%s\n", r.success.Sprint("File renaming completed!"))
}

// Warn renders w on the error writer.
func (r *Reporter) Warn(w Warning) {
	w.Display(r.errOut, r.colored)
}
