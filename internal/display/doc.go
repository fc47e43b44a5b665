// Package display renders the user-facing output of a rename batch.
//
// Reporter prints one line per decision (found, would rename, renamed,
// failed) plus the closing summary. Informational lines go to the out
// writer, failures to the error writer:
//
//	r := display.NewReporter(os.Stdout, os.Stderr, display.ColorEnabled(os.Stdout, false))
//	r.Found(len(matches))
//	r.Renamed("a.CHK", "a.mp4")
//	r.Complete(false)
//
// Warning renders a titled block with optional message, file list and
// suggestion, used for the end-of-batch failure summary.
//
// Colour is opt-in per writer: ColorEnabled only returns true for an
// *os.File attached to a terminal when NO_COLOR is unset, so buffers in
// tests always receive plain text.
package display
