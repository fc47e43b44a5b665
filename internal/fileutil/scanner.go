package fileutil

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
)

var (
	// ErrNotExist is returned when the directory to list is absent.
	ErrNotExist = errors.New("directory does not exist")

	// ErrNotDirectory is returned when the path exists but is not a directory.
	ErrNotDirectory = errors.New("not a directory")
)

// ListOptions configures the directory listing
type ListOptions struct {
	// Extension is the lower-cased source extension without the leading dot
	Extension string
	// FilesOnly drops subdirectories from the matches
	FilesOnly bool
}

// Entry is a single matching name from the listing
type Entry struct {
	Name  string
	IsDir bool
}

// ListResult contains the results of a directory listing
type ListResult struct {
	// Total is the number of entries in the directory before filtering
	Total int
	// Matches holds the entries ending with the extension, sorted by name
	Matches []Entry
	// SkippedDirs holds matching subdirectories dropped by FilesOnly
	SkippedDirs []string
}

// Names returns the names of the matched entries in order.
func (r *ListResult) Names() []string {
	names := make([]string, 0, len(r.Matches))
	for _, e := range r.Matches {
		names = append(names, e.Name)
	}
	return names
}

// EnsureDirectory checks that dir exists and is a directory.
// The returned error wraps ErrNotExist or ErrNotDirectory where applicable.
func EnsureDirectory(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrNotExist, dir)
		}
		return fmt.Errorf("failed to access directory %q: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrNotDirectory, dir)
	}
	return nil
}

// HasExtensionFold reports whether name, lower-cased, ends with "." + ext.
// ext must already be lower-cased.
func HasExtensionFold(name, ext string) bool {
	if ext == "" {
		return false
	}
	return strings.HasSuffix(strings.ToLower(name), "."+ext)
}

// ListEntries lists the entries directly inside dir whose names end with the
// configured extension.
func ListEntries(dir string, opts ListOptions) (*ListResult, error) {
	if err := EnsureDirectory(dir); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %q: %w", dir, err)
	}

	result := &ListResult{
		Total:   len(entries),
		Matches: make([]Entry, 0),
	}

	for _, e := range entries {
		name := e.Name()
		if !HasExtensionFold(name, opts.Extension) {
			continue
		}

		if e.IsDir() && opts.FilesOnly {
			result.SkippedDirs = append(result.SkippedDirs, name)
			continue
		}

		result.Matches = append(result.Matches, Entry{Name: name, IsDir: e.IsDir()})
	}

	// os.ReadDir already sorts, but ordering is part of the contract
	sort.Slice(result.Matches, func(i, j int) bool {
		return result.Matches[i].Name < result.Matches[j].Name
	})

	return result, nil
}
