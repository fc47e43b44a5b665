package renamer

import (
	"errors"
	"strings"
)

// ErrExtensionMismatch is returned when a listed name does not end with
// exactly "." + source extension once case folding is undone. Names whose
// lower-cased form differs in byte length from the original can pass the
// listing filter yet fail here.
var ErrExtensionMismatch = errors.New("name does not end with the source extension")

// Plan is the rename decision for one entry: both names are base names
// relative to the batch directory.
type Plan struct {
	Old string `yaml:"old"`
	New string `yaml:"new"`
}

// Unchanged reports whether the rename would be a no-op.
func (p Plan) Unchanged() bool {
	return p.Old == p.New
}

// PlanRename computes the new name for name by replacing its from extension
// with to. Both extensions are given without the leading dot.
//
// The suffix removed is exactly len(from)+1 bytes and must read "." followed
// by from (compared case-insensitively); the stem is kept as is.
func PlanRename(name, from, to string) (Plan, error) {
	suffixLen := len(from) + 1
	if from == "" || len(name) < suffixLen {
		return Plan{}, ErrExtensionMismatch
	}

	cut := len(name) - suffixLen
	stem, suffix := name[:cut], name[cut:]
	if suffix[0] != '.' || !strings.EqualFold(suffix[1:], from) {
		return Plan{}, ErrExtensionMismatch
	}

	return Plan{Old: name, New: stem + "." + to}, nil
}
