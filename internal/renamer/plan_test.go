package renamer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanRename(t *testing.T) {
	tests := []struct {
		name string
		file string
		from string
		to   string
		want Plan
	}{
		{"lower case", "b.chk", "chk", "mp4", Plan{Old: "b.chk", New: "b.mp4"}},
		{"upper case", "a.CHK", "chk", "mp4", Plan{Old: "a.CHK", New: "a.mp4"}},
		{"stem with dots", "clip.2024.01.Chk", "chk", "mp4", Plan{Old: "clip.2024.01.Chk", New: "clip.2024.01.mp4"}},
		{"multi part extension", "backup.TAR.GZ", "tar.gz", "tgz", Plan{Old: "backup.TAR.GZ", New: "backup.tgz"}},
		{"empty stem", ".chk", "chk", "mp4", Plan{Old: ".chk", New: ".mp4"}},
		{"same extension", "a.chk", "chk", "chk", Plan{Old: "a.chk", New: "a.chk"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PlanRename(tt.file, tt.from, tt.to)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPlanRenameMismatch(t *testing.T) {
	tests := []struct {
		name string
		file string
		from string
	}{
		{"too short", "hk", "chk"},
		{"no separator", "achk", "chk"},
		{"different extension", "a.txt", "chk"},
		{"empty extension", "a.", ""},
		// U+212A KELVIN SIGN lower-cases to "k" but is three bytes long
		{"case folding changes length", "x.CH\u212A", "chk"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := PlanRename(tt.file, tt.from, "mp4")
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrExtensionMismatch)
			assert.NotContains(t, err.Error(), tt.file, "callers print the name themselves")
		})
	}
}

func TestPlanUnchanged(t *testing.T) {
	assert.True(t, Plan{Old: "a.chk", New: "a.chk"}.Unchanged())
	assert.False(t, Plan{Old: "a.CHK", New: "a.chk"}.Unchanged())
}
