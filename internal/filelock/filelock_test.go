package filelock

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFileLock(t *testing.T) {
	lockPath := filepath.Join(t.TempDir(), "test.lock")

	lock := NewFileLock(lockPath)
	require.NotNil(t, lock)
	assert.Equal(t, lockPath, lock.Path())
}

func TestUnlockWithoutLock(t *testing.T) {
	lock := NewFileLock(filepath.Join(t.TempDir(), "test.lock"))

	require.NoError(t, lock.Unlock())
}

func TestTryLock(t *testing.T) {
	lockPath := filepath.Join(t.TempDir(), "test.lock")

	lock1 := NewFileLock(lockPath)
	lock2 := NewFileLock(lockPath)

	acquired, err := lock1.TryLock()
	require.NoError(t, err)
	require.True(t, acquired, "first TryLock should succeed")

	acquired, err = lock2.TryLock()
	require.NoError(t, err)
	assert.False(t, acquired, "second TryLock should fail while the lock is held")

	require.NoError(t, lock1.Unlock())

	acquired, err = lock2.TryLock()
	require.NoError(t, err)
	assert.True(t, acquired, "TryLock should succeed after unlock")

	lock2.Unlock()
}

func TestNewDirLock(t *testing.T) {
	lockDir := t.TempDir()
	target := t.TempDir()

	t.Run("same directory maps to same lock file", func(t *testing.T) {
		a, err := NewDirLock(lockDir, target)
		require.NoError(t, err)
		b, err := NewDirLock(lockDir, filepath.Join(target, "sub", ".."))
		require.NoError(t, err)

		assert.Equal(t, a.Path(), b.Path())
		assert.Equal(t, lockDir, filepath.Dir(a.Path()))
		assert.True(t, strings.HasPrefix(filepath.Base(a.Path()), "renext-"))
		assert.True(t, strings.HasSuffix(a.Path(), ".lock"))
	})

	t.Run("different directories map to different lock files", func(t *testing.T) {
		a, err := NewDirLock(lockDir, target)
		require.NoError(t, err)
		b, err := NewDirLock(lockDir, t.TempDir())
		require.NoError(t, err)

		assert.NotEqual(t, a.Path(), b.Path())
	})

	t.Run("lock file stays out of the target directory", func(t *testing.T) {
		lock, err := NewDirLock(lockDir, target)
		require.NoError(t, err)

		acquired, err := lock.TryLock()
		require.NoError(t, err)
		require.True(t, acquired)
		defer lock.Unlock()

		entries, err := os.ReadDir(target)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("creates missing lock directory", func(t *testing.T) {
		nested := filepath.Join(t.TempDir(), "locks", "renext")
		_, err := NewDirLock(nested, target)
		require.NoError(t, err)

		info, err := os.Stat(nested)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})
}

func TestAtomicWrite(t *testing.T) {
	targetPath := filepath.Join(t.TempDir(), "report.yaml")

	require.NoError(t, AtomicWrite(targetPath, []byte("first")))
	require.NoError(t, AtomicWrite(targetPath, []byte("second")))

	data, err := os.ReadFile(targetPath)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))

	info, err := os.Stat(targetPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0644), info.Mode().Perm())
}

func TestAtomicWriteNoTempFileLeftBehind(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, AtomicWrite(filepath.Join(tmpDir, "test.txt"), []byte("content")))

	entries, err := os.ReadDir(tmpDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "test.txt", entries[0].Name())
}

func TestAtomicWriteCreateDirectory(t *testing.T) {
	targetPath := filepath.Join(t.TempDir(), "reports", "nested", "run.yaml")

	require.NoError(t, AtomicWrite(targetPath, []byte("ok")))

	data, err := os.ReadFile(targetPath)
	require.NoError(t, err)
	assert.Equal(t, "ok", string(data))
}
