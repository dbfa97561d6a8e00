package filex

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnsureParentDir_CreatesNestedDirs(t *testing.T) {
	base := t.TempDir()
	path := filepath.Join(base, "a", "b", "notes.db")

	require.NoError(t, EnsureParentDir(path))

	info, err := os.Stat(filepath.Join(base, "a", "b"))
	require.NoError(t, err)
	require.True(t, info.IsDir())
}

func TestEnsureParentDir_BareFileName(t *testing.T) {
	require.NoError(t, EnsureParentDir("notes.db"))
}

func TestEnsureParentDir_ExistingDir(t *testing.T) {
	base := t.TempDir()
	require.NoError(t, EnsureParentDir(filepath.Join(base, "x.db")))
	require.NoError(t, EnsureParentDir(filepath.Join(base, "x.db")))
}

func TestEnsureParentDir_FileInTheWay(t *testing.T) {
	base := t.TempDir()
	blocker := filepath.Join(base, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	err := EnsureParentDir(filepath.Join(blocker, "sub", "x.db"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "mkdir")
}
