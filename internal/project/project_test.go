package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-git/v5"
	"github.com/stretchr/testify/require"

	"workbench.dev/workbench/internal/config"
)

func TestFindRoot(t *testing.T) {
	t.Parallel()

	t.Run("git worktree wins", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		_, err := git.PlainInit(dir, false)
		require.NoError(t, err)

		nested := filepath.Join(dir, "src", "deep")
		require.NoError(t, os.MkdirAll(nested, 0750))

		root, err := FindRoot(nested)
		require.NoError(t, err)

		resolved, err := filepath.EvalSymlinks(dir)
		require.NoError(t, err)
		rootResolved, err := filepath.EvalSymlinks(root)
		require.NoError(t, err)
		require.Equal(t, resolved, rootResolved)
	})

	t.Run("config file marks the root outside git", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, config.FileName), []byte("interpreter: ruby\n"), 0600))

		nested := filepath.Join(dir, "lib")
		require.NoError(t, os.MkdirAll(nested, 0750))

		root, err := FindRoot(nested)
		require.NoError(t, err)
		require.Equal(t, dir, root)
	})

	t.Run("falls back to the directory itself", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()

		root, err := FindRoot(dir)
		require.NoError(t, err)
		require.Equal(t, dir, root)
	})
}
