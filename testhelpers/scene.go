// Package testhelpers provides testing utilities for workbench,
// including a scene system for temporary project directories.
package testhelpers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// Must is a generic helper function that panics if err is not nil,
// otherwise returns the value. This is useful for test setup code
// where errors are not expected and should halt execution immediately.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// Scene is a temporary project directory seeded with files.
type Scene struct {
	// Dir is the scene's root directory.
	Dir string
}

// NewScene creates a temporary project directory containing the given files,
// keyed by path relative to the root. Parent directories are created as
// needed. The directory is removed when the test finishes.
func NewScene(t *testing.T, files map[string]string) *Scene {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0750))
		require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	}
	return &Scene{Dir: dir}
}

// Path returns the absolute path of a file inside the scene.
func (s *Scene) Path(name string) string {
	return filepath.Join(s.Dir, name)
}

// Read returns the content of a file inside the scene.
func (s *Scene) Read(t *testing.T, name string) string {
	t.Helper()

	data, err := os.ReadFile(s.Path(name))
	require.NoError(t, err)
	return string(data)
}
