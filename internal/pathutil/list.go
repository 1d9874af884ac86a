package pathutil

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// List returns the names of all entries in dir, dotfiles included, sorted
// ascending. The "." and ".." pseudo-entries are never part of the result.
func List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names, nil
}

// ListTree returns the paths of all files under dir, dotfiles and
// dot-directories included, relative to dir and sorted ascending.
// Directories themselves are not listed.
func ListTree(dir string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		paths = append(paths, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)
	return paths, nil
}
