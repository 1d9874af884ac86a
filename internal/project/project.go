// Package project locates the project root that workbench operates on.
package project

import (
	"os"
	"path/filepath"

	"github.com/go-git/go-git/v5"

	"workbench.dev/workbench/internal/config"
)

// FindRoot resolves the project root for dir. The enclosing git worktree
// wins; otherwise the nearest ancestor carrying a workbench config file;
// otherwise dir itself.
func FindRoot(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	if repo, err := git.PlainOpenWithOptions(abs, &git.PlainOpenOptions{DetectDotGit: true}); err == nil {
		if wt, err := repo.Worktree(); err == nil {
			return wt.Filesystem.Root(), nil
		}
	}

	for cur := abs; ; {
		if _, err := os.Stat(filepath.Join(cur, config.FileName)); err == nil {
			return cur, nil
		}
		parent := filepath.Dir(cur)
		if parent == cur {
			break
		}
		cur = parent
	}

	return abs, nil
}

// FindRootFromWd resolves the project root for the current working directory.
func FindRootFromWd() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return FindRoot(wd)
}
