// Package pathutil provides cross-platform path utilities for workbench.
//
// Windows-family handling is done at the string level rather than through
// the filepath package, so paths for a Windows target can be produced and
// tested on any host.
package pathutil

import (
	"os"
	gopath "path"
	"path/filepath"
	"strings"

	"workbench.dev/workbench/internal/platform"
)

// Normalize returns path as an absolute, platform-normalized path.
//
// A relative path is resolved against the base directories in order
// (earlier bases are outermost), then against the working directory. On
// Windows-family platforms forward slashes are converted to backslashes
// and a drive-letter prefix is uppercased.
func Normalize(path string, plat platform.Platform, bases ...string) (string, error) {
	if plat.Windows {
		return normalizeWindows(path, bases)
	}

	if !filepath.IsAbs(path) {
		parts := append(append([]string{}, bases...), path)
		path = filepath.Join(parts...)
	}
	return filepath.Abs(path)
}

func normalizeWindows(path string, bases []string) (string, error) {
	p := toSlash(path)
	if !isWindowsAbs(p) {
		parts := make([]string, 0, len(bases)+1)
		for _, b := range bases {
			parts = append(parts, toSlash(b))
		}
		parts = append(parts, p)
		p = gopath.Join(parts...)
	}
	if !isWindowsAbs(p) {
		// Last resort: resolve against the working directory. Only
		// meaningful when actually running on a Windows host.
		abs, err := filepath.Abs(p)
		if err != nil {
			return "", err
		}
		p = toSlash(abs)
	}

	p = gopath.Clean(p)

	// Uppercase a drive-letter prefix: c:/x -> C:/x
	if len(p) >= 2 && p[1] == ':' && p[0] >= 'a' && p[0] <= 'z' {
		p = strings.ToUpper(p[:1]) + p[1:]
	}

	return strings.ReplaceAll(p, "/", `\`), nil
}

func toSlash(p string) string {
	return strings.ReplaceAll(p, `\`, "/")
}

// isWindowsAbs reports whether a slash-normalized path is absolute in
// Windows terms: a drive-letter prefix, a UNC path, or drive-relative.
func isWindowsAbs(p string) bool {
	if len(p) >= 2 && p[1] == ':' {
		c := p[0]
		return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
	}
	return strings.HasPrefix(p, "/")
}

// ReplaceExt returns path with its file extension replaced by ext. The new
// extension may be given with or without the leading dot; an empty ext
// strips the extension entirely. A path with no extension gets ext appended.
func ReplaceExt(path, ext string) string {
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}

// Expand expands a leading "~" and environment variables in path.
func Expand(path string) string {
	if path == "~" {
		if home, err := os.UserHomeDir(); err == nil {
			return home
		}
	}
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[2:])
		}
	}
	return os.ExpandEnv(path)
}
