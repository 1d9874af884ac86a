package platform

import (
	"os"
	"path/filepath"
	"strings"
)

// defaultPathExt mirrors the Windows fallback when PATHEXT is unset.
const defaultPathExt = ".COM;.EXE;.BAT;.CMD"

// ExecutableExtensions parses a PATHEXT-style list into a set of lowercase
// extensions (with leading dot). An empty input falls back to the standard
// Windows default set.
func ExecutableExtensions(pathext string) map[string]bool {
	if pathext == "" {
		pathext = defaultPathExt
	}
	exts := map[string]bool{}
	for _, ext := range strings.Split(pathext, ";") {
		ext = strings.TrimSpace(ext)
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		exts[strings.ToLower(ext)] = true
	}
	return exts
}

// ExecutableExtensions returns the executable extension set for the host,
// read from the PATHEXT environment variable. On non-Windows hosts the set
// is empty: any file mode can be executable there.
func (p Platform) ExecutableExtensions() map[string]bool {
	if !p.Windows {
		return map[string]bool{}
	}
	return ExecutableExtensions(os.Getenv("PATHEXT"))
}

// IsExecutablePath reports whether path carries an executable extension on
// this platform. Always false on non-Windows hosts.
func (p Platform) IsExecutablePath(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return false
	}
	return p.ExecutableExtensions()[ext]
}
