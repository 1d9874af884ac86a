// Package platform answers questions about the host operating system.
//
// Detection runs once at startup; the resulting Platform value is immutable
// and is passed explicitly to the helpers that need it instead of living in
// package-level state.
package platform

import (
	"runtime"
	"strings"
)

// windowsIdentifiers are the substrings that mark a host-configuration
// string as a Windows-family environment.
var windowsIdentifiers = []string{
	"windows",
	"cygwin",
	"mingw",
	"mswin",
	"wince",
	"djgpp",
	"bccwin",
}

// Platform describes the host operating system.
type Platform struct {
	// Host is the host-configuration string the platform was detected from,
	// e.g. "linux/amd64" or "windows/amd64".
	Host string

	// Windows reports whether the host belongs to the Windows family.
	Windows bool
}

// FromHost builds a Platform from a host-configuration string. The check is
// a case-insensitive substring match against the known Windows-family
// identifiers, so values like "x86_64-w64-mingw32" are recognized too.
func FromHost(host string) Platform {
	lower := strings.ToLower(host)
	for _, id := range windowsIdentifiers {
		if strings.Contains(lower, id) {
			return Platform{Host: host, Windows: true}
		}
	}
	return Platform{Host: host, Windows: false}
}

// Detect returns the Platform for the current process.
func Detect() Platform {
	return FromHost(runtime.GOOS + "/" + runtime.GOARCH)
}
