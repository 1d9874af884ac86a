package run

// ElevatePolicy controls when interpreter invocations are elevated.
type ElevatePolicy string

const (
	// ElevateNever runs the interpreter as the invoking user unconditionally.
	ElevateNever ElevatePolicy = "never"

	// ElevateAuto elevates only when the invoking user does not own the
	// interpreter binary. This is the default.
	ElevateAuto ElevatePolicy = "auto"

	// ElevateAlways elevates every invocation.
	ElevateAlways ElevatePolicy = "always"
)

// ParseElevatePolicy validates a policy string from configuration.
func ParseElevatePolicy(s string) (ElevatePolicy, bool) {
	switch ElevatePolicy(s) {
	case ElevateNever, ElevateAuto, ElevateAlways:
		return ElevatePolicy(s), true
	}
	return "", false
}

// elevateCommand is the platform mechanism used to gain privileges.
const elevateCommand = "sudo"

// elevateArgs returns the arguments passed to the elevation mechanism
// before the interpreter command line.
func elevateArgs() []string {
	// -E keeps the caller's environment, which build scripts rely on.
	return []string{"-E"}
}
