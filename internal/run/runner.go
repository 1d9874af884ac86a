// Package run executes scripts through an external interpreter binary.
package run

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"
	"time"

	wberrors "workbench.dev/workbench/internal/errors"
	"workbench.dev/workbench/internal/platform"
)

// DefaultCommandTimeout is the default timeout for interpreter invocations
const DefaultCommandTimeout = 5 * time.Minute

// Runner handles execution of an interpreter binary
type Runner struct {
	interpreter string
	workingDir  string
	env         []string
	plat        platform.Platform
	elevate     ElevatePolicy

	// Confirm, when set, is asked before a command is elevated. Returning
	// false runs the command without elevation instead.
	Confirm func(commandLine string) bool
}

// NewRunner creates a Runner for the given interpreter binary
func NewRunner(interpreter string, plat platform.Platform) *Runner {
	return &Runner{
		interpreter: interpreter,
		plat:        plat,
		elevate:     ElevateAuto,
	}
}

// Interpreter returns the interpreter binary this runner invokes.
func (r *Runner) Interpreter() string {
	return r.interpreter
}

// SetWorkingDir sets the working directory for interpreter invocations.
func (r *Runner) SetWorkingDir(dir string) {
	r.workingDir = dir
}

// SetEnv sets extra environment variables, in "KEY=value" form, appended to
// the process environment for interpreter invocations.
func (r *Runner) SetEnv(env []string) {
	r.env = env
}

// SetElevatePolicy sets when the runner elevates privileges.
func (r *Runner) SetElevatePolicy(policy ElevatePolicy) {
	r.elevate = policy
}

// Run executes the interpreter with the given arguments and returns its
// trimmed stdout. A non-zero exit is fatal: it surfaces as a
// *errors.CommandError carrying the exit status and the full command line.
func (r *Runner) Run(ctx context.Context, args ...string) (string, error) {
	return r.runInternal(ctx, true, args...)
}

// RunRaw is Run without output trimming.
func (r *Runner) RunRaw(ctx context.Context, args ...string) (string, error) {
	return r.runInternal(ctx, false, args...)
}

func (r *Runner) runInternal(ctx context.Context, trim bool, args ...string) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	// If no timeout/deadline is set in the context, add the default one
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, DefaultCommandTimeout)
		defer cancel()
	}

	name, argv := r.commandLine(args)
	cmd := exec.CommandContext(ctx, name, argv...)
	if r.workingDir != "" {
		cmd.Dir = r.workingDir
	}
	if len(r.env) > 0 {
		cmd.Env = append(os.Environ(), r.env...)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		if ctx.Err() == context.DeadlineExceeded {
			err = ctx.Err()
		}
		return "", wberrors.NewCommandError(name, argv, stdout.String(), stderr.String(), exitCode, err)
	}
	if trim {
		return strings.TrimSpace(stdout.String()), nil
	}
	return stdout.String(), nil
}

// RunInteractive executes the interpreter with stdin/stdout/stderr connected
// to the terminal.
func (r *Runner) RunInteractive(args ...string) error {
	name, argv := r.commandLine(args)
	cmd := exec.Command(name, argv...)
	if r.workingDir != "" {
		cmd.Dir = r.workingDir
	}
	if len(r.env) > 0 {
		cmd.Env = append(os.Environ(), r.env...)
	}
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	if err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return wberrors.NewCommandError(name, argv, "", "", exitCode, err)
	}
	return nil
}

// commandLine resolves the actual command to execute, prefixing the
// elevation mechanism when policy and interpreter ownership call for it.
func (r *Runner) commandLine(args []string) (string, []string) {
	if !r.shouldElevate() {
		return r.interpreter, args
	}
	elevated := append([]string{r.interpreter}, args...)
	if r.Confirm != nil && !r.Confirm(r.interpreter+" "+strings.Join(args, " ")) {
		return r.interpreter, args
	}
	return elevateCommand, append(elevateArgs(), elevated...)
}

func (r *Runner) shouldElevate() bool {
	switch r.elevate {
	case ElevateAlways:
		return !r.plat.Windows
	case ElevateNever:
		return false
	}
	// Auto: elevate only when the interpreter binary belongs to another
	// user, mirroring the "not ours, so run it as its owner" rule.
	if r.plat.Windows {
		return false
	}
	owned, err := ownedByCurrentUser(r.interpreter)
	if err != nil {
		return false
	}
	return !owned
}
