// Package errors provides sentinel errors and custom error types for the workbench application.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common conditions
var (
	// ErrMalformedProperties indicates that properties text was rejected by the parser
	ErrMalformedProperties = errors.New("malformed properties text")

	// ErrCommandFailed indicates that an external command exited non-zero
	ErrCommandFailed = errors.New("command failed")

	// ErrKeyNotFound indicates that a requested key does not exist
	ErrKeyNotFound = errors.New("key not found")

	// ErrNoProject indicates that no project root could be located
	ErrNoProject = errors.New("no project root found")
)

// ParseError represents a failure to decode properties text.
// It carries the parser's native diagnostic unmodified.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed properties text: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is returns true if the target error is ErrMalformedProperties
func (e *ParseError) Is(target error) bool {
	return target == ErrMalformedProperties
}

// NewParseError creates a new ParseError wrapping the parser diagnostic
func NewParseError(err error) *ParseError {
	return &ParseError{Err: err}
}

// KeyNotFoundError represents an error when a properties key is not present
type KeyNotFoundError struct {
	Key string
}

func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("key %s does not exist", e.Key)
}

// Is returns true if the target error is ErrKeyNotFound
func (e *KeyNotFoundError) Is(target error) bool {
	return target == ErrKeyNotFound
}

// NewKeyNotFoundError creates a new KeyNotFoundError
func NewKeyNotFoundError(key string) *KeyNotFoundError {
	return &KeyNotFoundError{Key: key}
}

// CommandError represents an error from an external command execution
type CommandError struct {
	Command  string
	Args     []string
	Stdout   string
	Stderr   string
	ExitCode int
	Err      error
}

// CommandLine returns the full command line that was executed
func (e *CommandError) CommandLine() string {
	if len(e.Args) == 0 {
		return e.Command
	}
	return e.Command + " " + strings.Join(e.Args, " ")
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("command failed with status %d: %s", e.ExitCode, e.CommandLine())
	if e.Stderr != "" {
		msg += fmt.Sprintf("\nstderr: %s", e.Stderr)
	}
	if e.Stdout != "" {
		msg += fmt.Sprintf("\nstdout: %s", e.Stdout)
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// Is returns true if the target error is ErrCommandFailed
func (e *CommandError) Is(target error) bool {
	return target == ErrCommandFailed
}

// NewCommandError creates a new CommandError
func NewCommandError(command string, args []string, stdout, stderr string, exitCode int, err error) *CommandError {
	return &CommandError{
		Command:  command,
		Args:     args,
		Stdout:   stdout,
		Stderr:   stderr,
		ExitCode: exitCode,
		Err:      err,
	}
}
