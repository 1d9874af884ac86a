package ui

import (
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/mattn/go-isatty"
)

// IsInteractive checks if we're in an interactive terminal
func IsInteractive() bool {
	// Allow forcing non-interactive mode via environment variable
	if os.Getenv("WORKBENCH_NON_INTERACTIVE") != "" {
		return false
	}

	return (isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())) &&
		(isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()))
}

// Confirm asks the user a yes/no question. Outside an interactive terminal
// the default answer is returned unasked.
func Confirm(message string, defaultAnswer bool) bool {
	if !IsInteractive() {
		return defaultAnswer
	}

	answer := defaultAnswer
	prompt := &survey.Confirm{
		Message: message,
		Default: defaultAnswer,
	}
	if err := survey.AskOne(prompt, &answer); err != nil {
		return false
	}
	return answer
}
