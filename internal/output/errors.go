package output

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kilomoco/kilomoco/internal/tui/theme"
)

// CLIError is a structured CLI error with an optional remediation hint.
type CLIError struct {
	Message string // what failed
	Hint    string // fastest command/action to fix it (optional)
}

// Error implements the error interface.
func (e *CLIError) Error() string {
	return e.Message
}

// NewCLIError creates a CLI error with just a message.
func NewCLIError(msg string) *CLIError {
	return &CLIError{Message: msg}
}

// WithHint attaches a remediation hint.
func (e *CLIError) WithHint(hint string) *CLIError {
	e.Hint = hint
	return e
}

// FormatCLIError renders a CLIError, with color when enabled.
func FormatCLIError(e *CLIError) string {
	var sb strings.Builder

	if ColorEnabled() {
		t := theme.Current()
		errorStyle := lipgloss.NewStyle().Foreground(t.Error).Bold(true)
		hintStyle := lipgloss.NewStyle().Foreground(t.Info)

		sb.WriteString(errorStyle.Render("Error: "))
		sb.WriteString(e.Message)
		sb.WriteString("\n")
		if e.Hint != "" {
			sb.WriteString(hintStyle.Render("  Hint: "))
			sb.WriteString(e.Hint)
			sb.WriteString("\n")
		}
	} else {
		sb.WriteString("Error: ")
		sb.WriteString(e.Message)
		sb.WriteString("\n")
		if e.Hint != "" {
			sb.WriteString("  Hint: ")
			sb.WriteString(e.Hint)
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

// PrintCLIError prints a CLIError to stderr with formatting.
func PrintCLIError(e *CLIError) {
	fmt.Fprint(os.Stderr, FormatCLIError(e))
}

// ErrorResponse is the JSON shape for error output.
type ErrorResponse struct {
	Error string `json:"error"`
	Hint  string `json:"hint,omitempty"`
}

// NewError creates a JSON error response.
func NewError(msg string) ErrorResponse {
	return ErrorResponse{Error: msg}
}

// SilentError wraps an error that has already been rendered to the user.
// Callers treat it as a failure without printing it again.
type SilentError struct {
	Err error
}

// Error implements the error interface.
func (e *SilentError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the rendered error.
func (e *SilentError) Unwrap() error {
	return e.Err
}

// Error outputs an error in the appropriate format. In JSON mode the error
// is written as a JSON document and a SilentError is returned, so the
// operation still fails without double-printing.
func (f *Formatter) Error(err error) error {
	if !f.IsJSON() {
		return err
	}

	resp := NewError(err.Error())
	var cliErr *CLIError
	if errors.As(err, &cliErr) {
		resp.Hint = cliErr.Hint
	}
	if jsonErr := f.JSON(resp); jsonErr != nil {
		return jsonErr
	}
	return &SilentError{Err: err}
}
