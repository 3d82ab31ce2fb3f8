// Package output provides unified output formatting for text and JSON.
// Commands use this package for consistent output across the CLI.
package output

import (
	"io"
	"os"

	"golang.org/x/term"
)

// Format represents the output format type.
type Format int

const (
	// FormatText is human-readable formatted text (default).
	FormatText Format = iota
	// FormatJSON is machine-readable JSON output.
	FormatJSON
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	default:
		return "text"
	}
}

// Formatter handles output formatting for commands.
type Formatter struct {
	format Format
	writer io.Writer
	pretty bool
}

// Option is a functional option for Formatter.
type Option func(*Formatter)

// WithFormat sets the output format.
func WithFormat(format Format) Option {
	return func(f *Formatter) {
		f.format = format
	}
}

// WithJSON selects JSON when jsonMode is true.
func WithJSON(jsonMode bool) Option {
	return func(f *Formatter) {
		if jsonMode {
			f.format = FormatJSON
		}
	}
}

// WithWriter sets the output writer.
func WithWriter(w io.Writer) Option {
	return func(f *Formatter) {
		f.writer = w
	}
}

// New creates a new Formatter.
func New(opts ...Option) *Formatter {
	f := &Formatter{
		format: FormatText,
		writer: os.Stdout,
		pretty: true,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// IsJSON reports whether the formatter emits JSON.
func (f *Formatter) IsJSON() bool {
	return f.format == FormatJSON
}

// Writer returns the formatter's writer.
func (f *Formatter) Writer() io.Writer {
	return f.writer
}

// Result represents a command result that can be output in multiple formats.
type Result interface {
	// Text writes the text representation.
	Text(w io.Writer) error
	// JSON returns the JSON-serializable data.
	JSON() interface{}
}

// Output writes a Result in the appropriate format.
func (f *Formatter) Output(r Result) error {
	if f.IsJSON() {
		return f.JSON(r.JSON())
	}
	return r.Text(f.writer)
}

// IsTerminal reports whether stdout is a terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// ColorEnabled reports whether colored text output should be used.
func ColorEnabled() bool {
	return IsTerminal() && os.Getenv("NO_COLOR") == ""
}
