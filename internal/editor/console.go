package editor

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	// fatih/color disables these when output is not a TTY
	successColor = color.New(color.FgGreen, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	headerColor  = color.New(color.FgBlue, color.Bold)
	indexColor   = color.New(color.FgCyan)
	dimColor     = color.New(color.FgHiBlack)
)

// Console writes the editor's user-facing output.
type Console struct {
	w io.Writer
}

// NewConsole creates a Console writing to w.
func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

// Section prints a section header.
func (c *Console) Section(title string) {
	_, _ = fmt.Fprintln(c.w)
	_, _ = headerColor.Fprintf(c.w, "▸ %s\n", title)
}

// Success prints a success message with a checkmark.
func (c *Console) Success(msg string) {
	_, _ = successColor.Fprintf(c.w, "✓ %s\n", msg)
}

// Warning prints a warning message with a warning symbol.
func (c *Console) Warning(msg string) {
	_, _ = warningColor.Fprintf(c.w, "⚠ %s\n", msg)
}

// Error prints an error message.
func (c *Console) Error(msg string) {
	_, _ = errorColor.Fprintf(c.w, "✗ %s\n", msg)
}

// Info prints an informational message.
func (c *Console) Info(msg string) {
	_, _ = fmt.Fprintln(c.w, msg)
}

// Empty prints a message when there's nothing to show.
func (c *Console) Empty(msg string) {
	_, _ = dimColor.Fprintf(c.w, "  %s\n", msg)
}

// Items prints items numbered from 1.
func (c *Console) Items(items []string) {
	for i, item := range items {
		_, _ = indexColor.Fprintf(c.w, "%3d: ", i+1)
		_, _ = fmt.Fprintln(c.w, item)
	}
}
