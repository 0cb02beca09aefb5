// Package printer persists a rendered tree and reports where it went
package printer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
)

// Printer writes trees and confirmation messages to its output
type Printer struct {
	output    io.Writer
	useColors bool
}

// New creates a new Printer writing to stdout
func New() *Printer {
	return &Printer{
		output:    os.Stdout,
		useColors: true,
	}
}

// WithOutput sets the output destination
func (p *Printer) WithOutput(w io.Writer) *Printer {
	p.output = w
	return p
}

// WithColors enables or disables colored output
func (p *Printer) WithColors(enabled bool) *Printer {
	p.useColors = enabled
	return p
}

// Render joins lines with "\n". No newline is added after the last line.
func Render(lines []string) string {
	return strings.Join(lines, "\n")
}

// WriteFile writes the rendered lines to path as UTF-8, creating missing
// parent directories first.
func WriteFile(path string, lines []string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("printer: failed to create output directory '%s': %w", dir, err)
		}
	}
	if err := os.WriteFile(path, []byte(Render(lines)), 0o644); err != nil {
		return fmt.Errorf("printer: failed to write output file '%s': %w", path, err)
	}
	return nil
}

// PrintTree writes the rendered lines to the output, ending with a newline
func (p *Printer) PrintTree(lines []string) error {
	_, err := fmt.Fprintln(p.output, Render(lines))
	return err
}

// Confirm prints the one-line success message for a written tree
func (p *Printer) Confirm(path string) {
	if p.useColors {
		path = color.GreenString(path)
	}
	fmt.Fprintf(p.output, "Tree written to: %s\n", path)
}
