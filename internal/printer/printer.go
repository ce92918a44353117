// Package printer handles output formatting and display
package printer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
)

// Style is the emphasis applied to an entry name
type Style int

const (
	StylePlain Style = iota
	StyleDirectory
	StyleSymlink
	StyleReadOnly
)

func (s Style) String() string {
	switch s {
	case StyleDirectory:
		return "directory"
	case StyleSymlink:
		return "symlink"
	case StyleReadOnly:
		return "readonly"
	default:
		return "plain"
	}
}

// Printer writes tree lines to the configured output destination
type Printer struct {
	output    io.Writer
	useColors bool
	lines     int64

	directory *color.Color
	symlink   *color.Color
	readOnly  *color.Color
}

// New creates a new Printer writing plain lines to stdout
func New() *Printer {
	p := &Printer{
		output:    os.Stdout,
		directory: color.New(color.FgBlue, color.Bold),
		symlink:   color.New(color.FgCyan, color.Bold),
		readOnly:  color.New(color.FgRed, color.Bold),
	}
	return p.WithColors(false)
}

// WithOutput sets the output destination
func (p *Printer) WithOutput(w io.Writer) *Printer {
	p.output = w
	return p
}

// WithColors enables or disables colored output.
// The choice is forced on every style so it does not depend on whether the
// process itself writes to a terminal; that decision belongs to the caller.
func (p *Printer) WithColors(enabled bool) *Printer {
	p.useColors = enabled
	for _, c := range []*color.Color{p.directory, p.symlink, p.readOnly} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// Colors reports whether emphasis codes are written
func (p *Printer) Colors() bool {
	return p.useColors
}

// Line writes one tree line: the indentation prefix followed by the
// emphasised name.
func (p *Printer) Line(prefix, name string, style Style) error {
	p.lines++
	_, err := fmt.Fprintf(p.output, "%s%s\n", prefix, p.Paint(name, style))
	return err
}

// Paint applies the emphasis for style to text
func (p *Printer) Paint(text string, style Style) string {
	if !p.useColors {
		return text
	}
	switch style {
	case StyleDirectory:
		return p.directory.Sprint(text)
	case StyleSymlink:
		return p.symlink.Sprint(text)
	case StyleReadOnly:
		return p.readOnly.Sprint(text)
	default:
		return text
	}
}

// GetCount returns the number of lines printed
func (p *Printer) GetCount() int64 {
	return p.lines
}

// DisplayName returns the text shown for path: its last segment, or the path
// as given when it has no usable last segment ("." , "..", "/").
func DisplayName(path string) string {
	clean := strings.TrimRight(filepath.ToSlash(path), "/")
	for strings.HasSuffix(clean, "/.") {
		clean = strings.TrimRight(strings.TrimSuffix(clean, "/."), "/")
	}

	name := clean
	if i := strings.LastIndex(clean, "/"); i >= 0 {
		name = clean[i+1:]
	}

	if name == "" || name == "." || name == ".." {
		return path
	}
	return name
}
