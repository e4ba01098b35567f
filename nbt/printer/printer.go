// Package printer renders NBT tag trees for humans and machines: an indented
// text tree, JSON, and YAML.
package printer

import (
	"fmt"
	"io"

	"github.com/joshuapare/nbtkit/nbt"
)

const (
	DefaultIndentSize      = 2
	DefaultMaxDepth        = 0
	DefaultMaxArrayPreview = 16
)

// Format specifies the output format for printing.
type Format string

const (
	// FormatText outputs a human-readable indented tree.
	FormatText Format = "text"

	// FormatJSON outputs JSON.
	FormatJSON Format = "json"

	// FormatYAML outputs YAML.
	FormatYAML Format = "yaml"
)

// Options controls printing behavior.
type Options struct {
	// Format specifies the output format (text, json, yaml).
	// Default: FormatText
	Format Format

	// IndentSize is the number of spaces per indent level (text format only).
	// Default: 2
	IndentSize int

	// MaxDepth limits recursion depth (0 = unlimited).
	// Default: 0 (unlimited)
	MaxDepth int

	// ShowTypes includes TAG_* type names (text format only).
	// Default: true
	ShowTypes bool

	// MaxArrayPreview limits how many array elements to display before
	// eliding the rest. Set to 0 for no limit.
	// Default: 16
	MaxArrayPreview int
}

// DefaultOptions returns sensible defaults for printing.
func DefaultOptions() Options {
	return Options{
		Format:          FormatText,
		IndentSize:      DefaultIndentSize,
		MaxDepth:        DefaultMaxDepth,
		ShowTypes:       true,
		MaxArrayPreview: DefaultMaxArrayPreview,
	}
}

// Printer handles formatted output of tag trees.
type Printer struct {
	opts Options
	w    io.Writer
}

// New creates a Printer writing to w with the given options.
func New(w io.Writer, opts Options) *Printer {
	if opts.IndentSize <= 0 {
		opts.IndentSize = DefaultIndentSize
	}
	if opts.Format == "" {
		opts.Format = FormatText
	}
	return &Printer{opts: opts, w: w}
}

// Print renders the tree rooted at root in the configured format.
func (p *Printer) Print(root *nbt.Tag) error {
	switch p.opts.Format {
	case FormatText:
		return p.printText(root)
	case FormatJSON:
		return p.printJSON(root)
	case FormatYAML:
		return p.printYAML(root)
	default:
		return fmt.Errorf("printer: unknown format %q", p.opts.Format)
	}
}
