// Package output renders CLI command results as a table, JSON or YAML.
package output

//go:generate go tool errtrace -w .

import (
	"io"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gohts/internal/errorutil"
)

// Format is an output format.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// ErrInvalidFormat is returned for an unknown output format name.
const ErrInvalidFormat errorutil.Error = "invalid output format"

// ParseFormat parses a format name. An empty name means [FormatTable].
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "table", "":
		return FormatTable, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidFormat, "%q (valid: table, json, yaml)", s))
	}
}

func (f Format) String() string { return string(f) }

// Printer writes data to out in the configured format.
type Printer struct {
	out    io.Writer
	format Format
}

// NewPrinter creates a new printer.
func NewPrinter(out io.Writer, format Format) *Printer {
	return &Printer{out: out, format: format}
}

// Format returns the printer format.
func (p *Printer) Format() Format { return p.format }

// Print writes data in the printer format.
// Table output requires data to implement [TableRenderer] and falls back to JSON otherwise.
func (p *Printer) Print(data any) error {
	switch p.format {
	case FormatTable:
		if r, ok := data.(TableRenderer); ok {
			return errtrace.Wrap(PrintTable(p.out, r))
		}
		return errtrace.Wrap(PrintJSON(p.out, data))
	case FormatJSON:
		return errtrace.Wrap(PrintJSON(p.out, data))
	case FormatYAML:
		return errtrace.Wrap(PrintYAML(p.out, data))
	default:
		return errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidFormat, "%q", p.format))
	}
}
