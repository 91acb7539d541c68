// Package netpbm reads and writes the P2, P3, P5 and P6 NetPBM encodings.
package netpbm

import (
	"errors"

	"github.com/roboco-io/pnmedit/internal/ir"
)

var (
	// ErrUnsupportedFormat is returned when the first header line is not P2, P3, P5 or P6.
	ErrUnsupportedFormat = errors.New("unsupported format")
	// ErrMalformedHeader is returned when the dimensions line cannot be parsed.
	ErrMalformedHeader = errors.New("malformed header")
	// ErrTruncatedData is returned when the input ends before all samples are read.
	ErrTruncatedData = errors.New("truncated data")
	// ErrInvalidSample is returned for an ascii sample that is not an integer in 0-255.
	ErrInvalidSample = errors.New("invalid sample")
)

// Options contains decoder configuration options.
type Options struct {
	MaxPixels int // per-plane allocation limit; <= 0 means ir.DefaultMaxPixels
}

// DefaultOptions returns default decoder options.
func DefaultOptions() Options {
	return Options{
		MaxPixels: ir.DefaultMaxPixels,
	}
}

// Extensions maps a color class to the suffix appended to output basenames.
type Extensions struct {
	Color string `yaml:"color"`
	Gray  string `yaml:"gray"`
}

// DefaultExtensions returns the conventional .ppm / .pgm suffixes.
func DefaultExtensions() Extensions {
	return Extensions{
		Color: ir.FormatASCIIColor.Extension(),
		Gray:  ir.FormatASCIIGray.Extension(),
	}
}

// For returns the suffix for format, falling back to the conventional one
// when the configured value is empty.
func (e Extensions) For(format ir.Format) string {
	ext := e.Gray
	if format.IsColor() {
		ext = e.Color
	}
	if ext == "" {
		return format.Extension()
	}
	return ext
}

// OutputPath appends the class extension to basename.
func OutputPath(basename string, format ir.Format, ext Extensions) string {
	return basename + ext.For(format)
}
