// Package ir defines the in-memory representation of a NetPBM image.
// An Image is produced by the decoder, mutated by at most one transform
// and consumed by the encoder.
package ir

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidEncoding is returned when an output type is neither ascii nor binary.
var ErrInvalidEncoding = errors.New("invalid output type")

// Encoding selects between the text and raw-byte variants of a format.
type Encoding int

const (
	EncodingASCII Encoding = iota
	EncodingBinary
)

// String returns the CLI spelling of the encoding.
func (e Encoding) String() string {
	switch e {
	case EncodingASCII:
		return "ascii"
	case EncodingBinary:
		return "binary"
	default:
		return "unknown"
	}
}

// ParseEncoding accepts "ascii" and "binary", with or without the
// legacy "--" prefix.
func ParseEncoding(s string) (Encoding, error) {
	switch strings.TrimPrefix(s, "--") {
	case "ascii":
		return EncodingASCII, nil
	case "binary":
		return EncodingBinary, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidEncoding, s)
	}
}

// Format is the header tag of a NetPBM file.
type Format int

const (
	FormatUnknown     Format = iota
	FormatASCIIColor         // P3
	FormatBinaryColor        // P6
	FormatASCIIGray          // P2
	FormatBinaryGray         // P5
)

// String returns the magic number written on the first header line.
func (f Format) String() string {
	switch f {
	case FormatASCIIColor:
		return "P3"
	case FormatBinaryColor:
		return "P6"
	case FormatASCIIGray:
		return "P2"
	case FormatBinaryGray:
		return "P5"
	default:
		return "unknown"
	}
}

// ParseMagic maps a header tag to its Format.
func ParseMagic(s string) (Format, bool) {
	switch s {
	case "P3":
		return FormatASCIIColor, true
	case "P6":
		return FormatBinaryColor, true
	case "P2":
		return FormatASCIIGray, true
	case "P5":
		return FormatBinaryGray, true
	default:
		return FormatUnknown, false
	}
}

// FormatFor returns the tag for a color class and encoding.
func FormatFor(color bool, enc Encoding) Format {
	switch {
	case color && enc == EncodingBinary:
		return FormatBinaryColor
	case color:
		return FormatASCIIColor
	case enc == EncodingBinary:
		return FormatBinaryGray
	default:
		return FormatASCIIGray
	}
}

// IsColor reports whether the format carries three channels.
func (f Format) IsColor() bool {
	return f == FormatASCIIColor || f == FormatBinaryColor
}

// Encoding returns whether samples are written as text or raw bytes.
func (f Format) Encoding() Encoding {
	if f == FormatBinaryColor || f == FormatBinaryGray {
		return EncodingBinary
	}
	return EncodingASCII
}

// Channels returns the number of samples per pixel.
func (f Format) Channels() int {
	if f.IsColor() {
		return 3
	}
	return 1
}

// Extension returns the conventional file extension for the format's class.
func (f Format) Extension() string {
	if f.IsColor() {
		return ".ppm"
	}
	return ".pgm"
}
