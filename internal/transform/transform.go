// Package transform implements the in-place geometric and color operations
// applied between decode and encode.
package transform

import (
	"errors"
	"fmt"
	"strings"

	"github.com/roboco-io/pnmedit/internal/ir"
)

// ErrInvalidOption is returned for an unknown operation name.
var ErrInvalidOption = errors.New("invalid option given")

// Func mutates img in place and retags it for enc.
type Func func(img *ir.Image, enc ir.Encoding) error

// Operation identifies one of the supported transforms.
type Operation int

const (
	OpNone Operation = iota // re-encode only
	OpFlipX
	OpFlipY
	OpRotateCW
	OpRotateCCW
	OpGrayscale
	OpSepia
)

var operationNames = map[Operation]string{
	OpNone:      "none",
	OpFlipX:     "flipX",
	OpFlipY:     "flipY",
	OpRotateCW:  "rotateCW",
	OpRotateCCW: "rotateCCW",
	OpGrayscale: "grayscale",
	OpSepia:     "sepia",
}

// String returns the CLI name of the operation.
func (op Operation) String() string {
	if name, ok := operationNames[op]; ok {
		return name
	}
	return "unknown"
}

// ParseOperation accepts an operation name with or without the legacy "--" prefix.
func ParseOperation(s string) (Operation, error) {
	name := strings.TrimPrefix(s, "--")
	for op, n := range operationNames {
		if op != OpNone && n == name {
			return op, nil
		}
	}
	return OpNone, fmt.Errorf("%w: %q", ErrInvalidOption, s)
}

// Apply runs op on img using the default registry. OpNone only retags the
// image, keeping its color class.
func Apply(img *ir.Image, op Operation, enc ir.Encoding) error {
	if op == OpNone {
		return Reencode(img, enc)
	}
	t, err := DefaultRegistry.Get(op.String())
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidOption, op)
	}
	return t.Apply(img, enc)
}

// Reencode sets the format tag for enc without touching the samples.
func Reencode(img *ir.Image, enc ir.Encoding) error {
	return retag(img, img.Format.IsColor(), enc)
}

func retag(img *ir.Image, color bool, enc ir.Encoding) error {
	if err := checkEncoding(enc); err != nil {
		return err
	}
	img.Format = ir.FormatFor(color, enc)
	return nil
}

func checkEncoding(enc ir.Encoding) error {
	if enc != ir.EncodingASCII && enc != ir.EncodingBinary {
		return fmt.Errorf("%w: %d", ir.ErrInvalidEncoding, int(enc))
	}
	return nil
}
