package ir

import (
	"errors"
	"fmt"
	"math"
)

// ErrAllocation is returned when a plane of the requested size cannot be allocated.
var ErrAllocation = errors.New("unable to allocate memory for storage")

// DefaultMaxPixels bounds the number of pixels in a single plane.
const DefaultMaxPixels = 1 << 28

// Plane is one channel of samples stored row-major in a single slice.
type Plane struct {
	Width  int
	Height int
	Stride int     // samples between the starts of consecutive rows
	Pix    []uint8 // len = Stride * Height
}

// NewPlane allocates a zeroed width x height plane. maxPixels <= 0 means
// DefaultMaxPixels.
func NewPlane(width, height, maxPixels int) (*Plane, error) {
	if maxPixels <= 0 {
		maxPixels = DefaultMaxPixels
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: invalid plane size %dx%d", ErrAllocation, width, height)
	}
	if width > math.MaxInt/height || width*height > maxPixels {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d pixels", ErrAllocation, width, height, maxPixels)
	}
	return &Plane{
		Width:  width,
		Height: height,
		Stride: width,
		Pix:    make([]uint8, width*height),
	}, nil
}

// At returns the sample at column x, row y.
func (p *Plane) At(x, y int) uint8 {
	return p.Pix[y*p.Stride+x]
}

// Set stores v at column x, row y.
func (p *Plane) Set(x, y int, v uint8) {
	p.Pix[y*p.Stride+x] = v
}

// Row returns the samples of row y. The slice aliases the plane.
func (p *Plane) Row(y int) []uint8 {
	off := y * p.Stride
	return p.Pix[off : off+p.Width]
}

// Clone returns a deep copy.
func (p *Plane) Clone() *Plane {
	c := *p
	c.Pix = make([]uint8, len(p.Pix))
	copy(c.Pix, p.Pix)
	return &c
}
