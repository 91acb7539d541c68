package ir

import (
	"fmt"
	"image"
	"image/color"
)

// Channel indexes into Image.Planes.
const (
	Red   = 0 // also the only channel of gray images
	Green = 1
	Blue  = 2
)

// Image is a decoded NetPBM raster.
type Image struct {
	Format   Format
	Comment  string // header comment lines including their '#', newline-joined
	Width    int
	Height   int
	MaxValue int // declared max value; informational, samples are never rescaled
	Planes   [3]*Plane
}

// NewImage allocates planes for every channel of format.
func NewImage(format Format, width, height, maxPixels int) (*Image, error) {
	img := &Image{
		Format:   format,
		Width:    width,
		Height:   height,
		MaxValue: 255,
	}
	for c := 0; c < format.Channels(); c++ {
		p, err := NewPlane(width, height, maxPixels)
		if err != nil {
			return nil, err
		}
		img.Planes[c] = p
	}
	return img, nil
}

// IsColor reports whether all three planes are populated.
func (img *Image) IsColor() bool {
	return img.Planes[Red] != nil && img.Planes[Green] != nil && img.Planes[Blue] != nil
}

// SetPixel stores an RGB triple. Gray images only keep r.
func (img *Image) SetPixel(x, y int, r, g, b uint8) {
	img.Planes[Red].Set(x, y, r)
	if img.Planes[Green] != nil {
		img.Planes[Green].Set(x, y, g)
	}
	if img.Planes[Blue] != nil {
		img.Planes[Blue].Set(x, y, b)
	}
}

// Pixel returns the RGB triple at (x, y). Gray images report (v, v, v).
func (img *Image) Pixel(x, y int) (r, g, b uint8) {
	r = img.Planes[Red].At(x, y)
	g, b = r, r
	if img.Planes[Green] != nil {
		g = img.Planes[Green].At(x, y)
	}
	if img.Planes[Blue] != nil {
		b = img.Planes[Blue].At(x, y)
	}
	return r, g, b
}

// Promote fills missing green and blue planes with copies of the gray plane.
func (img *Image) Promote() {
	if img.Planes[Green] == nil {
		img.Planes[Green] = img.Planes[Red].Clone()
	}
	if img.Planes[Blue] == nil {
		img.Planes[Blue] = img.Planes[Red].Clone()
	}
}

// Validate checks that the planes required by Format exist and match the dimensions.
func (img *Image) Validate() error {
	if img.Format == FormatUnknown {
		return fmt.Errorf("image has no format")
	}
	for c := 0; c < img.Format.Channels(); c++ {
		p := img.Planes[c]
		if p == nil {
			return fmt.Errorf("%s image is missing channel %d", img.Format, c)
		}
		if p.Width != img.Width || p.Height != img.Height {
			return fmt.Errorf("channel %d is %dx%d, image is %dx%d", c, p.Width, p.Height, img.Width, img.Height)
		}
	}
	return nil
}

// ToImage converts to an *image.RGBA (color) or *image.Gray (gray).
func (img *Image) ToImage() image.Image {
	bounds := image.Rect(0, 0, img.Width, img.Height)
	if !img.Format.IsColor() {
		out := image.NewGray(bounds)
		for y := 0; y < img.Height; y++ {
			copy(out.Pix[y*out.Stride:], img.Planes[Red].Row(y))
		}
		return out
	}

	out := image.NewRGBA(bounds)
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			r, g, b := img.Pixel(x, y)
			out.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 0xff})
		}
	}
	return out
}

// FromImage builds an Image of the given format from any image.Image.
// Gray formats take the luma reported by color.GrayModel; alpha is dropped.
func FromImage(src image.Image, format Format) (*Image, error) {
	b := src.Bounds()
	img, err := NewImage(format, b.Dx(), b.Dy(), 0)
	if err != nil {
		return nil, err
	}
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			c := src.At(b.Min.X+x, b.Min.Y+y)
			if !format.IsColor() {
				img.Planes[Red].Set(x, y, color.GrayModel.Convert(c).(color.Gray).Y)
				continue
			}
			rgba := color.RGBAModel.Convert(c).(color.RGBA)
			img.SetPixel(x, y, rgba.R, rgba.G, rgba.B)
		}
	}
	return img, nil
}
