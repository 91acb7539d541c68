package transform

import (
	"github.com/roboco-io/pnmedit/internal/ir"
)

// Luminance weights and sepia matrix, scaled to integers so that rounding is
// exact: results are rounded half up.
const (
	lumScale   = 10
	sepiaScale = 1000
)

var sepiaMatrix = [3][3]int{
	{393, 769, 189},
	{349, 686, 168},
	{272, 534, 131},
}

// Luminance returns round(0.3r + 0.6g + 0.1b).
func Luminance(r, g, b uint8) uint8 {
	return uint8((3*int(r) + 6*int(g) + int(b) + lumScale/2) / lumScale)
}

// SepiaPixel applies the sepia matrix and clamps each channel to 255.
func SepiaPixel(r, g, b uint8) (uint8, uint8, uint8) {
	var out [3]uint8
	for c, w := range sepiaMatrix {
		v := (w[0]*int(r) + w[1]*int(g) + w[2]*int(b) + sepiaScale/2) / sepiaScale
		out[c] = uint8(min(v, 255))
	}
	return out[0], out[1], out[2]
}

// Grayscale writes the luminance of every pixel into the red/gray plane and
// retags the image as gray. Green and blue planes are left as they are.
func Grayscale(img *ir.Image, enc ir.Encoding) error {
	if err := checkEncoding(enc); err != nil {
		return err
	}

	gray := img.Planes[ir.Red]
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			gray.Set(x, y, Luminance(img.Pixel(x, y)))
		}
	}
	return retag(img, false, enc)
}

// Sepia tones the image. Gray input is promoted to three planes first.
func Sepia(img *ir.Image, enc ir.Encoding) error {
	if err := checkEncoding(enc); err != nil {
		return err
	}

	img.Promote()
	red, green, blue := img.Planes[ir.Red], img.Planes[ir.Green], img.Planes[ir.Blue]
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			r, g, b := SepiaPixel(img.Pixel(x, y))
			red.Set(x, y, r)
			green.Set(x, y, g)
			blue.Set(x, y, b)
		}
	}
	return retag(img, true, enc)
}
