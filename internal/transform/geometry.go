package transform

import (
	"slices"

	"github.com/roboco-io/pnmedit/internal/ir"
)

// FlipX mirrors the image vertically: row i swaps with row height-1-i.
func FlipX(img *ir.Image, enc ir.Encoding) error {
	if err := retag(img, img.Format.IsColor(), enc); err != nil {
		return err
	}

	tmp := make([]uint8, img.Width)
	for _, p := range img.Planes {
		if p == nil {
			continue
		}
		for top, bottom := 0, p.Height-1; top < bottom; top, bottom = top+1, bottom-1 {
			a, b := p.Row(top), p.Row(bottom)
			copy(tmp, a)
			copy(a, b)
			copy(b, tmp)
		}
	}
	return nil
}

// FlipY mirrors the image horizontally: column j swaps with column width-1-j.
func FlipY(img *ir.Image, enc ir.Encoding) error {
	if err := retag(img, img.Format.IsColor(), enc); err != nil {
		return err
	}

	for _, p := range img.Planes {
		if p == nil {
			continue
		}
		for y := 0; y < p.Height; y++ {
			slices.Reverse(p.Row(y))
		}
	}
	return nil
}

// RotateCW rotates 90 degrees clockwise: dst(i, j) = src(height-1-j, i),
// with (row, column) coordinates.
func RotateCW(img *ir.Image, enc ir.Encoding) error {
	return rotate(img, enc, func(src, dst *ir.Plane) {
		for i := 0; i < dst.Height; i++ {
			for j := 0; j < dst.Width; j++ {
				dst.Set(j, i, src.At(i, src.Height-1-j))
			}
		}
	})
}

// RotateCCW rotates 90 degrees counter-clockwise: dst(i, j) = src(j, width-1-i).
func RotateCCW(img *ir.Image, enc ir.Encoding) error {
	return rotate(img, enc, func(src, dst *ir.Plane) {
		for i := 0; i < dst.Height; i++ {
			for j := 0; j < dst.Width; j++ {
				dst.Set(j, i, src.At(src.Width-1-i, j))
			}
		}
	})
}

// rotate fills a complete set of transposed planes before swapping them in,
// so a failed allocation leaves img untouched.
func rotate(img *ir.Image, enc ir.Encoding, fill func(src, dst *ir.Plane)) error {
	if err := checkEncoding(enc); err != nil {
		return err
	}

	var rotated [3]*ir.Plane
	for c, src := range img.Planes {
		if src == nil {
			continue
		}
		dst, err := ir.NewPlane(src.Height, src.Width, src.Width*src.Height)
		if err != nil {
			return err
		}
		fill(src, dst)
		rotated[c] = dst
	}

	img.Planes = rotated
	img.Width, img.Height = img.Height, img.Width
	return retag(img, img.Format.IsColor(), enc)
}
