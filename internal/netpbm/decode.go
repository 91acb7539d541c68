package netpbm

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/roboco-io/pnmedit/internal/ir"
)

// Decode reads a complete image from r. The caller owns and closes r.
func Decode(r io.Reader, opts Options) (*ir.Image, error) {
	br := bufio.NewReader(r)

	h, err := ReadHeader(br)
	if err != nil {
		return nil, err
	}

	img, err := ir.NewImage(h.Format, h.Width, h.Height, opts.MaxPixels)
	if err != nil {
		return nil, err
	}
	img.Comment = h.Comment
	img.MaxValue = h.MaxValue

	switch h.Format.Encoding() {
	case ir.EncodingASCII:
		err = decodeASCII(br, img)
	case ir.EncodingBinary:
		err = decodeBinary(br, img)
	}
	if err != nil {
		return nil, err
	}
	return img, nil
}

// decodeASCII scatters whitespace-separated decimal samples, channel
// interleaved, into the planes.
func decodeASCII(r io.Reader, img *ir.Image) error {
	channels := img.Format.Channels()
	total := img.Width * img.Height * channels

	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	for i := 0; i < total; i++ {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return fmt.Errorf("reading sample %d: %w", i, err)
			}
			return fmt.Errorf("%w: got %d of %d samples", ErrTruncatedData, i, total)
		}
		v, err := strconv.ParseUint(sc.Text(), 10, 8)
		if err != nil {
			return fmt.Errorf("%w: sample %d is %q", ErrInvalidSample, i, sc.Text())
		}
		px := i / channels
		img.Planes[i%channels].Set(px%img.Width, px/img.Width, uint8(v))
	}
	return nil
}

// decodeBinary reads raw bytes row by row.
func decodeBinary(r io.Reader, img *ir.Image) error {
	channels := img.Format.Channels()
	rowLen := img.Width * channels
	total := rowLen * img.Height

	if channels == 1 {
		gray := img.Planes[ir.Red]
		for y := 0; y < img.Height; y++ {
			if n, err := io.ReadFull(r, gray.Row(y)); err != nil {
				return truncated(err, y*rowLen+n, total)
			}
		}
		return nil
	}

	row := make([]byte, rowLen)
	red, green, blue := img.Planes[ir.Red].Pix, img.Planes[ir.Green].Pix, img.Planes[ir.Blue].Pix
	for y := 0; y < img.Height; y++ {
		if n, err := io.ReadFull(r, row); err != nil {
			return truncated(err, y*rowLen+n, total)
		}
		off := y * img.Planes[ir.Red].Stride
		for x := 0; x < img.Width; x++ {
			red[off+x] = row[3*x]
			green[off+x] = row[3*x+1]
			blue[off+x] = row[3*x+2]
		}
	}
	return nil
}

func truncated(err error, got, want int) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: got %d of %d bytes", ErrTruncatedData, got, want)
	}
	return fmt.Errorf("reading samples: %w", err)
}
