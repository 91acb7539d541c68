package netpbm

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/roboco-io/pnmedit/internal/ir"
)

// Encode writes img in the encoding selected by img.Format.
func Encode(w io.Writer, img *ir.Image) error {
	if err := img.Validate(); err != nil {
		return fmt.Errorf("encode: %w", err)
	}

	bw := bufio.NewWriter(w)
	err := WriteHeader(bw, &Header{
		Format:  img.Format,
		Comment: img.Comment,
		Width:   img.Width,
		Height:  img.Height,
	})
	if err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	switch img.Format {
	case ir.FormatASCIIColor:
		err = encodeASCIIColor(bw, img)
	case ir.FormatBinaryColor:
		err = encodeBinaryColor(bw, img)
	case ir.FormatASCIIGray:
		err = encodeASCIIGray(bw, img)
	case ir.FormatBinaryGray:
		err = encodeBinaryGray(bw, img)
	}
	if err != nil {
		return fmt.Errorf("writing samples: %w", err)
	}
	return bw.Flush()
}

// encodeASCIIColor writes one "R G B" line per pixel.
func encodeASCIIColor(bw *bufio.Writer, img *ir.Image) error {
	buf := make([]byte, 0, len("255 255 255\n"))
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			r, g, b := img.Pixel(x, y)
			buf = strconv.AppendUint(buf[:0], uint64(r), 10)
			buf = append(buf, ' ')
			buf = strconv.AppendUint(buf, uint64(g), 10)
			buf = append(buf, ' ')
			buf = strconv.AppendUint(buf, uint64(b), 10)
			buf = append(buf, '\n')
			if _, err := bw.Write(buf); err != nil {
				return err
			}
		}
	}
	return nil
}

// encodeASCIIGray writes one sample per line.
func encodeASCIIGray(bw *bufio.Writer, img *ir.Image) error {
	buf := make([]byte, 0, len("255\n"))
	gray := img.Planes[ir.Red]
	for y := 0; y < img.Height; y++ {
		for _, v := range gray.Row(y) {
			buf = strconv.AppendUint(buf[:0], uint64(v), 10)
			buf = append(buf, '\n')
			if _, err := bw.Write(buf); err != nil {
				return err
			}
		}
	}
	return nil
}

func encodeBinaryColor(bw *bufio.Writer, img *ir.Image) error {
	row := make([]byte, 3*img.Width)
	for y := 0; y < img.Height; y++ {
		red := img.Planes[ir.Red].Row(y)
		green := img.Planes[ir.Green].Row(y)
		blue := img.Planes[ir.Blue].Row(y)
		for x := 0; x < img.Width; x++ {
			row[3*x] = red[x]
			row[3*x+1] = green[x]
			row[3*x+2] = blue[x]
		}
		if _, err := bw.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func encodeBinaryGray(bw *bufio.Writer, img *ir.Image) error {
	gray := img.Planes[ir.Red]
	for y := 0; y < img.Height; y++ {
		if _, err := bw.Write(gray.Row(y)); err != nil {
			return err
		}
	}
	return nil
}
