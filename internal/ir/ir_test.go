package ir

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

func TestParseMagic(t *testing.T) {
	tests := []struct {
		magic    string
		expected Format
		ok       bool
	}{
		{"P3", FormatASCIIColor, true},
		{"P6", FormatBinaryColor, true},
		{"P2", FormatASCIIGray, true},
		{"P5", FormatBinaryGray, true},
		{"P1", FormatUnknown, false},
		{"P4", FormatUnknown, false},
		{"p3", FormatUnknown, false},
		{"", FormatUnknown, false},
	}

	for _, tc := range tests {
		t.Run(tc.magic, func(t *testing.T) {
			got, ok := ParseMagic(tc.magic)
			if got != tc.expected || ok != tc.ok {
				t.Errorf("ParseMagic(%q) = %v, %v, want %v, %v", tc.magic, got, ok, tc.expected, tc.ok)
			}
		})
	}
}

func TestFormat_String(t *testing.T) {
	tests := []struct {
		format   Format
		expected string
	}{
		{FormatASCIIColor, "P3"},
		{FormatBinaryColor, "P6"},
		{FormatASCIIGray, "P2"},
		{FormatBinaryGray, "P5"},
		{FormatUnknown, "unknown"},
		{Format(999), "unknown"},
	}

	for _, tc := range tests {
		got := tc.format.String()
		if got != tc.expected {
			t.Errorf("Format(%d).String() = %q, want %q", int(tc.format), got, tc.expected)
		}
	}
}

func TestFormatFor(t *testing.T) {
	tests := []struct {
		color    bool
		enc      Encoding
		expected Format
	}{
		{true, EncodingASCII, FormatASCIIColor},
		{true, EncodingBinary, FormatBinaryColor},
		{false, EncodingASCII, FormatASCIIGray},
		{false, EncodingBinary, FormatBinaryGray},
	}

	for _, tc := range tests {
		got := FormatFor(tc.color, tc.enc)
		if got != tc.expected {
			t.Errorf("FormatFor(%v, %v) = %v, want %v", tc.color, tc.enc, got, tc.expected)
		}
		if got.IsColor() != tc.color {
			t.Errorf("%v.IsColor() = %v, want %v", got, got.IsColor(), tc.color)
		}
		if got.Encoding() != tc.enc {
			t.Errorf("%v.Encoding() = %v, want %v", got, got.Encoding(), tc.enc)
		}
	}
}

func TestFormat_Extension(t *testing.T) {
	if ext := FormatBinaryColor.Extension(); ext != ".ppm" {
		t.Errorf("expected .ppm, got %s", ext)
	}
	if ext := FormatASCIIGray.Extension(); ext != ".pgm" {
		t.Errorf("expected .pgm, got %s", ext)
	}
}

func TestParseEncoding(t *testing.T) {
	tests := []struct {
		input    string
		expected Encoding
		wantErr  bool
	}{
		{"ascii", EncodingASCII, false},
		{"binary", EncodingBinary, false},
		{"--ascii", EncodingASCII, false},
		{"--binary", EncodingBinary, false},
		{"ASCII", 0, true},
		{"text", 0, true},
		{"", 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseEncoding(tc.input)
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidEncoding) {
					t.Errorf("expected ErrInvalidEncoding, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.expected {
				t.Errorf("ParseEncoding(%q) = %v, want %v", tc.input, got, tc.expected)
			}
		})
	}
}

func TestNewPlane(t *testing.T) {
	p, err := NewPlane(3, 2, 0)
	if err != nil {
		t.Fatalf("NewPlane: %v", err)
	}
	if len(p.Pix) != 6 || p.Stride != 3 {
		t.Errorf("expected 6 samples with stride 3, got %d with stride %d", len(p.Pix), p.Stride)
	}

	p.Set(2, 1, 42)
	if p.At(2, 1) != 42 {
		t.Errorf("expected 42 at (2,1), got %d", p.At(2, 1))
	}
	if p.Pix[5] != 42 {
		t.Errorf("expected row-major storage, Pix = %v", p.Pix)
	}
	if row := p.Row(1); len(row) != 3 || row[2] != 42 {
		t.Errorf("unexpected row 1: %v", row)
	}
}

func TestNewPlane_Limits(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		maxPixels     int
	}{
		{"zero width", 0, 5, 0},
		{"negative height", 5, -1, 0},
		{"over limit", 100, 100, 9999},
		{"overflow", 1 << 62, 1 << 62, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewPlane(tc.width, tc.height, tc.maxPixels)
			if !errors.Is(err, ErrAllocation) {
				t.Errorf("expected ErrAllocation, got %v", err)
			}
		})
	}
}

func TestPlane_Clone(t *testing.T) {
	p, _ := NewPlane(2, 2, 0)
	p.Set(0, 0, 7)

	c := p.Clone()
	c.Set(0, 0, 9)

	if p.At(0, 0) != 7 {
		t.Errorf("clone shares storage with original")
	}
}

func TestNewImage_GrayAllocatesOnePlane(t *testing.T) {
	img, err := NewImage(FormatBinaryGray, 4, 3, 0)
	if err != nil {
		t.Fatalf("NewImage: %v", err)
	}
	if img.Planes[Red] == nil {
		t.Fatal("expected gray plane")
	}
	if img.Planes[Green] != nil || img.Planes[Blue] != nil {
		t.Error("expected no green/blue planes for gray image")
	}
	if img.IsColor() {
		t.Error("gray image reported as color")
	}
}

func TestImage_Promote(t *testing.T) {
	img, _ := NewImage(FormatASCIIGray, 2, 1, 0)
	img.Planes[Red].Set(1, 0, 200)

	img.Promote()

	if !img.IsColor() {
		t.Fatal("expected three planes after Promote")
	}
	r, g, b := img.Pixel(1, 0)
	if r != 200 || g != 200 || b != 200 {
		t.Errorf("expected (200,200,200), got (%d,%d,%d)", r, g, b)
	}
}

func TestImage_Validate(t *testing.T) {
	img, _ := NewImage(FormatBinaryColor, 2, 2, 0)
	if err := img.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	img.Planes[Blue] = nil
	if err := img.Validate(); err == nil {
		t.Error("expected error for missing blue plane")
	}

	img.Planes[Blue], _ = NewPlane(3, 2, 0)
	if err := img.Validate(); err == nil {
		t.Error("expected error for mismatched plane size")
	}
}

func TestImage_ToImageAndBack(t *testing.T) {
	img, _ := NewImage(FormatBinaryColor, 2, 2, 0)
	img.SetPixel(0, 0, 255, 0, 0)
	img.SetPixel(1, 0, 0, 255, 0)
	img.SetPixel(0, 1, 0, 0, 255)
	img.SetPixel(1, 1, 10, 20, 30)

	std, ok := img.ToImage().(*image.RGBA)
	if !ok {
		t.Fatalf("expected *image.RGBA, got %T", img.ToImage())
	}
	if got := std.RGBAAt(1, 1); got != (color.RGBA{10, 20, 30, 255}) {
		t.Errorf("unexpected pixel at (1,1): %v", got)
	}

	back, err := FromImage(std, FormatBinaryColor)
	if err != nil {
		t.Fatalf("FromImage: %v", err)
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			r1, g1, b1 := img.Pixel(x, y)
			r2, g2, b2 := back.Pixel(x, y)
			if r1 != r2 || g1 != g2 || b1 != b2 {
				t.Errorf("pixel (%d,%d) = (%d,%d,%d), want (%d,%d,%d)", x, y, r2, g2, b2, r1, g1, b1)
			}
		}
	}
}

func TestImage_ToImageGray(t *testing.T) {
	img, _ := NewImage(FormatASCIIGray, 3, 1, 0)
	img.Planes[Red].Set(2, 0, 99)

	gray, ok := img.ToImage().(*image.Gray)
	if !ok {
		t.Fatalf("expected *image.Gray, got %T", img.ToImage())
	}
	if gray.GrayAt(2, 0).Y != 99 {
		t.Errorf("expected 99, got %d", gray.GrayAt(2, 0).Y)
	}
}
