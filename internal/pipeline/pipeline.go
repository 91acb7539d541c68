// Package pipeline runs a single decode, transform, encode pass over one file.
package pipeline

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/go-logr/logr"

	"github.com/roboco-io/pnmedit/internal/ir"
	"github.com/roboco-io/pnmedit/internal/netpbm"
	"github.com/roboco-io/pnmedit/internal/transform"
)

// ErrFileNotFound is returned when the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// Options controls one pipeline run.
type Options struct {
	Operation  transform.Operation // OpNone re-encodes only
	Encoding   ir.Encoding
	Basename   string // output path without extension
	OutputDir  string // optional: prefix for relative basenames
	Extensions netpbm.Extensions
	Decode     netpbm.Options
	Logger     logr.Logger // zero value discards
}

// Result describes the written file.
type Result struct {
	OutputPath string
	Format     ir.Format
	Width      int
	Height     int
}

// Run executes decode → transform → encode. Nothing is written unless the
// decode and the transform both succeed.
func Run(inputPath string, opts Options) (*Result, error) {
	log := opts.Logger.WithValues("input", inputPath)

	// 1. Decode input
	img, err := Load(inputPath, opts.Decode)
	if err != nil {
		return nil, err
	}
	log.V(1).Info("decoded", "format", img.Format.String(), "width", img.Width, "height", img.Height)

	// 2. Transform in place
	if err := transform.Apply(img, opts.Operation, opts.Encoding); err != nil {
		return nil, fmt.Errorf("transform %s: %w", opts.Operation, err)
	}
	log.V(1).Info("transformed", "operation", opts.Operation.String(), "format", img.Format.String())

	// 3. Encode output
	outPath := ResolveOutputPath(opts.Basename, opts.OutputDir, img.Format, opts.Extensions)
	if opts.OutputDir != "" {
		if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
			return nil, fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := writeFile(outPath, img); err != nil {
		return nil, err
	}
	log.V(1).Info("written", "output", outPath)

	return &Result{
		OutputPath: outPath,
		Format:     img.Format,
		Width:      img.Width,
		Height:     img.Height,
	}, nil
}

// Load opens and decodes a NetPBM file.
func Load(path string, opts netpbm.Options) (*ir.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("open: %w", err)
	}
	defer f.Close()

	img, err := netpbm.Decode(f, opts)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

// ResolveOutputPath appends the class extension to basename and places
// relative basenames under dir when dir is set.
func ResolveOutputPath(basename, dir string, format ir.Format, ext netpbm.Extensions) string {
	path := netpbm.OutputPath(basename, format, ext)
	if dir != "" && !filepath.IsAbs(path) {
		path = filepath.Join(dir, path)
	}
	return path
}

// writeFile encodes img to path, removing the file if encoding fails.
func writeFile(path string, img *ir.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}

	if err := netpbm.Encode(f, img); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("close output: %w", err)
	}
	return nil
}
