package snapshot

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Encoding errors.
var (
	// ErrUnsupportedFormat is returned when the image format is not supported.
	ErrUnsupportedFormat = errors.New("snapshot: unsupported format")

	// ErrNoFrames is returned when an animation has no frames.
	ErrNoFrames = errors.New("snapshot: no frames")
)

// Format is a still image file format.
type Format int

const (
	// PNG is the Portable Network Graphics format.
	PNG Format = iota

	// BMP is the Windows bitmap format.
	BMP

	// TIFF is the Tagged Image File Format, written with deflate compression.
	TIFF
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case PNG:
		return "PNG"
	case BMP:
		return "BMP"
	case TIFF:
		return "TIFF"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".png":
		return PNG, nil
	case ".bmp":
		return BMP, nil
	case ".tif", ".tiff":
		return TIFF, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
}

// Encode writes img to w in format f.
func Encode(w io.Writer, img image.Image, f Format) error {
	var err error
	switch f {
	case PNG:
		err = png.Encode(w, img)
	case BMP:
		err = bmp.Encode(w, img)
	case TIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: %v", ErrUnsupportedFormat, f)
	}
	if err != nil {
		return fmt.Errorf("snapshot: encode %v: %w", f, err)
	}
	return nil
}

// Save writes img to path, choosing the format from the extension.
func Save(path string, img image.Image) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	return saveWith(path, func(w io.Writer) error {
		return Encode(w, img, f)
	})
}

// saveWith creates path and hands it to enc, closing it afterward.
func saveWith(path string, enc func(io.Writer) error) error {
	file, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("snapshot: create file: %w", err)
	}

	if err := enc(file); err != nil {
		_ = file.Close()
		return err
	}

	return file.Close()
}
