package iconforge

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"path/filepath"
	"slices"
	"strings"

	ico "github.com/sergeymakinen/go-ico"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Format names an output image encoding.
type Format string

// Supported output formats.
const (
	FormatPNG  Format = "png"
	FormatBMP  Format = "bmp"
	FormatTIFF Format = "tiff"
	FormatICO  Format = "ico"
)

// EncodeFunc writes img to w in a specific format.
type EncodeFunc func(w io.Writer, img image.Image) error

var encoders = map[Format]EncodeFunc{
	FormatPNG: func(w io.Writer, img image.Image) error {
		enc := png.Encoder{CompressionLevel: png.DefaultCompression}
		return enc.Encode(w, img)
	},
	FormatBMP: bmp.Encode,
	FormatTIFF: func(w io.Writer, img image.Image) error {
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	},
	FormatICO: func(w io.Writer, img image.Image) error {
		return ico.Encode(w, img)
	},
}

// Formats returns the supported formats in sorted order.
func Formats() []Format {
	fs := make([]Format, 0, len(encoders))
	for f := range encoders {
		fs = append(fs, f)
	}
	slices.Sort(fs)
	return fs
}

// ParseFormat resolves a format name. Names are case-insensitive and may
// carry a leading dot; "tif" is accepted for TIFF.
func ParseFormat(s string) (Format, error) {
	name := strings.ToLower(strings.TrimPrefix(s, "."))
	if name == "tif" {
		name = string(FormatTIFF)
	}
	f := Format(name)
	if _, ok := encoders[f]; !ok {
		return "", fmt.Errorf("%w: %q (supported: %s)", ErrUnsupportedFormat, s, joinFormats(Formats()))
	}
	return f, nil
}

// FormatFromPath resolves the format from a file name's extension.
func FormatFromPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return "", fmt.Errorf("%w: %q has no extension", ErrUnsupportedFormat, path)
	}
	return ParseFormat(ext)
}

// Ext returns the file extension for the format, including the dot.
func (f Format) Ext() string {
	return "." + string(f)
}

// FileName returns the conventional file name for an icon of the given
// size, e.g. "icon16.png".
func (f Format) FileName(size int) string {
	return fmt.Sprintf("icon%d%s", size, f.Ext())
}

// Encode writes img to w using the encoder registered for f.
func Encode(w io.Writer, img image.Image, f Format) error {
	enc, ok := encoders[f]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, string(f))
	}
	Logger().Debug("encoding icon", "format", string(f), "bounds", img.Bounds().String())
	return enc(w, img)
}

func joinFormats(fs []Format) string {
	names := make([]string, len(fs))
	for i, f := range fs {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}
