package render

import (
	"image"
	"image/png"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
)

// Format selects the encoding of a rendered image.
type Format uint8

const (
	FormatPPM Format = iota
	FormatPNG
)

func (f Format) String() string {
	switch f {
	case FormatPPM:
		return "ppm"
	case FormatPNG:
		return "png"
	default:
		return "unknown"
	}
}

func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "ppm", "p3":
		return FormatPPM, nil
	case "png":
		return FormatPNG, nil
	default:
		return 0, errors.WithHint(errors.Newf("unknown image format %q", s), "use ppm or png")
	}
}

// FormatFromPath guesses the format from a file extension, defaulting to PPM.
func FormatFromPath(path string) Format {
	if strings.HasSuffix(strings.ToLower(path), ".png") {
		return FormatPNG
	}
	return FormatPPM
}

func Encode(w io.Writer, img image.Image, f Format) error {
	switch f {
	case FormatPPM:
		return WritePPM(w, img)
	case FormatPNG:
		return errors.Wrap(png.Encode(w, img), "png: encode")
	default:
		return errors.Newf("encode: unsupported format %s", f)
	}
}
