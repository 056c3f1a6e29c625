package render

import (
	"bufio"
	"image"
	"image/color"
	"io"
	"strconv"

	"github.com/cockroachdb/errors"
)

const (
	ppmMagic  = "P3"
	ppmMaxVal = 255

	// MaxPixels bounds the images ReadPPM will allocate.
	MaxPixels = 1 << 26
)

// WritePPM writes img as a plain (P3) PPM: a header with the format token, the
// dimensions and the maximum channel value, then one "r g b" line per pixel,
// top row first.
func WritePPM(w io.Writer, img image.Image) error {
	b := img.Bounds()
	bw := bufio.NewWriter(w)

	line := make([]byte, 0, 64)
	line = append(line, ppmMagic...)
	line = append(line, '\n')
	line = strconv.AppendInt(line, int64(b.Dx()), 10)
	line = append(line, ' ')
	line = strconv.AppendInt(line, int64(b.Dy()), 10)
	line = append(line, '\n')
	line = strconv.AppendInt(line, ppmMaxVal, 10)
	line = append(line, '\n')
	if _, err := bw.Write(line); err != nil {
		return errors.Wrap(err, "ppm: write header")
	}

	rgba, _ := img.(*image.RGBA)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			var c color.RGBA
			if rgba != nil {
				c = rgba.RGBAAt(x, y)
			} else {
				c = color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
			}
			line = line[:0]
			line = strconv.AppendUint(line, uint64(c.R), 10)
			line = append(line, ' ')
			line = strconv.AppendUint(line, uint64(c.G), 10)
			line = append(line, ' ')
			line = strconv.AppendUint(line, uint64(c.B), 10)
			line = append(line, '\n')
			if _, err := bw.Write(line); err != nil {
				return errors.Wrapf(err, "ppm: write pixel (%d,%d)", x, y)
			}
		}
	}
	return errors.Wrap(bw.Flush(), "ppm: flush")
}

// ReadPPM decodes a plain (P3) PPM. Comments start with '#' and run to the end of
// the line. Channels are rescaled to 0..255 when the maximum value differs.
func ReadPPM(r io.Reader) (*image.RGBA, error) {
	tok := newPPMTokenizer(r)

	magic, err := tok.next()
	if err != nil {
		return nil, errors.Wrap(err, "ppm: read magic")
	}
	if magic != ppmMagic {
		return nil, errors.Newf("ppm: unsupported format %q", magic)
	}

	var hdr [3]int
	for i, name := range []string{"width", "height", "max value"} {
		v, err := tok.nextInt()
		if err != nil {
			return nil, errors.Wrapf(err, "ppm: read %s", name)
		}
		hdr[i] = v
	}
	w, h, maxVal := hdr[0], hdr[1], hdr[2]
	if w <= 0 || h <= 0 {
		return nil, errors.Newf("ppm: invalid dimensions %dx%d", w, h)
	}
	if w > MaxPixels/h {
		return nil, errors.Newf("ppm: image too large (%dx%d)", w, h)
	}
	if maxVal <= 0 || maxVal > 65535 {
		return nil, errors.Newf("ppm: invalid max value %d", maxVal)
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < w*h; i++ {
		var ch [3]uint8
		for c := range ch {
			v, err := tok.nextInt()
			if err != nil {
				return nil, errors.Wrapf(err, "ppm: pixel %d", i)
			}
			if v < 0 || v > maxVal {
				return nil, errors.Newf("ppm: pixel %d: channel value %d out of range 0..%d", i, v, maxVal)
			}
			ch[c] = uint8(v * 255 / maxVal)
		}
		off := i * 4
		img.Pix[off+0] = ch[0]
		img.Pix[off+1] = ch[1]
		img.Pix[off+2] = ch[2]
		img.Pix[off+3] = 0xFF
	}

	if extra, err := tok.next(); err == nil {
		return nil, errors.Newf("ppm: unexpected trailing data %q", extra)
	} else if !errors.Is(err, io.EOF) {
		return nil, errors.Wrap(err, "ppm: read trailer")
	}
	return img, nil
}

// maxTokenLen bounds a single whitespace separated word. Valid P3 words are
// short integers or the magic.
const maxTokenLen = 64

// ppmTokenizer splits P3 input into words. A '#' starts a comment that runs to
// the end of its line, and it also ends any word in progress.
type ppmTokenizer struct {
	r   *bufio.Reader
	buf []byte
}

func newPPMTokenizer(r io.Reader) *ppmTokenizer {
	return &ppmTokenizer{r: bufio.NewReader(r), buf: make([]byte, 0, maxTokenLen)}
}

func (t *ppmTokenizer) next() (string, error) {
	t.buf = t.buf[:0]
	for {
		b, err := t.r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) && len(t.buf) > 0 {
				return string(t.buf), nil
			}
			return "", err
		}
		switch {
		case b == '#':
			if err := t.skipComment(); err != nil && !errors.Is(err, io.EOF) {
				return "", err
			}
			if len(t.buf) > 0 {
				return string(t.buf), nil
			}
		case isPPMSpace(b):
			if len(t.buf) > 0 {
				return string(t.buf), nil
			}
		default:
			if len(t.buf) == maxTokenLen {
				return "", errors.Newf("ppm: word longer than %d bytes", maxTokenLen)
			}
			t.buf = append(t.buf, b)
		}
	}
}

func (t *ppmTokenizer) skipComment() error {
	for {
		b, err := t.r.ReadByte()
		if err != nil {
			return err
		}
		if b == '\n' || b == '\r' {
			return nil
		}
	}
}

func isPPMSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func (t *ppmTokenizer) nextInt() (int, error) {
	s, err := t.next()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return 0, io.ErrUnexpectedEOF
		}
		return 0, err
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid integer %q", s)
	}
	return v, nil
}
