package render

import (
	"image"

	"prism/hal/rgb565"
)

// Target is a minimal pixel target for software rendering.
//
// Implementations should clip out-of-bounds coordinates. The renderer calls
// SetPixel concurrently for distinct rows.
type Target interface {
	Size() (w, h int)
	SetPixel(x, y int, c Color)
	Clear(c Color)
}

// ImageTarget renders into an *image.RGBA.
type ImageTarget struct {
	Img *image.RGBA
}

func NewImageTarget(w, h int) *ImageTarget {
	return &ImageTarget{Img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

func (t *ImageTarget) Size() (w, h int) {
	if t == nil || t.Img == nil {
		return 0, 0
	}
	b := t.Img.Bounds()
	return b.Dx(), b.Dy()
}

func (t *ImageTarget) SetPixel(x, y int, c Color) {
	if t == nil || t.Img == nil {
		return
	}
	b := t.Img.Bounds()
	if x < 0 || y < 0 || x >= b.Dx() || y >= b.Dy() {
		return
	}
	t.Img.SetRGBA(b.Min.X+x, b.Min.Y+y, c.Std())
}

func (t *ImageTarget) Clear(c Color) {
	if t == nil || t.Img == nil {
		return
	}
	pix := t.Img.Pix
	for i := 0; i+3 < len(pix); i += 4 {
		pix[i+0] = c.R
		pix[i+1] = c.G
		pix[i+2] = c.B
		pix[i+3] = c.A
	}
}

// RGB565Target renders into a little endian RGB565 buffer, typically the
// buffer of a hal.Framebuffer. A surface whose buffer is too short for its
// geometry reports size 0x0.
type RGB565Target struct {
	rgb565.Surface
}

// NewRGB565Target wraps buf with stride bytes per row.
func NewRGB565Target(buf []byte, stride, w, h int) *RGB565Target {
	return &RGB565Target{Surface: rgb565.Surface{Buf: buf, Stride: stride, W: w, H: h}}
}

func (t *RGB565Target) Size() (w, h int) {
	if t == nil || !t.Valid() {
		return 0, 0
	}
	return t.W, t.H
}

func (t *RGB565Target) Clear(c Color) {
	if t == nil {
		return
	}
	t.Fill(0, 0, t.W, t.H, c.R, c.G, c.B)
}

func (t *RGB565Target) SetPixel(x, y int, c Color) {
	if t == nil {
		return
	}
	t.Set(x, y, c.R, c.G, c.B)
}
