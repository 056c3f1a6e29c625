package hal

import (
	"image/color"

	"tinygo.org/x/drivers"

	"prism/hal/rgb565"
)

// FramebufferDisplayer lets tinyfont draw captions onto a Framebuffer. Only
// RGB565 framebuffers are drawable; any other format gives a zero-sized
// displayer whose writes are dropped.
type FramebufferDisplayer struct {
	fb      Framebuffer
	surface rgb565.Surface
}

var _ drivers.Displayer = (*FramebufferDisplayer)(nil)

func NewDisplayer(fb Framebuffer) *FramebufferDisplayer {
	return &FramebufferDisplayer{fb: fb, surface: Surface(fb)}
}

// Surface returns the RGB565 view of fb, or an invalid surface when fb is nil
// or holds another format.
func Surface(fb Framebuffer) rgb565.Surface {
	if fb == nil || fb.Format() != PixelFormatRGB565 {
		return rgb565.Surface{}
	}
	return rgb565.Surface{Buf: fb.Buffer(), Stride: fb.StrideBytes(), W: fb.Width(), H: fb.Height()}
}

func (d *FramebufferDisplayer) Size() (x, y int16) {
	if !d.surface.Valid() {
		return 0, 0
	}
	return int16(d.surface.W), int16(d.surface.H)
}

func (d *FramebufferDisplayer) SetPixel(x, y int16, c color.RGBA) {
	d.surface.Set(int(x), int(y), c.R, c.G, c.B)
}

// FillRectangle paints caption backgrounds. Alpha is ignored.
func (d *FramebufferDisplayer) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	d.surface.Fill(int(x), int(y), int(width), int(height), c.R, c.G, c.B)
	return nil
}

func (d *FramebufferDisplayer) Display() error {
	if d.fb == nil {
		return nil
	}
	return d.fb.Present()
}
