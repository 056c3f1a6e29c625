package hal

import (
	"sync"

	"prism/hal/rgb565"
)

type hostFramebuffer struct {
	mu       sync.Mutex
	width    int
	height   int
	stride   int
	buf      []byte
	presents int
}

// newHostFramebuffer returns nil for empty sizes so hosts without a preview
// report no framebuffer.
func newHostFramebuffer(width, height int) *hostFramebuffer {
	if width <= 0 || height <= 0 {
		return nil
	}
	stride := width * PixelFormatRGB565.BytesPerPixel()
	return &hostFramebuffer{
		width:  width,
		height: height,
		stride: stride,
		buf:    make([]byte, stride*height),
	}
}

func (f *hostFramebuffer) Width() int          { return f.width }
func (f *hostFramebuffer) Height() int         { return f.height }
func (f *hostFramebuffer) Format() PixelFormat { return PixelFormatRGB565 }
func (f *hostFramebuffer) StrideBytes() int    { return f.stride }
func (f *hostFramebuffer) Buffer() []byte      { return f.buf }

// Present marks the buffer complete. The window copies it on its next draw.
func (f *hostFramebuffer) Present() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.presents++
	return nil
}

func (f *hostFramebuffer) ClearRGB(r, g, b uint8) {
	f.mu.Lock()
	defer f.mu.Unlock()

	rgb565.Surface{Buf: f.buf, Stride: f.stride, W: f.width, H: f.height}.Fill(0, 0, f.width, f.height, r, g, b)
}

func (f *hostFramebuffer) presented() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.presents
}

func (f *hostFramebuffer) snapshotRGB565(dst []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(dst, f.buf)
}

// snapshotRGBA expands the framebuffer into dst, 4 bytes per pixel.
func (f *hostFramebuffer) snapshotRGBA(scratch, dst []byte) {
	f.snapshotRGB565(scratch)
	for i := 0; i+1 < len(scratch) && i/2*4+3 < len(dst); i += 2 {
		r, g, b := rgb565.Unpack(uint16(scratch[i]) | uint16(scratch[i+1])<<8)
		j := (i / 2) * 4
		dst[j+0] = r
		dst[j+1] = g
		dst[j+2] = b
		dst[j+3] = 0xFF
	}
}
