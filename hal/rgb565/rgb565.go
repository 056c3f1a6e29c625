// Package rgb565 writes little endian RGB565 pixels into byte buffers. It is
// shared by the framebuffer, the text displayer and the render target so every
// writer packs and clips the same way.
package rgb565

// Pack packs 8-bit channels by dropping the low bits.
func Pack(r, g, b uint8) uint16 {
	return uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3)
}

// Unpack expands a packed pixel, mapping full scale back to 255.
func Unpack(p uint16) (r, g, b uint8) {
	r5 := uint32(p>>11) & 0x1F
	g6 := uint32(p>>5) & 0x3F
	b5 := uint32(p) & 0x1F
	return uint8(r5 * 255 / 31), uint8(g6 * 255 / 63), uint8(b5 * 255 / 31)
}

// Surface is a W x H view over Buf with Stride bytes per row. Stride may exceed
// 2*W. Writes outside the surface are dropped, and an invalid surface ignores
// all writes.
type Surface struct {
	Buf    []byte
	Stride int
	W      int
	H      int
}

// Valid reports whether Buf is large enough for the described geometry.
func (s Surface) Valid() bool {
	return s.W > 0 && s.H > 0 && s.Stride >= 2*s.W && len(s.Buf) >= (s.H-1)*s.Stride+2*s.W
}

func (s Surface) Set(x, y int, r, g, b uint8) {
	if x < 0 || y < 0 || x >= s.W || y >= s.H || !s.Valid() {
		return
	}
	p := Pack(r, g, b)
	off := y*s.Stride + x*2
	s.Buf[off] = byte(p)
	s.Buf[off+1] = byte(p >> 8)
}

// At returns the packed pixel at x, y, or 0 outside the surface.
func (s Surface) At(x, y int) uint16 {
	if x < 0 || y < 0 || x >= s.W || y >= s.H || !s.Valid() {
		return 0
	}
	off := y*s.Stride + x*2
	return uint16(s.Buf[off]) | uint16(s.Buf[off+1])<<8
}

// Fill paints the w x h rectangle at x, y clipped to the surface. The first
// row is packed once and copied down.
func (s Surface) Fill(x, y, w, h int, r, g, b uint8) {
	if !s.Valid() || w <= 0 || h <= 0 {
		return
	}
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+w, s.W), min(y+h, s.H)
	if x0 >= x1 || y0 >= y1 {
		return
	}

	p := Pack(r, g, b)
	first := s.Buf[y0*s.Stride+2*x0 : y0*s.Stride+2*x1]
	for off := 0; off < len(first); off += 2 {
		first[off] = byte(p)
		first[off+1] = byte(p >> 8)
	}
	for row := y0 + 1; row < y1; row++ {
		copy(s.Buf[row*s.Stride+2*x0:], first)
	}
}
