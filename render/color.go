package render

import (
	"image/color"

	"prism/geom"
)

// ChannelScale maps a [0, 1) channel onto 0..255 before truncation.
const ChannelScale geom.Scalar = 255.99

// Color is an RGBA color in 8-bit channels.
type Color struct {
	R, G, B, A uint8
}

func RGB(r, g, b uint8) Color { return Color{R: r, G: g, B: b, A: 0xFF} }

// Quantize converts a color vector to 8-bit channels: each channel is multiplied
// by ChannelScale and truncated toward zero. Channels that land outside 0..255,
// including NaN, are clamped.
func Quantize(c geom.Vec3) Color {
	return RGB(quantizeChannel(c.R()), quantizeChannel(c.G()), quantizeChannel(c.B()))
}

func quantizeChannel(ch geom.Scalar) uint8 {
	f := ChannelScale * ch
	if !(f > 0) {
		return 0
	}
	if f >= 255 {
		return 255
	}
	return uint8(f)
}

func (c Color) Std() color.RGBA { return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A} }
