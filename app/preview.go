package app

import (
	"context"
	"fmt"
	"image/color"
	"strings"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"

	"prism/hal"
	"prism/internal/buildinfo"
	"prism/render"
)

var (
	captionFont = &proggy.TinySZ8pt7b

	colorCaptionBG = color.RGBA{R: 0x10, G: 0x10, B: 0x10, A: 0xFF}
	colorCaptionFG = color.RGBA{R: 0xEE, G: 0xEE, B: 0xEE, A: 0xFF}
)

const (
	captionLineHeight = int16(10)
	captionBaseline   = int16(8)
	captionPad        = int16(2)
)

// Preview renders cfg.Scene into the host framebuffer, sized by the framebuffer
// rather than cfg, and presents it.
func Preview(ctx context.Context, h hal.HAL, cfg Config) error {
	var fb hal.Framebuffer
	if d := h.Display(); d != nil {
		fb = d.Framebuffer()
	}
	if fb == nil {
		return errors.New("preview: no framebuffer")
	}
	if fb.Format() != hal.PixelFormatRGB565 {
		return errors.Newf("preview: unsupported pixel format %d", fb.Format())
	}
	scene, err := render.ParseScene(cfg.Scene)
	if err != nil {
		return err
	}

	target := &render.RGB565Target{Surface: hal.Surface(fb)}
	if err := (render.Renderer{Workers: cfg.Workers}).Render(ctx, scene, target); err != nil {
		return errors.Wrap(err, "preview")
	}

	d := hal.NewDisplayer(fb)
	if cfg.Caption {
		drawCaption(d, fb.Width(), []string{
			fmt.Sprintf("%s %dx%d", strings.ToLower(cfg.Scene), fb.Width(), fb.Height()),
			"prism " + buildinfo.Short(),
		})
	}
	logf(h, "preview: %s %dx%d", strings.ToLower(cfg.Scene), fb.Width(), fb.Height())
	return d.Display()
}

// drawCaption draws lines on a dark strip across the top of the display. Lines
// wider than the display are cut.
func drawCaption(d *hal.FramebufferDisplayer, width int, lines []string) {
	_, outboxWidth := tinyfont.LineWidth(captionFont, "0")
	glyphW := int(outboxWidth)
	if glyphW <= 0 || len(lines) == 0 {
		return
	}
	cols := (width - 2*int(captionPad)) / glyphW
	if cols <= 0 {
		return
	}

	stripH := captionLineHeight*int16(len(lines)) + 2*captionPad
	_ = d.FillRectangle(0, 0, int16(width), stripH, colorCaptionBG)

	y := captionPad
	for _, line := range lines {
		chunk, _ := takeRunes(line, cols)
		tinyfont.WriteLine(d, captionFont, captionPad, y+captionBaseline, chunk, colorCaptionFG)
		y += captionLineHeight
	}
}

func takeRunes(s string, n int) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	if len(s) <= n {
		return s, ""
	}
	var i, count int
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
		count++
	}
	return s[:i], s[i:]
}
