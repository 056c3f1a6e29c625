//go:build cgo

package hal

import (
	"github.com/cockroachdb/errors"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// RunWindow opens a desktop window that shows the host framebuffer of h, scaled
// by scale. It blocks until the window is closed or Escape/Q is pressed.
func RunWindow(h HAL, title string, scale int) error {
	hh, ok := h.(*hostHAL)
	if !ok || hh.fb == nil {
		return errors.New("window: host HAL with a framebuffer required")
	}
	if scale <= 0 {
		scale = 1
	}

	g := &hostGame{fb: hh.fb}
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(hh.fb.width*scale, hh.fb.height*scale)
	ebiten.SetTPS(30)
	return ebiten.RunGame(g)
}

type hostGame struct {
	fb      *hostFramebuffer
	pix     []byte
	scratch []byte
	fbImg   *ebiten.Image
	seen    int
}

func (g *hostGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	fb := g.fb
	if g.fbImg == nil {
		g.pix = make([]byte, fb.width*fb.height*4)
		g.scratch = make([]byte, len(fb.buf))
		g.fbImg = ebiten.NewImage(fb.width, fb.height)
		g.seen = -1
	}

	// Only re-upload after a new Present.
	if n := fb.presented(); n != g.seen {
		fb.snapshotRGBA(g.scratch, g.pix)
		g.fbImg.WritePixels(g.pix)
		g.seen = n
	}
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.fb.width, g.fb.height
}
