package render

import (
	"context"
	"runtime"

	"github.com/cockroachdb/errors"
	"golang.org/x/sync/errgroup"
)

// Renderer shades every pixel of a target.
type Renderer struct {
	// Workers bounds the number of rows shaded concurrently. Zero means
	// GOMAXPROCS.
	Workers int
}

func (r Renderer) workers() int {
	if r.Workers > 0 {
		return r.Workers
	}
	return runtime.GOMAXPROCS(0)
}

// Render shades scene into t. Target row 0 receives scene row h-1.
//
// It returns ctx.Err() if ctx is done before every row has been shaded; the target
// is then partially written.
func (r Renderer) Render(ctx context.Context, scene Scene, t Target) error {
	if scene == nil {
		return errors.New("render: nil scene")
	}
	w, h := t.Size()
	if w <= 0 || h <= 0 {
		return errors.Newf("render: empty target %dx%d", w, h)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers())
	for row := 0; row < h; row++ {
		if gctx.Err() != nil {
			break
		}
		row := row
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			y := h - 1 - row
			for x := 0; x < w; x++ {
				t.SetPixel(x, row, Quantize(scene.Shade(x, y, w, h)))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}
