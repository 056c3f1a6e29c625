package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/dustin/go-humanize"

	"prism/hal"
	"prism/render"
)

// MaxDimension bounds each side of a rendered image.
const MaxDimension = 16384

// Config describes one render.
type Config struct {
	Width  int
	Height int
	Scene  string

	// Output is a file path, or "-" for stdout.
	Output string
	// Format is "ppm" or "png". Empty means guess from Output.
	Format string

	// Workers bounds parallel row shading. Zero means GOMAXPROCS.
	Workers int

	// Window also shows the image in a preview window.
	Window bool
	// Scale is the preview window's pixel scale.
	Scale int
	// Caption overlays the scene name on the preview.
	Caption bool
}

// DefaultConfig renders the 200×100 gradient as PPM on stdout.
func DefaultConfig() Config {
	return Config{
		Width:   200,
		Height:  100,
		Scene:   "gradient",
		Output:  "-",
		Scale:   2,
		Caption: true,
	}
}

func (c Config) Validate() error {
	_, _, err := c.resolve()
	return err
}

// resolve validates c and returns the scene and format it names.
func (c Config) resolve() (render.Scene, render.Format, error) {
	fail := func(err error) (render.Scene, render.Format, error) { return nil, 0, err }
	if c.Width <= 0 || c.Height <= 0 {
		return fail(errors.WithHint(errors.Newf("invalid image size %dx%d", c.Width, c.Height),
			"width and height must be positive"))
	}
	if c.Width > MaxDimension || c.Height > MaxDimension {
		return fail(errors.Newf("image size %dx%d exceeds %d pixels per side", c.Width, c.Height, MaxDimension))
	}
	if c.Workers < 0 {
		return fail(errors.Newf("invalid worker count %d", c.Workers))
	}
	if c.Output == "" {
		return fail(errors.WithHint(errors.New("no output"), `use "-" for stdout`))
	}
	scene, err := render.ParseScene(c.Scene)
	if err != nil {
		return fail(err)
	}
	format, err := c.format()
	if err != nil {
		return fail(err)
	}
	return scene, format, nil
}

func (c Config) format() (render.Format, error) {
	if c.Format == "" {
		return render.FormatFromPath(c.Output), nil
	}
	return render.ParseFormat(c.Format)
}

// Run renders cfg.Scene and writes the encoded image to cfg.Output. stdout is
// used when Output is "-".
func Run(ctx context.Context, h hal.HAL, cfg Config, stdout io.Writer) error {
	scene, format, err := cfg.resolve()
	if err != nil {
		return err
	}

	target := render.NewImageTarget(cfg.Width, cfg.Height)
	start := time.Now()
	if err := (render.Renderer{Workers: cfg.Workers}).Render(ctx, scene, target); err != nil {
		return errors.Wrapf(err, "render %s", cfg.Scene)
	}
	logf(h, "render: %s %dx%d (%s px) in %s",
		strings.ToLower(cfg.Scene), cfg.Width, cfg.Height,
		humanize.Comma(int64(cfg.Width*cfg.Height)), time.Since(start).Round(time.Microsecond))

	n, err := writeImage(cfg.Output, stdout, func(w io.Writer) error {
		return render.Encode(w, target.Img, format)
	})
	if err != nil {
		return err
	}
	dest := cfg.Output
	if dest == "-" {
		dest = "stdout"
	}
	logf(h, "output: %s %s to %s", humanize.Bytes(uint64(n)), format, dest)
	return nil
}

func writeImage(path string, stdout io.Writer, encode func(io.Writer) error) (int64, error) {
	if path == "-" {
		cw := &countingWriter{w: stdout}
		if err := encode(cw); err != nil {
			return cw.n, errors.Wrap(err, "write stdout")
		}
		return cw.n, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return 0, errors.Wrap(err, "create output")
	}
	cw := &countingWriter{w: f}
	if err := encode(cw); err != nil {
		_ = f.Close()
		return cw.n, errors.Wrapf(err, "write %s", path)
	}
	if err := f.Close(); err != nil {
		return cw.n, errors.Wrapf(err, "close %s", path)
	}
	return cw.n, nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

func logf(h hal.HAL, format string, args ...any) {
	if h == nil {
		return
	}
	if l := h.Logger(); l != nil {
		l.WriteLineString(fmt.Sprintf(format, args...))
	}
}
