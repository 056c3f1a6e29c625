// Command prism renders a test image and writes it as PPM or PNG.
//
//	prism > gradient.ppm
//	prism --scene sky --width 400 --height 200 -o sky.png
//	prism --window
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/pflag"

	"prism/app"
	"prism/hal"
	"prism/internal/buildinfo"
	"prism/render"
)

func main() {
	cfg := app.DefaultConfig()
	var showVersion bool

	fs := pflag.NewFlagSet("prism", pflag.ContinueOnError)
	fs.IntVar(&cfg.Width, "width", cfg.Width, "Image width in pixels.")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "Image height in pixels.")
	fs.StringVar(&cfg.Scene, "scene", cfg.Scene, "Scene to render ("+strings.Join(render.SceneNames(), "|")+").")
	fs.StringVarP(&cfg.Output, "output", "o", cfg.Output, `Output file, "-" for stdout.`)
	fs.StringVar(&cfg.Format, "format", cfg.Format, "ppm|png (default: from the output extension, else ppm).")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "Rows shaded in parallel (0 = GOMAXPROCS).")
	fs.BoolVar(&cfg.Window, "window", cfg.Window, "Also show the image in a preview window.")
	fs.IntVar(&cfg.Scale, "scale", cfg.Scale, "Preview window pixel scale.")
	fs.BoolVar(&cfg.Caption, "caption", cfg.Caption, "Draw the scene name on the preview.")
	fs.BoolVar(&showVersion, "version", false, "Print the version and exit.")
	if err := fs.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fatal(err)
	}
	if showVersion {
		fmt.Println("prism " + buildinfo.Long())
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	hc := hal.HostConfig{}
	if cfg.Window {
		hc.Width, hc.Height = cfg.Width, cfg.Height
	}
	h := hal.New(hc)

	if err := app.Run(ctx, h, cfg, os.Stdout); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		fatal(err)
	}
	if !cfg.Window {
		return
	}
	if err := app.Preview(ctx, h, cfg); err != nil {
		fatal(err)
	}
	if err := hal.RunWindow(h, "prism "+cfg.Scene+" ("+buildinfo.Short()+")", cfg.Scale); err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "prism: %v\n", err)
	if hints := errors.FlattenHints(err); hints != "" {
		fmt.Fprintf(os.Stderr, "hint: %s\n", hints)
	}
	os.Exit(1)
}
