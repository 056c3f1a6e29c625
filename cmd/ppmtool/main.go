// Command ppmtool inspects plain PPM images and converts them to PNG.
//
//	ppmtool stat gradient.ppm
//	ppmtool png gradient.ppm gradient.png
package main

import (
	"fmt"
	"image"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"prism/render"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fatalf("%v", err)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "ppmtool",
		Short:         "Inspect and convert plain (P3) PPM images",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newStatCmd(), newPNGCmd())
	return root
}

func newStatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stat <in.ppm|->",
		Short: "Print dimensions and per-channel means",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			img, err := readPPM(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			return writeStat(cmd.OutOrStdout(), img)
		},
	}
}

func newPNGCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "png <in.ppm|-> <out.png>",
		Short: "Convert a PPM image to PNG",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			img, err := readPPM(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			out, err := os.Create(args[1])
			if err != nil {
				return errors.Wrap(err, "create output")
			}
			if err := render.Encode(out, img, render.FormatPNG); err != nil {
				_ = out.Close()
				return err
			}
			return errors.Wrapf(out.Close(), "close %s", args[1])
		},
	}
}

func readPPM(path string, stdin io.Reader) (*image.RGBA, error) {
	if path == "-" {
		img, err := render.ReadPPM(stdin)
		return img, errors.Wrap(err, "stdin")
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, err := render.ReadPPM(f)
	return img, errors.Wrap(err, path)
}

func writeStat(w io.Writer, img *image.RGBA) error {
	b := img.Bounds()
	n := b.Dx() * b.Dy()
	var sum [3]uint64
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := img.RGBAAt(x, y)
			sum[0] += uint64(c.R)
			sum[1] += uint64(c.G)
			sum[2] += uint64(c.B)
		}
	}
	mean := func(i int) float64 { return float64(sum[i]) / float64(n) }
	_, err := fmt.Fprintf(w, "size:   %dx%d\npixels: %s\nmean:   r=%.2f g=%.2f b=%.2f\n",
		b.Dx(), b.Dy(), humanize.Comma(int64(n)), mean(0), mean(1), mean(2))
	return err
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, "ppmtool: "+format+"\n", args...)
	os.Exit(2)
}
