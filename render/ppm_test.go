package render

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"strconv"
	"strings"
	"testing"

	"github.com/cockroachdb/datadriven"
	"github.com/stretchr/testify/require"

	"prism/geom"
)

func TestPPMDataDriven(t *testing.T) {
	datadriven.RunTest(t, "testdata/ppm", func(t *testing.T, d *datadriven.TestData) string {
		switch d.Cmd {
		case "render":
			var sceneName string
			var w, h int
			blue := DefaultGradientBlue
			for _, arg := range d.CmdArgs {
				if len(arg.Vals) != 1 {
					d.Fatalf(t, "argument %s needs one value", arg.Key)
				}
				v := arg.Vals[0]
				var err error
				switch arg.Key {
				case "scene":
					sceneName = v
				case "width":
					w, err = strconv.Atoi(v)
				case "height":
					h, err = strconv.Atoi(v)
				case "blue":
					var f float64
					f, err = strconv.ParseFloat(v, 32)
					blue = geom.Scalar(f)
				default:
					d.Fatalf(t, "unknown argument %s", arg.Key)
				}
				if err != nil {
					d.Fatalf(t, "%s: %v", arg.Key, err)
				}
			}

			scene, err := ParseScene(sceneName)
			if err != nil {
				return fmt.Sprintf("error: %v\n", err)
			}
			if g, ok := scene.(Gradient); ok {
				g.Blue = blue
				scene = g
			}
			target := NewImageTarget(w, h)
			if err := (Renderer{Workers: 2}).Render(context.Background(), scene, target); err != nil {
				return fmt.Sprintf("error: %v\n", err)
			}
			var buf bytes.Buffer
			if err := WritePPM(&buf, target.Img); err != nil {
				d.Fatalf(t, "write: %v", err)
			}
			return buf.String()

		case "read":
			img, err := ReadPPM(strings.NewReader(d.Input))
			if err != nil {
				return fmt.Sprintf("error: %v\n", err)
			}
			var sb strings.Builder
			b := img.Bounds()
			fmt.Fprintf(&sb, "%dx%d\n", b.Dx(), b.Dy())
			for y := b.Min.Y; y < b.Max.Y; y++ {
				for x := b.Min.X; x < b.Max.X; x++ {
					c := img.RGBAAt(x, y)
					fmt.Fprintf(&sb, "%d %d %d\n", c.R, c.G, c.B)
				}
			}
			return sb.String()

		default:
			d.Fatalf(t, "unknown command %s", d.Cmd)
			return ""
		}
	})
}

func TestPPMRoundTrip(t *testing.T) {
	target := NewImageTarget(16, 9)
	require.NoError(t, Renderer{}.Render(context.Background(), NewSky(), target))

	var buf bytes.Buffer
	require.NoError(t, WritePPM(&buf, target.Img))
	require.True(t, strings.HasPrefix(buf.String(), "P3\n16 9\n255\n"))
	require.Equal(t, 3+16*9, strings.Count(buf.String(), "\n"))

	got, err := ReadPPM(&buf)
	require.NoError(t, err)
	require.Equal(t, target.Img.Bounds(), got.Bounds())
	require.Equal(t, target.Img.Pix, got.Pix)
}

func TestWritePPMGenericImage(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 2, 1))
	img.SetGray(1, 0, color.Gray{Y: 200})

	var buf bytes.Buffer
	require.NoError(t, WritePPM(&buf, img))
	require.Equal(t, "P3\n2 1\n255\n0 0 0\n200 200 200\n", buf.String())
}

func TestReadPPMTooLarge(t *testing.T) {
	_, err := ReadPPM(strings.NewReader("P3 100000 100000 255"))
	require.ErrorContains(t, err, "too large")
}

func TestReadPPMLongLine(t *testing.T) {
	const w = 200000
	in := "P3 " + strconv.Itoa(w) + " 1 255\n" + strings.Repeat("1 2 3 ", w)
	require.Greater(t, len(in), 1<<20)

	img, err := ReadPPM(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, w, img.Bounds().Dx())
	require.Equal(t, color.RGBA{R: 1, G: 2, B: 3, A: 0xFF}, img.RGBAAt(w-1, 0))
}

func TestReadPPMCommentEndsWord(t *testing.T) {
	img, err := ReadPPM(strings.NewReader("P3#magic\n1 1#size\r255\n7 8 9# end"))
	require.NoError(t, err)
	require.Equal(t, color.RGBA{R: 7, G: 8, B: 9, A: 0xFF}, img.RGBAAt(0, 0))

	_, err = ReadPPM(strings.NewReader("P3 1 1 255 " + strings.Repeat("1", maxTokenLen+1)))
	require.ErrorContains(t, err, "word longer than")
}

func TestEncodePNG(t *testing.T) {
	target := NewImageTarget(3, 2)
	target.Clear(RGB(10, 20, 30))

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, target.Img, FormatPNG))
	require.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG\r\n\x1a\n")))

	require.Error(t, Encode(&buf, target.Img, Format(42)))
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"ppm": FormatPPM, "P3": FormatPPM, "PNG": FormatPNG} {
		got, err := ParseFormat(in)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
	_, err := ParseFormat("jpeg")
	require.ErrorContains(t, err, `unknown image format "jpeg"`)

	require.Equal(t, FormatPNG, FormatFromPath("out/Image.PNG"))
	require.Equal(t, FormatPPM, FormatFromPath("image.ppm"))
	require.Equal(t, FormatPPM, FormatFromPath("-"))
	require.Equal(t, "png", FormatPNG.String())
}
