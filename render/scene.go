package render

import (
	"sort"
	"strings"

	"github.com/cockroachdb/errors"

	"prism/geom"
)

// Scene produces the color of pixel (x, y) of a w×h image, y = 0 being the
// bottom row. Implementations must be safe for concurrent use.
type Scene interface {
	Shade(x, y, w, h int) geom.Vec3
}

// DefaultGradientBlue is the constant blue channel of the gradient test image.
const DefaultGradientBlue geom.Scalar = 0.2

// Gradient ramps red along x and green along y with a constant blue channel.
type Gradient struct {
	Blue geom.Scalar
}

func NewGradient() Gradient { return Gradient{Blue: DefaultGradientBlue} }

func (g Gradient) Shade(x, y, w, h int) geom.Vec3 {
	return geom.V3(geom.Scalar(x)/geom.Scalar(w), geom.Scalar(y)/geom.Scalar(h), g.Blue)
}

// Camera spans the image plane LowerLeft + u·Horizontal + v·Vertical, u and v in
// [0, 1], as seen from Origin.
type Camera struct {
	Origin     geom.Vec3
	LowerLeft  geom.Vec3
	Horizontal geom.Vec3
	Vertical   geom.Vec3
}

// DefaultCamera looks down -z at a 4×2 image plane one unit away. It suits 2:1
// images.
func DefaultCamera() Camera {
	return Camera{
		Origin:     geom.V3(0, 0, 0),
		LowerLeft:  geom.V3(-2, -1, -1),
		Horizontal: geom.V3(4, 0, 0),
		Vertical:   geom.V3(0, 2, 0),
	}
}

// Ray returns the unnormalized ray from the origin through (u, v).
func (c Camera) Ray(u, v geom.Scalar) geom.Ray {
	target := c.LowerLeft.Add(c.Horizontal.Scale(u)).Add(c.Vertical.Scale(v))
	return geom.NewRay(c.Origin, target.Sub(c.Origin))
}

var (
	skyWhite = geom.V3(1, 1, 1)
	skyBlue  = geom.V3(0.5, 0.7, 1.0)
)

// Sky blends white to light blue by the height of each camera ray.
type Sky struct {
	Camera Camera
}

func NewSky() Sky { return Sky{Camera: DefaultCamera()} }

func (s Sky) Shade(x, y, w, h int) geom.Vec3 {
	u := geom.Scalar(x) / geom.Scalar(w)
	v := geom.Scalar(y) / geom.Scalar(h)
	return background(s.Camera.Ray(u, v))
}

func background(r geom.Ray) geom.Vec3 {
	unit := r.Direction().Normalize()
	t := 0.5 * (unit.Y() + 1)
	return skyWhite.Scale(1 - t).Add(skyBlue.Scale(t))
}

var scenes = map[string]func() Scene{
	"gradient": func() Scene { return NewGradient() },
	"sky":      func() Scene { return NewSky() },
}

// SceneNames lists the names accepted by ParseScene.
func SceneNames() []string {
	names := make([]string, 0, len(scenes))
	for name := range scenes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func ParseScene(name string) (Scene, error) {
	mk, ok := scenes[strings.ToLower(name)]
	if !ok {
		return nil, errors.WithHintf(errors.Newf("unknown scene %q", name),
			"available scenes: %s", strings.Join(SceneNames(), ", "))
	}
	return mk(), nil
}
