package geom

import (
	"fmt"
	"math"
)

// Scalar is the numeric type of every vector component.
type Scalar = float32

// Vec3 is a point, direction or RGB color in 3-space.
//
// The axis accessors (X, Y, Z) and color accessors (R, G, B) read the same three
// stored values. The zero value is the zero vector. Two vectors are equal under ==
// when every component is exactly equal.
type Vec3 struct {
	e [3]Scalar
}

// V3 returns the vector (x, y, z).
func V3(x, y, z Scalar) Vec3 { return Vec3{e: [3]Scalar{x, y, z}} }

func (v Vec3) X() Scalar { return v.e[0] }
func (v Vec3) Y() Scalar { return v.e[1] }
func (v Vec3) Z() Scalar { return v.e[2] }

func (v Vec3) R() Scalar { return v.e[0] }
func (v Vec3) G() Scalar { return v.e[1] }
func (v Vec3) B() Scalar { return v.e[2] }

// At returns component i. Indices other than 0, 1 and 2 return an error that
// matches ErrIndexOutOfRange.
func (v Vec3) At(i int) (Scalar, error) {
	if i < 0 || i >= len(v.e) {
		return 0, indexError(i)
	}
	return v.e[i], nil
}

// MustAt is At for indices the caller has already validated. It panics on an
// out of range index.
func (v Vec3) MustAt(i int) Scalar {
	s, err := v.At(i)
	if err != nil {
		panic(err)
	}
	return s
}

// Set replaces component i in place.
func (v *Vec3) Set(i int, s Scalar) error {
	if i < 0 || i >= len(v.e) {
		return indexError(i)
	}
	v.e[i] = s
	return nil
}

func (v Vec3) Add(o Vec3) Vec3 { return V3(v.e[0]+o.e[0], v.e[1]+o.e[1], v.e[2]+o.e[2]) }

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 { return V3(v.e[0]-o.e[0], v.e[1]-o.e[1], v.e[2]-o.e[2]) }

// Scale multiplies every component by s. Non-finite s propagates per IEEE-754.
// Products are rounded before they return so an inlined caller's Add cannot
// fuse with them.
func (v Vec3) Scale(s Scalar) Vec3 {
	return V3(Scalar(v.e[0]*s), Scalar(v.e[1]*s), Scalar(v.e[2]*s))
}

func (v Vec3) Neg() Vec3 { return V3(-v.e[0], -v.e[1], -v.e[2]) }

// Cross returns v × o. See the package level Cross.
func (v Vec3) Cross(o Vec3) Vec3 { return Cross(v, o) }

func (v Vec3) SquaredLength() Scalar { return Dot(v, v) }

func (v Vec3) Length() Scalar { return Scalar(math.Sqrt(float64(v.SquaredLength()))) }

// Normalize returns v scaled by 1/Length.
//
// The zero vector is not special cased: its length is 0, the factor is +Inf and
// every component of the result is NaN.
func (v Vec3) Normalize() Vec3 {
	k := 1 / v.Length()
	return v.Scale(k)
}

// IsFinite reports whether no component is NaN or infinite.
func (v Vec3) IsFinite() bool {
	for _, s := range v.e {
		f := float64(s)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}

func (v Vec3) String() string {
	return fmt.Sprintf("(%g %g %g)", v.e[0], v.e[1], v.e[2])
}

// Dot returns a·b. The explicit conversions round each product and stop the
// compiler fusing them into multiply-add instructions.
func Dot(a, b Vec3) Scalar {
	return Scalar(a.e[0]*b.e[0]) + Scalar(a.e[1]*b.e[1]) + Scalar(a.e[2]*b.e[2])
}

// Cross returns the cross product a × b. It is anti-commutative:
// Cross(a, b) == Cross(b, a).Neg() exactly, on every architecture, because the
// conversions stop fused multiply-subtract.
func Cross(a, b Vec3) Vec3 {
	return V3(
		Scalar(a.e[1]*b.e[2])-Scalar(a.e[2]*b.e[1]),
		Scalar(a.e[2]*b.e[0])-Scalar(a.e[0]*b.e[2]),
		Scalar(a.e[0]*b.e[1])-Scalar(a.e[1]*b.e[0]),
	)
}
