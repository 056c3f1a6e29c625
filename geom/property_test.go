package geom

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// integral keeps components small and integer valued so products and sums are
// exact in float32 and the identities below hold with ==.
func integral() gopter.Gen {
	return gen.IntRange(-100, 100).Map(func(i int) Scalar { return Scalar(i) })
}

func genIntegralVec3() gopter.Gen {
	return gopter.CombineGens(integral(), integral(), integral()).Map(func(vs []interface{}) Vec3 {
		return V3(vs[0].(Scalar), vs[1].(Scalar), vs[2].(Scalar))
	})
}

func genVec3() gopter.Gen {
	c := gen.Float32Range(-1e3, 1e3)
	return gopter.CombineGens(c, c, c).Map(func(vs []interface{}) Vec3 {
		return V3(vs[0].(float32), vs[1].(float32), vs[2].(float32))
	})
}

func closeTo(a, b, rel float64) bool {
	d := math.Abs(a - b)
	return d <= rel*math.Max(math.Abs(a), math.Abs(b)) || d < 1e-6
}

func TestVec3Properties(t *testing.T) {
	properties := gopter.NewProperties(gopter.DefaultTestParameters())

	properties.Property("add commutes", prop.ForAll(
		func(a, b Vec3) bool { return a.Add(b) == b.Add(a) },
		genVec3(), genVec3(),
	))

	properties.Property("sub is ordered", prop.ForAll(
		func(a, b Vec3) bool { return (a.Sub(b) == b.Sub(a)) == (a == b) },
		genIntegralVec3(), genIntegralVec3(),
	))

	properties.Property("cross is anti-commutative", prop.ForAll(
		func(a, b Vec3) bool { return Cross(a, b) == Cross(b, a).Scale(-1) },
		genIntegralVec3(), genIntegralVec3(),
	))

	properties.Property("cross is anti-commutative for fractional components", prop.ForAll(
		func(a, b Vec3) bool { return Cross(a, b) == Cross(b, a).Scale(-1) },
		genVec3(), genVec3(),
	))

	properties.Property("dot commutes", prop.ForAll(
		func(a, b Vec3) bool { return Dot(a, b) == Dot(b, a) },
		genVec3(), genVec3(),
	))

	properties.Property("cross is orthogonal to its operands", prop.ForAll(
		func(a, b Vec3) bool {
			c := Cross(a, b)
			return Dot(c, a) == 0 && Dot(c, b) == 0
		},
		genIntegralVec3(), genIntegralVec3(),
	))

	properties.Property("scaling scales squared length by s²", prop.ForAll(
		func(v Vec3, s float32) bool {
			want := float64(s) * float64(s) * float64(v.SquaredLength())
			return closeTo(float64(v.Scale(s).SquaredLength()), want, 1e-5)
		},
		genVec3(), gen.Float32Range(-100, 100).SuchThat(func(s float32) bool { return s != 0 }),
	))

	properties.Property("normalized vectors have unit length", prop.ForAll(
		func(v Vec3) bool {
			if v.SquaredLength() == 0 {
				return true
			}
			n := v.Normalize()
			return closeTo(float64(n.Length()), 1, 1e-5) && closeTo(float64(n.SquaredLength()), 1, 1e-5)
		},
		genVec3(),
	))

	properties.Property("set then at round-trips", prop.ForAll(
		func(v Vec3, i int, k float32) bool {
			if err := v.Set(i, k); err != nil {
				return false
			}
			got, err := v.At(i)
			return err == nil && got == k
		},
		genVec3(), gen.IntRange(0, 2), gen.Float32(),
	))

	properties.Property("ray at 0 and 1", prop.ForAll(
		func(o, d Vec3) bool {
			r := NewRay(o, d)
			return r.PointAtParameter(0) == o && r.PointAtParameter(1) == o.Add(d)
		},
		genVec3(), genVec3(),
	))

	properties.TestingRun(t)
}
