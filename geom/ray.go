package geom

// Ray is the parametric line origin + t·direction.
//
// The direction is stored as given and may have any length, including zero.
type Ray struct {
	origin Vec3
	dir    Vec3
}

func NewRay(origin, direction Vec3) Ray { return Ray{origin: origin, dir: direction} }

func (r Ray) Origin() Vec3    { return r.origin }
func (r Ray) Direction() Vec3 { return r.dir }

// PointAtParameter returns origin + direction·t. Any t is valid, negative values
// extrapolate behind the origin.
func (r Ray) PointAtParameter(t Scalar) Vec3 { return r.origin.Add(r.dir.Scale(t)) }

func (r Ray) String() string { return r.origin.String() + "+t" + r.dir.String() }
