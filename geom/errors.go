package geom

import "github.com/cockroachdb/errors"

// ErrIndexOutOfRange is returned when a component index is not 0, 1 or 2.
var ErrIndexOutOfRange = errors.New("vec3 index out of range")

func indexError(i int) error {
	return errors.Wrapf(ErrIndexOutOfRange, "index %d", i)
}
