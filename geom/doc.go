// Package geom provides the value types every prism renderer is built on: a
// three component vector and a parametric ray.
//
// Both types are plain values. Copying a Vec3 or a Ray copies its storage, so they
// can be shared between goroutines without synchronization.
//
// Floating point behavior:
//
// Operations never check for degenerate input. Normalizing the zero vector or
// scaling by an infinite factor yields NaN or infinite components, following
// IEEE-754. Callers that need finite results check with Vec3.IsFinite.
package geom
