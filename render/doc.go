// Package render turns per-pixel colors from a Scene into images.
//
// Pipeline (fixed):
//
//	Scene.Shade → Quantize → Target.SetPixel → Encode.
//
// Scene coordinates put y = 0 at the bottom row; targets and encoded images put
// row 0 at the top, so the renderer flips rows. Colors are geom.Vec3 values with
// channels nominally in [0, 1].
package render
