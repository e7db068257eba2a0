package lens

import (
	"image-magnifier/pkg/geometry"
)

// Relative is a pointer position expressed as a fraction of the image's
// displayed width and height. Values are meaningful in [0,1] but are not
// clamped: out-of-range values signal that the pointer is outside the
// image, which the touch path uses to hide the lens.
type Relative struct {
	X float64
	Y float64
}

// InUnitSquare reports whether both coordinates lie in [0,1].
func (r Relative) InUnitSquare() bool {
	return r.X >= 0 && r.X <= 1 && r.Y >= 0 && r.Y <= 1
}

// ToRelative converts an absolute pointer position to image-relative
// coordinates given the image's bounds and displayed element size. No
// clamping is performed. The caller must reject a degenerate element size
// (width or height <= 0) before calling; dividing by it here would
// propagate NaN/Inf into state.
func ToRelative(pointerX, pointerY float64, bounds geometry.Rect, elemW, elemH float64) Relative {
	return Relative{
		X: (pointerX - bounds.X) / elemW,
		Y: (pointerY - bounds.Y) / elemH,
	}
}
