package lens

import (
	"image-magnifier/pkg/geometry"
)

// BoundsProvider measures the magnified image's current bounding box in
// viewport coordinates. Implementations return ok=false while the image is
// not yet attached or rendered; the engine then keeps its previous bounds,
// possibly none at all.
type BoundsProvider interface {
	ImageBounds() (geometry.Rect, bool)
}

// BoundsFunc adapts a function to a BoundsProvider.
type BoundsFunc func() (geometry.Rect, bool)

// ImageBounds implements BoundsProvider.
func (f BoundsFunc) ImageBounds() (geometry.Rect, bool) {
	return f()
}
