package lens

import (
	"image-magnifier/pkg/geometry"
)

// Geometry describes everything the presentation layer needs to paint the
// lens: its box on screen and the placement of the zoomed excerpt inside
// it. It is a pure function of its inputs and has no lifecycle of its own;
// the engine recomputes it on every relevant input change.
//
// The excerpt placement keeps the original percent-plus-pixel
// decomposition: the final excerpt origin inside the lens is
// Percent/100*(lens - excerpt) + Pixel per axis. BackgroundOrigin resolves
// that for raster renderers.
type Geometry struct {
	// Lens box, viewport-document coordinates (scroll included).
	Width  float64
	Height float64
	Top    float64
	Left   float64

	// Excerpt placement terms.
	BackgroundPercentX float64
	BackgroundPixelX   float64
	BackgroundPercentY float64
	BackgroundPixelY   float64

	// Excerpt size: the displayed image scaled by the zoom factor.
	BackgroundWidth  float64
	BackgroundHeight float64

	// Pass-through presentation values.
	BackgroundSrc string
	BorderWidth   float64
	CornerColor   string
	Shape         Shape
	ShowOverflow  bool
}

// Position computes the lens geometry for a relative pointer position.
//
// Horizontal placement is clamped to the viewport; the left clamp is
// evaluated before the right clamp, so a lens wider than the viewport
// resolves to the left-clamped value. Vertical placement is not clamped.
func Position(rel Relative, bounds geometry.Rect, off Offset, cfg Config, vp Viewport) Geometry {
	x := rel.X*bounds.Width - cfg.Width/2 + off.X
	y := rel.Y*bounds.Height - cfg.Height/2 + off.Y

	top := bounds.Y + y + vp.ScrollY

	left := bounds.X + x + vp.ScrollX
	if left < vp.ScrollX {
		left = vp.ScrollX
	} else if left+cfg.Width > vp.ScrollX+vp.Width {
		left = vp.ScrollX + vp.Width - cfg.Width
	}

	return Geometry{
		Width:  cfg.Width,
		Height: cfg.Height,
		Top:    top,
		Left:   left,

		BackgroundPercentX: rel.X * 100,
		BackgroundPixelX:   cfg.Width/2 - rel.X*cfg.Width,
		BackgroundPercentY: rel.Y * 100,
		BackgroundPixelY:   cfg.Height/2 - rel.Y*cfg.Height,

		BackgroundWidth:  cfg.ZoomFactor * bounds.Width,
		BackgroundHeight: cfg.ZoomFactor * bounds.Height,

		BackgroundSrc: cfg.BackgroundSrc(),
		BorderWidth:   cfg.BorderWidth,
		CornerColor:   cfg.CornerColor,
		Shape:         cfg.Shape,
		ShowOverflow:  cfg.ShowOverflow,
	}
}

// BackgroundOrigin resolves the percent-plus-pixel placement terms to the
// absolute pixel origin of the zoomed excerpt inside the lens box. The
// origin is usually negative: the excerpt is larger than the lens and
// shifted so the magnified pointer position sits at the lens center.
func (g Geometry) BackgroundOrigin() (x, y float64) {
	x = g.BackgroundPercentX/100*(g.Width-g.BackgroundWidth) + g.BackgroundPixelX
	y = g.BackgroundPercentY/100*(g.Height-g.BackgroundHeight) + g.BackgroundPixelY
	return x, y
}
