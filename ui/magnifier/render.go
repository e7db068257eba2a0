package magnifier

import (
	"image"
	"image/color"
	"math"
	"sync"

	"fyne.io/fyne/v2"
	xdraw "golang.org/x/image/draw"

	"image-magnifier/internal/lens"
	"image-magnifier/pkg/colorutil"
)

type magnifierRenderer struct {
	m *Magnifier
}

func (r *magnifierRenderer) Layout(size fyne.Size) {
	m := r.m
	m.baseImg.Resize(size)

	if !m.announced && size.Width > 0 && size.Height > 0 {
		// First layout: the image is now on screen, measure and
		// forward the loaded notification.
		m.announced = true
		m.engine.ImageLoaded()
	} else {
		// Subsequent size changes go through the debounced path.
		m.engine.Remeasure()
	}

	r.layoutLens()
}

func (r *magnifierRenderer) MinSize() fyne.Size {
	return r.m.MinSize()
}

func (r *magnifierRenderer) Refresh() {
	r.m.baseImg.Refresh()
	r.layoutLens()
}

func (r *magnifierRenderer) Objects() []fyne.CanvasObject {
	m := r.m
	return []fyne.CanvasObject{m.baseImg, m.lensRaster, m.circle, m.square}
}

func (r *magnifierRenderer) Destroy() {
	r.m.engine.Detach()
}

// layoutLens places the lens raster and its border at the engine's
// computed position, or hides them while the lens is not shown.
func (r *magnifierRenderer) layoutLens() {
	m := r.m

	g, ok := m.engine.Geometry()
	if !ok {
		m.lensRaster.Hide()
		m.circle.Hide()
		m.square.Hide()
		return
	}

	// Geometry coordinates are canvas-absolute; convert to widget-local.
	var local fyne.Position
	if app := fyne.CurrentApp(); app != nil && app.Driver() != nil {
		abs := app.Driver().AbsolutePositionForObject(m)
		local = fyne.NewPos(float32(g.Left)-abs.X, float32(g.Top)-abs.Y)
	} else {
		local = fyne.NewPos(float32(g.Left), float32(g.Top))
	}

	lensSize := fyne.NewSize(float32(g.Width), float32(g.Height))

	if !g.ShowOverflow {
		// Keep the lens inside the image's own box.
		size := m.Size()
		local.X = clamp32(local.X, 0, size.Width-lensSize.Width)
		local.Y = clamp32(local.Y, 0, size.Height-lensSize.Height)
	}

	m.lensRaster.Move(local)
	m.lensRaster.Resize(lensSize)
	m.lensRaster.Show()
	m.lensRaster.Refresh()

	border := m.borderObject(g)
	border.Move(local)
	border.Resize(lensSize)
	border.Show()
}

// borderObject configures and returns the border for the geometry's
// shape, hiding the other one.
func (m *Magnifier) borderObject(g lens.Geometry) fyne.CanvasObject {
	stroke := colorutil.Gray
	width := float32(g.BorderWidth)

	if g.Shape == lens.ShapeSquare {
		m.circle.Hide()
		m.square.FillColor = color.Transparent
		m.square.StrokeColor = stroke
		m.square.StrokeWidth = width
		return m.square
	}
	m.square.Hide()
	m.circle.FillColor = color.Transparent
	m.circle.StrokeColor = stroke
	m.circle.StrokeWidth = width
	return m.circle
}

// drawLens is the raster drawing function for the lens content. It
// samples the pre-scaled excerpt at the engine's background origin and
// fills uncovered corners with the configured corner color. For a
// circular lens, pixels outside the circle stay transparent.
func (m *Magnifier) drawLens(w, h int) image.Image {
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	if w <= 0 || h <= 0 || m.layer == nil {
		return out
	}

	g, ok := m.engine.Geometry()
	if !ok || g.Width <= 0 || g.Height <= 0 {
		return out
	}

	src := m.scaled.get(m.layer.ExcerptSource(),
		int(g.BackgroundWidth+0.5), int(g.BackgroundHeight+0.5))
	if src == nil {
		return out
	}

	originX, originY := g.BackgroundOrigin()
	corner := colorutil.ParseHex(g.CornerColor)
	srcBounds := src.Bounds()

	// Raster pixels to lens-local logical units.
	scaleX := g.Width / float64(w)
	scaleY := g.Height / float64(h)

	cx := float64(w) / 2
	cy := float64(h) / 2
	radius := math.Min(cx, cy)

	for py := 0; py < h; py++ {
		for px := 0; px < w; px++ {
			if g.Shape == lens.ShapeCircle {
				dx := float64(px) + 0.5 - cx
				dy := float64(py) + 0.5 - cy
				if dx*dx+dy*dy > radius*radius {
					continue
				}
			}

			sx := int(float64(px)*scaleX - originX)
			sy := int(float64(py)*scaleY - originY)
			if sx < srcBounds.Min.X || sx >= srcBounds.Max.X ||
				sy < srcBounds.Min.Y || sy >= srcBounds.Max.Y {
				out.SetRGBA(px, py, corner)
			} else {
				out.SetRGBA(px, py, src.RGBAAt(sx, sy))
			}
		}
	}
	return out
}

// scaledExcerpt caches the excerpt source scaled to the zoomed size so
// the per-pixel lens draw only samples, never rescales.
type scaledExcerpt struct {
	mu   sync.Mutex
	src  image.Image
	w, h int
	img  *image.RGBA
}

func (s *scaledExcerpt) get(src image.Image, w, h int) *image.RGBA {
	if src == nil || w <= 0 || h <= 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.img != nil && s.src == src && s.w == w && s.h == h {
		return s.img
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)

	s.src, s.w, s.h, s.img = src, w, h, dst
	return dst
}

func (s *scaledExcerpt) invalidate() {
	s.mu.Lock()
	s.src = nil
	s.img = nil
	s.mu.Unlock()
}

func clamp32(v, lo, hi float32) float32 {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
