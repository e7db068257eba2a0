// Package magnifier provides a Fyne widget that shows a magnifying-glass
// overlay tracking the pointer over a base image. All geometry and
// interaction state lives in the lens engine; this package only feeds it
// raw events and paints its output.
package magnifier

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"image-magnifier/internal/imaging"
	"image-magnifier/internal/lens"
	"image-magnifier/pkg/geometry"
)

// Magnifier displays a base image and a floating lens with a zoomed
// excerpt under the pointer.
type Magnifier struct {
	widget.BaseWidget

	engine *lens.Engine
	layer  *imaging.Layer

	baseImg    *canvas.Image
	lensRaster *canvas.Raster
	circle     *canvas.Circle
	square     *canvas.Rectangle

	// scaled caches the excerpt source pre-scaled by the zoom factor.
	scaled *scaledExcerpt

	announced bool // image-loaded forwarded after first layout
	dragging  bool
}

// New creates a magnifier for the given image layer.
func New(layer *imaging.Layer, cfg lens.Config) *Magnifier {
	m := &Magnifier{
		layer:  layer,
		scaled: &scaledExcerpt{},
	}
	m.engine = lens.New(cfg, m, m)
	m.engine.OnUpdate(m.Refresh)

	m.baseImg = canvas.NewImageFromImage(layer.Image)
	// Stretch so the displayed image exactly fills the widget bounds;
	// the engine equates element size with the measured bounds.
	m.baseImg.FillMode = canvas.ImageFillStretch

	m.lensRaster = canvas.NewRaster(m.drawLens)
	m.circle = &canvas.Circle{}
	m.square = &canvas.Rectangle{}

	m.ExtendBaseWidget(m)
	return m
}

// Engine returns the underlying lens engine.
func (m *Magnifier) Engine() *lens.Engine {
	return m.engine
}

// SetConfig replaces the magnifier configuration.
func (m *Magnifier) SetConfig(cfg lens.Config) {
	m.scaled.invalidate()
	m.engine.SetConfig(cfg)
}

// SetLayer replaces the displayed image.
func (m *Magnifier) SetLayer(layer *imaging.Layer) {
	m.layer = layer
	m.baseImg.Image = layer.Image
	m.scaled.invalidate()
	m.engine.ImageLoaded()
	m.Refresh()
}

// OnLoaded registers a callback fired once the image bounds have been
// measured for the first time.
func (m *Magnifier) OnLoaded(fn func()) {
	m.engine.OnLoaded(fn)
}

// MinSize returns the minimum widget size.
func (m *Magnifier) MinSize() fyne.Size {
	return fyne.NewSize(100, 100)
}

// ImageBounds implements lens.BoundsProvider by measuring the widget's
// absolute position and size. Returns ok=false before the widget has
// been laid out.
func (m *Magnifier) ImageBounds() (geometry.Rect, bool) {
	size := m.Size()
	if size.Width <= 0 || size.Height <= 0 {
		return geometry.Rect{}, false
	}
	app := fyne.CurrentApp()
	if app == nil || app.Driver() == nil {
		return geometry.Rect{}, false
	}
	pos := app.Driver().AbsolutePositionForObject(m)
	return geometry.NewRect(
		float64(pos.X), float64(pos.Y),
		float64(size.Width), float64(size.Height),
	), true
}

// Viewport implements lens.ViewportProvider from the widget's canvas.
// Fyne windows do not scroll at the canvas level, so the scroll offsets
// are always zero here.
func (m *Magnifier) Viewport() lens.Viewport {
	app := fyne.CurrentApp()
	if app == nil || app.Driver() == nil {
		return lens.Viewport{}
	}
	c := app.Driver().CanvasForObject(m)
	if c == nil {
		return lens.Viewport{}
	}
	size := c.Size()
	return lens.Viewport{
		Width:  float64(size.Width),
		Height: float64(size.Height),
	}
}

// MouseIn implements desktop.Hoverable.
func (m *Magnifier) MouseIn(_ *desktop.MouseEvent) {
	m.engine.MouseEnter()
}

// MouseMoved implements desktop.Hoverable.
func (m *Magnifier) MouseMoved(ev *desktop.MouseEvent) {
	m.engine.MouseMove(float64(ev.AbsolutePosition.X), float64(ev.AbsolutePosition.Y))
}

// MouseOut implements desktop.Hoverable.
func (m *Magnifier) MouseOut() {
	m.engine.MouseLeave()
}

// Dragged implements fyne.Draggable and maps drag gestures onto the
// engine's touch path. A drag event always carries a position, so the
// engine never sees a touch without an active point.
func (m *Magnifier) Dragged(ev *fyne.DragEvent) {
	if !m.dragging {
		m.dragging = true
		m.engine.TouchStart()
	}
	m.engine.TouchMove(float64(ev.AbsolutePosition.X), float64(ev.AbsolutePosition.Y))
}

// DragEnd implements fyne.Draggable.
func (m *Magnifier) DragEnd() {
	m.dragging = false
	m.engine.TouchEnd()
}

// Cursor implements desktop.Cursorable: the crosshair hints that the
// lens follows the pointer.
func (m *Magnifier) Cursor() desktop.Cursor {
	if m.engine.Config().ShowLens {
		return desktop.CrosshairCursor
	}
	return desktop.DefaultCursor
}

// CreateRenderer implements fyne.Widget.
func (m *Magnifier) CreateRenderer() fyne.WidgetRenderer {
	m.engine.Attach()
	return &magnifierRenderer{m: m}
}

var (
	_ fyne.Widget        = (*Magnifier)(nil)
	_ desktop.Hoverable  = (*Magnifier)(nil)
	_ fyne.Draggable     = (*Magnifier)(nil)
	_ desktop.Cursorable = (*Magnifier)(nil)

	_ lens.BoundsProvider   = (*Magnifier)(nil)
	_ lens.ViewportProvider = (*Magnifier)(nil)
)
