package lens

// Viewport is a snapshot of the visible area: its size and the current
// scroll offsets of the document under it.
type Viewport struct {
	ScrollX float64
	ScrollY float64
	Width   float64
	Height  float64
}

// ViewportProvider supplies the current viewport. Isolating the host
// environment behind this interface keeps the engine testable without a
// live rendering surface.
type ViewportProvider interface {
	Viewport() Viewport
}

// ViewportFunc adapts a function to a ViewportProvider.
type ViewportFunc func() Viewport

// Viewport implements ViewportProvider.
func (f ViewportFunc) Viewport() Viewport {
	return f()
}
