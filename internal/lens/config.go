// Package lens implements the geometry and interaction-state engine behind
// the magnifying-glass overlay: it tracks the magnified image's on-screen
// bounds, maps pointer and touch positions to image-relative coordinates,
// derives the lens placement and the zoomed excerpt's placement, and drives
// the lens visibility state. Painting the result is the presentation
// layer's job.
package lens

import "time"

// Shape selects the lens outline. It only affects presentation rounding;
// the computed geometry is identical for both shapes.
type Shape int

const (
	ShapeCircle Shape = iota
	ShapeSquare
)

func (s Shape) String() string {
	switch s {
	case ShapeSquare:
		return "square"
	default:
		return "circle"
	}
}

// Default configuration values.
const (
	DefaultZoomFactor  = 1.5
	DefaultWidth       = 150
	DefaultHeight      = 150
	DefaultBorderWidth = 2
	DefaultCornerColor = "#fff"

	DefaultMouseOffsetX = 0
	DefaultMouseOffsetY = 0
	DefaultTouchOffsetX = -50
	DefaultTouchOffsetY = -50

	// MoveInterval is the minimum time between processed pointer/touch
	// move events, bounding recomputation to ~120 Hz.
	MoveInterval = time.Second / 120

	// RemeasureDelay is the quiet period after resize/scroll bursts
	// before the image bounds are measured again.
	RemeasureDelay = 200 * time.Millisecond
)

// Config holds the external, read-only configuration of the engine.
type Config struct {
	// Src is the base image source. Required.
	Src string
	// ZoomSrc optionally overrides the source of the zoomed excerpt.
	// Empty means fall back to Src.
	ZoomSrc string

	// ZoomFactor scales the excerpt relative to the image's displayed
	// size, not its natural resolution.
	ZoomFactor float64

	// Lens box in pixels.
	Width       float64
	Height      float64
	BorderWidth float64

	Shape Shape

	// ShowOverflow permits the lens to render outside the image's
	// container. The engine does not act on it; the flag is forwarded
	// to the presentation layer.
	ShowOverflow bool

	// Per-modality pixel offsets applied to the lens position.
	MouseOffsetX float64
	MouseOffsetY float64
	TouchOffsetX float64
	TouchOffsetY float64

	// ShowLens is a presentation-only cursor hint.
	ShowLens bool

	// CornerColor fills the lens corners left uncovered by the excerpt,
	// as a CSS-style hex string.
	CornerColor string
}

// DefaultConfig returns the configuration defaults for the given base
// image source.
func DefaultConfig(src string) Config {
	return Config{
		Src:          src,
		ZoomFactor:   DefaultZoomFactor,
		Width:        DefaultWidth,
		Height:       DefaultHeight,
		BorderWidth:  DefaultBorderWidth,
		Shape:        ShapeCircle,
		ShowOverflow: true,
		MouseOffsetX: DefaultMouseOffsetX,
		MouseOffsetY: DefaultMouseOffsetY,
		TouchOffsetX: DefaultTouchOffsetX,
		TouchOffsetY: DefaultTouchOffsetY,
		ShowLens:     true,
		CornerColor:  DefaultCornerColor,
	}
}

// BackgroundSrc returns the source of the zoomed excerpt: ZoomSrc when
// set, otherwise Src.
func (c Config) BackgroundSrc() string {
	if c.ZoomSrc != "" {
		return c.ZoomSrc
	}
	return c.Src
}

// Offset is a fixed pixel displacement applied to the lens position,
// selected per input modality.
type Offset struct {
	X float64
	Y float64
}

// MouseOffset returns the offset pair for mouse input.
func (c Config) MouseOffset() Offset {
	return Offset{X: c.MouseOffsetX, Y: c.MouseOffsetY}
}

// TouchOffset returns the offset pair for touch input.
func (c Config) TouchOffset() Offset {
	return Offset{X: c.TouchOffsetX, Y: c.TouchOffsetY}
}
