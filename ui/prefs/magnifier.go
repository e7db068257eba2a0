package prefs

import (
	"image-magnifier/internal/lens"
)

// Preference keys for the magnifier settings.
const (
	keyZoomFactor   = "magnifier.zoom_factor"
	keyWidth        = "magnifier.width"
	keyHeight       = "magnifier.height"
	keyBorderWidth  = "magnifier.border_width"
	keyShape        = "magnifier.shape"
	keyShowOverflow = "magnifier.show_overflow"
	keyCornerColor  = "magnifier.corner_color"
)

// MagnifierConfig overlays persisted magnifier settings onto the given
// defaults. Keys that were never saved keep their default values.
func (p *Prefs) MagnifierConfig(defaults lens.Config) lens.Config {
	cfg := defaults
	cfg.ZoomFactor = p.FloatWithFallback(keyZoomFactor, defaults.ZoomFactor)
	cfg.Width = p.FloatWithFallback(keyWidth, defaults.Width)
	cfg.Height = p.FloatWithFallback(keyHeight, defaults.Height)
	cfg.BorderWidth = p.FloatWithFallback(keyBorderWidth, defaults.BorderWidth)
	cfg.ShowOverflow = p.Bool(keyShowOverflow, defaults.ShowOverflow)
	cfg.CornerColor = p.String(keyCornerColor, defaults.CornerColor)
	if p.String(keyShape, defaults.Shape.String()) == lens.ShapeSquare.String() {
		cfg.Shape = lens.ShapeSquare
	} else {
		cfg.Shape = lens.ShapeCircle
	}
	return cfg
}

// SetMagnifierConfig stores the magnifier settings.
func (p *Prefs) SetMagnifierConfig(cfg lens.Config) {
	p.SetFloat(keyZoomFactor, cfg.ZoomFactor)
	p.SetFloat(keyWidth, cfg.Width)
	p.SetFloat(keyHeight, cfg.Height)
	p.SetFloat(keyBorderWidth, cfg.BorderWidth)
	p.SetString(keyShape, cfg.Shape.String())
	p.SetBool(keyShowOverflow, cfg.ShowOverflow)
	p.SetString(keyCornerColor, cfg.CornerColor)
}
