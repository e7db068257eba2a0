package prefs

import (
	"testing"

	"image-magnifier/internal/lens"
)

func TestMagnifierConfig_Defaults(t *testing.T) {
	p := &Prefs{values: make(map[string]interface{})}

	defaults := lens.DefaultConfig("board.png")
	cfg := p.MagnifierConfig(defaults)

	if cfg != defaults {
		t.Errorf("empty prefs must return defaults unchanged:\n got %+v\nwant %+v", cfg, defaults)
	}
}

func TestMagnifierConfig_RoundTrip(t *testing.T) {
	p := &Prefs{values: make(map[string]interface{})}

	saved := lens.DefaultConfig("board.png")
	saved.ZoomFactor = 3
	saved.Width = 220
	saved.Height = 180
	saved.BorderWidth = 4
	saved.Shape = lens.ShapeSquare
	saved.ShowOverflow = false
	saved.CornerColor = "#333"
	p.SetMagnifierConfig(saved)

	got := p.MagnifierConfig(lens.DefaultConfig("board.png"))
	if got != saved {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, saved)
	}
}
