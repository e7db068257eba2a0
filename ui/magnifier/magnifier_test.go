package magnifier

import (
	"image"
	"image/color"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"

	"image-magnifier/internal/imaging"
	"image-magnifier/internal/lens"
)

func testLayer(w, h int) *imaging.Layer {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 4), G: uint8(y * 4), A: 255})
		}
	}
	return &imaging.Layer{Image: img}
}

func newTestMagnifier(t *testing.T) (*Magnifier, fyne.Window) {
	t.Helper()

	test.NewApp()
	m := New(testLayer(64, 64), lens.DefaultConfig("test.png"))
	w := test.NewWindow(m)
	w.Resize(fyne.NewSize(300, 300))
	t.Cleanup(w.Close)
	return m, w
}

func pointEvent(pos fyne.Position) fyne.PointEvent {
	return fyne.PointEvent{AbsolutePosition: pos, Position: pos}
}

func TestMagnifier_MouseShowsAndHidesLens(t *testing.T) {
	m, _ := newTestMagnifier(t)

	bounds, ok := m.ImageBounds()
	if !ok {
		t.Fatal("widget bounds not measurable after layout")
	}
	center := fyne.NewPos(float32(bounds.Center().X), float32(bounds.Center().Y))

	m.MouseIn(&desktop.MouseEvent{PointEvent: pointEvent(center)})
	if m.Engine().Visible() {
		t.Error("lens visible before first move")
	}

	m.MouseMoved(&desktop.MouseEvent{PointEvent: pointEvent(center)})
	if !m.Engine().Visible() {
		t.Fatal("lens not shown after mouse move over the image")
	}
	if _, ok := m.Engine().Geometry(); !ok {
		t.Error("no geometry while lens is shown")
	}

	m.MouseOut()
	if m.Engine().Visible() {
		t.Error("lens still visible after the pointer left")
	}
}

func TestMagnifier_DragFollowsTouchPath(t *testing.T) {
	m, _ := newTestMagnifier(t)

	bounds, ok := m.ImageBounds()
	if !ok {
		t.Fatal("widget bounds not measurable after layout")
	}
	center := fyne.NewPos(float32(bounds.Center().X), float32(bounds.Center().Y))

	m.Dragged(&fyne.DragEvent{PointEvent: pointEvent(center)})
	if !m.Engine().Visible() {
		t.Fatal("lens not shown during in-bounds drag")
	}

	m.DragEnd()
	if m.Engine().Visible() {
		t.Error("lens still visible after drag ended")
	}
}

func TestMagnifier_LensDrawSamplesExcerpt(t *testing.T) {
	m, _ := newTestMagnifier(t)

	bounds, _ := m.ImageBounds()
	center := fyne.NewPos(float32(bounds.Center().X), float32(bounds.Center().Y))
	m.MouseIn(&desktop.MouseEvent{PointEvent: pointEvent(center)})
	m.MouseMoved(&desktop.MouseEvent{PointEvent: pointEvent(center)})

	g, ok := m.Engine().Geometry()
	if !ok {
		t.Fatal("no geometry while lens is shown")
	}

	out := m.drawLens(int(g.Width), int(g.Height))
	rgba, isRGBA := out.(*image.RGBA)
	if !isRGBA {
		t.Fatalf("drawLens returned %T, want *image.RGBA", out)
	}

	// The lens center must carry image content, not transparency.
	c := rgba.RGBAAt(int(g.Width)/2, int(g.Height)/2)
	if c.A == 0 {
		t.Error("lens center is transparent, expected magnified image content")
	}
}

func TestMagnifier_CursorHint(t *testing.T) {
	m, _ := newTestMagnifier(t)

	if m.Cursor() != desktop.CrosshairCursor {
		t.Error("ShowLens hint must select the crosshair cursor")
	}

	cfg := m.Engine().Config()
	cfg.ShowLens = false
	m.SetConfig(cfg)
	if m.Cursor() != desktop.DefaultCursor {
		t.Error("disabled hint must fall back to the default cursor")
	}
}
