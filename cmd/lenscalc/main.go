// Command lenscalc computes lens geometry for a pointer position and
// prints it as JSON. Useful for checking placement math without a window.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"image-magnifier/internal/lens"
	"image-magnifier/pkg/geometry"
)

func main() {
	pointerX := flag.Float64("x", 0, "Pointer X in viewport coordinates")
	pointerY := flag.Float64("y", 0, "Pointer Y in viewport coordinates")
	boundsX := flag.Float64("bounds-x", 0, "Image left edge")
	boundsY := flag.Float64("bounds-y", 0, "Image top edge")
	boundsW := flag.Float64("bounds-w", 0, "Image displayed width")
	boundsH := flag.Float64("bounds-h", 0, "Image displayed height")
	vpW := flag.Float64("viewport-w", 1920, "Viewport width")
	vpH := flag.Float64("viewport-h", 1080, "Viewport height")
	scrollX := flag.Float64("scroll-x", 0, "Horizontal scroll offset")
	scrollY := flag.Float64("scroll-y", 0, "Vertical scroll offset")
	zoom := flag.Float64("zoom", lens.DefaultZoomFactor, "Zoom factor")
	lensW := flag.Float64("lens-w", lens.DefaultWidth, "Lens width")
	lensH := flag.Float64("lens-h", lens.DefaultHeight, "Lens height")
	offX := flag.Float64("offset-x", 0, "Lens offset X")
	offY := flag.Float64("offset-y", 0, "Lens offset Y")
	flag.Parse()

	if *boundsW <= 0 || *boundsH <= 0 {
		fmt.Println("Usage: lenscalc -x <px> -y <px> -bounds-w <px> -bounds-h <px> [options]")
		os.Exit(1)
	}

	bounds := geometry.NewRect(*boundsX, *boundsY, *boundsW, *boundsH)
	rel := lens.ToRelative(*pointerX, *pointerY, bounds, bounds.Width, bounds.Height)

	cfg := lens.DefaultConfig("image")
	cfg.ZoomFactor = *zoom
	cfg.Width = *lensW
	cfg.Height = *lensH

	vp := lens.Viewport{ScrollX: *scrollX, ScrollY: *scrollY, Width: *vpW, Height: *vpH}
	g := lens.Position(rel, bounds, lens.Offset{X: *offX, Y: *offY}, cfg, vp)

	fmt.Printf("Relative position: (%.4f, %.4f), inside image: %v\n", rel.X, rel.Y, rel.InUnitSquare())

	out, err := json.MarshalIndent(g, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to encode geometry: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}
