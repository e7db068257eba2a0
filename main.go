// Package main provides the entry point for the image magnifier demo.
package main

import (
	"log"
	"os"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"

	"image-magnifier/internal/app"
	"image-magnifier/internal/imaging"
	"image-magnifier/internal/lens"
	"image-magnifier/internal/version"
	"image-magnifier/ui/magnifier"
	"image-magnifier/ui/prefs"
)

const appTitle = "Image Magnifier"

// maxWindowEdge bounds the initial window size for large images.
const maxWindowEdge = 1000

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Printf("Starting %s %s", appTitle, version.String())

	if len(os.Args) < 2 {
		log.Fatalf("usage: %s <image> [zoom-image]", os.Args[0])
	}
	imagePath := os.Args[1]
	if !imaging.IsSupportedFormat(imagePath) {
		log.Fatalf("unsupported image format: %s", imagePath)
	}

	appPrefs := prefs.Load()
	state := app.NewState(appPrefs.MagnifierConfig(lens.DefaultConfig(imagePath)))

	if err := state.LoadImage(imagePath); err != nil {
		log.Fatalf("Failed to load image %s: %v", imagePath, err)
	}
	if len(os.Args) > 2 {
		if err := state.LoadZoomImage(os.Args[2]); err != nil {
			log.Fatalf("Failed to load zoom image %s: %v", os.Args[2], err)
		}
	}

	a := fyneapp.New()
	w := a.NewWindow(appTitle)

	mag := magnifier.New(state.CurrentLayer(), state.CurrentConfig())
	mag.OnLoaded(func() {
		log.Printf("Image measured: %dx%d px", state.CurrentLayer().Width(), state.CurrentLayer().Height())
	})
	state.On(app.EventConfigChanged, func(data interface{}) {
		if cfg, ok := data.(lens.Config); ok {
			mag.SetConfig(cfg)
		}
	})

	w.SetContent(mag)
	w.Resize(windowSize(state.CurrentLayer()))
	w.SetCloseIntercept(func() {
		appPrefs.SetMagnifierConfig(state.CurrentConfig())
		if err := appPrefs.Save(); err != nil {
			log.Printf("Failed to save preferences: %v", err)
		}
		w.Close()
	})

	w.ShowAndRun()
}

// windowSize fits the image's aspect ratio inside maxWindowEdge.
func windowSize(layer *imaging.Layer) fyne.Size {
	wpx := float32(layer.Width())
	hpx := float32(layer.Height())
	if wpx <= 0 || hpx <= 0 {
		return fyne.NewSize(800, 600)
	}
	scale := float32(1)
	if wpx > maxWindowEdge || hpx > maxWindowEdge {
		sw := maxWindowEdge / wpx
		sh := maxWindowEdge / hpx
		scale = sw
		if sh < sw {
			scale = sh
		}
	}
	return fyne.NewSize(wpx*scale, hpx*scale)
}
