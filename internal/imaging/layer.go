// Package imaging provides image loading for the magnifier host.
package imaging

import (
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	_ "golang.org/x/image/tiff"

	"image-magnifier/pkg/geometry"
)

// Layer holds a loaded base image and, optionally, a higher-resolution
// zoom image used for the lens excerpt.
type Layer struct {
	Path  string      // Original file path
	Image image.Image // Loaded image data

	// ZoomPath/ZoomImage override the excerpt source when set.
	ZoomPath  string
	ZoomImage image.Image
}

// Load loads an image from the specified path and returns a Layer.
func Load(path string) (*Layer, error) {
	img, err := decode(path)
	if err != nil {
		return nil, err
	}
	return &Layer{Path: path, Image: img}, nil
}

// LoadZoom attaches a separate zoom image to the layer.
func (l *Layer) LoadZoom(path string) error {
	img, err := decode(path)
	if err != nil {
		return err
	}
	l.ZoomPath = path
	l.ZoomImage = img
	return nil
}

// ExcerptSource returns the image to magnify: the zoom image when set,
// otherwise the base image.
func (l *Layer) ExcerptSource() image.Image {
	if l.ZoomImage != nil {
		return l.ZoomImage
	}
	return l.Image
}

// Width returns the base image width in pixels.
func (l *Layer) Width() int {
	if l.Image == nil {
		return 0
	}
	return l.Image.Bounds().Dx()
}

// Height returns the base image height in pixels.
func (l *Layer) Height() int {
	if l.Image == nil {
		return 0
	}
	return l.Image.Bounds().Dy()
}

// Size returns the base image dimensions.
func (l *Layer) Size() geometry.Size {
	return geometry.NewSize(float64(l.Width()), float64(l.Height()))
}

func decode(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open image")
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, errors.Wrapf(err, "decode image %s", filepath.Base(path))
	}
	return img, nil
}

// SupportedFormats returns the list of supported image formats.
func SupportedFormats() []string {
	return []string{".tiff", ".tif", ".png", ".jpg", ".jpeg"}
}

// IsSupportedFormat checks if the given path has a supported image format.
func IsSupportedFormat(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, format := range SupportedFormats() {
		if ext == format {
			return true
		}
	}
	return false
}
