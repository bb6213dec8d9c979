package gui

import (
	"image"
	"os"

	// Decoders for every extension the scanner accepts.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"golang.org/x/image/draw"

	"galleray/internal/errors"
)

// decodeImage loads and decodes a single image file. Failures come back as a
// DecodeError so the view can show the inline placeholder instead of dying.
func decodeImage(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.NewDecodeError("unable to open image", path, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, errors.NewDecodeError("unable to decode image", path, err)
	}
	return img, nil
}

// thumbnail scales src down so its longer edge is at most edge pixels,
// preserving the aspect ratio. Images already small enough pass through.
func thumbnail(src image.Image, edge int) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= edge && h <= edge {
		return src
	}

	if w >= h {
		h = h * edge / w
		w = edge
	} else {
		w = w * edge / h
		h = edge
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}
