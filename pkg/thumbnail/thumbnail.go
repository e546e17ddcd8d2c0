// Package thumbnail renders reduced JPEG copies of uploaded images.
package thumbnail

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif" // register decoder
	"image/jpeg"
	_ "image/png" // register decoder
	"math"

	"golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"  // register decoder
	_ "golang.org/x/image/tiff" // register decoder
	_ "golang.org/x/image/webp" // register decoder
)

const Quality = 85

// Render decodes src and returns a JPEG no larger than width x height. With
// fit the result fills the box exactly: the image is cropped around its
// centre to the box aspect ratio first, so it is never distorted.
func Render(src []byte, width, height int, fit bool) ([]byte, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid thumbnail size %dx%d", width, height)
	}

	img, _, err := image.Decode(bytes.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	if fit {
		img = Fit(img, width, height)
	}
	img = Shrink(img, width, height)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: Quality}); err != nil {
		return nil, fmt.Errorf("failed to encode thumbnail: %w", err)
	}

	return buf.Bytes(), nil
}

// Fit crops src to the aspect ratio of the box and resamples it to exactly
// width x height.
func Fit(src image.Image, width, height int) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()

	srcRatio := float64(w) / float64(h)
	dstRatio := float64(width) / float64(height)

	crop := b
	switch {
	case srcRatio > dstRatio:
		cw := max(1, int(math.Round(dstRatio*float64(h))))
		left := b.Min.X + (w-cw)/2
		crop = image.Rect(left, b.Min.Y, left+cw, b.Max.Y)
	case srcRatio < dstRatio:
		ch := max(1, int(math.Round(float64(w)/dstRatio)))
		top := b.Min.Y + (h-ch)/2
		crop = image.Rect(b.Min.X, top, b.Max.X, top+ch)
	}

	return resample(src, crop, width, height)
}

// Shrink scales src down proportionally until it fits in the box. Images that
// already fit are returned untouched.
func Shrink(src image.Image, width, height int) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= width && h <= height {
		return src
	}

	scale := math.Min(float64(width)/float64(w), float64(height)/float64(h))
	nw := min(width, max(1, int(math.Round(float64(w)*scale))))
	nh := min(height, max(1, int(math.Round(float64(h)*scale))))

	return resample(src, b, nw, nh)
}

func resample(src image.Image, from image.Rectangle, width, height int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, from, draw.Src, nil)

	return dst
}
