package contour

import (
	"image"

	"golang.org/x/image/draw"
)

// Downscale shrinks the image so that its longest side is at most maxDim
// pixels, preserving aspect ratio. Images already within the limit are
// returned as-is. Hosts downscale oversized uploads before tracing and map
// the result back with PathSet.Scale.
func Downscale(img image.Image, maxDim int) image.Image {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	longest := Max(w, h)
	if maxDim < 1 || longest <= maxDim {
		return img
	}

	scale := float64(maxDim) / float64(longest)
	dw := Max(int(float64(w)*scale), 1)
	dh := Max(int(float64(h)*scale), 1)

	dst := image.NewNRGBA(image.Rect(0, 0, dw, dh))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, bounds, draw.Src, nil)
	return dst
}
