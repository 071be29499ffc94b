package contour

import (
	"image"
	"image/color"
)

// Processor carries the tracing parameters and runs the pipeline:
// grayscale -> blur -> Sobel gradients -> non-maximum suppression ->
// hysteresis classification -> vectorization.
//
// A Processor holds no state between calls; distinct invocations may run
// concurrently.
type Processor struct {
	// LowThreshold and HighThreshold bound the hysteresis classification,
	// on the gradient magnitude scale (0-255ish). Negative values are
	// clamped to zero; LowThreshold must not exceed HighThreshold.
	LowThreshold  float64
	HighThreshold float64

	// SimplifyFactor controls stride decimation of traced paths. Values
	// below 1 (and fractional parts) are floored away.
	SimplifyFactor float64

	// MinPathLength drops traced paths whose raw pixel count is not
	// strictly greater than it. Negative values are treated as zero.
	MinPathLength int
}

// Process traces edge polylines from an RGBA8 pixel buffer of the given
// dimensions. It returns ErrInvalidBuffer when len(pix) != w*h*4 and
// ErrThresholdOrder when LowThreshold > HighThreshold; every other
// degenerate input (tiny images, no edges) produces an empty PathSet.
func (p *Processor) Process(pix []uint8, w, h int) (PathSet, error) {
	if p.LowThreshold > p.HighThreshold {
		return nil, ErrThresholdOrder
	}
	gray, err := Grayscale(pix, w, h)
	if err != nil {
		return nil, err
	}
	blurred := GaussianBlur(gray, w, h)
	mag, dir := Gradients(blurred, w, h)
	thinned := Suppress(mag, dir, w, h)
	mask, err := Classify(thinned, w, h, p.LowThreshold, p.HighThreshold)
	if err != nil {
		return nil, err
	}
	return Vectorize(mask, w, h, p.SimplifyFactor, p.MinPathLength), nil
}

// ProcessImage converts any image.Image to an RGBA buffer and traces it.
func (p *Processor) ProcessImage(img image.Image) (PathSet, error) {
	pix, w, h := rgbaBytes(img)
	return p.Process(pix, w, h)
}

// rgbaBytes flattens an image into a tightly packed RGBA8 buffer with the
// origin moved to (0, 0).
func rgbaBytes(img image.Image) ([]uint8, int, int) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	switch src := img.(type) {
	case *image.NRGBA:
		if src.Stride == w*4 {
			return src.Pix, w, h
		}
	case *image.RGBA:
		if src.Stride == w*4 {
			return src.Pix, w, h
		}
	}

	pix := make([]uint8, w*h*4)
	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			pix[i+0] = c.R
			pix[i+1] = c.G
			pix[i+2] = c.B
			pix[i+3] = c.A
			i += 4
		}
	}
	return pix, w, h
}
