package contour

import (
	"math"
	"runtime"
	"sync"

	"golang.org/x/exp/constraints"
)

// Luma weights approximating perceived brightness (ITU-R BT.601).
const (
	lumaR = 0.299
	lumaG = 0.587
	lumaB = 0.114
)

// blurKernel is a fixed 3x3 Gaussian approximation, normalized by 16.
var blurKernel = [9]float64{
	1, 2, 1,
	2, 4, 2,
	1, 2, 1,
}

// Grayscale converts an RGBA8 pixel buffer into an intensity field using
// luma weights, rounded to the nearest integer intensity. Alpha is ignored.
// Returns ErrInvalidBuffer if len(pix) != w*h*4.
func Grayscale(pix []uint8, w, h int) (ScalarField, error) {
	if w < 1 || h < 1 || len(pix) != w*h*4 {
		return nil, ErrInvalidBuffer
	}
	field := make(ScalarField, w*h)
	for i := range field {
		r, g, b := pix[i*4], pix[i*4+1], pix[i*4+2]
		field[i] = math.Round(lumaR*float64(r) + lumaG*float64(g) + lumaB*float64(b))
	}
	return field, nil
}

// GaussianBlur convolves the field with the 3x3 blur kernel. Only interior
// pixels (1 <= x <= w-2, 1 <= y <= h-2) are written; the one-pixel border
// stays at zero. Downstream thresholds are tuned against this border
// behavior. Fields narrower than 3 pixels in either dimension come back
// all-zero since no interior exists.
func GaussianBlur(field ScalarField, w, h int) ScalarField {
	out := make(ScalarField, w*h)
	if w < 3 || h < 3 {
		return out
	}
	eachRow(1, h-1, func(y int) {
		for x := 1; x < w-1; x++ {
			var sum float64
			for ky := -1; ky <= 1; ky++ {
				for kx := -1; kx <= 1; kx++ {
					sum += field[(y+ky)*w+(x+kx)] * blurKernel[(ky+1)*3+(kx+1)]
				}
			}
			out[y*w+x] = sum / 16
		}
	})
	return out
}

// eachRow runs fn for every row in [y0, y1), split across row bands. Each
// output row depends only on read-only input, so banding never changes the
// result.
func eachRow(y0, y1 int, fn func(y int)) {
	rows := y1 - y0
	if rows < 1 {
		return
	}
	workers := Min(runtime.GOMAXPROCS(0), rows)
	if workers < 2 {
		for y := y0; y < y1; y++ {
			fn(y)
		}
		return
	}
	var wg sync.WaitGroup
	band := (rows + workers - 1) / workers
	for start := y0; start < y1; start += band {
		end := Min(start+band, y1)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			for y := s; y < e; y++ {
				fn(y)
			}
		}(start, end)
	}
	wg.Wait()
}

// Min returns the smallest of the given values.
func Min[T constraints.Ordered](values ...T) T {
	acc := values[0]
	for _, v := range values {
		if v < acc {
			acc = v
		}
	}
	return acc
}

// Max returns the biggest of the given values.
func Max[T constraints.Ordered](values ...T) T {
	acc := values[0]
	for _, v := range values {
		if v > acc {
			acc = v
		}
	}
	return acc
}
