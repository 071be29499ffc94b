package contour

import "math"

type kernel [3][3]float64

var (
	kernelX = kernel{
		{-1, 0, 1},
		{-2, 0, 2},
		{-1, 0, 1},
	}

	kernelY = kernel{
		{-1, -2, -1},
		{0, 0, 0},
		{1, 2, 1},
	}
)

// sobelGain is the sum of the positive Sobel kernel weights. Magnitudes are
// divided by it so they land on the same 0-255ish scale as the caller's
// thresholds: a full 8-bit step blurred by GaussianBlur peaks at 191.25.
const sobelGain = 4.0

// Gradients convolves the blurred field with the Sobel kernels and returns
// per-pixel gradient magnitude and direction (atan2, radians). The window
// only visits pixels whose 3x3 neighborhood lies entirely inside the
// blur-defined interior (2 <= x <= w-3, 2 <= y <= h-3); everywhere else the
// outputs stay zero, so the zeroed blur border never reads as an edge.
func Gradients(field ScalarField, w, h int) (mag, dir ScalarField) {
	mag = make(ScalarField, w*h)
	dir = make(ScalarField, w*h)
	if w < 5 || h < 5 {
		return mag, dir
	}
	eachRow(2, h-2, func(y int) {
		for x := 2; x < w-2; x++ {
			var sumX, sumY float64
			for ky := -1; ky <= 1; ky++ {
				for kx := -1; kx <= 1; kx++ {
					v := field[(y+ky)*w+(x+kx)]
					sumX += v * kernelX[ky+1][kx+1]
					sumY += v * kernelY[ky+1][kx+1]
				}
			}
			i := y*w + x
			mag[i] = math.Sqrt(sumX*sumX+sumY*sumY) / sobelGain
			dir[i] = math.Atan2(sumY, sumX)
		}
	})
	return mag, dir
}

// Suppress thins the magnitude field to single-pixel ridges. The direction
// is normalized to [0, 180) degrees and bucketed into four 45-degree
// sectors; the center pixel survives iff its magnitude is >= both neighbor
// magnitudes along the gradient direction.
func Suppress(mag, dir ScalarField, w, h int) ScalarField {
	out := make(ScalarField, w*h)
	if w < 3 || h < 3 {
		return out
	}
	eachRow(1, h-1, func(y int) {
		for x := 1; x < w-1; x++ {
			i := y*w + x
			m := mag[i]
			if m == 0 {
				continue
			}
			deg := dir[i] * 180 / math.Pi
			if deg < 0 {
				deg += 180
			}
			if deg >= 180 {
				deg -= 180
			}
			var n1, n2 int
			switch {
			case deg < 22.5 || deg >= 157.5:
				// gradient along x: compare east/west
				n1, n2 = i-1, i+1
			case deg < 67.5:
				// 45 degrees, y grows downward
				n1, n2 = i-w-1, i+w+1
			case deg < 112.5:
				// gradient along y: compare north/south
				n1, n2 = i-w, i+w
			default:
				// 135 degrees
				n1, n2 = i-w+1, i+w-1
			}
			if m >= mag[n1] && m >= mag[n2] {
				out[i] = m
			}
		}
	})
	return out
}
