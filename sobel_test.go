package contour

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// stepField builds a w*h field that is 0 left of column split and v from
// split onward.
func stepField(w, h, split int, v float64) ScalarField {
	field := make(ScalarField, w*h)
	for y := 0; y < h; y++ {
		for x := split; x < w; x++ {
			field[y*w+x] = v
		}
	}
	return field
}

func TestGradients_UniformFieldIsZero(t *testing.T) {
	const w, h = 8, 8
	field := make(ScalarField, w*h)
	for i := range field {
		field[i] = 128
	}

	mag, dir := Gradients(field, w, h)
	for i := range mag {
		assert.Zero(t, mag[i])
		assert.Zero(t, dir[i])
	}
}

func TestGradients_VerticalStep(t *testing.T) {
	const w, h = 9, 7
	mag, dir := Gradients(stepField(w, h, 4, 200), w, h)

	// Sobel responds one pixel either side of the discontinuity; the raw
	// kernel sum of 800 is scaled down by the kernel gain.
	for y := 2; y < h-2; y++ {
		assert.Equal(t, 200.0, mag[y*w+3])
		assert.Equal(t, 200.0, mag[y*w+4])
		assert.Zero(t, dir[y*w+3], "gradient points along +x")
		assert.Zero(t, mag[y*w+2])
		assert.Zero(t, mag[y*w+5])
	}
}

func TestGradients_HorizontalStepDirection(t *testing.T) {
	const w, h = 7, 9
	field := make(ScalarField, w*h)
	for y := 4; y < h; y++ {
		for x := 0; x < w; x++ {
			field[y*w+x] = 100
		}
	}

	mag, dir := Gradients(field, w, h)
	for x := 2; x < w-2; x++ {
		assert.Equal(t, 100.0, mag[3*w+x])
		assert.InDelta(t, math.Pi/2, dir[3*w+x], 1e-12)
	}
}

func TestGradients_WindowNeverLeavesBlurInterior(t *testing.T) {
	const w, h = 10, 10
	field := stepField(w, h, 5, 255)

	mag, _ := Gradients(field, w, h)
	for i := 0; i < w*h; i++ {
		x, y := i%w, i/w
		if x < 2 || y < 2 || x > w-3 || y > h-3 {
			assert.Zero(t, mag[i], "pixel (%d,%d)", x, y)
		}
	}
}

func TestSuppress_KeepsRidgeAlongGradient(t *testing.T) {
	const w, h = 5, 5
	mag := make(ScalarField, w*h)
	dir := make(ScalarField, w*h)
	// Horizontal gradient: direction 0, compare east/west.
	mag[2*w+1], mag[2*w+2], mag[2*w+3] = 5, 10, 7

	out := Suppress(mag, dir, w, h)

	assert.Equal(t, 10.0, out[2*w+2], "local maximum survives")
	assert.Zero(t, out[2*w+1])
	assert.Zero(t, out[2*w+3])
}

func TestSuppress_TiesSurvive(t *testing.T) {
	const w, h = 5, 5
	mag := make(ScalarField, w*h)
	dir := make(ScalarField, w*h)
	mag[2*w+2], mag[2*w+3] = 10, 10

	out := Suppress(mag, dir, w, h)
	assert.Equal(t, 10.0, out[2*w+2])
	assert.Equal(t, 10.0, out[2*w+3])
}

func TestSuppress_VerticalSectorComparesNorthSouth(t *testing.T) {
	const w, h = 5, 5
	mag := make(ScalarField, w*h)
	dir := make(ScalarField, w*h)
	// Center beats its east/west neighbors but loses north/south; with a
	// 90 degree gradient it must be suppressed.
	mag[1*w+2], mag[2*w+2], mag[3*w+2] = 12, 10, 12
	mag[2*w+1], mag[2*w+3] = 1, 1
	dir[2*w+2] = math.Pi / 2

	out := Suppress(mag, dir, w, h)
	assert.Zero(t, out[2*w+2])
}

func TestSuppress_NormalizesNegativeDirections(t *testing.T) {
	const w, h = 5, 5
	mag := make(ScalarField, w*h)
	dir := make(ScalarField, w*h)
	mag[2*w+2] = 10
	dir[2*w+2] = -math.Pi / 2 // -90 degrees wraps to the 90 degree sector

	out := Suppress(mag, dir, w, h)
	assert.Equal(t, 10.0, out[2*w+2])
}
