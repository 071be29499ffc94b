package contour

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solidBuffer(w, h int, r, g, b, a uint8) []uint8 {
	pix := make([]uint8, w*h*4)
	for i := 0; i < len(pix); i += 4 {
		pix[i], pix[i+1], pix[i+2], pix[i+3] = r, g, b, a
	}
	return pix
}

func TestGrayscale_LumaWeights(t *testing.T) {
	cases := []struct {
		name    string
		r, g, b uint8
		want    float64
	}{
		{"black", 0, 0, 0, 0},
		{"white", 255, 255, 255, 255},
		{"red", 255, 0, 0, 76},    // round(0.299*255)
		{"green", 0, 255, 0, 150}, // round(0.587*255)
		{"blue", 0, 0, 255, 29},   // round(0.114*255)
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			field, err := Grayscale(solidBuffer(2, 2, tc.r, tc.g, tc.b, 255), 2, 2)
			require.NoError(t, err)
			for _, v := range field {
				assert.Equal(t, tc.want, v)
			}
		})
	}
}

func TestGrayscale_AlphaIgnored(t *testing.T) {
	opaque, err := Grayscale(solidBuffer(3, 3, 120, 80, 40, 255), 3, 3)
	require.NoError(t, err)
	transparent, err := Grayscale(solidBuffer(3, 3, 120, 80, 40, 0), 3, 3)
	require.NoError(t, err)
	assert.Equal(t, opaque, transparent)
}

func TestGrayscale_RejectsMalformedBuffer(t *testing.T) {
	_, err := Grayscale(make([]uint8, 10), 2, 2)
	assert.ErrorIs(t, err, ErrInvalidBuffer)

	_, err = Grayscale(nil, 1, 1)
	assert.ErrorIs(t, err, ErrInvalidBuffer)
}

func TestGaussianBlur_KernelOnImpulse(t *testing.T) {
	// A single impulse of 16 at the center spreads exactly the kernel.
	const w, h = 5, 5
	field := make(ScalarField, w*h)
	field[2*w+2] = 16

	out := GaussianBlur(field, w, h)

	assert.Equal(t, 4.0, out[2*w+2])
	assert.Equal(t, 2.0, out[2*w+1])
	assert.Equal(t, 2.0, out[2*w+3])
	assert.Equal(t, 2.0, out[1*w+2])
	assert.Equal(t, 2.0, out[3*w+2])
	assert.Equal(t, 1.0, out[1*w+1])
	assert.Equal(t, 1.0, out[3*w+3])
}

func TestGaussianBlur_BorderStaysZero(t *testing.T) {
	const w, h = 6, 4
	field := make(ScalarField, w*h)
	for i := range field {
		field[i] = 255
	}

	out := GaussianBlur(field, w, h)

	for x := 0; x < w; x++ {
		assert.Zero(t, out[x], "top row")
		assert.Zero(t, out[(h-1)*w+x], "bottom row")
	}
	for y := 0; y < h; y++ {
		assert.Zero(t, out[y*w], "left column")
		assert.Zero(t, out[y*w+w-1], "right column")
	}
	// Interior of a uniform field keeps its value.
	assert.Equal(t, 255.0, out[1*w+2])
}

func TestGaussianBlur_TinyFieldIsAllZero(t *testing.T) {
	field := ScalarField{255, 255, 255, 255, 255, 255, 255, 255, 255, 255}
	for _, v := range GaussianBlur(field, 2, 5) {
		assert.Zero(t, v)
	}
	for _, v := range GaussianBlur(field, 5, 2) {
		assert.Zero(t, v)
	}
}
