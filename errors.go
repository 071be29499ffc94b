package contour

import "errors"

var (
	// ErrInvalidBuffer indicates the pixel buffer length does not equal width*height*4.
	ErrInvalidBuffer = errors.New("contour: pixel buffer length must equal width*height*4")
	// ErrThresholdOrder indicates the low threshold exceeds the high threshold.
	ErrThresholdOrder = errors.New("contour: low threshold must not exceed high threshold")
)
