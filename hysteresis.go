package contour

// EdgeState is the tri-state classification of a pixel during hysteresis.
type EdgeState uint8

const (
	EdgeNone EdgeState = iota
	EdgeWeak
	EdgeStrong
)

// EdgeMask is a row-major W*H grid of edge states.
type EdgeMask []EdgeState

// neighbors8 enumerates the 8-neighborhood in fixed scan order
// (dy in {-1,0,1}, dx in {-1,0,1}, skipping the center).
var neighbors8 = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Classify applies hysteresis thresholding to a suppressed magnitude field.
// Pixels with magnitude >= high seed the STRONG set; pixels in [low, high)
// are WEAK; weak pixels 8-connected to a strong pixel are promoted until no
// promotion remains. The returned mask carries only STRONG pixels; weak
// pixels never reached by a seed collapse to NONE.
//
// Negative thresholds are clamped to zero. Zero-magnitude pixels never
// classify, so the border (which carries no gradient) can never turn
// strong, whatever the thresholds. Returns ErrThresholdOrder if low > high;
// low == high degrades to a single hard threshold.
func Classify(thinned ScalarField, w, h int, low, high float64) (EdgeMask, error) {
	if low > high {
		return nil, ErrThresholdOrder
	}
	low = Max(low, 0)
	high = Max(high, 0)

	mask := make(EdgeMask, w*h)
	var worklist []int
	for i, m := range thinned {
		switch {
		case m <= 0:
		case m >= high:
			mask[i] = EdgeStrong
			worklist = append(worklist, i)
		case m >= low:
			mask[i] = EdgeWeak
		}
	}

	// Flood-fill the weak region reachable from any strong seed.
	for len(worklist) > 0 {
		i := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]
		x, y := i%w, i/w
		for _, d := range neighbors8 {
			nx, ny := x+d[0], y+d[1]
			if nx < 0 || ny < 0 || nx >= w || ny >= h {
				continue
			}
			j := ny*w + nx
			if mask[j] == EdgeWeak {
				mask[j] = EdgeStrong
				worklist = append(worklist, j)
			}
		}
	}

	for i := range mask {
		if mask[i] == EdgeWeak {
			mask[i] = EdgeNone
		}
	}
	return mask, nil
}
