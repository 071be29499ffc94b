package contour

// ScalarField is a row-major W*H grid of float64 samples, indexed as y*W+x.
// The pipeline uses it for grayscale intensity, blurred intensity, gradient
// magnitude, gradient direction and the suppressed magnitude. Each stage
// allocates its own field; fields are never aliased between stages.
type ScalarField []float64

// Point is a 2D coordinate in image pixel space. Traced coordinates are
// whole pixels, but the fields are float64 so callers can rescale paths
// into a different coordinate space.
type Point struct {
	X, Y float64
}

// Path is an ordered, non-empty sequence of points with no implied closure.
// Consecutive points of a raw (pre-simplification) path are always
// 8-connected neighbors.
type Path []Point

// PathSet is a collection of paths in discovery order.
type PathSet []Path

// Scale returns a copy of the set with every coordinate multiplied by
// (sx, sy). Hosts use it to map paths traced on a resized copy back onto
// the original image.
func (ps PathSet) Scale(sx, sy float64) PathSet {
	out := make(PathSet, len(ps))
	for i, path := range ps {
		scaled := make(Path, len(path))
		for j, pt := range path {
			scaled[j] = Point{X: pt.X * sx, Y: pt.Y * sy}
		}
		out[i] = scaled
	}
	return out
}

// Points returns the total number of points across all paths.
func (ps PathSet) Points() int {
	var n int
	for _, path := range ps {
		n += len(path)
	}
	return n
}
