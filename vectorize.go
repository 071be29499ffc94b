package contour

import "math"

// Vectorize converts an edge mask into polylines. The mask is scanned in
// row-major order; every unvisited strong pixel seeds a greedy depth-first
// walk over its connected component. Completed walks are kept only when
// their raw length strictly exceeds minLength, then decimated with
// stride = max(1, floor(simplify)). Paths are returned in the order their
// seed pixel was first reached by the scan.
func Vectorize(mask EdgeMask, w, h int, simplify float64, minLength int) PathSet {
	stride := int(math.Floor(simplify))
	if stride < 1 {
		stride = 1
	}
	minLength = Max(minLength, 0)

	visited := make([]bool, w*h)
	var set PathSet
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := y*w + x
			if mask[i] != EdgeStrong || visited[i] {
				continue
			}
			path := walk(mask, visited, w, h, i)
			if len(path) <= minLength {
				continue
			}
			if simplified := decimate(path, stride); len(simplified) > 1 {
				set = append(set, simplified)
			}
		}
	}
	return set
}

// walk traces one connected component starting at seed. At each step the
// first unvisited edge pixel in fixed scan order is appended and pushed; on
// a dead end the stack pops and the search resumes from the new top. The
// walk ends when the stack drains.
func walk(mask EdgeMask, visited []bool, w, h, seed int) Path {
	visited[seed] = true
	path := Path{{X: float64(seed % w), Y: float64(seed / w)}}
	stack := []int{seed}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		cx, cy := cur%w, cur/w

		next := -1
		for _, d := range neighbors8 {
			nx, ny := cx+d[0], cy+d[1]
			if nx < 0 || ny < 0 || nx >= w || ny >= h {
				continue
			}
			j := ny*w + nx
			if mask[j] == EdgeStrong && !visited[j] {
				next = j
				break
			}
		}
		if next < 0 {
			stack = stack[:len(stack)-1]
			continue
		}
		visited[next] = true
		path = append(path, Point{X: float64(next % w), Y: float64(next / w)})
		stack = append(stack, next)
	}
	return path
}

// decimate keeps every stride-th point starting at index 0 and force-appends
// the final point unless the stride already landed on it, so simplified
// paths keep the raw endpoints.
func decimate(path Path, stride int) Path {
	out := make(Path, 0, len(path)/stride+2)
	for i := 0; i < len(path); i += stride {
		out = append(out, path[i])
	}
	if last := len(path) - 1; last%stride != 0 {
		out = append(out, path[last])
	}
	return out
}
