/*
Package contour converts raster images into polylines approximating their
edges, for use as tracing guides in vector-drawing tools.

Four stages compose a single one-shot pipeline: a preprocessor smooths the
image into a grayscale intensity field, a gradient analyzer produces a
thinned magnitude field (Sobel + non-maximum suppression), hysteresis
classification turns it into a binary edge mask, and a vectorizer walks the
mask into ordered point sequences.

Example tracing an image and collecting the paths:

	package main

	import (
		"fmt"
		"github.com/sketchvec/contour"
	)

	func main() {
		p := &contour.Processor{
			LowThreshold:   10,
			HighThreshold:  50,
			SimplifyFactor: 2,
			MinPathLength:  4,
		}

		paths, err := p.ProcessImage(srcImg)
		if err != nil {
			fmt.Printf("Error tracing image: %s", err)
			return
		}
		for _, path := range paths {
			fmt.Printf("path with %d points\n", len(path))
		}
	}

Example writing the traced paths out as SVG polylines:

	svg := &contour.SVG{
		Title:       "Traced guides",
		StrokeWidth: 1,
	}
	if err := svg.WriteSVG(out, paths, width, height); err != nil {
		fmt.Printf("Error writing SVG: %s", err)
	}

The package also provides a command line utility; check the supported
options by typing:

	$ contour --help
*/
package contour
