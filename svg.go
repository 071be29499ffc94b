package contour

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/beevik/etree"
)

// SVG serializes a traced PathSet as one <polyline> element per path, for
// hosts that persist traced guides as vector shapes.
type SVG struct {
	Title       string
	Description string
	StrokeWidth float64
	StrokeColor string
}

// WriteSVG writes the set as an SVG document with the given pixel
// dimensions.
func (s *SVG) WriteSVG(w io.Writer, set PathSet, width, height int) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	svg := doc.CreateElement("svg")
	svg.CreateAttr("xmlns", "http://www.w3.org/2000/svg")
	svg.CreateAttr("width", strconv.Itoa(width))
	svg.CreateAttr("height", strconv.Itoa(height))
	svg.CreateAttr("viewBox", fmt.Sprintf("0 0 %d %d", width, height))

	if s.Title != "" {
		svg.CreateElement("title").SetText(s.Title)
	}
	if s.Description != "" {
		svg.CreateElement("desc").SetText(s.Description)
	}

	stroke := s.StrokeColor
	if stroke == "" {
		stroke = "#000000"
	}
	strokeWidth := Max(s.StrokeWidth, 1)

	for _, path := range set {
		poly := svg.CreateElement("polyline")
		poly.CreateAttr("points", formatPoints(path))
		poly.CreateAttr("fill", "none")
		poly.CreateAttr("stroke", stroke)
		poly.CreateAttr("stroke-width", strconv.FormatFloat(strokeWidth, 'f', -1, 64))
	}

	doc.Indent(2)
	_, err := doc.WriteTo(w)
	return err
}

func formatPoints(path Path) string {
	var b strings.Builder
	for i, pt := range path {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.FormatFloat(pt.X, 'f', -1, 64))
		b.WriteByte(',')
		b.WriteString(strconv.FormatFloat(pt.Y, 'f', -1, 64))
	}
	return b.String()
}
