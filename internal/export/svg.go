package export

import (
	"fmt"
	"io"
	"strings"
)

const (
	background = "#0a0a0a"
	cellFill   = "#00ff00"
	gridStroke = "#444466"
)

// SVG records drawing calls as SVG elements. It implements anim.Surface;
// clearing the whole surface starts a new frame, so the document always
// holds the last frame drawn.
type SVG struct {
	width, height int
	elems         []string
	path          strings.Builder
}

func NewSVG(width, height int) *SVG {
	return &SVG{width: width, height: height}
}

func (s *SVG) Size() (int, int) { return s.width, s.height }

func (s *SVG) FillRect(x, y, w, h int) {
	s.elems = append(s.elems, fmt.Sprintf(`<rect x="%d" y="%d" width="%d" height="%d" fill="%s"/>`, x, y, w, h, cellFill))
}

func (s *SVG) ClearRect(x, y, w, h int) {
	if x <= 0 && y <= 0 && x+w >= s.width && y+h >= s.height {
		s.elems = s.elems[:0]
		return
	}
	s.elems = append(s.elems, fmt.Sprintf(`<rect x="%d" y="%d" width="%d" height="%d" fill="%s"/>`, x, y, w, h, background))
}

func (s *SVG) BeginPath() { s.path.Reset() }

func (s *SVG) MoveTo(x, y int) { fmt.Fprintf(&s.path, "M%d,%d ", x, y) }

func (s *SVG) LineTo(x, y int) { fmt.Fprintf(&s.path, "L%d,%d ", x, y) }

func (s *SVG) Stroke() {
	d := strings.TrimSpace(s.path.String())
	if d == "" {
		return
	}
	s.elems = append(s.elems, fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1" d="%s"/>`, gridStroke, d))
}

// Elements returns the number of elements in the current frame.
func (s *SVG) Elements() int { return len(s.elems) }

func (s *SVG) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, s.width, s.height, s.width, s.height, background))
	for _, e := range s.elems {
		sb.WriteString(e)
		sb.WriteString("\n")
	}
	sb.WriteString("</svg>")
	return sb.String()
}

func (s *SVG) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, s.String())
	return int64(n), err
}

// SeriesToSVG plots values (e.g. a population history) as a polyline.
func SeriesToSVG(values []float64, width, height int, strokeColor string) string {
	if len(values) < 2 {
		return ""
	}

	minY, maxY := values[0], values[0]
	for _, v := range values {
		if v < minY {
			minY = v
		}
		if v > maxY {
			maxY = v
		}
	}

	rangeY := maxY - minY
	if rangeY == 0 {
		rangeY = 1
	}
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeY = maxY - minY
	rangeX := float64(len(values) - 1)

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, background, strokeColor))

	for i, v := range values {
		x := float64(i) / rangeX * float64(width)
		y := float64(height) - (v-minY)/rangeY*float64(height)

		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
