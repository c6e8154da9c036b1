package anim

import "github.com/san-kum/lifesim/internal/life"

// drawCells fills one res x res square per alive cell.
func drawCells(s Surface, g *life.Grid, res int) {
	for i := range g.Cells {
		drawCell(s, g.Cells[i], res)
	}
}

func drawCell(s Surface, c life.Cell, res int) {
	if c.Alive {
		s.FillRect(c.X*res, c.Y*res, res, res)
	}
}

// drawGrid strokes the cell boundaries over the whole surface. It marks a
// run that ended by extinction.
func drawGrid(s Surface, w, h, res int) {
	for y := 0; y <= h; y += res {
		s.BeginPath()
		s.MoveTo(0, y)
		s.LineTo(w, y)
		s.Stroke()
	}
	for x := 0; x <= w; x += res {
		s.BeginPath()
		s.MoveTo(x, 0)
		s.LineTo(x, h)
		s.Stroke()
	}
}

func clearSurface(s Surface) {
	w, h := s.Size()
	s.ClearRect(0, 0, w, h)
}
