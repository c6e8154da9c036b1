package viz

import (
	"strings"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const brailleBlank = 0x2800

// Canvas is a braille pixel surface. Each character cell holds 2x4 pixels.
// It implements anim.Surface.
type Canvas struct {
	Width, Height int // in characters
	Grid          [][]rune

	pixW, pixH int
	pen        [2]int
	path       [][4]int
}

// NewCanvas creates a canvas of w x h characters.
func NewCanvas(w, h int) *Canvas {
	return newCanvas(w, h, w*2, h*4)
}

// NewPixelCanvas creates the smallest canvas holding pw x ph pixels. Size
// reports exactly pw x ph.
func NewPixelCanvas(pw, ph int) *Canvas {
	return newCanvas((pw+1)/2, (ph+3)/4, pw, ph)
}

func newCanvas(w, h, pw, ph int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
		pixW:   pw,
		pixH:   ph,
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = brailleBlank
		}
	}
	return c
}

// Size returns the canvas size in pixels.
func (c *Canvas) Size() (int, int) { return c.pixW, c.pixH }

// Set sets a pixel at (x, y).
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 || x >= c.pixW || y >= c.pixH {
		return
	}
	c.Grid[y/4][x/2] |= rune(pixelMap[y%4][x%2])
}

// Unset clears a pixel
func (c *Canvas) Unset(x, y int) {
	if x < 0 || y < 0 || x >= c.pixW || y >= c.pixH {
		return
	}
	mask := ^rune(pixelMap[y%4][x%2])
	c.Grid[y/4][x/2] &= mask
	if c.Grid[y/4][x/2] < brailleBlank {
		c.Grid[y/4][x/2] = brailleBlank
	}
}

// PixelAt reports whether the pixel at (x, y) is set.
func (c *Canvas) PixelAt(x, y int) bool {
	if x < 0 || y < 0 || x >= c.pixW || y >= c.pixH {
		return false
	}
	return c.Grid[y/4][x/2]&rune(pixelMap[y%4][x%2]) != 0
}

// Clear resets the canvas
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = brailleBlank
		}
	}
}

func (c *Canvas) FillRect(x, y, w, h int) {
	for py := y; py < y+h; py++ {
		for px := x; px < x+w; px++ {
			c.Set(px, py)
		}
	}
}

func (c *Canvas) ClearRect(x, y, w, h int) {
	if x <= 0 && y <= 0 && x+w >= c.pixW && y+h >= c.pixH {
		c.Clear()
		return
	}
	for py := y; py < y+h; py++ {
		for px := x; px < x+w; px++ {
			c.Unset(px, py)
		}
	}
}

func (c *Canvas) BeginPath() { c.path = c.path[:0] }

func (c *Canvas) MoveTo(x, y int) { c.pen = [2]int{x, y} }

func (c *Canvas) LineTo(x, y int) {
	c.path = append(c.path, [4]int{c.pen[0], c.pen[1], x, y})
	c.pen = [2]int{x, y}
}

// Stroke draws every segment of the current path.
func (c *Canvas) Stroke() {
	for _, s := range c.path {
		c.DrawLine(s[0], s[1], s[2], s[3])
	}
}

// DrawLine draws a line using Bresenham's algorithm
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for i, row := range c.Grid {
		b.WriteString(string(row))
		if i < len(c.Grid)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
