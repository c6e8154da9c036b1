package viz

import (
	"strings"
	"testing"
)

func TestPixelCanvasSize(t *testing.T) {
	tests := []struct {
		pw, ph int
		wantW  int
		wantH  int
	}{
		{4, 8, 2, 2},
		{5, 9, 3, 3},
		{1, 1, 1, 1},
	}
	for _, tt := range tests {
		c := NewPixelCanvas(tt.pw, tt.ph)
		if c.Width != tt.wantW || c.Height != tt.wantH {
			t.Errorf("NewPixelCanvas(%d, %d) = %dx%d chars, want %dx%d", tt.pw, tt.ph, c.Width, c.Height, tt.wantW, tt.wantH)
		}
		if w, h := c.Size(); w != tt.pw || h != tt.ph {
			t.Errorf("Size() = %dx%d, want %dx%d", w, h, tt.pw, tt.ph)
		}
	}
}

func TestCanvasSetUnset(t *testing.T) {
	c := NewCanvas(1, 1)
	c.Set(0, 0)
	c.Set(1, 3)
	if got := c.String(); got != string(rune(0x2800|0x1|0x80)) {
		t.Errorf("String() = %q", got)
	}
	c.Unset(0, 0)
	if c.PixelAt(0, 0) || !c.PixelAt(1, 3) {
		t.Error("Unset cleared the wrong dot")
	}
	c.Set(-1, 0)
	c.Set(2, 0)
	if c.PixelAt(-1, 0) || c.PixelAt(2, 0) {
		t.Error("out of range dots must be ignored")
	}
}

func TestCanvasRects(t *testing.T) {
	c := NewPixelCanvas(6, 6)
	c.FillRect(2, 2, 2, 2)
	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			want := x >= 2 && x < 4 && y >= 2 && y < 4
			if c.PixelAt(x, y) != want {
				t.Errorf("PixelAt(%d, %d) = %v, want %v", x, y, !want, want)
			}
		}
	}

	c.ClearRect(2, 2, 1, 2)
	if c.PixelAt(2, 2) || c.PixelAt(2, 3) || !c.PixelAt(3, 3) {
		t.Error("ClearRect cleared the wrong dots")
	}

	c.ClearRect(0, 0, 6, 6)
	if strings.Trim(c.String(), "⠀\n") != "" {
		t.Errorf("canvas not blank after full clear: %q", c.String())
	}
}

func TestCanvasPath(t *testing.T) {
	c := NewPixelCanvas(8, 8)
	c.BeginPath()
	c.MoveTo(0, 4)
	c.LineTo(7, 4)
	c.Stroke()
	for x := 0; x < 8; x++ {
		if !c.PixelAt(x, 4) {
			t.Errorf("dot (%d, 4) not stroked", x)
		}
	}
	if c.PixelAt(0, 3) {
		t.Error("stroke leaked off the line")
	}

	// a new path forgets old segments
	c.Clear()
	c.BeginPath()
	c.MoveTo(2, 0)
	c.LineTo(2, 7)
	c.Stroke()
	if c.PixelAt(0, 4) || !c.PixelAt(2, 7) {
		t.Error("BeginPath did not reset the path")
	}
}

func TestCanvasImage(t *testing.T) {
	c := NewPixelCanvas(2, 2)
	c.Set(1, 0)
	img := CanvasImage(c, 3)
	if b := img.Bounds(); b.Dx() != 6 || b.Dy() != 6 {
		t.Fatalf("image bounds = %v", b)
	}
	if img.ColorIndexAt(4, 1) != 1 || img.ColorIndexAt(1, 1) != 0 {
		t.Error("dot not scaled into the image")
	}
}
