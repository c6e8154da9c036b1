package anim

import "github.com/san-kum/lifesim/internal/life"

// Surface is a 2D drawing context addressed in pixels.
type Surface interface {
	Size() (w, h int)
	FillRect(x, y, w, h int)
	ClearRect(x, y, w, h int)
	BeginPath()
	MoveTo(x, y int)
	LineTo(x, y int)
	Stroke()
}

// Scheduler invokes fn on the next display refresh. Callers re-arm it on
// every frame they want to continue.
type Scheduler interface {
	RequestFrame(fn func())
}

// Observer is notified on every generation boundary.
type Observer interface {
	OnGeneration(gen, living int, g *life.Grid)
}

// MultiSurface fans every drawing call out to several surfaces. Size
// reports the first surface.
type MultiSurface []Surface

func (m MultiSurface) Size() (int, int) {
	if len(m) == 0 {
		return 0, 0
	}
	return m[0].Size()
}

func (m MultiSurface) FillRect(x, y, w, h int) {
	for _, s := range m {
		s.FillRect(x, y, w, h)
	}
}

func (m MultiSurface) ClearRect(x, y, w, h int) {
	for _, s := range m {
		s.ClearRect(x, y, w, h)
	}
}

func (m MultiSurface) BeginPath() {
	for _, s := range m {
		s.BeginPath()
	}
}

func (m MultiSurface) MoveTo(x, y int) {
	for _, s := range m {
		s.MoveTo(x, y)
	}
}

func (m MultiSurface) LineTo(x, y int) {
	for _, s := range m {
		s.LineTo(x, y)
	}
}

func (m MultiSurface) Stroke() {
	for _, s := range m {
		s.Stroke()
	}
}
