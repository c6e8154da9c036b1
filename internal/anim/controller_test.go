package anim

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/san-kum/lifesim/internal/life"
)

type call struct {
	op   string
	args [4]int
}

type recorder struct {
	w, h  int
	calls []call
}

func (r *recorder) Size() (int, int) { return r.w, r.h }
func (r *recorder) FillRect(x, y, w, h int) {
	r.calls = append(r.calls, call{"fill", [4]int{x, y, w, h}})
}
func (r *recorder) ClearRect(x, y, w, h int) {
	r.calls = append(r.calls, call{"clear", [4]int{x, y, w, h}})
}
func (r *recorder) BeginPath()      { r.calls = append(r.calls, call{op: "begin"}) }
func (r *recorder) MoveTo(x, y int) { r.calls = append(r.calls, call{"move", [4]int{x, y}}) }
func (r *recorder) LineTo(x, y int) { r.calls = append(r.calls, call{"line", [4]int{x, y}}) }
func (r *recorder) Stroke()         { r.calls = append(r.calls, call{op: "stroke"}) }

func (r *recorder) count(op string) int {
	n := 0
	for _, c := range r.calls {
		if c.op == op {
			n++
		}
	}
	return n
}

func (r *recorder) reset() { r.calls = nil }

type genLog struct {
	gens, living []int
}

func (l *genLog) OnGeneration(gen, living int, g *life.Grid) {
	l.gens = append(l.gens, gen)
	l.living = append(l.living, living)
}

func newTestController(t *testing.T, w, h, res, speed int, alive ...[2]int) (*Controller, *recorder) {
	t.Helper()
	g, err := life.NewGrid(w, h)
	if err != nil {
		t.Fatalf("grid: %v", err)
	}
	for _, xy := range alive {
		g.Set(xy[0], xy[1], true)
	}
	rec := &recorder{w: w * res, h: h * res}
	c, err := NewController(g, rec, Config{CellSize: res, Speed: speed})
	if err != nil {
		t.Fatalf("controller: %v", err)
	}
	return c, rec
}

var blinker = [][2]int{{1, 2}, {2, 2}, {3, 2}}

func aliveCells(g *life.Grid) map[[2]int]bool {
	out := map[[2]int]bool{}
	for _, c := range g.Cells {
		if c.Alive {
			out[[2]int{c.X, c.Y}] = true
		}
	}
	return out
}

func TestNewController_Validation(t *testing.T) {
	g, _ := life.NewGrid(4, 3)

	tests := []struct {
		name string
		surf *recorder
		cfg  Config
		want error
	}{
		{"ok", &recorder{w: 8, h: 6}, Config{CellSize: 2, Speed: 1}, nil},
		{"zero cell size", &recorder{w: 8, h: 6}, Config{CellSize: 0, Speed: 1}, ErrInvalidCellSize},
		{"zero speed", &recorder{w: 8, h: 6}, Config{CellSize: 2, Speed: 0}, ErrInvalidSpeed},
		{"wrong width", &recorder{w: 9, h: 6}, Config{CellSize: 2, Speed: 1}, ErrSurfaceMismatch},
		{"wrong height", &recorder{w: 8, h: 4}, Config{CellSize: 2, Speed: 1}, ErrSurfaceMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewController(g, tt.surf, tt.cfg)
			if tt.want == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestOnFrame_AdvancesEverySpeedFrames(t *testing.T) {
	c, _ := newTestController(t, 5, 5, 2, 3, blinker...)

	for frame := 1; frame <= 2; frame++ {
		if st, sig := c.OnFrame(); st != Running || sig != Continue {
			t.Fatalf("frame %d: got %v/%v", frame, st, sig)
		}
		if c.Generation() != 0 {
			t.Fatalf("frame %d: generation advanced early", frame)
		}
	}

	c.OnFrame()
	if c.Generation() != 0 {
		t.Errorf("first boundary shows the initial population, got generation %d", c.Generation())
	}
	if !aliveCells(c.Grid())[[2]int{1, 2}] {
		t.Error("initial population should still be visible after the first boundary")
	}

	for range 3 {
		c.OnFrame()
	}
	if c.Generation() != 1 {
		t.Fatalf("expected generation 1 after frame 6, got %d", c.Generation())
	}
	want := map[[2]int]bool{{2, 1}: true, {2, 2}: true, {2, 3}: true}
	got := aliveCells(c.Grid())
	if len(got) != len(want) {
		t.Fatalf("expected vertical blinker, got %v", got)
	}
	for k := range want {
		if !got[k] {
			t.Errorf("missing %v in %v", k, got)
		}
	}
	if c.Frame() != 6 {
		t.Errorf("expected frame 6, got %d", c.Frame())
	}
}

func TestOnFrame_IntermediateFramesRedrawOnly(t *testing.T) {
	c, rec := newTestController(t, 5, 5, 4, 5, blinker...)

	c.OnFrame()

	if rec.count("clear") != 0 {
		t.Error("intermediate frame must not clear the surface")
	}
	if rec.count("fill") != 3 {
		t.Errorf("expected 3 cells drawn, got %d", rec.count("fill"))
	}
	if rec.calls[0].args != [4]int{4, 8, 4, 4} {
		t.Errorf("expected first cell at (4,8) size 4, got %v", rec.calls[0].args)
	}
	if c.Grid().Cells[c.Grid().Index(1, 2)].Next != life.Unset {
		t.Error("intermediate frame must not compute next states")
	}
}

func TestOnFrame_HaltsOnExtinction(t *testing.T) {
	c, rec := newTestController(t, 3, 2, 2, 2, [2]int{1, 1})

	steps := []State{Running, Running, Running, Halted}
	for i, want := range steps {
		st, sig := c.OnFrame()
		if st != want {
			t.Fatalf("frame %d: expected %v, got %v", i+1, want, st)
		}
		if want == Halted && sig != Stop {
			t.Fatalf("frame %d: halted controller must stop", i+1)
		}
		if want == Running && sig != Continue {
			t.Fatalf("frame %d: running controller must continue", i+1)
		}
	}

	if c.Living() != 0 {
		t.Errorf("expected no living cells, got %d", c.Living())
	}

	// 3 horizontal (y = 0, 2, 4) and 4 vertical (x = 0, 2, 4, 6) lines.
	if got := rec.count("stroke"); got != 7 {
		t.Errorf("expected 7 overlay strokes, got %d", got)
	}

	rec.reset()
	st, sig := c.OnFrame()
	if st != Halted || sig != Stop {
		t.Errorf("halted is terminal, got %v/%v", st, sig)
	}
	if len(rec.calls) != 0 {
		t.Errorf("halted controller drew %d calls", len(rec.calls))
	}
	if c.Resume() {
		t.Error("resume must not leave the halted state")
	}
}

func TestOnFrame_EmptyGridHaltsOnFirstBoundary(t *testing.T) {
	c, _ := newTestController(t, 4, 4, 1, 1)

	if st, _ := c.OnFrame(); st != Halted {
		t.Errorf("expected halt, got %v", st)
	}
}

func TestOnFrame_PauseHasNoOverlay(t *testing.T) {
	for _, speed := range []int{1, 3} {
		c, rec := newTestController(t, 5, 5, 1, speed, blinker...)

		c.Pause()
		st, sig := c.OnFrame()
		if st != Paused || sig != Stop {
			t.Fatalf("speed %d: expected paused/stop, got %v/%v", speed, st, sig)
		}
		if rec.count("stroke") != 0 {
			t.Errorf("speed %d: pause must not draw the grid overlay", speed)
		}

		rec.reset()
		if st, _ := c.OnFrame(); st != Paused {
			t.Errorf("speed %d: paused controller ran a frame", speed)
		}
		if len(rec.calls) != 0 {
			t.Errorf("speed %d: paused controller drew", speed)
		}

		if !c.Resume() {
			t.Fatalf("speed %d: resume should report a restart", speed)
		}
		if st, sig := c.OnFrame(); st != Running || sig != Continue {
			t.Errorf("speed %d: expected running after resume, got %v/%v", speed, st, sig)
		}
	}
}

func TestOnFrame_ExtinctionOverridesPause(t *testing.T) {
	c, rec := newTestController(t, 3, 2, 2, 1, [2]int{1, 1})

	if st, sig := c.OnFrame(); st != Running || sig != Continue {
		t.Fatalf("generation 0: expected running/continue, got %v/%v", st, sig)
	}

	c.Pause()
	rec.reset()
	st, sig := c.OnFrame()
	if st != Halted || sig != Stop {
		t.Fatalf("expected halted/stop when the last cell dies under a pause, got %v/%v", st, sig)
	}
	if c.Living() != 0 || c.Generation() != 1 {
		t.Errorf("expected generation 1 with no living cells, got gen=%d living=%d", c.Generation(), c.Living())
	}
	if got := rec.count("stroke"); got != 7 {
		t.Errorf("expected 7 overlay strokes, got %d", got)
	}
	if c.Resume() {
		t.Error("resume must not leave the halted state")
	}
}

func TestController_Observers(t *testing.T) {
	c, _ := newTestController(t, 5, 5, 1, 2, blinker...)
	log := &genLog{}
	c.AddObserver(log)

	for range 6 {
		c.OnFrame()
	}

	if len(log.gens) != 3 {
		t.Fatalf("expected 3 boundaries, got %d", len(log.gens))
	}
	for i, g := range log.gens {
		if g != i {
			t.Errorf("boundary %d reported generation %d", i, g)
		}
		if log.living[i] != 3 {
			t.Errorf("blinker has 3 cells, got %d", log.living[i])
		}
	}
}

func TestController_ReseedRestartsHalted(t *testing.T) {
	c, _ := newTestController(t, 4, 4, 1, 1)
	c.OnFrame()
	if c.State() != Halted {
		t.Fatal("expected halt")
	}

	if !c.Reseed(rand.New(rand.NewSource(3)), 100) {
		t.Error("reseeding a halted controller must ask for a new frame")
	}
	if c.State() != Running || c.Living() != 16 || c.Generation() != 0 {
		t.Errorf("unexpected state after reseed: %v living=%d gen=%d", c.State(), c.Living(), c.Generation())
	}
	if c.Reseed(rand.New(rand.NewSource(3)), 50) {
		t.Error("reseeding a running controller needs no new frame")
	}
}

func TestController_RestartFromPattern(t *testing.T) {
	c, _ := newTestController(t, 5, 5, 1, 1)
	c.OnFrame()

	stopped, err := c.Restart(func(g *life.Grid) error {
		return life.Populate(g, "blinker", nil, 0)
	})
	if err != nil {
		t.Fatalf("restart: %v", err)
	}
	if !stopped {
		t.Error("restarting a halted controller must ask for a new frame")
	}
	if st, _ := c.OnFrame(); st != Running || c.Living() != 3 {
		t.Errorf("expected a running blinker, got %v with %d living", st, c.Living())
	}

	if _, err := c.Restart(func(g *life.Grid) error {
		return life.Populate(g, "nope", nil, 0)
	}); !errors.Is(err, life.ErrUnknownPattern) {
		t.Errorf("expected ErrUnknownPattern, got %v", err)
	}
}

func TestMultiSurface(t *testing.T) {
	a, b := &recorder{w: 4, h: 2}, &recorder{w: 8, h: 8}
	m := MultiSurface{a, b}

	m.FillRect(1, 1, 1, 1)
	m.BeginPath()
	m.MoveTo(0, 0)
	m.LineTo(4, 0)
	m.Stroke()
	m.ClearRect(0, 0, 4, 2)

	if w, h := m.Size(); w != 4 || h != 2 {
		t.Errorf("size should come from the first surface, got %dx%d", w, h)
	}
	if len(a.calls) != 6 || len(b.calls) != 6 {
		t.Errorf("expected 6 calls on each surface, got %d and %d", len(a.calls), len(b.calls))
	}
}
