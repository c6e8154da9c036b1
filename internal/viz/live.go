package viz

import (
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"math/rand"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/pkg/errors"
	"github.com/san-kum/lifesim/internal/anim"
	"github.com/san-kum/lifesim/internal/config"
	"github.com/san-kum/lifesim/internal/life"
	"github.com/san-kum/lifesim/internal/metrics"
)

const (
	historyCapacity = 600
	graphWidth      = 30
	maxGIFFrames    = 900
	gifScale        = 4
	gifPath         = "lifesim.gif"

	// CellSize is the edge of one grid cell in braille dots.
	CellSize = 2
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).Padding(1, 2).Width(45)
	labelStyle  = lipgloss.NewStyle().Width(12)
	graphStyle  = lipgloss.NewStyle().Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().MarginTop(2)
)

type TickMsg time.Time

// tickScheduler holds the frame callback until the next TickMsg.
type tickScheduler struct {
	pending func()
}

func (s *tickScheduler) RequestFrame(fn func()) { s.pending = fn }

func (s *tickScheduler) run() {
	fn := s.pending
	s.pending = nil
	if fn != nil {
		fn()
	}
}

// Model drives an anim.Animator from bubbletea ticks.
type Model struct {
	cfg      *config.Config
	animator *anim.Animator
	sched    *tickScheduler
	canvas   *Canvas
	pop      *metrics.Population
	cycle    *metrics.CycleDetector
	rng      *rand.Rand
	interval time.Duration

	ticking   bool
	recording bool
	frames    []*image.Paletted
	showHelp  bool
	status    string
}

// NewModel builds the grid described by cfg and arms the first frame.
func NewModel(cfg *config.Config) (Model, error) {
	w, h := cfg.GridSize()
	g, err := life.NewGrid(w, h)
	if err != nil {
		return Model{}, err
	}
	rng := rand.New(rand.NewSource(cfg.Seed))
	if err := life.Populate(g, cfg.Pattern, rng, cfg.Limit); err != nil {
		return Model{}, err
	}

	canvas := NewPixelCanvas(w*CellSize, h*CellSize)
	ctrl, err := anim.NewController(g, canvas, anim.Config{CellSize: CellSize, Speed: cfg.Speed})
	if err != nil {
		return Model{}, errors.Wrap(err, "[NewModel] failed to create controller")
	}
	pop := metrics.NewPopulation(historyCapacity)
	cycle := metrics.NewCycleDetector(2)
	ctrl.AddObserver(pop)
	ctrl.AddObserver(cycle)

	if cfg.Theme != "" {
		SetTheme(cfg.Theme)
	}

	interval := cfg.FrameInterval()
	if interval == 0 {
		interval = time.Second / config.DefaultFPS
	}

	sched := &tickScheduler{}
	a := anim.NewAnimator(ctrl, sched)
	a.Start()

	return Model{
		cfg:      cfg,
		animator: a,
		sched:    sched,
		canvas:   canvas,
		pop:      pop,
		cycle:    cycle,
		rng:      rng,
		interval: interval,
		ticking:  true,
	}, nil
}

func (m Model) Controller() *anim.Controller { return m.animator.Controller() }

// populate refills the grid the way NewModel did: the configured pattern,
// or a fresh random population.
func (m Model) populate(g *life.Grid) error {
	return life.Populate(g, m.cfg.Pattern, m.rng, m.cfg.Limit)
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// wake starts ticking again after the animator re-armed a frame.
func (m *Model) wake() tea.Cmd {
	if m.ticking || m.sched.pending == nil {
		return nil
	}
	m.ticking = true
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.animator.Toggle()
			return m, m.wake()
		case "r":
			if err := m.animator.Restart(m.populate); err != nil {
				m.status = err.Error()
				return m, nil
			}
			m.pop.Reset()
			m.cycle.Reset()
			m.status = ""
			return m, m.wake()
		case "t":
			NextTheme()
		case "g":
			if m.recording {
				m.recording = false
				if err := m.saveGIF(gifPath); err != nil {
					m.status = err.Error()
				} else {
					m.status = fmt.Sprintf("saved %d frames to %s", len(m.frames), gifPath)
				}
				m.frames = nil
			} else {
				m.recording = true
				m.frames = nil
				m.status = ""
			}
		case "?":
			m.showHelp = !m.showHelp
		}

	case TickMsg:
		m.ticking = false
		m.sched.run()
		if m.recording {
			m.captureFrame()
		}
		return m, m.wake()
	}
	return m, nil
}

func (m Model) View() string {
	ctrl := m.Controller()
	th := CurrentTheme

	canvasView := canvasStyle.Render(
		lipgloss.NewStyle().Foreground(th.Cells).Render(m.canvas.String()),
	)

	state := StateBadge(th, ctrl.State())
	if m.recording {
		state += "  " + RecordingBadge(th)
	}

	w, h := ctrl.Grid().Width, ctrl.Grid().Height
	peak, peakGen := m.pop.Peak()
	cycle := "-"
	if m.cycle.Stagnant() {
		cycle = fmt.Sprintf("period %d since gen %d", m.cycle.Period(), m.cycle.Since())
	}

	label := labelStyle.Foreground(th.Muted)
	value := lipgloss.NewStyle().Bold(true).Foreground(th.Accent)
	muted := lipgloss.NewStyle().Foreground(th.Muted)

	var b strings.Builder
	b.WriteString(Title(th, "GAME OF LIFE") + "\n\n")
	b.WriteString(state + "\n\n")
	row := func(name, v string) {
		b.WriteString(label.Render(name) + value.Render(v) + "\n")
	}
	row("GEN", fmt.Sprintf("%d", ctrl.Generation()))
	row("LIVING", fmt.Sprintf("%d", ctrl.Living()))
	row("PEAK", fmt.Sprintf("%d @ %d", peak, peakGen))
	if gen, ok := m.pop.Extinction(); ok {
		row("EXTINCT", fmt.Sprintf("gen %d", gen))
	}
	row("GRID", fmt.Sprintf("%dx%d", w, h))
	row("SPEED", fmt.Sprintf("1 gen / %d frames", m.cfg.Speed))
	row("CYCLE", cycle)
	b.WriteString(label.Render("THEME") + muted.Render(th.Name) + "\n")

	series := m.pop.Series()
	b.WriteString("\n" + PopulationSparkline(th, series, graphWidth) + "\n")
	if len(series) > 1 {
		graph := asciigraph.Plot(series, asciigraph.Height(4), asciigraph.Width(graphWidth), asciigraph.Caption("population"))
		b.WriteString(graphStyle.Foreground(th.Trace).Render(graph) + "\n")
	}
	if m.status != "" {
		b.WriteString(muted.Render(m.status) + "\n")
	}

	b.WriteString(Rule(th, graphWidth+10) + "\n")
	help := helpStyle.Foreground(th.Muted)
	if m.showHelp {
		b.WriteString(help.Render(strings.Join([]string{
			hint(th, "space") + "  pause / resume",
			hint(th, "r") + "      restart",
			hint(th, "t") + "      cycle theme",
			hint(th, "g") + "      record gif",
			hint(th, "q") + "      quit",
		}, "\n")))
	} else {
		b.WriteString(help.Render("? help • space pause • r restart • q quit"))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsStyle.BorderForeground(th.Muted).Render(b.String()))
}

func (m *Model) captureFrame() {
	if len(m.frames) >= maxGIFFrames {
		return
	}
	m.frames = append(m.frames, CanvasImage(m.canvas, gifScale))
}

func (m *Model) saveGIF(path string) error {
	if len(m.frames) == 0 {
		return errors.New("no frames recorded")
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "[saveGIF] failed to create %s", path)
	}
	defer f.Close()

	out := &gif.GIF{}
	for _, frame := range m.frames {
		out.Image = append(out.Image, frame)
		out.Delay = append(out.Delay, 2)
	}
	return errors.Wrapf(gif.EncodeAll(f, out), "[saveGIF] failed to encode %s", path)
}

// CanvasImage rasterizes the canvas pixels, scale image pixels per dot.
func CanvasImage(c *Canvas, scale int) *image.Paletted {
	pw, ph := c.Size()
	img := image.NewPaletted(image.Rect(0, 0, pw*scale, ph*scale), color.Palette{color.Black, color.White})
	for y := 0; y < ph; y++ {
		for x := 0; x < pw; x++ {
			if !c.PixelAt(x, y) {
				continue
			}
			for dy := 0; dy < scale; dy++ {
				for dx := 0; dx < scale; dx++ {
					img.SetColorIndex(x*scale+dx, y*scale+dy, 1)
				}
			}
		}
	}
	return img
}
