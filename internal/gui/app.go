package gui

import (
	"fmt"
	"math/rand"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/pkg/errors"
	"github.com/san-kum/lifesim/internal/anim"
	"github.com/san-kum/lifesim/internal/config"
	"github.com/san-kum/lifesim/internal/life"
	"github.com/san-kum/lifesim/internal/metrics"
)

// Theme Colors (Monochrome Hyper-Minimalist)
var (
	ColBg      = rl.NewColor(10, 10, 10, 255)    // Deep Black
	ColCell    = rl.NewColor(230, 230, 230, 255) // Live cells
	ColAccent  = rl.NewColor(180, 180, 180, 255) // Soft White
	ColSelect  = rl.NewColor(255, 255, 255, 255) // Bright White
	ColText    = rl.NewColor(140, 140, 140, 255) // Neutral Gray
	ColTextDim = rl.NewColor(60, 60, 60, 255)    // Dark Gray (Subtle)
	ColGrid    = rl.NewColor(70, 70, 70, 255)
)

const (
	hudHeight  = 110
	minWidth   = 640
	fontPath   = "/usr/share/fonts/liberation/LiberationMono-Regular.ttf"
	historyCap = 400
)

type App struct {
	Cfg      *config.Config
	Animator *anim.Animator
	Surface  *Surface
	Pop      *metrics.Population
	Cycle    *metrics.CycleDetector
	Font     rl.Font

	rng     *rand.Rand
	pending func()
	width   int
	height  int
}

// RequestFrame makes App the animation scheduler: the callback runs on the
// next pass of the window loop.
func (a *App) RequestFrame(fn func()) { a.pending = fn }

func initWindow(cfg *config.Config) (int, int) {
	w := max(cfg.Width, minWidth)
	h := cfg.Height + hudHeight
	rl.InitWindow(int32(w), int32(h), "lifesim")
	rl.SetTargetFPS(int32(cfg.FPS))
	rl.SetExitKey(0)
	return w, h
}

// loadFont loads Liberation Mono when installed and the raylib default font
// otherwise.
func loadFont() rl.Font {
	if _, err := os.Stat(fontPath); err != nil {
		return rl.GetFontDefault()
	}
	font := rl.LoadFontEx(fontPath, 32, nil, 0)
	rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
	return font
}

// Run opens a window and animates the grid described by cfg until the
// window is closed.
func Run(cfg *config.Config) error {
	gw, gh := cfg.GridSize()
	g, err := life.NewGrid(gw, gh)
	if err != nil {
		return err
	}
	rng := rand.New(rand.NewSource(cfg.Seed))
	if err := life.Populate(g, cfg.Pattern, rng, cfg.Limit); err != nil {
		return err
	}

	w, h := initWindow(cfg)
	defer rl.CloseWindow()

	surface := NewSurface(cfg.Width, cfg.Height)
	defer surface.Unload()

	ctrl, err := anim.NewController(g, surface, anim.Config{CellSize: cfg.Res, Speed: cfg.Speed})
	if err != nil {
		return errors.Wrap(err, "[Run] failed to create controller")
	}

	app := &App{
		Cfg:     cfg,
		Surface: surface,
		Pop:     metrics.NewPopulation(historyCap),
		Cycle:   metrics.NewCycleDetector(2),
		Font:    loadFont(),
		rng:     rng,
		width:   w,
		height:  h,
	}
	ctrl.AddObserver(app.Pop)
	ctrl.AddObserver(app.Cycle)
	app.Animator = anim.NewAnimator(ctrl, app)
	app.Animator.Start()

	app.RunLoop()
	return nil
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		if a.Update() {
			return
		}
		a.step()
		a.Draw()
	}
}

// step runs the pending frame callback into the render texture.
func (a *App) step() {
	fn := a.pending
	a.pending = nil
	if fn == nil {
		return
	}
	rl.BeginTextureMode(a.Surface.Target)
	fn()
	rl.EndTextureMode()
}

// Update handles input and reports whether the user asked to quit.
func (a *App) Update() bool {
	if rl.IsKeyPressed(rl.KeyQ) {
		return true
	}
	if rl.IsKeyPressed(rl.KeySpace) {
		a.Animator.Toggle()
	}
	if rl.IsKeyPressed(rl.KeyR) {
		err := a.Animator.Restart(func(g *life.Grid) error {
			return life.Populate(g, a.Cfg.Pattern, a.rng, a.Cfg.Limit)
		})
		if err == nil {
			a.Pop.Reset()
			a.Cycle.Reset()
		}
	}
	return false
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	a.Surface.draw(0, 0)
	a.DrawHUD()

	rl.EndDrawing()
}

func (a *App) DrawHUD() {
	ctrl := a.Animator.Controller()
	top := a.Cfg.Height + 10

	a.drawText("lifesim", 30, top, 24, ColSelect)
	a.drawText(fmt.Sprintf(":: gen %d  living %d", ctrl.Generation(), ctrl.Living()), 150, top+4, 16, ColText)

	status, col := "RUNNING", ColSelect
	switch ctrl.State() {
	case anim.Paused:
		status, col = "PAUSED", ColTextDim
	case anim.Halted:
		status, col = "HALTED", rl.Red
	}
	a.drawText(status, a.width-120, top, 16, col)

	if a.Cycle.Stagnant() {
		a.drawText(fmt.Sprintf("period %d", a.Cycle.Period()), a.width-120, top+24, 14, ColAccent)
	}

	a.DrawTelemetry(30, top+34, 400, 40)

	a.drawText("[SPACE] PAUSE  [R] RESTART  [Q] QUIT", a.width-330, a.height-24, 14, ColTextDim)
	a.drawText(fmt.Sprintf("%d FPS", int32(rl.GetFPS())), 30, a.height-24, 14, ColTextDim)
}

func (a *App) drawText(text string, x, y int, size int, color rl.Color) {
	rl.DrawTextEx(a.Font, text, rl.NewVector2(float32(x), float32(y)), float32(size), 1, color)
}

// DrawTelemetry plots the population history inside the given rectangle.
func (a *App) DrawTelemetry(rectX, rectY, width, height int) {
	series := a.Pop.Series()
	if len(series) < 2 {
		return
	}

	// Normalize Data
	minVal, maxVal := series[0], series[0]
	for _, v := range series {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if maxVal == minVal {
		maxVal = minVal + 1
	}

	// Draw Line Strip
	points := make([]rl.Vector2, len(series))
	for i, val := range series {
		px := float32(rectX) + (float32(i)/float32(len(series)))*float32(width)
		norm := (val - minVal) / (maxVal - minVal)
		py := float32(rectY+height) - float32(norm)*float32(height)
		points[i] = rl.NewVector2(px, py)
	}

	rl.DrawLineStrip(points, ColAccent)
	a.drawText(fmt.Sprintf("N: %.0f", series[len(series)-1]), rectX+width+10, rectY+height-10, 14, ColText)
}
