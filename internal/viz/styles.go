package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/san-kum/lifesim/internal/anim"
)

// sparkBars are the sparkline heights, lowest first. The lowest bar is
// reserved for generations with no living cells.
var sparkBars = []rune("▁▂▃▄▅▆▇█")

// Title renders the panel header, shaded rune by rune from the cell colour
// to the accent.
func Title(t Theme, text string) string {
	runes := []rune(text)
	shades := titleShades(t, len(runes))

	var b strings.Builder
	for i, r := range runes {
		b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(shades[i]).Render(string(r)))
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(t.Muted).
		Render(b.String())
}

// titleShades blends n colours from t.Cells to t.Accent. A single rune
// takes the cell colour.
func titleShades(t Theme, n int) []lipgloss.Color {
	if n <= 0 {
		return nil
	}
	shades := make([]lipgloss.Color, n)
	from, err := colorful.Hex(string(t.Cells))
	to, err2 := colorful.Hex(string(t.Accent))
	if err != nil || err2 != nil || n == 1 {
		for i := range shades {
			shades[i] = t.Cells
		}
		return shades
	}
	for i := range shades {
		c := from.BlendLab(to, float64(i)/float64(n-1)).Clamped()
		shades[i] = lipgloss.Color(c.Hex())
	}
	return shades
}

// StateBadge renders the controller state.
func StateBadge(t Theme, s anim.State) string {
	style := lipgloss.NewStyle().Bold(true)
	switch s {
	case anim.Paused:
		return style.Foreground(t.Paused).Render("❚❚ PAUSED")
	case anim.Halted:
		return style.Foreground(t.Halted).Render("■ HALTED")
	default:
		return style.Foreground(t.Running).Render("● RUNNING")
	}
}

func RecordingBadge(t Theme) string {
	return lipgloss.NewStyle().Bold(true).Blink(true).Foreground(t.Halted).Render("● REC")
}

// PopulationSparkline draws the last width population samples. Living
// generations use the trace colour and extinct ones the halted colour.
func PopulationSparkline(t Theme, values []float64, width int) string {
	bars := sparkRunes(values, width)
	if len(bars) == 0 {
		return Rule(t, width)
	}
	live := lipgloss.NewStyle().Foreground(t.Trace)
	dead := lipgloss.NewStyle().Foreground(t.Halted)

	var b strings.Builder
	for _, r := range bars {
		if r == sparkBars[0] {
			b.WriteString(dead.Render(string(r)))
		} else {
			b.WriteString(live.Render(string(r)))
		}
	}
	return b.String()
}

// sparkRunes scales the trailing window of values against its own peak.
// Any positive sample gets at least the second bar.
func sparkRunes(values []float64, width int) []rune {
	if width <= 0 || len(values) == 0 {
		return nil
	}
	if len(values) > width {
		values = values[len(values)-width:]
	}
	peak := 0.0
	for _, v := range values {
		peak = max(peak, v)
	}

	out := make([]rune, len(values))
	top := len(sparkBars) - 1
	for i, v := range values {
		if v <= 0 {
			out[i] = sparkBars[0]
			continue
		}
		idx := 1 + int(v/peak*float64(top-1))
		out[i] = sparkBars[min(idx, top)]
	}
	return out
}

func Rule(t Theme, width int) string {
	return lipgloss.NewStyle().Foreground(t.Muted).Render(strings.Repeat("─", max(width, 0)))
}

func hint(t Theme, key string) string {
	return lipgloss.NewStyle().Foreground(t.Muted).Italic(true).Render(key)
}
