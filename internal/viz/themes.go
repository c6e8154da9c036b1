package viz

import "github.com/charmbracelet/lipgloss"

// Theme colours the live view. Every field is read by View.
type Theme struct {
	Name    string
	Cells   lipgloss.Color // the braille grid and the start of the title
	Trace   lipgloss.Color // living samples in the population sparkline
	Accent  lipgloss.Color // metric values and the end of the title
	Muted   lipgloss.Color // labels, hints and rules
	Running lipgloss.Color
	Paused  lipgloss.Color
	Halted  lipgloss.Color // halted badge, extinct samples, recording
}

var (
	ThemeRetroGreen = Theme{
		Name:    "retro",
		Cells:   lipgloss.Color("#00ff00"),
		Trace:   lipgloss.Color("#00cc00"),
		Accent:  lipgloss.Color("#88ff88"),
		Muted:   lipgloss.Color("#338833"),
		Running: lipgloss.Color("#88ff88"),
		Paused:  lipgloss.Color("#ffff00"),
		Halted:  lipgloss.Color("#ff0000"),
	}

	ThemeCyberpunk = Theme{
		Name:    "cyberpunk",
		Cells:   lipgloss.Color("#ff00ff"),
		Trace:   lipgloss.Color("#00ffff"),
		Accent:  lipgloss.Color("#ffff00"),
		Muted:   lipgloss.Color("#666666"),
		Running: lipgloss.Color("#00ff00"),
		Paused:  lipgloss.Color("#ff8800"),
		Halted:  lipgloss.Color("#ff0000"),
	}

	ThemeMinimal = Theme{
		Name:    "minimal",
		Cells:   lipgloss.Color("#ffffff"),
		Trace:   lipgloss.Color("#cccccc"),
		Accent:  lipgloss.Color("#0088ff"),
		Muted:   lipgloss.Color("#888888"),
		Running: lipgloss.Color("#00ff00"),
		Paused:  lipgloss.Color("#ffaa00"),
		Halted:  lipgloss.Color("#ff0000"),
	}

	ThemeOcean = Theme{
		Name:    "ocean",
		Cells:   lipgloss.Color("#00a8cc"),
		Trace:   lipgloss.Color("#0077be"),
		Accent:  lipgloss.Color("#ffd700"),
		Muted:   lipgloss.Color("#4488aa"),
		Running: lipgloss.Color("#00ff88"),
		Paused:  lipgloss.Color("#ffcc00"),
		Halted:  lipgloss.Color("#ff4444"),
	}

	CurrentTheme = ThemeRetroGreen

	Themes = []Theme{
		ThemeRetroGreen,
		ThemeCyberpunk,
		ThemeMinimal,
		ThemeOcean,
	}
)

// GetTheme returns a theme by name, falling back to retro.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeRetroGreen
}

func SetTheme(name string) {
	CurrentTheme = GetTheme(name)
}

// NextTheme switches to the theme after the current one.
func NextTheme() {
	for i, t := range Themes {
		if t.Name == CurrentTheme.Name {
			CurrentTheme = Themes[(i+1)%len(Themes)]
			return
		}
	}
	CurrentTheme = Themes[0]
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
