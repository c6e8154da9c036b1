// Package tui holds the preset picker shown before the live view.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/lifesim/internal/config"
)

var (
	cyan    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	red     = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	magenta = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
)

type state int

const (
	stateMenu state = iota
	stateConfig
)

// field is an editable integer setting of the chosen preset.
type field struct {
	name string
	ptr  func(*config.Config) *int
	step int
}

var fields = []field{
	{"limit", func(c *config.Config) *int { return &c.Limit }, 5},
	{"speed", func(c *config.Config) *int { return &c.Speed }, 1},
	{"res", func(c *config.Config) *int { return &c.Res }, 1},
	{"width", func(c *config.Config) *int { return &c.Width }, 10},
	{"height", func(c *config.Config) *int { return &c.Height }, 10},
	{"fps", func(c *config.Config) *int { return &c.FPS }, 5},
}

type model struct {
	state   state
	cursor  int
	presets []string

	cfg         *config.Config
	fieldCursor int
	editing     bool
	editBuf     string
	err         error

	chosen *config.Config
}

func newModel() model {
	return model{state: stateMenu, presets: config.ListPresets()}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch m.state {
		case stateMenu:
			return m.menuKey(msg)
		case stateConfig:
			return m.configKey(msg)
		}
	}
	return m, nil
}

func (m model) menuKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.presets)-1 {
			m.cursor++
		}
	case "enter", " ":
		m.cfg = config.GetPreset(m.presets[m.cursor])
		m.state = stateConfig
		m.fieldCursor = 0
		m.err = nil
	}
	return m, nil
}

func (m model) configKey(msg tea.KeyMsg) (model, tea.Cmd) {
	f := fields[m.fieldCursor]
	if m.editing {
		switch msg.String() {
		case "enter":
			if v, err := strconv.Atoi(m.editBuf); err == nil {
				*f.ptr(m.cfg) = v
			}
			m.editing = false
			m.editBuf = ""
		case "esc":
			m.editing = false
			m.editBuf = ""
		case "backspace":
			if len(m.editBuf) > 0 {
				m.editBuf = m.editBuf[:len(m.editBuf)-1]
			}
		default:
			if s := msg.String(); len(s) == 1 && s[0] >= '0' && s[0] <= '9' {
				m.editBuf += s
			}
		}
		return m, nil
	}

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "q", "esc":
		m.state = stateMenu
	case "up", "k":
		if m.fieldCursor > 0 {
			m.fieldCursor--
		}
	case "down", "j":
		if m.fieldCursor < len(fields)-1 {
			m.fieldCursor++
		}
	case "enter", " ":
		m.editing = true
		m.editBuf = strconv.Itoa(*f.ptr(m.cfg))
	case "left", "h":
		*f.ptr(m.cfg) -= f.step
	case "right", "l":
		*f.ptr(m.cfg) += f.step
	case "s":
		if err := m.cfg.Validate(); err != nil {
			m.err = err
			return m, nil
		}
		m.chosen = m.cfg
		return m, tea.Quit
	}
	return m, nil
}

func (m model) View() string {
	if m.state == stateConfig {
		return m.viewConfig()
	}
	return m.viewMenu()
}

func (m model) viewMenu() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("           " + cyan.Render("l i f e s i m") + "\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("\n")

	for i, name := range m.presets {
		desc := describe(config.GetPreset(name))
		if i == m.cursor {
			b.WriteString("      " + cyan.Render("▸ ") + white.Render(fmt.Sprintf("%-10s", name)) + dim.Render(desc) + "\n")
		} else {
			b.WriteString("        " + dim.Render(fmt.Sprintf("%-10s", name)) + dimmer.Render(desc) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(dim.Render("      ↑↓ select   enter configure   q quit") + "\n")

	return b.String()
}

func (m model) viewConfig() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString("      " + cyan.Render(m.presets[m.cursor]) + "  " + dim.Render(describe(m.cfg)) + "\n")
	b.WriteString(dimmer.Render("      "+strings.Repeat("─", 30)) + "\n\n")

	for i, f := range fields {
		val := fmt.Sprintf("%6d", *f.ptr(m.cfg))
		if m.editing && i == m.fieldCursor {
			val = fmt.Sprintf("%6s", m.editBuf+"▋")
		}
		if i == m.fieldCursor {
			b.WriteString("      " + cyan.Render("▸ ") + white.Render(fmt.Sprintf("%-10s", f.name)) + magenta.Render(val) + "\n")
		} else {
			b.WriteString("        " + dim.Render(fmt.Sprintf("%-10s", f.name)) + dim.Render(val) + "\n")
		}
	}

	if m.err != nil {
		b.WriteString("\n      " + red.Render(m.err.Error()) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(dim.Render("      ↑↓ select  ←→ adjust  enter edit  s start  esc back") + "\n")

	return b.String()
}

func describe(c *config.Config) string {
	w, h := c.GridSize()
	if c.Pattern != "" {
		return fmt.Sprintf("%s on %dx%d", c.Pattern, w, h)
	}
	return fmt.Sprintf("%d%% noise on %dx%d", c.Limit, w, h)
}

// Pick shows the preset menu and returns the configuration the user
// started, or nil if they quit.
func Pick() (*config.Config, error) {
	p := tea.NewProgram(newModel(), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return nil, err
	}
	return final.(model).chosen, nil
}
