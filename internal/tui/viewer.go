// Package tui is an interactive terminal viewer for the triangle.
package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rook-computer/pascalviz/internal/app/screens"
	"github.com/rook-computer/pascalviz/internal/config"
	"github.com/rook-computer/pascalviz/internal/render"
	"github.com/rook-computer/pascalviz/internal/state"
)

const (
	minRows = 1
	// defaultMaxRows applies until the terminal reports its size.
	defaultMaxRows = 64
	// cellPx is the pixel size of one triangle cell; TermCanvas maps it to
	// one terminal cell.
	cellPx = 8
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffdc00"))
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#808080"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff4040"))
)

// Model is the bubbletea model of the viewer.
type Model struct {
	cfg     config.Config
	maxRows int
	view    string
	err     error
}

// NewModel starts from cfg; the row count is capped to what fits the
// terminal once its size is known.
func NewModel(cfg config.Config) Model {
	m := Model{cfg: cfg, maxRows: defaultMaxRows}
	m.clampRows()
	m.redraw()
	return m
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// two columns per cell, three lines of chrome
		m.maxRows = min(msg.Width/2, msg.Height-3)
		if m.maxRows < minRows {
			m.maxRows = minRows
		}
		m.clampRows()
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "+", "=", "up":
			m.cfg.Rows++
			m.clampRows()
		case "-", "_", "down":
			m.cfg.Rows--
			m.clampRows()
		case "m":
			mode := config.ModeNumeric
			if m.cfg.Mode == config.ModeNumeric {
				mode = config.ModeModulo
			}
			rows := m.cfg.Rows
			m.cfg = *config.Default(mode)
			m.cfg.Rows = rows
		case "g":
			m.cfg.Grid = !m.cfg.Grid
		default:
			return m, nil
		}
	default:
		return m, nil
	}
	m.redraw()
	return m, nil
}

func (m *Model) clampRows() {
	if m.cfg.Rows > m.maxRows {
		m.cfg.Rows = m.maxRows
	}
	if m.cfg.Rows < minRows {
		m.cfg.Rows = minRows
	}
}

func (m *Model) redraw() {
	cfg := m.cfg
	cfg.CanvasSize = cfg.Rows * cellPx
	screen, err := screens.NewTriangleScreen(&cfg)
	if err != nil {
		m.err = err
		return
	}
	canvas := render.NewTermCanvas(cfg.CanvasSize, cfg.CanvasSize, cellPx, screen.Theme.Background)
	screen.Draw(canvas, state.State{})
	m.view = canvas.String()
	m.err = nil
}

// Rows reports the current row count.
func (m Model) Rows() int { return m.cfg.Rows }

// Mode reports the current rendering mode.
func (m Model) Mode() config.Mode { return m.cfg.Mode }

func (m Model) View() string {
	title := titleStyle.Render(fmt.Sprintf("Pascal's triangle, %d rows, %s", m.cfg.Rows, m.cfg.Mode))
	help := helpStyle.Render("+/- rows  m mode  g grid  q quit")
	if m.err != nil {
		return title + "\n" + errStyle.Render(m.err.Error()) + "\n" + help
	}
	return title + "\n" + m.view + "\n" + help
}

// Run starts the viewer on the terminal.
func Run(cfg config.Config) error {
	_, err := tea.NewProgram(NewModel(cfg), tea.WithAltScreen()).Run()
	return err
}
