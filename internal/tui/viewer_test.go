package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rook-computer/pascalviz/internal/config"
)

func press(m Model, key string) Model {
	var msg tea.KeyMsg
	switch key {
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestViewerRowsFollowKeys(t *testing.T) {
	cfg := config.Default(config.ModeModulo)
	cfg.Rows = 5
	m := NewModel(*cfg)

	m = press(m, "+")
	m = press(m, "+")
	if m.Rows() != 7 {
		t.Errorf("expected 7 rows, got %d", m.Rows())
	}
	m = press(m, "-")
	if m.Rows() != 6 {
		t.Errorf("expected 6 rows, got %d", m.Rows())
	}
	for i := 0; i < 10; i++ {
		m = press(m, "-")
	}
	if m.Rows() != minRows {
		t.Errorf("expected rows clamped to %d, got %d", minRows, m.Rows())
	}
}

func TestViewerClampsToWindow(t *testing.T) {
	cfg := config.Default(config.ModeModulo)
	m := NewModel(*cfg)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 30})
	m = next.(Model)
	if m.Rows() != 20 {
		t.Errorf("expected 20 rows for a 40x30 terminal, got %d", m.Rows())
	}
	m = press(m, "+")
	if m.Rows() != 20 {
		t.Errorf("rows must not exceed the window, got %d", m.Rows())
	}
}

func TestViewerToggleMode(t *testing.T) {
	cfg := config.Default(config.ModeModulo)
	cfg.Rows = 4
	m := NewModel(*cfg)

	m = press(m, "m")
	if m.Mode() != config.ModeNumeric || m.Rows() != 4 {
		t.Errorf("expected numeric with 4 rows, got %s with %d", m.Mode(), m.Rows())
	}
	view := m.View()
	if !strings.Contains(view, "numeric") {
		t.Errorf("title should name the mode:\n%s", view)
	}
	// rows 1..4 of the numeric triangle show a 3
	if !strings.Contains(view, "3") {
		t.Errorf("expected the value 3 in the view:\n%s", view)
	}
	m = press(m, "m")
	if m.Mode() != config.ModeModulo {
		t.Errorf("expected modulo, got %s", m.Mode())
	}
}

func TestViewerToggleGrid(t *testing.T) {
	cfg := config.Default(config.ModeNumeric)
	cfg.Rows = 5
	m := NewModel(*cfg)

	withGrid := m.View()
	m = press(m, "g")
	withoutGrid := m.View()
	if withGrid == withoutGrid {
		t.Fatal("view did not change when the grid was toggled off")
	}
	if strings.Contains(withoutGrid, "▏") {
		t.Errorf("grid still drawn after toggling it off:\n%s", withoutGrid)
	}
	m = press(m, "g")
	if m.View() != withGrid {
		t.Error("toggling the grid back on did not restore the view")
	}
}

func TestViewerQuit(t *testing.T) {
	m := NewModel(*config.Default(config.ModeModulo))
	for _, key := range []string{"q", "esc"} {
		var msg tea.KeyMsg
		if key == "esc" {
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		} else {
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
		}
		_, cmd := m.Update(msg)
		if cmd == nil {
			t.Fatalf("%s: expected quit command", key)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%s: expected tea.QuitMsg", key)
		}
	}
}

func TestViewerViewHeight(t *testing.T) {
	cfg := config.Default(config.ModeModulo)
	cfg.Rows = 6
	m := NewModel(*cfg)
	lines := strings.Split(m.View(), "\n")
	if len(lines) != 6+2 {
		t.Errorf("expected %d lines, got %d", 6+2, len(lines))
	}
}
