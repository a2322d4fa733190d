package ui

import (
	"github.com/Eatkin/reddit-cli/internal/logging/events"
	"github.com/Eatkin/reddit-cli/internal/ui/state"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// navigateList applies the cursor bindings to level. It reports whether the
// key was one of them.
func navigateList(e *env, screenID string, level *state.Level, msg tea.KeyMsg, visible int) bool {
	var moved bool
	switch {
	case key.Matches(msg, e.keys.Down):
		moved = level.Step(1)
	case key.Matches(msg, e.keys.Up):
		moved = level.Step(-1)
	case key.Matches(msg, e.keys.HalfDown):
		moved = level.HalfPageDown(visible)
	case key.Matches(msg, e.keys.HalfUp):
		moved = level.HalfPageUp(visible)
	default:
		return false
	}
	if moved {
		level.EnsureCursorVisible(visible)
		events.UI.Cursor(screenID, level.Cursor)
	}
	return true
}

// listLines renders the visible slice of level.
func listLines(e *env, level *state.Level, visible, width int) []styledLine {
	items, start := level.Visible(visible)
	lines := make([]styledLine, 0, len(items))
	for i, item := range items {
		lines = append(lines, buildItemLine(e, item.Label, start+i == level.Cursor, width))
	}
	return lines
}
