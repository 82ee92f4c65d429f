package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/todolist/internal/ui"
)

// View implements tea.Model.
func (m Model) View() string {
	t := ui.Current()

	var b strings.Builder
	b.WriteString(m.header())
	b.WriteString("\n")

	switch {
	case m.state == StateLoading:
		b.WriteString(t.Muted.Render("Loading…"))
	case m.state == StateFailed && m.showErr:
		b.WriteString(t.Error.Render(fmt.Sprintf("%s could not load todos: %v", t.SymFail, m.err)))
	}
	b.WriteString("\n")

	b.WriteString(m.list.View())
	b.WriteString("\n")

	button := t.Button
	if m.focus == FocusButton {
		button = t.ButtonFocused
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center,
		m.input.View(), "  ", button.Render(ButtonLabel)))
	b.WriteString("\n")

	b.WriteString(m.help.View(m.keys))

	return ui.Box(b.String())
}

func (m Model) header() string {
	t := ui.Current()
	title := t.Title.Render("Todos")
	if m.state == StateLoading {
		if n := len(m.queued); n > 0 {
			return fmt.Sprintf("%s   %s %d", title, t.Muted.Render("queued"), n)
		}
		return title
	}
	return fmt.Sprintf("%s   %s %d", title, t.Accent.Render("Total"), len(m.items))
}
