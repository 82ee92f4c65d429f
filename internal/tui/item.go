package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/idilsaglam/todolist/internal/model"
	"github.com/idilsaglam/todolist/internal/ui"
)

// ItemRenderer draws a single record as one line.
type ItemRenderer interface {
	Render(r model.Record) string
}

// ItemView is the default renderer: themed bullet followed by the text.
type ItemView struct{}

// Render implements ItemRenderer.
func (ItemView) Render(r model.Record) string {
	t := ui.Current()
	return t.Accent.Render(t.Bullet) + " " + r.Text
}

// listItem adapts model.Record to bubbles/list.Item
type listItem struct {
	model.Record
}

func (i listItem) FilterValue() string { return i.Text }

func toListItems(records []model.Record) []list.Item {
	out := make([]list.Item, 0, len(records))
	for _, r := range records {
		out = append(out, listItem{Record: r})
	}
	return out
}

// itemDelegate defers every row to the ItemRenderer (single line).
type itemDelegate struct {
	renderer ItemRenderer
	active   bool // list has focus; highlight the cursor row
}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(listItem)
	if !ok {
		return
	}
	prefix := "  "
	if d.active && index == m.Index() {
		prefix = ui.Current().Selected.Render(">") + " "
	}
	line := prefix + d.renderer.Render(it.Record)
	if width := m.Width(); width > 0 {
		line = ansi.Truncate(line, width, "…")
	}
	fmt.Fprint(w, line)
}
