package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/todolist/internal/model"
	"github.com/idilsaglam/todolist/internal/source"
)

// Run starts the interactive list and returns the sequence held at exit.
// The initial fetch is abandoned if the program exits first.
func Run(ctx context.Context, src source.Source, opts Options) ([]model.Record, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(New(ctx, src, opts), tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("run program: %w", err)
	}
	return finalItems(final)
}

func finalItems(final tea.Model) ([]model.Record, error) {
	fm, ok := final.(Model)
	if !ok {
		return nil, fmt.Errorf("unexpected final model %T", final)
	}
	return fm.Items(), nil
}
