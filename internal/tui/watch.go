package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/osse101/QuestCraft_Go/internal/game"
)

// RunWatch opens the live quest board until the user quits
func RunWatch(ctx context.Context, svc game.Service, out io.Writer) error {
	m := newWatchModel(ctx, svc)
	p := tea.NewProgram(m, tea.WithOutput(out), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
