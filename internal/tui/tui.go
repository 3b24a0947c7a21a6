package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/balkashynov/healthclub/internal/booking"
	"github.com/balkashynov/healthclub/internal/db"
)

// RunMenu starts the interactive main menu
func RunMenu(ctx context.Context, store *db.Store, booker *booking.Booker) error {
	model := NewMenuModel(ctx, MainMenu(store, booker))

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return err
	}

	fmt.Println("Goodbye.")
	return nil
}
