package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/Veraticus/pocket-ledger/internal/service"
	"github.com/Veraticus/pocket-ledger/internal/store"
	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the interactive UI over data and blocks until the user quits
// or ctx is cancelled.
func Run(ctx context.Context, data service.DataAccess, opts ...Option) error {
	if data == nil {
		return fmt.Errorf("data access is required")
	}

	st := store.New(store.State{})
	m := New(st, store.NewEffects(data, st), opts...)
	defer m.recorder.Close()

	programOpts := []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	}
	if m.config.MouseSupport {
		programOpts = append(programOpts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(m, programOpts...)

	// Dispatch may run on the event loop itself, so sends must not block it.
	unsubscribe := st.Subscribe(func(store.State) {
		go p.Send(stateChangedMsg{})
	})
	defer unsubscribe()

	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
