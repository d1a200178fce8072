package tui

import (
	"crewdesk/internal/model"
	"crewdesk/internal/store"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the interactive browser. An empty initial dataset falls
// back to the last one persisted in the workspace UI state.
func Run(st store.Store, db *store.DB, initial model.Dataset) error {
	applyColorProfilePreference(st)
	applyThemePreference()
	applyAppearancePreference(st)

	m, err := newAppModel(st, db, initial)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
	return err
}
