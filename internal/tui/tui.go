// Package tui is the interactive asset grid.
package tui

import (
	"context"

	"assetgrid/internal/store"

	tea "github.com/charmbracelet/bubbletea"
)

// Run opens the asset grid on s until the user quits.
func Run(ctx context.Context, s store.Store) error {
	applyColorProfilePreference()
	applyThemePreference()

	assets, err := s.ListAssets(ctx)
	if err != nil {
		return err
	}
	m := newAppModel(s, assets)
	_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithReportFocus(), tea.WithContext(ctx)).Run()
	return err
}
