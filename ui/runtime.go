package ui

import (
	"dpx-validator/dpx"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
)

func Start(reports []dpx.Report) error {
	browser := CreateReportBrowser(reports)
	if err := tea.NewProgram(&browser).Start(); err != nil {
		return errors.Wrap(err, "ui.Start error running program")
	}
	return nil
}
