package ui

import (
	"fmt"
	"strings"

	"dpx-validator/dpx"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"
)

const (
	markValid   = "[ ok ]"
	markInvalid = "[FAIL]"
)

// ReportBrowser lists validated files and shows the entries of the one
// under the cursor.
type ReportBrowser struct {
	reports  []dpx.Report
	cursor   int
	expanded bool
}

func CreateReportBrowser(reports []dpx.Report) ReportBrowser {
	return ReportBrowser{
		reports:  reports,
		cursor:   0,
		expanded: true,
	}
}

func (s *ReportBrowser) Selected() (dpx.Report, bool) {
	if len(s.reports) == 0 {
		return dpx.Report{}, false
	}
	return s.reports[s.cursor], true
}

func (s *ReportBrowser) View() string {
	numValid := len(
		lo.Filter(
			s.reports,
			func(report dpx.Report, _ int) bool {
				return report.Valid
			},
		),
	)

	output := "DPX VALIDATOR\n\n"
	output += fmt.Sprintf("%d of %d files valid\n\n", numValid, len(s.reports))

	for i, report := range s.reports {
		cursor := "  "
		if i == s.cursor {
			cursor = "> "
		}
		mark := markValid
		if !report.Valid {
			mark = markInvalid
		}
		output += fmt.Sprintf("%s%s %s\n", cursor, mark, report.Path)
	}

	if report, ok := s.Selected(); ok && s.expanded {
		output += "\n" + strings.Repeat("-", 40) + "\n"
		for _, entry := range report.Entries {
			prefix := "info "
			if entry.Kind == dpx.KindError {
				prefix = "error"
			}
			output += fmt.Sprintf("%s %-15s %s\n", prefix, entry.Field, entry.Message)
		}
	}

	output += "\nup/down: move, enter: details, q: quit\n"
	return output
}

func (s *ReportBrowser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch keyMsg.String() {
	case "ctrl+c", "q", "esc":
		return s, tea.Quit
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(s.reports)-1 {
			s.cursor++
		}
	case "enter", " ":
		s.expanded = !s.expanded
	}
	return s, nil
}

func (s *ReportBrowser) Init() tea.Cmd {
	return nil
}
