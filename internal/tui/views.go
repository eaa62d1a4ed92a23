package tui

import (
	"fmt"
	"strings"

	"github.com/Veraticus/pocket-ledger/internal/store"
	"github.com/charmbracelet/lipgloss"
)

// View renders the UI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if !m.snapshot.EntriesLoaded {
		return m.renderLoading()
	}

	var content string
	switch m.screen {
	case ScreenHelp:
		return m.renderHelp()
	case ScreenEntryForm:
		content = m.renderDialog(m.entryForm.View())
	case ScreenCategoryForm:
		content = m.renderDialog(m.categoryForm.View())
	default:
		if m.config.ShowStats && m.width >= 100 {
			content = m.renderMediumView()
		} else {
			content = m.renderCompactView()
		}
	}

	return m.wrapWithBorder(content)
}

// renderLoading renders the loading screen.
func (m Model) renderLoading() string {
	content := lipgloss.JoinVertical(
		lipgloss.Center,
		m.theme.Title.Render("Pocket Ledger"),
		"",
		m.spinner.View()+" "+lipgloss.NewStyle().Foreground(m.theme.Muted).Render("Loading entries..."),
	)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		content,
	)
}

// renderCompactView stacks the list above a one-line summary.
func (m Model) renderCompactView() string {
	sections := []string{m.renderHeader(), m.entryList.View()}
	if m.config.ShowStats {
		sections = append(sections, m.statsPanel.View())
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderMediumView puts the summary panel beside the list.
func (m Model) renderMediumView() string {
	body := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.entryList.View(),
		m.theme.Normal.Render(" │ "),
		m.statsPanel.View(),
	)
	return lipgloss.JoinVertical(lipgloss.Left, m.renderHeader(), body)
}

// renderDialog centers a form over the list area.
func (m Model) renderDialog(dialog string) string {
	return lipgloss.Place(
		m.width-2,
		max(1, m.height-4),
		lipgloss.Center,
		lipgloss.Center,
		dialog,
	)
}

// renderHeader renders the title, the cash buttons and any notice.
func (m Model) renderHeader() string {
	title := m.theme.Title.Render("Pocket Ledger")
	buttons := strings.Join([]string{
		m.theme.IncomeTitle.Render("[i] Cash in"),
		m.theme.ExpenseTitle.Render("[o] Cash out"),
	}, "  ")

	header := title + "  " + buttons
	if notice := m.renderNotice(); notice != "" {
		header = lipgloss.JoinVertical(lipgloss.Left, header, notice)
	}
	return header
}

// renderNotice renders the store's notice, if any.
func (m Model) renderNotice() string {
	notice := m.snapshot.Notice
	if notice == nil {
		return ""
	}

	style := m.theme.StatusInfo
	if notice.Level == store.NoticeError {
		style = m.theme.StatusError
	}
	hint := lipgloss.NewStyle().Foreground(m.theme.Muted).Render("  [x] dismiss")
	return style.Render(notice.Message) + hint
}

// renderHelp renders the help screen.
func (m Model) renderHelp() string {
	title := m.theme.Title.Render("Pocket Ledger - Help")
	footer := lipgloss.NewStyle().Foreground(m.theme.Muted).Render("Press ? or Esc to close help")

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		m.theme.BorderedBox.
			Width(min(72, m.width-2)).
			MaxHeight(m.height-2).
			Render(
				lipgloss.JoinVertical(
					lipgloss.Left,
					title,
					"",
					m.help.FullHelpView(m.keymap.FullHelp()),
					"",
					footer,
				),
			),
	)
}

// wrapWithBorder adds a border and status bar around content.
func (m Model) wrapWithBorder(content string) string {
	fullContent := lipgloss.JoinVertical(
		lipgloss.Left,
		content,
		m.renderStatusBar(),
	)

	return m.theme.BorderedBox.
		Width(m.width).
		Height(m.height).
		MaxHeight(m.height).
		Render(fullContent)
}

// renderStatusBar renders the bottom status bar.
func (m Model) renderStatusBar() string {
	left := m.screen.String()

	var center string
	if m.snapshot.PendingOperations > 0 {
		center = m.theme.StatusPending.Render(fmt.Sprintf("Saving... (%d)", m.snapshot.PendingOperations))
	}

	right := m.help.ShortHelpView(m.keymap.ShortHelp())
	if m.screen != ScreenList {
		right = lipgloss.NewStyle().Foreground(m.theme.Muted).Render("? Help")
	}

	// Account for borders
	totalWidth := m.width - 4
	spacing := max(2, totalWidth-lipgloss.Width(left)-lipgloss.Width(center)-lipgloss.Width(right))
	leftPad := spacing / 2
	rightPad := spacing - leftPad

	status := m.theme.StatusInfo.Render(left) +
		strings.Repeat(" ", leftPad) +
		center +
		strings.Repeat(" ", rightPad) +
		right

	return lipgloss.NewStyle().
		MaxWidth(max(1, m.width-2)).
		Render(status)
}
