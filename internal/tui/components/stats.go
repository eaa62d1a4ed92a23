package components

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Veraticus/pocket-ledger/internal/model"
	"github.com/Veraticus/pocket-ledger/internal/tui/themes"
	"github.com/Veraticus/pocket-ledger/internal/tui/viewmodel"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// CategoryTotal is the summed amount of one category.
type CategoryTotal struct {
	Name   string
	Type   model.EntryType
	Amount float64
	Count  int
}

// StatsPanelModel summarises spending for the visible tab.
type StatsPanelModel struct {
	theme       themes.Theme
	view        viewmodel.EntryListView
	totals      []CategoryTotal
	progressBar progress.Model
	width       int
	height      int
	compact     bool
}

// NewStatsPanelModel creates a new stats panel.
func NewStatsPanelModel(theme themes.Theme) StatsPanelModel {
	prog := progress.New(progress.WithDefaultGradient())
	prog.ShowPercentage = false

	return StatsPanelModel{
		progressBar: prog,
		theme:       theme,
		width:       30,
	}
}

// SetView updates the panel from the list's current view.
func (m *StatsPanelModel) SetView(view viewmodel.EntryListView) {
	m.view = view
	m.totals = CategoryTotals(view.Entries)
}

// Totals returns the per-category totals, largest first.
func (m StatsPanelModel) Totals() []CategoryTotal {
	return m.totals
}

// View renders the stats panel.
func (m StatsPanelModel) View() string {
	if m.compact {
		return m.renderCompact()
	}
	return m.renderFull()
}

func (m StatsPanelModel) renderFull() string {
	sections := []string{m.renderBudget()}

	if len(m.totals) > 0 {
		sections = append(sections, "", m.renderCategoryDistribution())
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m StatsPanelModel) renderCompact() string {
	return m.theme.Normal.Render(fmt.Sprintf(
		"Spent %.0f%% of income | Balance %s",
		m.spentRatio()*100,
		viewmodel.FormatAmount(m.view.Balance()),
	))
}

// renderBudget shows expenses as a share of income.
func (m StatsPanelModel) renderBudget() string {
	ratio := m.spentRatio()

	title := m.theme.Subtitle.Render("Spent of income")
	bar := m.progressBar.ViewAs(min(ratio, 1))

	stats := fmt.Sprintf("%s of %s (%.0f%%)",
		viewmodel.FormatAmount(m.view.TotalExpenses),
		viewmodel.FormatAmount(m.view.TotalIncome),
		ratio*100,
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		bar,
		m.theme.Normal.Render(stats),
	)
}

func (m StatsPanelModel) renderCategoryDistribution() string {
	title := m.theme.Subtitle.Render("Top Categories")

	top := m.totals[:min(5, len(m.totals))]
	largest := top[0].Amount

	lines := make([]string, 0, len(top))
	for _, total := range top {
		barLen := 0
		if largest > 0 {
			barLen = int(total.Amount / largest * 12)
		}

		style := m.theme.ExpenseAmount
		if total.Type == model.EntryTypeIncome {
			style = m.theme.IncomeAmount
		}

		lines = append(lines, fmt.Sprintf("%-12s %s %s",
			viewmodel.TruncateString(total.Name, 12),
			style.Render(strings.Repeat("█", barLen)),
			viewmodel.FormatAmount(total.Amount),
		))
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		m.theme.Normal.Render(strings.Join(lines, "\n")),
	)
}

func (m StatsPanelModel) spentRatio() float64 {
	if m.view.TotalIncome <= 0 {
		if m.view.TotalExpenses > 0 {
			return 1
		}
		return 0
	}
	return m.view.TotalExpenses / m.view.TotalIncome
}

// SetCompact sets compact mode.
func (m *StatsPanelModel) SetCompact(compact bool) {
	m.compact = compact
}

// Resize updates the component size.
func (m *StatsPanelModel) Resize(width, height int) {
	m.width = width
	m.height = height
	m.progressBar.Width = max(10, min(width-4, 40))
}

// CategoryTotals sums entries per (type, category), largest amount first.
// Ties keep first-seen order.
func CategoryTotals(entries []model.Entry) []CategoryTotal {
	index := make(map[string]int)
	var totals []CategoryTotal

	for _, entry := range entries {
		key := string(entry.Type) + "\x00" + entry.Category
		i, ok := index[key]
		if !ok {
			i = len(totals)
			index[key] = i
			totals = append(totals, CategoryTotal{Name: entry.Category, Type: entry.Type})
		}
		totals[i].Amount += entry.Amount
		totals[i].Count++
	}

	sort.SliceStable(totals, func(i, j int) bool {
		return totals[i].Amount > totals[j].Amount
	})

	return totals
}
