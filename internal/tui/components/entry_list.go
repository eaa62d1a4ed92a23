package components

import (
	"fmt"
	"strings"

	"github.com/Veraticus/pocket-ledger/internal/model"
	"github.com/Veraticus/pocket-ledger/internal/tui/themes"
	"github.com/Veraticus/pocket-ledger/internal/tui/viewmodel"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// EmptyListMessage is shown when no entries exist at all.
const EmptyListMessage = "No entries yet. Please add some entry."

// EntryListModel shows entries under All / Income / Expense tabs.
type EntryListModel struct {
	views   *viewmodel.Memo[viewmodel.EntryViewInput, viewmodel.EntryListView]
	theme   themes.Theme
	entries []model.Entry
	view    viewmodel.EntryListView
	tab     viewmodel.Tab
	table   table.Model
	width   int
	height  int
}

// NewEntryList creates an entry list on the All tab.
func NewEntryList(theme themes.Theme) EntryListModel {
	t := table.New(
		table.WithColumns(entryColumns(80)),
		table.WithFocused(true),
		table.WithHeight(20),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Bold(false)
	s.Selected = theme.Selected
	t.SetStyles(s)

	m := EntryListModel{
		views:  viewmodel.NewEntryViews(),
		theme:  theme,
		tab:    viewmodel.TabAll,
		table:  t,
		width:  80,
		height: 24,
	}
	m.refresh()

	return m
}

// SetEntries replaces the full entry collection.
func (m *EntryListModel) SetEntries(entries []model.Entry) {
	m.entries = entries
	m.refresh()
}

// SetTab switches the visible tab.
func (m *EntryListModel) SetTab(tab viewmodel.Tab) {
	m.tab = tab
	m.refresh()
}

// Tab returns the visible tab.
func (m EntryListModel) Tab() viewmodel.Tab {
	return m.tab
}

// ListView returns the current classified view.
func (m EntryListModel) ListView() viewmodel.EntryListView {
	return m.view
}

// Selected returns the entry under the cursor.
func (m EntryListModel) Selected() (model.Entry, bool) {
	cursor := m.table.Cursor()
	if cursor < 0 || cursor >= len(m.view.Entries) {
		return model.Entry{}, false
	}
	return m.view.Entries[cursor], true
}

// Update handles tab switching, selection and table navigation.
func (m EntryListModel) Update(msg tea.Msg) (EntryListModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "tab":
			m.SetTab(m.tab.Next())
			return m, nil
		case "shift+tab":
			m.SetTab(m.tab.Prev())
			return m, nil
		case "1", "2", "3":
			m.SetTab(viewmodel.Tabs[int(msg.Runes[0]-'1')])
			return m, nil
		case "enter":
			entry, ok := m.Selected()
			if !ok {
				return m, nil
			}
			return m, func() tea.Msg {
				return EntrySelectedMsg{Entry: entry}
			}
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the tabs, the table and the totals footer.
func (m EntryListModel) View() string {
	tabs := m.renderTabs()

	if len(m.entries) == 0 {
		empty := lipgloss.NewStyle().
			Foreground(m.theme.Muted).
			Padding(1, 2).
			Render(EmptyListMessage)
		return lipgloss.JoinVertical(lipgloss.Left, tabs, empty)
	}

	body := m.table.View()
	if m.view.IsEmpty() {
		body = lipgloss.NewStyle().
			Foreground(m.theme.Muted).
			Padding(1, 2).
			Render(fmt.Sprintf("No %s entries.", strings.ToLower(m.tab.Label())))
	}

	return lipgloss.JoinVertical(lipgloss.Left, tabs, body, m.renderFooter())
}

func (m EntryListModel) renderTabs() string {
	rendered := make([]string, 0, len(viewmodel.Tabs))
	for _, tab := range viewmodel.Tabs {
		label := fmt.Sprintf("%s (%d)", tab.Label(), m.view.Counts[tab])
		if tab == m.tab {
			rendered = append(rendered, m.theme.TabActive.Render(label))
		} else {
			rendered = append(rendered, m.theme.TabInactive.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m EntryListModel) renderFooter() string {
	income := m.theme.IncomeAmount.Render("In " + viewmodel.FormatAmount(m.view.TotalIncome))
	expenses := m.theme.ExpenseAmount.Render("Out " + viewmodel.FormatAmount(m.view.TotalExpenses))
	balance := m.theme.Bold.Render("Balance " + viewmodel.FormatAmount(m.view.Balance()))
	return strings.Join([]string{income, expenses, balance}, "  ")
}

func (m *EntryListModel) refresh() {
	m.view = m.views.Get(viewmodel.EntryViewInput{Entries: m.entries, Tab: m.tab})
	m.table.SetRows(m.buildRows())
	if cursor := m.table.Cursor(); cursor >= len(m.view.Entries) {
		m.table.SetCursor(max(0, len(m.view.Entries)-1))
	}
}

func (m EntryListModel) buildRows() []table.Row {
	columns := m.table.Columns()
	nameWidth, categoryWidth := 25, 20
	if len(columns) == 5 {
		nameWidth, categoryWidth = columns[2].Width, columns[3].Width
	}

	rows := make([]table.Row, 0, len(m.view.Entries))
	for _, entry := range m.view.Entries {
		rows = append(rows, table.Row{
			viewmodel.FormatDate(entry.Date),
			viewmodel.FormatTime(entry.Time),
			viewmodel.TruncateString(viewmodel.SanitizeForDisplay(entry.Name), nameWidth),
			viewmodel.TruncateString(viewmodel.SanitizeForDisplay(entry.Category), categoryWidth),
			viewmodel.FormatSignedAmount(entry.Amount, entry.Type == model.EntryTypeIncome),
		})
	}
	return rows
}

// Resize updates the component size.
func (m *EntryListModel) Resize(width, height int) {
	m.width = width
	m.height = height

	// tabs (1) + column header with border (2) + footer (1)
	m.table.SetHeight(max(1, height-4))
	m.table.SetColumns(entryColumns(width))
	m.refresh()
}

func entryColumns(width int) []table.Column {
	availableWidth := max(60, width-4)

	return []table.Column{
		{Title: "Date", Width: max(10, int(float64(availableWidth)*0.14))},
		{Title: "Time", Width: max(5, int(float64(availableWidth)*0.08))},
		{Title: "Entry Name", Width: max(15, int(float64(availableWidth)*0.34))},
		{Title: "Category", Width: max(12, int(float64(availableWidth)*0.24))},
		{Title: "Amount", Width: max(10, int(float64(availableWidth)*0.14))},
	}
}
