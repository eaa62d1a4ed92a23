package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/Veraticus/pocket-ledger/internal/common"
	"github.com/Veraticus/pocket-ledger/internal/model"
	"github.com/Veraticus/pocket-ledger/internal/tui/themes"
	"github.com/Veraticus/pocket-ledger/internal/tui/viewmodel"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// EntryFormModel edits one entry on top of a viewmodel.FormSession.
type EntryFormModel struct {
	session    *viewmodel.FormSession
	options    *viewmodel.Memo[viewmodel.CategoryOptionsInput, []model.Category]
	inputs     map[viewmodel.FormField]textinput.Model
	theme      themes.Theme
	err        string
	categories []model.Category
	focus      int
	width      int
	animations bool
}

// NewEntryForm creates a closed entry form. now supplies the default date and time.
func NewEntryForm(theme themes.Theme, now func() time.Time, animations bool) EntryFormModel {
	m := EntryFormModel{
		session:    viewmodel.NewFormSession(now),
		options:    viewmodel.NewCategoryOptions(),
		inputs:     make(map[viewmodel.FormField]textinput.Model),
		theme:      theme,
		width:      60,
		animations: animations,
	}

	placeholders := map[viewmodel.FormField]string{
		viewmodel.FieldDate:   "2024-01-31",
		viewmodel.FieldTime:   "13:45",
		viewmodel.FieldName:   "Entry name",
		viewmodel.FieldAmount: "0.00",
	}
	for field, placeholder := range placeholders {
		input := textinput.New()
		input.Placeholder = placeholder
		input.CharLimit = 64
		if !animations {
			input.Cursor.SetMode(cursor.CursorStatic)
		}
		m.inputs[field] = input
	}

	return m
}

// IsOpen reports whether the form is showing.
func (m EntryFormModel) IsOpen() bool {
	return m.session.IsOpen()
}

// Session exposes the underlying form state.
func (m EntryFormModel) Session() *viewmodel.FormSession {
	return m.session
}

// Err returns the last validation message.
func (m EntryFormModel) Err() string {
	return m.err
}

// OpenCreate opens a blank form for a new entry of entryType.
func (m *EntryFormModel) OpenCreate(entryType model.EntryType) (tea.Cmd, error) {
	if err := m.session.OpenCreate(entryType); err != nil {
		return nil, err
	}
	return m.load(viewmodel.FieldName), nil
}

// OpenEdit opens the form preloaded with entry.
func (m *EntryFormModel) OpenEdit(entry model.Entry) (tea.Cmd, error) {
	if err := m.session.OpenEdit(entry); err != nil {
		return nil, err
	}
	return m.load(viewmodel.FieldName), nil
}

// SetCategories replaces the merged category list the picker draws from.
func (m *EntryFormModel) SetCategories(merged []model.Category) {
	m.categories = merged
}

// CategoryOptions returns the picker's choices for the open session.
func (m EntryFormModel) CategoryOptions() []model.Category {
	if !m.session.IsOpen() {
		return nil
	}
	return m.options.Get(viewmodel.CategoryOptionsInput{
		Categories: m.categories,
		Type:       m.session.Type().CategoryType(),
	})
}

// SelectCategory picks name if it is one of the current options.
func (m *EntryFormModel) SelectCategory(name string) bool {
	for _, option := range m.CategoryOptions() {
		if option.Name == name {
			_ = m.session.SetField(viewmodel.FieldCategory, name)
			return true
		}
	}
	return false
}

// Close discards the form.
func (m *EntryFormModel) Close() {
	m.session.Close()
	m.err = ""
	for field, input := range m.inputs {
		input.Blur()
		input.Reset()
		m.inputs[field] = input
	}
}

// Update handles navigation, category picking and submission.
func (m EntryFormModel) Update(msg tea.Msg) (EntryFormModel, tea.Cmd) {
	if !m.session.IsOpen() {
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, m.updateFocused(msg)
	}

	switch keyMsg.String() {
	case "esc":
		m.Close()
		return m, func() tea.Msg { return EntryFormClosedMsg{} }
	case "ctrl+s":
		return m, m.submit()
	case "enter":
		if m.focus == len(viewmodel.FormFields)-1 {
			return m, m.submit()
		}
		return m, m.moveFocus(1)
	case "tab", "down":
		return m, m.moveFocus(1)
	case "shift+tab", "up":
		return m, m.moveFocus(-1)
	case "ctrl+n":
		categoryType := m.session.Type().CategoryType()
		return m, func() tea.Msg { return CategoryFormRequestedMsg{Type: categoryType} }
	}

	if m.focusedField() == viewmodel.FieldCategory {
		switch keyMsg.String() {
		case "right", "l", " ":
			m.cycleCategory(1)
		case "left", "h":
			m.cycleCategory(-1)
		}
		return m, nil
	}

	return m, m.updateFocused(msg)
}

// View renders the form dialog.
func (m EntryFormModel) View() string {
	if !m.session.IsOpen() {
		return ""
	}

	titleStyle := m.theme.ExpenseTitle
	if m.session.Type() == model.EntryTypeIncome {
		titleStyle = m.theme.IncomeTitle
	}

	lines := []string{titleStyle.Render(m.session.Title()), ""}
	for i, field := range viewmodel.FormFields {
		label := m.theme.FieldLabel.Render(field.String())
		if i == m.focus {
			label = m.theme.FieldFocused.Render(field.String())
		}

		var value string
		if field == viewmodel.FieldCategory {
			value = m.renderCategory(i == m.focus)
		} else {
			value = m.inputs[field].View()
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, label, value))
	}

	if m.err != "" {
		lines = append(lines, "", m.theme.StatusError.Render(m.err))
	}

	hints := []string{"[Tab] Next", "[←→] Category", "[Ctrl+N] New category", "[Enter] Save", "[Esc] Cancel"}
	lines = append(lines, "", lipgloss.NewStyle().Foreground(m.theme.Muted).Render(strings.Join(hints, "  ")))

	return m.theme.RoundedBox.
		Width(m.width).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// Resize updates the dialog width.
func (m *EntryFormModel) Resize(width int) {
	m.width = min(max(40, width-8), 72)
	for field, input := range m.inputs {
		input.Width = m.width - 16
		m.inputs[field] = input
	}
}

func (m EntryFormModel) renderCategory(focused bool) string {
	current := m.session.Values().Category
	if current == "" {
		current = lipgloss.NewStyle().Foreground(m.theme.Muted).Render("(choose)")
	}
	if focused {
		return fmt.Sprintf("< %s >", current)
	}
	return current
}

func (m EntryFormModel) focusedField() viewmodel.FormField {
	return viewmodel.FormFields[m.focus]
}

func (m *EntryFormModel) load(first viewmodel.FormField) tea.Cmd {
	values := m.session.Values()
	texts := map[viewmodel.FormField]string{
		viewmodel.FieldDate:   values.Date,
		viewmodel.FieldTime:   values.Time,
		viewmodel.FieldName:   values.Name,
		viewmodel.FieldAmount: values.Amount,
	}
	for field, input := range m.inputs {
		input.SetValue(texts[field])
		input.Blur()
		m.inputs[field] = input
	}

	m.err = ""
	for i, field := range viewmodel.FormFields {
		if field == first {
			m.focus = i
		}
	}
	return m.focusInput()
}

func (m *EntryFormModel) moveFocus(delta int) tea.Cmd {
	if input, ok := m.inputs[m.focusedField()]; ok {
		input.Blur()
		m.inputs[m.focusedField()] = input
	}

	n := len(viewmodel.FormFields)
	m.focus = (m.focus + delta + n) % n
	return m.focusInput()
}

func (m *EntryFormModel) focusInput() tea.Cmd {
	input, ok := m.inputs[m.focusedField()]
	if !ok {
		return nil
	}
	cmd := input.Focus()
	m.inputs[m.focusedField()] = input
	if !m.animations {
		return nil
	}
	return cmd
}

func (m *EntryFormModel) updateFocused(msg tea.Msg) tea.Cmd {
	field := m.focusedField()
	input, ok := m.inputs[field]
	if !ok {
		return nil
	}

	var cmd tea.Cmd
	input, cmd = input.Update(msg)
	m.inputs[field] = input
	_ = m.session.SetField(field, input.Value())
	if !m.animations {
		return nil
	}
	return cmd
}

func (m *EntryFormModel) cycleCategory(delta int) {
	options := m.CategoryOptions()
	if len(options) == 0 {
		return
	}

	current := -1
	for i, option := range options {
		if option.Name == m.session.Values().Category {
			current = i
			break
		}
	}

	next := 0
	switch {
	case current >= 0:
		next = (current + delta + len(options)) % len(options)
	case delta < 0:
		next = len(options) - 1
	}
	_ = m.session.SetField(viewmodel.FieldCategory, options[next].Name)
}

func (m *EntryFormModel) submit() tea.Cmd {
	for field, input := range m.inputs {
		_ = m.session.SetField(field, input.Value())
	}

	sub, err := m.session.Submit()
	if err != nil {
		m.err = common.UserMessage(err)
		return nil
	}

	m.Close()
	return func() tea.Msg {
		return EntryFormSubmittedMsg{Submission: sub}
	}
}
