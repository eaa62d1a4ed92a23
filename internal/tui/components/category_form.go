package components

import (
	"strings"

	"github.com/Veraticus/pocket-ledger/internal/model"
	"github.com/Veraticus/pocket-ledger/internal/tui/themes"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// CategoryFormModel asks for the name of a new category. Its type is fixed
// to the type of the entry form that opened it.
type CategoryFormModel struct {
	theme        themes.Theme
	categoryType model.CategoryType
	err          string
	input        textinput.Model
	width        int
	open         bool
	animations   bool
}

// NewCategoryForm creates a closed category form.
func NewCategoryForm(theme themes.Theme, animations bool) CategoryFormModel {
	input := textinput.New()
	input.Placeholder = "Category name"
	input.CharLimit = 40
	if !animations {
		input.Cursor.SetMode(cursor.CursorStatic)
	}

	return CategoryFormModel{
		theme:      theme,
		input:      input,
		width:      50,
		animations: animations,
	}
}

// IsOpen reports whether the form is showing.
func (m CategoryFormModel) IsOpen() bool {
	return m.open
}

// Type returns the type new categories are created with.
func (m CategoryFormModel) Type() model.CategoryType {
	return m.categoryType
}

// Open shows an empty form for categoryType.
func (m *CategoryFormModel) Open(categoryType model.CategoryType) tea.Cmd {
	m.open = true
	m.categoryType = categoryType
	m.err = ""
	m.input.Reset()
	cmd := m.input.Focus()
	if !m.animations {
		return nil
	}
	return cmd
}

// Close hides the form.
func (m *CategoryFormModel) Close() {
	m.open = false
	m.err = ""
	m.input.Blur()
	m.input.Reset()
}

// Update handles text input, submission and cancel.
func (m CategoryFormModel) Update(msg tea.Msg) (CategoryFormModel, tea.Cmd) {
	if !m.open {
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.Close()
			return m, func() tea.Msg { return CategoryFormClosedMsg{} }
		case "enter":
			name := strings.TrimSpace(m.input.Value())
			if name == "" {
				m.err = "Enter a category name"
				return m, nil
			}
			categoryType := m.categoryType
			m.Close()
			return m, func() tea.Msg {
				return CategorySubmittedMsg{Name: name, Type: categoryType}
			}
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if !m.animations {
		return m, nil
	}
	return m, cmd
}

// View renders the form dialog.
func (m CategoryFormModel) View() string {
	if !m.open {
		return ""
	}

	title := "Add an Income Category"
	if m.categoryType == model.CategoryTypeExpense {
		title = "Add an Expense Category"
	}

	lines := []string{
		m.theme.Title.Render(title),
		"",
		m.input.View(),
	}
	if m.err != "" {
		lines = append(lines, "", m.theme.StatusError.Render(m.err))
	}
	lines = append(lines, "", lipgloss.NewStyle().Foreground(m.theme.Muted).Render("[Enter] Add  [Esc] Cancel"))

	return m.theme.RoundedBox.
		Width(m.width).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
