package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/Veraticus/pocket-ledger/internal/model"
	"github.com/Veraticus/pocket-ledger/internal/tui/viewmodel"
)

// ErrNoChoice is returned when the user gives up choosing a category.
var ErrNoChoice = errors.New("no category chosen")

const maxChoiceAttempts = 3

// Prompter asks for entry fields on a line-oriented terminal.
type Prompter struct {
	reader *NonBlockingReader
	writer io.Writer
}

// NewPrompter creates a prompter; nil arguments fall back to stdin and stdout.
func NewPrompter(reader io.Reader, writer io.Writer) *Prompter {
	if reader == nil {
		reader = os.Stdin
	}
	if writer == nil {
		writer = os.Stdout
	}
	return &Prompter{
		reader: NewNonBlockingReader(reader),
		writer: writer,
	}
}

// Ask prints label and reads one line. An empty answer yields defaultValue.
func (p *Prompter) Ask(ctx context.Context, label, defaultValue string) (string, error) {
	prompt := label
	if defaultValue != "" {
		prompt += " " + SubtleStyle.Render("["+defaultValue+"]")
	}
	if _, err := fmt.Fprint(p.writer, FormatPrompt(prompt)); err != nil {
		return "", fmt.Errorf("failed to write prompt: %w", err)
	}

	answer, err := p.reader.ReadLine(ctx)
	if err != nil {
		return "", err
	}
	if answer == "" {
		return defaultValue, nil
	}
	return answer, nil
}

// ChooseCategory lists options and accepts a number or a name.
// Names match case-insensitively; current is kept on an empty answer.
func (p *Prompter) ChooseCategory(ctx context.Context, options []model.Category, current string) (string, error) {
	if len(options) == 0 {
		return "", ErrNoChoice
	}

	if _, err := fmt.Fprintln(p.writer, BoldStyle.Render("Categories:")); err != nil {
		return "", fmt.Errorf("failed to write categories: %w", err)
	}
	for i, c := range options {
		if _, err := fmt.Fprintf(p.writer, "  [%d] %s\n", i+1, c.Name); err != nil {
			return "", fmt.Errorf("failed to write categories: %w", err)
		}
	}

	for attempt := 0; attempt < maxChoiceAttempts; attempt++ {
		answer, err := p.Ask(ctx, "Category", current)
		if err != nil {
			return "", err
		}
		if name, ok := matchCategory(options, answer); ok {
			return name, nil
		}
		if _, err := fmt.Fprintln(p.writer, FormatWarning(fmt.Sprintf("%q is not one of the listed categories", answer))); err != nil {
			return "", fmt.Errorf("failed to write warning: %w", err)
		}
	}
	return "", ErrNoChoice
}

func matchCategory(options []model.Category, answer string) (string, bool) {
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return "", false
	}
	if n, err := strconv.Atoi(answer); err == nil {
		if n >= 1 && n <= len(options) {
			return options[n-1].Name, true
		}
		return "", false
	}
	for _, c := range options {
		if strings.EqualFold(c.Name, answer) {
			return c.Name, true
		}
	}
	return "", false
}

// FillForm asks for every field of an open session that is still empty.
// Date and time are prefilled by the session and offered as defaults.
func (p *Prompter) FillForm(ctx context.Context, session *viewmodel.FormSession, categories []model.Category) error {
	if !session.IsOpen() {
		return viewmodel.ErrSessionClosed
	}

	if _, err := fmt.Fprintln(p.writer, FormatTitle(session.Title())); err != nil {
		return fmt.Errorf("failed to write title: %w", err)
	}

	for _, field := range viewmodel.FormFields {
		current := fieldValue(session.Values(), field)

		var answer string
		var err error
		switch field {
		case viewmodel.FieldCategory:
			if current != "" {
				continue
			}
			answer, err = p.ChooseCategory(ctx, session.CategoryOptions(categories), current)
		case viewmodel.FieldDate, viewmodel.FieldTime:
			answer, err = p.Ask(ctx, field.String(), current)
		default:
			if current != "" {
				continue
			}
			answer, err = p.Ask(ctx, field.String(), "")
		}
		if err != nil {
			return err
		}

		if err := session.SetField(field, answer); err != nil {
			return err
		}
	}
	return nil
}

func fieldValue(values viewmodel.FormValues, field viewmodel.FormField) string {
	switch field {
	case viewmodel.FieldName:
		return values.Name
	case viewmodel.FieldAmount:
		return values.Amount
	case viewmodel.FieldCategory:
		return values.Category
	case viewmodel.FieldDate:
		return values.Date
	case viewmodel.FieldTime:
		return values.Time
	default:
		return ""
	}
}
