package viewmodel

import (
	"fmt"
	"strings"
	"time"
)

// Display layouts for the list and form.
const (
	// DateLayout formats and parses entry dates.
	DateLayout = "2006-01-02"
	// TimeLayout formats and parses entry times of day.
	TimeLayout = "15:04"
)

// FormatAmount formats an entry amount for display.
func FormatAmount(amount float64) string {
	if amount < 0 {
		return fmt.Sprintf("-$%.2f", -amount)
	}
	return fmt.Sprintf("$%.2f", amount)
}

// FormatSignedAmount prefixes the amount with + for income and - for expenses.
func FormatSignedAmount(amount float64, income bool) string {
	sign := "-"
	if income {
		sign = "+"
	}
	if amount < 0 {
		amount = -amount
	}
	return fmt.Sprintf("%s$%.2f", sign, amount)
}

// FormatDate formats a calendar day for display.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatTime formats a time of day for display.
func FormatTime(t time.Time) string {
	return t.Format(TimeLayout)
}

// TruncateString truncates a string to the specified length with ellipsis.
func TruncateString(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}

// SanitizeForDisplay replaces control characters and collapses whitespace.
func SanitizeForDisplay(s string) string {
	s = strings.Map(func(r rune) rune {
		if r < 32 && r != '\t' {
			return ' '
		}
		return r
	}, s)

	return strings.Join(strings.Fields(s), " ")
}
