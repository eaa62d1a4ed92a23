package sheets

import (
	"sort"
	"time"

	"github.com/Veraticus/pocket-ledger/internal/model"
	"github.com/shopspring/decimal"
)

// Tab names in the exported spreadsheet.
const (
	TabEntries    = "Entries"
	TabMonthly    = "Monthly Flow"
	TabCategories = "Categories"
)

// EntryRow represents a single row in the Entries tab.
type EntryRow struct {
	Date     time.Time
	Time     time.Time
	Amount   decimal.Decimal
	Name     string
	Category string
	Type     model.EntryType
}

// MonthlyFlowRow represents a single row in the Monthly Flow tab.
type MonthlyFlowRow struct {
	Month          string // e.g., "January 2024"
	TotalIncome    decimal.Decimal
	TotalExpenses  decimal.Decimal
	NetFlow        decimal.Decimal // Income - Expenses
	RunningBalance decimal.Decimal
}

// CategorySummaryRow represents a single row in the Categories tab.
type CategorySummaryRow struct {
	CategoryName string
	Type         model.EntryType
	TotalAmount  decimal.Decimal
	EntryCount   int
}

// TabData holds all the data for the complete spreadsheet export.
type TabData struct {
	DateRange       DateRange
	TotalIncome     decimal.Decimal
	TotalExpenses   decimal.Decimal
	Entries         []EntryRow
	MonthlyFlow     []MonthlyFlowRow
	CategorySummary []CategorySummaryRow
}

// DateRange represents the time period covered by the export.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// BuildTabData computes every tab from entries. Entries are listed newest
// first; months run oldest first so the running balance accumulates.
func BuildTabData(entries []model.Entry) TabData {
	var data TabData

	sorted := append([]model.Entry(nil), entries...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].When().After(sorted[j].When())
	})

	type monthKey struct {
		year  int
		month time.Month
	}
	months := make(map[monthKey]*MonthlyFlowRow)
	var monthOrder []monthKey

	type categoryKey struct {
		name      string
		entryType model.EntryType
	}
	categories := make(map[categoryKey]*CategorySummaryRow)
	var categoryOrder []categoryKey

	for _, e := range sorted {
		amount := decimal.NewFromFloat(e.Amount).Round(2)

		data.Entries = append(data.Entries, EntryRow{
			Date:     e.Date,
			Time:     e.Time,
			Amount:   amount,
			Name:     e.Name,
			Category: e.Category,
			Type:     e.Type,
		})

		if data.DateRange.Start.IsZero() || e.Date.Before(data.DateRange.Start) {
			data.DateRange.Start = e.Date
		}
		if e.Date.After(data.DateRange.End) {
			data.DateRange.End = e.Date
		}

		mk := monthKey{e.Date.Year(), e.Date.Month()}
		row, ok := months[mk]
		if !ok {
			row = &MonthlyFlowRow{Month: e.Date.Format("January 2006")}
			months[mk] = row
			monthOrder = append(monthOrder, mk)
		}

		ck := categoryKey{e.Category, e.Type}
		cat, ok := categories[ck]
		if !ok {
			cat = &CategorySummaryRow{CategoryName: e.Category, Type: e.Type}
			categories[ck] = cat
			categoryOrder = append(categoryOrder, ck)
		}
		cat.TotalAmount = cat.TotalAmount.Add(amount)
		cat.EntryCount++

		switch e.Type {
		case model.EntryTypeIncome:
			row.TotalIncome = row.TotalIncome.Add(amount)
			data.TotalIncome = data.TotalIncome.Add(amount)
		case model.EntryTypeExpense:
			row.TotalExpenses = row.TotalExpenses.Add(amount)
			data.TotalExpenses = data.TotalExpenses.Add(amount)
		}
	}

	sort.Slice(monthOrder, func(i, j int) bool {
		if monthOrder[i].year != monthOrder[j].year {
			return monthOrder[i].year < monthOrder[j].year
		}
		return monthOrder[i].month < monthOrder[j].month
	})

	balance := decimal.Zero
	for _, mk := range monthOrder {
		row := months[mk]
		row.NetFlow = row.TotalIncome.Sub(row.TotalExpenses)
		balance = balance.Add(row.NetFlow)
		row.RunningBalance = balance
		data.MonthlyFlow = append(data.MonthlyFlow, *row)
	}

	for _, ck := range categoryOrder {
		data.CategorySummary = append(data.CategorySummary, *categories[ck])
	}
	sort.SliceStable(data.CategorySummary, func(i, j int) bool {
		return data.CategorySummary[i].TotalAmount.GreaterThan(data.CategorySummary[j].TotalAmount)
	})

	return data
}

// Values renders each tab as spreadsheet rows, header first.
func (d TabData) Values() map[string][][]any {
	entries := [][]any{{"Date", "Time", "Entry Name", "Category", "Type", "Amount"}}
	for _, row := range d.Entries {
		entries = append(entries, []any{
			row.Date.Format("2006-01-02"),
			row.Time.Format("15:04"),
			row.Name,
			row.Category,
			row.Type.Label(),
			row.Amount.InexactFloat64(),
		})
	}

	monthly := [][]any{{"Month", "Income", "Expenses", "Net Flow", "Running Balance"}}
	for _, row := range d.MonthlyFlow {
		monthly = append(monthly, []any{
			row.Month,
			row.TotalIncome.InexactFloat64(),
			row.TotalExpenses.InexactFloat64(),
			row.NetFlow.InexactFloat64(),
			row.RunningBalance.InexactFloat64(),
		})
	}

	categories := [][]any{{"Category", "Type", "Entries", "Total"}}
	for _, row := range d.CategorySummary {
		categories = append(categories, []any{
			row.CategoryName,
			row.Type.Label(),
			row.EntryCount,
			row.TotalAmount.InexactFloat64(),
		})
	}

	return map[string][][]any{
		TabEntries:    entries,
		TabMonthly:    monthly,
		TabCategories: categories,
	}
}
