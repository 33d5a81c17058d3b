package dashboard

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Badal10-droid/resort-backend/internal/expense"
	"github.com/Badal10-droid/resort-backend/internal/income"
)

// OccupancyRatePlaceholder is reported until a real occupancy source exists.
const OccupancyRatePlaceholder = 78

// DefaultExpenseBreakdown is shown when no expense has been recorded yet, so
// the dashboard chart is never empty before data entry begins.
var DefaultExpenseBreakdown = []CategoryAmount{
	{Category: "Staff", Amount: decimal.NewFromInt(30000)},
	{Category: "Utilities", Amount: decimal.NewFromInt(15000)},
	{Category: "Maintenance", Amount: decimal.NewFromInt(12000)},
	{Category: "Supplies", Amount: decimal.NewFromInt(18000)},
	{Category: "Marketing", Amount: decimal.NewFromInt(10000)},
}

type CategoryRevenue struct {
	Category string          `json:"category"`
	Revenue  decimal.Decimal `json:"revenue"`
}

type CategoryAmount struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

type MonthRevenue struct {
	Month   string          `json:"month"`
	Revenue decimal.Decimal `json:"revenue"`
}

type Metrics struct {
	TotalRevenue      decimal.Decimal   `json:"totalRevenue"`
	TotalExpenses     decimal.Decimal   `json:"totalExpenses"`
	NetProfit         decimal.Decimal   `json:"netProfit"`
	OccupancyRate     int               `json:"occupancyRate"`
	CategoryBreakdown []CategoryRevenue `json:"categoryBreakdown"`
}

type DailySummary struct {
	TodayIncome   decimal.Decimal `json:"todayIncome"`
	TodayExpenses decimal.Decimal `json:"todayExpenses"`
	TodayRevenue  decimal.Decimal `json:"todayRevenue"`
}

// Transaction is the unified shape of the recent-activity feed. Income bills
// carry their computed total as the amount; expenses keep their stored,
// non-positive amount.
type Transaction struct {
	ID           string          `json:"id"`
	Type         string          `json:"type"` // "Income" | "Expense"
	Category     string          `json:"category,omitempty"`
	CustomerName string          `json:"customerName,omitempty"`
	Description  string          `json:"description,omitempty"`
	Amount       decimal.Decimal `json:"amount"`
	Date         time.Time       `json:"date"`
}

type BillSource interface {
	ListBills(ctx context.Context) ([]income.Bill, error)
	RecentBills(ctx context.Context, limit int) ([]income.Bill, error)
}

type ExpenseSource interface {
	ListExpenses(ctx context.Context) ([]expense.Expense, error)
	RecentExpenses(ctx context.Context, limit int) ([]expense.Expense, error)
}

// Engine derives dashboard views from the record store. All operations are
// read-only and idempotent; any store failure aborts with no partial result.
type Engine struct {
	Bills    BillSource
	Expenses ExpenseSource
}

func NewEngine(bills BillSource, expenses ExpenseSource) *Engine {
	return &Engine{Bills: bills, Expenses: expenses}
}

func (e *Engine) Metrics(ctx context.Context) (Metrics, error) {
	bills, err := e.Bills.ListBills(ctx)
	if err != nil {
		return Metrics{}, fmt.Errorf("list bills: %w", err)
	}
	expenses, err := e.Expenses.ListExpenses(ctx)
	if err != nil {
		return Metrics{}, fmt.Errorf("list expenses: %w", err)
	}

	totalRevenue := decimal.Zero
	for _, b := range bills {
		totalRevenue = totalRevenue.Add(b.TotalAmount)
	}

	// Stored amounts are non-positive; the displayed total must be positive.
	totalExpenses := decimal.Zero
	for _, exp := range expenses {
		totalExpenses = totalExpenses.Add(exp.Amount)
	}
	totalExpenses = totalExpenses.Abs()

	return Metrics{
		TotalRevenue:      totalRevenue,
		TotalExpenses:     totalExpenses,
		NetProfit:         totalRevenue.Sub(totalExpenses),
		OccupancyRate:     OccupancyRatePlaceholder,
		CategoryBreakdown: revenueByCategory(bills),
	}, nil
}

// RevenueTrend groups bill totals by 3-letter month abbreviation. The groups
// are ordered by the abbreviation itself (alphabetical, not chronological) and
// capped at 5, matching the behavior the dashboard chart was built against.
func (e *Engine) RevenueTrend(ctx context.Context) ([]MonthRevenue, error) {
	bills, err := e.Bills.ListBills(ctx)
	if err != nil {
		return nil, fmt.Errorf("list bills: %w", err)
	}

	byMonth := make(map[string]decimal.Decimal)
	for _, b := range bills {
		key := b.Date.Format("Jan")
		byMonth[key] = byMonth[key].Add(b.TotalAmount)
	}

	months := make([]string, 0, len(byMonth))
	for m := range byMonth {
		months = append(months, m)
	}
	sort.Strings(months)
	if len(months) > 5 {
		months = months[:5]
	}

	trend := make([]MonthRevenue, 0, len(months))
	for _, m := range months {
		trend = append(trend, MonthRevenue{Month: m, Revenue: byMonth[m]})
	}
	return trend, nil
}

// ExpenseBreakdown sums absolute amounts per category, largest first, top 5.
// With no expenses recorded it substitutes DefaultExpenseBreakdown.
func (e *Engine) ExpenseBreakdown(ctx context.Context) ([]CategoryAmount, error) {
	expenses, err := e.Expenses.ListExpenses(ctx)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}

	if len(expenses) == 0 {
		return DefaultExpenseBreakdown, nil
	}

	totals := make(map[string]decimal.Decimal)
	var order []string
	for _, exp := range expenses {
		if _, seen := totals[exp.Category]; !seen {
			order = append(order, exp.Category)
		}
		totals[exp.Category] = totals[exp.Category].Add(exp.Amount.Abs())
	}

	breakdown := make([]CategoryAmount, 0, len(order))
	for _, cat := range order {
		breakdown = append(breakdown, CategoryAmount{Category: cat, Amount: totals[cat]})
	}
	sort.SliceStable(breakdown, func(i, j int) bool {
		return breakdown[i].Amount.GreaterThan(breakdown[j].Amount)
	})
	if len(breakdown) > 5 {
		breakdown = breakdown[:5]
	}
	return breakdown, nil
}

// DailySummary reports income, expenses and net for the calendar day that
// contains ref, in ref's location. The window is [start of day, next day).
func (e *Engine) DailySummary(ctx context.Context, ref time.Time) (DailySummary, error) {
	start := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location())
	end := start.AddDate(0, 0, 1)

	bills, err := e.Bills.ListBills(ctx)
	if err != nil {
		return DailySummary{}, fmt.Errorf("list bills: %w", err)
	}
	expenses, err := e.Expenses.ListExpenses(ctx)
	if err != nil {
		return DailySummary{}, fmt.Errorf("list expenses: %w", err)
	}

	todayIncome := decimal.Zero
	for _, b := range bills {
		if inWindow(b.Date, start, end) {
			todayIncome = todayIncome.Add(b.TotalAmount)
		}
	}

	todayExpenses := decimal.Zero
	for _, exp := range expenses {
		if inWindow(exp.Date, start, end) {
			todayExpenses = todayExpenses.Add(exp.Amount)
		}
	}
	todayExpenses = todayExpenses.Abs()

	return DailySummary{
		TodayIncome:   todayIncome,
		TodayExpenses: todayExpenses,
		TodayRevenue:  todayIncome.Sub(todayExpenses),
	}, nil
}

// RecentTransactions fetches up to limit records of each kind, newest first,
// then merges and truncates. Each side is capped before the merge, so when one
// kind dominates the other side is under-represented; the dashboard feed has
// always worked this way and consumers rely on it.
func (e *Engine) RecentTransactions(ctx context.Context, limit int) ([]Transaction, error) {
	bills, err := e.Bills.RecentBills(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("recent bills: %w", err)
	}
	expenses, err := e.Expenses.RecentExpenses(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("recent expenses: %w", err)
	}

	// Income first: on equal dates the stable sort keeps income ahead.
	feed := make([]Transaction, 0, len(bills)+len(expenses))
	for _, b := range bills {
		desc := ""
		if b.Description != nil {
			desc = *b.Description
		}
		feed = append(feed, Transaction{
			ID:           b.ID,
			Type:         "Income",
			Category:     b.Category,
			CustomerName: b.CustomerName,
			Description:  desc,
			Amount:       b.TotalAmount,
			Date:         b.Date,
		})
	}
	for _, exp := range expenses {
		feed = append(feed, Transaction{
			ID:          exp.ID,
			Type:        "Expense",
			Category:    exp.Category,
			Description: exp.Description,
			Amount:      exp.Amount,
			Date:        exp.Date,
		})
	}

	sort.SliceStable(feed, func(i, j int) bool {
		return feed[i].Date.After(feed[j].Date)
	})
	if len(feed) > limit {
		feed = feed[:limit]
	}
	return feed, nil
}

func revenueByCategory(bills []income.Bill) []CategoryRevenue {
	totals := make(map[string]decimal.Decimal)
	var order []string
	for _, b := range bills {
		if _, seen := totals[b.Category]; !seen {
			order = append(order, b.Category)
		}
		totals[b.Category] = totals[b.Category].Add(b.TotalAmount)
	}

	breakdown := make([]CategoryRevenue, 0, len(order))
	for _, cat := range order {
		breakdown = append(breakdown, CategoryRevenue{Category: cat, Revenue: totals[cat]})
	}
	sort.SliceStable(breakdown, func(i, j int) bool {
		return breakdown[i].Revenue.GreaterThan(breakdown[j].Revenue)
	})
	return breakdown
}

func inWindow(t, start, end time.Time) bool {
	return !t.Before(start) && t.Before(end)
}
