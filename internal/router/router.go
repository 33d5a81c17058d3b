package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Badal10-droid/resort-backend/internal/dashboard"
	"github.com/Badal10-droid/resort-backend/internal/expense"
	"github.com/Badal10-droid/resort-backend/internal/income"
	"github.com/Badal10-droid/resort-backend/internal/reports"
)

type Router struct {
	IncomeHandler    *income.Handler
	ExpenseHandler   *expense.Handler
	DashboardHandler *dashboard.Handler
	ReportsHandler   *reports.Handler

	// WriteLimiter guards the record-creation endpoints; nil disables it.
	WriteLimiter fiber.Handler
}

func (r *Router) RegisterRoutes(app *fiber.App) {
	api := app.Group("/api")

	api.Get("/health", healthHandler)

	if r.IncomeHandler != nil {
		if r.WriteLimiter != nil {
			api.Post("/income", r.WriteLimiter, r.IncomeHandler.CreateBill)
		} else {
			api.Post("/income", r.IncomeHandler.CreateBill)
		}
		api.Get("/income", r.IncomeHandler.ListBills)
	}

	if r.ExpenseHandler != nil {
		if r.WriteLimiter != nil {
			api.Post("/expense", r.WriteLimiter, r.ExpenseHandler.CreateExpense)
		} else {
			api.Post("/expense", r.ExpenseHandler.CreateExpense)
		}
		api.Get("/expense", r.ExpenseHandler.ListExpenses)
	}

	if r.DashboardHandler != nil {
		api.Get("/metrics", r.DashboardHandler.GetMetrics)
		api.Get("/revenue-trend", r.DashboardHandler.GetRevenueTrend)
		api.Get("/expenses-breakdown", r.DashboardHandler.GetExpenseBreakdown)
		api.Get("/daily-summary", r.DashboardHandler.GetDailySummary)
		api.Get("/transactions", r.DashboardHandler.GetTransactions)
	}

	if r.ReportsHandler != nil {
		api.Get("/reports/statement", r.ReportsHandler.Statement)
	}
}

func healthHandler(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "OK"})
}
