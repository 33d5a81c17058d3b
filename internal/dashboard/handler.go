package dashboard

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

const defaultTransactionLimit = 5

type Handler struct {
	Engine *Engine
}

func NewHandler(engine *Engine) *Handler {
	return &Handler{Engine: engine}
}

func (h *Handler) GetMetrics(c *fiber.Ctx) error {
	m, err := h.Engine.Metrics(userContext(c))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to compute metrics: "+err.Error())
	}
	return c.JSON(m)
}

func (h *Handler) GetRevenueTrend(c *fiber.Ctx) error {
	trend, err := h.Engine.RevenueTrend(userContext(c))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to compute revenue trend: "+err.Error())
	}
	return c.JSON(trend)
}

func (h *Handler) GetExpenseBreakdown(c *fiber.Ctx) error {
	breakdown, err := h.Engine.ExpenseBreakdown(userContext(c))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to compute expense breakdown: "+err.Error())
	}
	return c.JSON(breakdown)
}

func (h *Handler) GetDailySummary(c *fiber.Ctx) error {
	summary, err := h.Engine.DailySummary(userContext(c), time.Now())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to compute daily summary: "+err.Error())
	}
	return c.JSON(summary)
}

func (h *Handler) GetTransactions(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", defaultTransactionLimit)
	if limit <= 0 {
		limit = defaultTransactionLimit
	}

	feed, err := h.Engine.RecentTransactions(userContext(c), limit)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load transactions: "+err.Error())
	}
	return c.JSON(feed)
}

func userContext(c *fiber.Ctx) context.Context {
	if ctx := c.UserContext(); ctx != nil {
		return ctx
	}
	return context.Background()
}
