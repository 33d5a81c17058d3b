package expense

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gookit/validate"
)

// Store is the slice of the repository the handler needs.
type Store interface {
	InsertExpense(ctx context.Context, e *Expense) error
	ListExpenses(ctx context.Context) ([]Expense, error)
}

type Handler struct {
	Repo Store
}

func NewHandler(repo Store) *Handler {
	return &Handler{Repo: repo}
}

func (h *Handler) CreateExpense(c *fiber.Ctx) error {
	var params CreateExpenseParams
	if err := c.BodyParser(&params); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	params.Description = strings.TrimSpace(params.Description)
	params.Category = strings.TrimSpace(params.Category)

	v := validate.Struct(params)
	if !v.Validate() {
		return fiber.NewError(fiber.StatusBadRequest, validationMessage(v.Errors))
	}

	date := time.Now()
	if params.Date != nil {
		date = *params.Date
	}

	exp := &Expense{
		Description: params.Description,
		Category:    params.Category,
		// Stored non-positive regardless of the sign the client sent.
		Amount: params.Amount.Abs().Neg(),
		Date:   date,
	}

	if err := h.Repo.InsertExpense(userContext(c), exp); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to add expense: "+err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(exp)
}

func (h *Handler) ListExpenses(c *fiber.Ctx) error {
	items, err := h.Repo.ListExpenses(userContext(c))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to list expenses: "+err.Error())
	}
	return c.JSON(items)
}

func validationMessage(errs validate.Errors) string {
	var msgs []string
	for _, fieldErrs := range errs {
		for _, msg := range fieldErrs {
			msgs = append(msgs, msg)
		}
	}
	sort.Strings(msgs)
	return strings.Join(msgs, "; ")
}

func userContext(c *fiber.Ctx) context.Context {
	if ctx := c.UserContext(); ctx != nil {
		return ctx
	}
	return context.Background()
}
