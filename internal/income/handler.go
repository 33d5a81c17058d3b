package income

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
	InsertBill(ctx context.Context, b *Bill) error
	ListBills(ctx context.Context) ([]Bill, error)
}

type Handler struct {
	Repo Store
}

func NewHandler(repo Store) *Handler {
	return &Handler{Repo: repo}
}

func (h *Handler) CreateBill(c *fiber.Ctx) error {
	var params CreateBillParams
	if err := c.BodyParser(&params); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	params.Category = strings.TrimSpace(params.Category)
	params.CustomerName = strings.TrimSpace(params.CustomerName)

	v := validate.Struct(params)
	if !v.Validate() {
		return fiber.NewError(fiber.StatusBadRequest, validationMessage(v.Errors))
	}

	items := params.LineItems
	if items == nil {
		items = []LineItem{}
	}

	bill := &Bill{
		Category:     params.Category,
		CustomerName: params.CustomerName,
		LineItems:    items,
		TotalAmount:  params.Total(),
		Date:         time.Now(),
		Description:  params.Description,
	}

	if err := h.Repo.InsertBill(userContext(c), bill); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to add bill: "+err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(bill)
}

func (h *Handler) ListBills(c *fiber.Ctx) error {
	bills, err := h.Repo.ListBills(userContext(c))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to list bills: "+err.Error())
	}
	return c.JSON(bills)
}

// validationMessage joins every violated rule into one human-readable message.
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
