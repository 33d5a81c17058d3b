package expense

import (
	"time"

	"github.com/gookit/validate"
	"github.com/shopspring/decimal"
)

// Expense is a single outgoing entry. Amount is always stored non-positive;
// the sign is normalized exactly once, at creation.
type Expense struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Category    string          `json:"category,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
}

type CreateExpenseParams struct {
	Description string          `json:"description" validate:"required"`
	Amount      decimal.Decimal `json:"amount" validate:"required|ValidateAmount"`
	Category    string          `json:"category"`
	Date        *time.Time      `json:"date"`
}

func (p CreateExpenseParams) Messages() map[string]string {
	return validate.MS{
		"Description.required":  "description is required",
		"Amount.required":       "amount is required",
		"Amount.ValidateAmount": "amount is required",
	}
}

func (p CreateExpenseParams) ValidateAmount(amount decimal.Decimal) bool {
	return !amount.IsZero()
}
