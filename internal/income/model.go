package income

import (
	"strings"
	"time"

	"github.com/gookit/validate"
	"github.com/shopspring/decimal"
)

// BillCategories is the fixed set of billable revenue streams at the resort.
var BillCategories = []string{"Food", "Service", "Room", "Fish Farm"}

type LineItem struct {
	Item     string          `json:"item"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// Bill is an itemized income record. TotalAmount is computed server-side at
// creation and never recomputed on read.
type Bill struct {
	ID           string          `json:"id"`
	Category     string          `json:"category"`
	CustomerName string          `json:"customerName"`
	LineItems    []LineItem      `json:"lineItems"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
	Date         time.Time       `json:"date"`
	Description  *string         `json:"description,omitempty"`
}

type CreateBillParams struct {
	Category     string     `json:"category" validate:"required|ValidateCategory"`
	CustomerName string     `json:"customerName" validate:"required"`
	LineItems    []LineItem `json:"lineItems" validate:"ValidateLineItems"`
	Description  *string    `json:"description"`
	// A client-sent totalAmount is deliberately not a field here; see Total.
}

func (p CreateBillParams) Messages() map[string]string {
	return validate.MS{
		"Category.required":           "category is required",
		"Category.ValidateCategory":   "category must be one of: " + strings.Join(BillCategories, ", "),
		"CustomerName.required":       "customerName is required",
		"LineItems.ValidateLineItems": "each line item needs an item name, a positive quantity and a non-negative price",
	}
}

func (p CreateBillParams) ValidateCategory(category string) bool {
	for _, c := range BillCategories {
		if category == c {
			return true
		}
	}
	return false
}

func (p CreateBillParams) ValidateLineItems(items []LineItem) bool {
	for _, li := range items {
		if strings.TrimSpace(li.Item) == "" {
			return false
		}
		if li.Quantity <= 0 {
			return false
		}
		if li.Price.IsNegative() {
			return false
		}
	}
	return true
}

// Total is the authoritative bill total: sum of quantity*price over the line
// items. An empty item list yields zero, not an error.
func (p CreateBillParams) Total() decimal.Decimal {
	total := decimal.Zero
	for _, li := range p.LineItems {
		total = total.Add(li.Price.Mul(decimal.NewFromInt(int64(li.Quantity))))
	}
	return total
}
