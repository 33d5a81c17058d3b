package income

import (
	"testing"

	"github.com/gookit/validate"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestBillTotal(t *testing.T) {
	params := CreateBillParams{
		Category:     "Room",
		CustomerName: "A",
		LineItems: []LineItem{
			{Item: "X", Quantity: 2, Price: dec("50")},
		},
	}
	assert.Equal(t, "100", params.Total().String())
}

func TestBillTotalMultipleItems(t *testing.T) {
	params := CreateBillParams{
		LineItems: []LineItem{
			{Item: "Deluxe Room", Quantity: 2, Price: dec("1200.50")},
			{Item: "Grilled Trout", Quantity: 3, Price: dec("15")},
		},
	}
	assert.Equal(t, "2446", params.Total().String())
}

func TestBillTotalEmptyLineItems(t *testing.T) {
	assert.Equal(t, "0", CreateBillParams{}.Total().String())
}

func TestCreateBillValidation(t *testing.T) {
	valid := CreateBillParams{
		Category:     "Room",
		CustomerName: "A",
		LineItems:    []LineItem{{Item: "X", Quantity: 2, Price: dec("50")}},
	}

	cases := []struct {
		name   string
		mutate func(*CreateBillParams)
		ok     bool
	}{
		{"valid", func(p *CreateBillParams) {}, true},
		{"every known category", func(p *CreateBillParams) { p.Category = "Fish Farm" }, true},
		{"empty line items accepted", func(p *CreateBillParams) { p.LineItems = nil }, true},
		{"zero price line item", func(p *CreateBillParams) { p.LineItems[0].Price = dec("0") }, true},
		{"missing category", func(p *CreateBillParams) { p.Category = "" }, false},
		{"unknown category", func(p *CreateBillParams) { p.Category = "Spa" }, false},
		{"missing customer name", func(p *CreateBillParams) { p.CustomerName = "" }, false},
		{"unnamed line item", func(p *CreateBillParams) { p.LineItems[0].Item = "" }, false},
		{"zero quantity", func(p *CreateBillParams) { p.LineItems[0].Quantity = 0 }, false},
		{"negative quantity", func(p *CreateBillParams) { p.LineItems[0].Quantity = -1 }, false},
		{"negative price", func(p *CreateBillParams) { p.LineItems[0].Price = dec("-5") }, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			params := valid
			params.LineItems = append([]LineItem(nil), valid.LineItems...)
			tc.mutate(&params)

			v := validate.Struct(params)
			assert.Equal(t, tc.ok, v.Validate(), "errors: %v", v.Errors)
		})
	}
}
