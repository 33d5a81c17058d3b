package reports

import (
	"bytes"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/phpdave11/gofpdf"
	"github.com/shopspring/decimal"

	"github.com/Badal10-droid/resort-backend/internal/dashboard"
)

const maxStatementRows = 200

type Handler struct {
	Engine *dashboard.Engine
}

func NewHandler(engine *dashboard.Engine) *Handler {
	return &Handler{Engine: engine}
}

// Statement renders the recent-transactions feed and the headline totals as a
// printable PDF.
func (h *Handler) Statement(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)
	if limit <= 0 || limit > maxStatementRows {
		limit = 50
	}

	ctx := c.UserContext()
	metrics, err := h.Engine.Metrics(ctx)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed statement totals: "+err.Error())
	}
	feed, err := h.Engine.RecentTransactions(ctx, limit)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed statement transactions: "+err.Error())
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(14, 14, 14)
	pdf.AddPage()

	pdf.SetTextColor(20, 20, 20)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "Resort Statement")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(80, 80, 80)
	pdf.Cell(0, 6, "Generated: "+time.Now().Format("2006-01-02 15:04"))
	pdf.Ln(10)

	pdf.SetDrawColor(200, 200, 200)
	pdf.SetFillColor(248, 248, 248)
	pdf.SetTextColor(20, 20, 20)
	pdf.SetFont("Helvetica", "B", 11)

	sumW := []float64{62, 62, 62}
	pdf.CellFormat(sumW[0], 10, "Revenue", "1", 0, "C", true, 0, "")
	pdf.CellFormat(sumW[1], 10, "Expenses", "1", 0, "C", true, 0, "")
	pdf.CellFormat(sumW[2], 10, "Net Profit", "1", 1, "C", true, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(sumW[0], 10, formatAmount(metrics.TotalRevenue), "1", 0, "C", false, 0, "")
	pdf.CellFormat(sumW[1], 10, formatAmount(metrics.TotalExpenses), "1", 0, "C", false, 0, "")
	pdf.CellFormat(sumW[2], 10, formatAmount(metrics.NetProfit), "1", 1, "C", false, 0, "")
	pdf.Ln(6)

	writeTableHeader := func() {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetFillColor(245, 245, 245)
		pdf.CellFormat(24, 8, "TYPE", "1", 0, "C", true, 0, "")
		pdf.CellFormat(26, 8, "DATE", "1", 0, "C", true, 0, "")
		pdf.CellFormat(100, 8, "DETAIL", "1", 0, "L", true, 0, "")
		pdf.CellFormat(32, 8, "AMOUNT", "1", 1, "R", true, 0, "")
		pdf.SetFont("Helvetica", "", 9)
	}
	writeTableHeader()

	pdf.SetTextColor(30, 30, 30)
	for _, tx := range feed {
		if pdf.GetY() > 270 {
			pdf.AddPage()
			writeTableHeader()
		}

		pdf.CellFormat(24, 8, strings.ToUpper(tx.Type), "1", 0, "C", false, 0, "")
		pdf.CellFormat(26, 8, tx.Date.Format("2006-01-02"), "1", 0, "C", false, 0, "")
		pdf.CellFormat(100, 8, trimTo(transactionDetail(tx), 60), "1", 0, "L", false, 0, "")
		pdf.CellFormat(32, 8, formatAmount(tx.Amount), "1", 1, "R", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "pdf build failed: "+err.Error())
	}

	filename := "resort-statement-" + time.Now().Format("2006-01-02") + ".pdf"
	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	return c.Send(buf.Bytes())
}

func transactionDetail(tx dashboard.Transaction) string {
	parts := make([]string, 0, 3)
	if tx.Category != "" {
		parts = append(parts, tx.Category)
	}
	if tx.CustomerName != "" {
		parts = append(parts, tx.CustomerName)
	}
	if tx.Description != "" {
		parts = append(parts, tx.Description)
	}
	return strings.Join(parts, " - ")
}

func formatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func trimTo(s string, max int) string {
	s = strings.TrimSpace(s)
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
