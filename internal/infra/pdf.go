package infra

// pdf.go — End-of-shift report generation using go-pdf/fpdf.
// An A5 summary sheet with:
//   - Location / employee header
//   - Shift window (clock-in → clock-out)
//   - Order table (time, payment type, amount)
//   - Revenue split (cash vs card) and order total
//
// The output file is saved to storagePath/shift_{id8}.pdf.

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"

	"github.com/Wellify-Group/wellify-business-sub000/internal/model"
)

// GenerateShiftReportPDF renders the summary for a closed shift and its
// orders. storagePath is created if needed. Returns the path written.
func GenerateShiftReportPDF(shift *model.Shift, orders []model.Order, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0o755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	id8 := shift.ID
	if len(id8) > 8 {
		id8 = id8[:8]
	}
	filePath := filepath.Join(storagePath, fmt.Sprintf("shift_%s.pdf", id8))

	pdf := fpdf.New("P", "mm", "A5", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 20

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(contentW, 8, "Shift Report", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 5, "Date: "+shift.Date, "", 1, "L", false, 0, "")
	window := "-"
	if shift.ClockIn != nil && shift.ClockOut != nil {
		window = shift.ClockIn.Format("15:04") + " - " + shift.ClockOut.Format("15:04")
	}
	pdf.CellFormat(contentW, 5, "Worked: "+window, "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.Line(10, pdf.GetY(), pageW-10, pdf.GetY())
	pdf.Ln(2)

	// ── Orders ───────────────────────────────────────────────────────────────
	col1 := contentW * 0.30 // time
	col2 := contentW * 0.30 // payment
	col3 := contentW * 0.40 // amount

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(col1, 6, "Time", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 6, "Payment", "B", 0, "C", false, 0, "")
	pdf.CellFormat(col3, 6, "Amount", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	total := decimal.Zero
	for _, order := range orders {
		total = total.Add(order.Amount)
		pdf.CellFormat(col1, 6, order.CreatedAt.Format("15:04"), "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 6, order.PaymentType, "", 0, "C", false, 0, "")
		pdf.CellFormat(col3, 6, "$"+order.Amount.StringFixed(2), "", 1, "R", false, 0, "")
	}

	pdf.Ln(2)
	pdf.Line(10, pdf.GetY(), pageW-10, pdf.GetY())
	pdf.Ln(2)

	// ── Totals ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(col1+col2, 6, "Cash revenue:", "", 0, "L", false, 0, "")
	pdf.CellFormat(col3, 6, "$"+shift.RevenueCash.StringFixed(2), "", 1, "R", false, 0, "")
	pdf.CellFormat(col1+col2, 6, "Card revenue:", "", 0, "L", false, 0, "")
	pdf.CellFormat(col3, 6, "$"+shift.RevenueCard.StringFixed(2), "", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(col1+col2, 8, fmt.Sprintf("ORDERS (%d):", len(orders)), "", 0, "L", false, 0, "")
	pdf.CellFormat(col3, 8, "$"+total.StringFixed(2), "", 1, "R", false, 0, "")

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}

	return filePath, nil
}
