package report

import (
	"fmt"
	"io"

	"github.com/phpdave11/gofpdf"
	"github.com/theirongolddev/finledger/internal/cli"
	"github.com/theirongolddev/finledger/internal/model"
)

const (
	pdfLabelWidth = 70.0
	pdfBarWidth   = 80.0
	pdfRowHeight  = 7.0
)

// WritePDF writes an A4 report: the totals, the itemised expenses and the
// expense and overview bars.
func WritePDF(w io.Writer, s model.Summary, currency string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Financial Summary", false)
	pdf.SetAutoPageBreak(true, 15)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "Financial Summary")
	pdf.Ln(12)

	totals := [][2]string{
		{"Total Income", cli.FormatAmount(s.Income, currency)},
		{"Original Savings", cli.FormatAmount(s.OriginalSavings, currency)},
		{"Current Savings", cli.FormatAmount(s.Savings, currency)},
		{"Total Expenses", cli.FormatAmount(s.TotalExpenses, currency)},
		{"Deficit", cli.FormatAmount(s.Deficit, currency)},
		{"Remaining Budget", cli.FormatAmount(s.RemainingBudget, currency)},
		{"Savings Goal", cli.FormatAmount(s.SavingsGoal, currency)},
	}
	pdf.SetFont("Helvetica", "", 11)
	pdf.SetFillColor(240, 240, 236)
	for i, row := range totals {
		fill := i%2 == 0
		pdf.CellFormat(pdfLabelWidth, pdfRowHeight, row[0], "1", 0, "L", fill, 0, "")
		pdf.CellFormat(50, pdfRowHeight, tr(row[1]), "1", 1, "R", fill, 0, "")
	}
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, "Expenses")
	pdf.Ln(9)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(45, pdfRowHeight, "Category", "1", 0, "L", false, 0, "")
	pdf.CellFormat(95, pdfRowHeight, "Description", "1", 0, "L", false, 0, "")
	pdf.CellFormat(40, pdfRowHeight, "Amount", "1", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	if len(s.Items) == 0 {
		pdf.CellFormat(180, pdfRowHeight, "No expenses recorded.", "1", 1, "C", false, 0, "")
	}
	for _, e := range s.Items {
		pdf.CellFormat(45, pdfRowHeight, tr(e.Category), "1", 0, "L", false, 0, "")
		pdf.CellFormat(95, pdfRowHeight, tr(e.Description), "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, pdfRowHeight, tr(cli.FormatAmount(e.Amount, currency)), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(6)

	if totals := CategoryTotals(s); len(totals) > 0 {
		pdf.SetFont("Helvetica", "B", 13)
		pdf.Cell(0, 8, "By Category")
		pdf.Ln(9)
		pdf.SetFont("Helvetica", "", 11)
		for _, c := range totals {
			pdf.CellFormat(pdfLabelWidth, pdfRowHeight, tr(c.Category), "1", 0, "L", false, 0, "")
			pdf.CellFormat(20, pdfRowHeight, fmt.Sprint(c.Count), "1", 0, "R", false, 0, "")
			pdf.CellFormat(40, pdfRowHeight, tr(cli.FormatAmount(c.Total, currency)), "1", 0, "R", false, 0, "")
			pdf.CellFormat(25, pdfRowHeight, cli.FormatPercent(c.Share), "1", 1, "R", false, 0, "")
		}
		pdf.Ln(6)
	}

	bars := ExpenseBars(s)
	if len(bars) > 0 {
		pdf.SetFont("Helvetica", "B", 13)
		pdf.Cell(0, 8, "Expense Breakdown")
		pdf.Ln(9)
		peak := MaxBar(bars).InexactFloat64()
		pdf.SetFont("Helvetica", "", 9)
		for _, b := range bars {
			width := 0.0
			if peak > 0 {
				width = b.Value.InexactFloat64() / peak * pdfBarWidth
			}
			pdfBar(pdf, tr(b.Label), width, tr(cli.FormatAmount(b.Value, currency)), [3]int{67, 133, 190})
		}
		pdf.Ln(6)
	}

	parts := Breakdown(s)
	if len(parts) > 0 {
		pdf.SetFont("Helvetica", "B", 13)
		pdf.Cell(0, 8, "Financial Overview")
		pdf.Ln(9)
		pdf.SetFont("Helvetica", "", 9)
		for _, p := range parts {
			caption := fmt.Sprintf("%s (%s)", cli.FormatAmount(p.Value, currency), cli.FormatPercent(p.Share))
			pdfBar(pdf, p.Label, p.Share*pdfBarWidth, tr(caption), partColor(p.Label))
		}
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("writing pdf: %w", err)
	}
	return nil
}

func pdfBar(pdf *gofpdf.Fpdf, label string, width float64, caption string, rgb [3]int) {
	x, y := pdf.GetXY()
	pdf.CellFormat(pdfLabelWidth, 6, label, "", 0, "L", false, 0, "")
	if width > 0 {
		pdf.SetFillColor(rgb[0], rgb[1], rgb[2])
		pdf.Rect(x+pdfLabelWidth, y+1, width, 4, "F")
	}
	pdf.SetX(x + pdfLabelWidth + pdfBarWidth + 2)
	pdf.CellFormat(0, 6, caption, "", 1, "L", false, 0, "")
}

func partColor(label string) [3]int {
	switch label {
	case LabelSavings:
		return [3]int{135, 154, 57}
	case LabelDeficit:
		return [3]int{209, 77, 65}
	default:
		return [3]int{58, 169, 159}
	}
}
