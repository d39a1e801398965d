package pdf

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/epicircle/scrap-pickups/internal/model"
)

const fontName = "Helvetica"

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

func (g *Generator) Generate(receipt model.Receipt) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pickup := receipt.Pickup

	pdf.SetFont(fontName, "B", 16)
	pdf.CellFormat(0, 10, "Scrap Pickup Receipt", "", 1, "C", false, 0, "")
	pdf.SetFont(fontName, "", 10)
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Pickup %s issued %s", pickup.ID, formatDateTime(receipt.IssuedAt))), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	addBlock(pdf, tr, "Customer", []string{
		pickup.Customer.Name,
		fmt.Sprintf("Phone: %s", safeValue(pickup.Customer.Phone)),
		fmt.Sprintf("Address: %s", safeValue(pickup.Address)),
	})
	pdf.Ln(2)
	addBlock(pdf, tr, "Schedule", []string{
		fmt.Sprintf("Date: %s", safeValue(pickup.ScheduledDate)),
		fmt.Sprintf("Time slot: %s", safeValue(pickup.ScheduledTimeSlot)),
		fmt.Sprintf("Status: %s", pickup.Status),
	})
	pdf.Ln(4)

	pdf.SetFont(fontName, "B", 12)
	pdf.CellFormat(0, 8, "Items", "", 1, "L", false, 0, "")

	headers := []string{"#", "Item", "Quantity", "Price"}
	colWidths := []float64{12, 88, 40, 40}
	drawTableRow(pdf, tr, headers, colWidths, true)

	if len(pickup.Items) == 0 {
		pdf.SetFont(fontName, "", 10)
		pdf.CellFormat(0, 8, "No items recorded.", "1", 1, "C", false, 0, "")
	}
	for i, item := range pickup.Items {
		drawTableRow(pdf, tr, []string{
			fmt.Sprintf("%d", i+1),
			item.Name,
			item.Quantity,
			item.Price.StringFixed(2),
		}, colWidths, false)
	}

	pdf.Ln(2)
	pdf.SetFont(fontName, "B", 12)
	pdf.CellFormat(0, 8, fmt.Sprintf("Total: %s", receipt.Total.StringFixed(2)), "", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func addBlock(pdf *gofpdf.Fpdf, tr func(string) string, title string, lines []string) {
	pdf.SetFont(fontName, "B", 11)
	pdf.CellFormat(0, 6, title, "", 1, "L", false, 0, "")
	pdf.SetFont(fontName, "", 10)
	for _, line := range lines {
		pdf.MultiCell(0, 5, tr(line), "", "L", false)
	}
}

func drawTableRow(pdf *gofpdf.Fpdf, tr func(string) string, cols []string, widths []float64, header bool) {
	style := ""
	if header {
		style = "B"
	}
	pdf.SetFont(fontName, style, 10)
	for i, col := range cols {
		align := "L"
		if i > 1 {
			align = "R"
		}
		pdf.CellFormat(widths[i], 8, tr(col), "1", 0, align, false, 0, "")
	}
	pdf.Ln(-1)
}

func safeValue(value string) string {
	if strings.TrimSpace(value) == "" {
		return "-"
	}
	return value
}

func formatDateTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("02 Jan 2006 15:04")
}
