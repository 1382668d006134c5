package interfaces

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	recapapp "logistics-cloud/internal/recap/application"
	recap "logistics-cloud/internal/recap/domain"
)

// Landscape A4 is 297mm wide; the seven columns fill it minus the margins.
var pdfColumnWidths = [7]float64{45, 22, 80, 35, 35, 35, 25}

const (
	pdfMarginLeft  = 10.0
	pdfMarginTop   = 12.0
	pdfRowHeight   = 7.0
	pdfBodyBottom  = 192.0
	pdfDateStamp   = "Dicetak: %s"
	pdfFooterStamp = "Page %d of {nb}"
)

// BuildRecapPDF renders shaped rows into the paginated printable artifact.
// The table header reprints on every page break, the title and generation
// stamp appear on page one only, and a bold totals row re-sums the shaped
// monetary values. Page totals are stamped through gofpdf's page-number
// alias, which rewrites every rendered page once the count is known.
func BuildRecapPDF(cfg recapapp.ReportConfig, rows []recap.ShapedRow, generatedAt time.Time) ([]byte, error) {
	pdf := gofpdf.New(cfg.Orientation, "mm", cfg.PageSize, "")
	pdf.SetMargins(pdfMarginLeft, pdfMarginTop, pdfMarginLeft)
	pdf.SetAutoPageBreak(false, 14)
	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont("Arial", "I", 8)
		pdf.CellFormat(0, 6, fmt.Sprintf(pdfFooterStamp, pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	pdf.AddPage()
	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 8, cfg.Title)
	pdf.Ln(9)
	pdf.SetFont("Arial", "", 9)
	pdf.Cell(0, 5, fmt.Sprintf(pdfDateStamp, recap.FormatDate(generatedAt, true)))
	pdf.Ln(8)

	writeTableHeader(pdf)
	for _, row := range rows {
		if pdf.GetY()+pdfRowHeight > pdfBodyBottom {
			pdf.AddPage()
			writeTableHeader(pdf)
		}
		writeDataRow(pdf, row)
	}

	if pdf.GetY()+pdfRowHeight > pdfBodyBottom {
		pdf.AddPage()
		writeTableHeader(pdf)
	}
	writeTotalsRow(pdf, rows)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeTableHeader(pdf *gofpdf.Fpdf) {
	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for i, header := range recap.ColumnHeaders {
		pdf.CellFormat(pdfColumnWidths[i], pdfRowHeight, header, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)
}

func writeDataRow(pdf *gofpdf.Fpdf, row recap.ShapedRow) {
	pdf.SetFont("Arial", "", 9)
	cells := row.Cells()
	aligns := [7]string{"L", "C", "L", "R", "R", "R", "C"}
	for i, cell := range cells {
		pdf.CellFormat(pdfColumnWidths[i], pdfRowHeight, cell, "1", 0, aligns[i], false, 0, "")
	}
	pdf.Ln(-1)
}

func writeTotalsRow(pdf *gofpdf.Fpdf, rows []recap.ShapedRow) {
	outlay, billed, margin, masked := sumShapedRows(rows)

	pdf.SetFont("Arial", "B", 9)
	labelWidth := pdfColumnWidths[0] + pdfColumnWidths[1] + pdfColumnWidths[2]
	pdf.CellFormat(labelWidth, pdfRowHeight, "Total", "1", 0, "C", false, 0, "")
	for _, cell := range totalsCells(outlay, billed, margin, masked) {
		pdf.CellFormat(pdfColumnWidths[3], pdfRowHeight, cell, "1", 0, "R", false, 0, "")
	}
	pdf.CellFormat(pdfColumnWidths[6], pdfRowHeight, "", "1", 0, "C", false, 0, "")
	pdf.Ln(-1)
}
