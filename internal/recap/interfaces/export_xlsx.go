package interfaces

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	recapapp "logistics-cloud/internal/recap/application"
	recap "logistics-cloud/internal/recap/domain"
)

var xlsxColumns = [7]struct {
	name  string
	width float64
}{
	{"A", 30}, {"B", 15}, {"C", 60}, {"D", 18}, {"E", 18}, {"F", 18}, {"G", 15},
}

// BuildRecapXLSX renders the same shaped rows into a one-sheet workbook:
// bold bordered header, bordered data cells copied verbatim from the shaped
// cells, and a totals row whose first three columns merge into a bold
// centered "Total" label. The totals re-sum the shaped values exactly like
// the document exporter.
func BuildRecapXLSX(cfg recapapp.ReportConfig, rows []recap.ShapedRow) ([]byte, error) {
	f := excelize.NewFile()
	sheet := cfg.SheetName
	f.SetSheetName("Sheet1", sheet)

	for _, column := range xlsxColumns {
		if err := f.SetColWidth(sheet, column.name, column.name, column.width); err != nil {
			return nil, err
		}
	}

	border := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Border: border,
	})
	if err != nil {
		return nil, err
	}
	cellStyle, err := f.NewStyle(&excelize.Style{Border: border})
	if err != nil {
		return nil, err
	}
	totalStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Border:    border,
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, err
	}

	for i, header := range recap.ColumnHeaders {
		cell := fmt.Sprintf("%s1", xlsxColumns[i].name)
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, err
		}
	}
	if err := f.SetCellStyle(sheet, "A1", "G1", headerStyle); err != nil {
		return nil, err
	}

	for at, row := range rows {
		rowNum := at + 2
		for i, cell := range row.Cells() {
			ref := fmt.Sprintf("%s%d", xlsxColumns[i].name, rowNum)
			if err := f.SetCellValue(sheet, ref, cell); err != nil {
				return nil, err
			}
		}
		first := fmt.Sprintf("A%d", rowNum)
		last := fmt.Sprintf("G%d", rowNum)
		if err := f.SetCellStyle(sheet, first, last, cellStyle); err != nil {
			return nil, err
		}
	}

	totalRow := len(rows) + 2
	outlay, billed, margin, masked := sumShapedRows(rows)
	if err := f.MergeCell(sheet, fmt.Sprintf("A%d", totalRow), fmt.Sprintf("C%d", totalRow)); err != nil {
		return nil, err
	}
	if err := f.SetCellValue(sheet, fmt.Sprintf("A%d", totalRow), "Total"); err != nil {
		return nil, err
	}
	for i, cell := range totalsCells(outlay, billed, margin, masked) {
		ref := fmt.Sprintf("%s%d", xlsxColumns[3+i].name, totalRow)
		if err := f.SetCellValue(sheet, ref, cell); err != nil {
			return nil, err
		}
	}
	first := fmt.Sprintf("A%d", totalRow)
	last := fmt.Sprintf("G%d", totalRow)
	if err := f.SetCellStyle(sheet, first, last, totalStyle); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
