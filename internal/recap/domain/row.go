package recap

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	shipments "logistics-cloud/internal/shipments/domain"
)

// Projection controls which columns a viewer may see in shaped output.
type Projection string

const (
	// ProjectionFull renders every column including the monetary ones.
	ProjectionFull Projection = "full"
	// ProjectionOperations masks monetary columns for operations staff.
	ProjectionOperations Projection = "operations"
)

// maskedCell replaces monetary cells under ProjectionOperations.
const maskedCell = "-"

// datePlaceholder renders for records whose date is unavailable.
const datePlaceholder = "N/A"

// ColumnHeaders is the fixed export column order shared by every backend.
var ColumnHeaders = [7]string{
	"Nopol - Driver",
	"Tanggal",
	"Origin - Destinasi",
	"Uang Jalan",
	"Harga",
	"Margin",
	"Status",
}

// ShapedRow is the canonical export-ready representation of one record.
// The display cells are final strings; the *Value fields carry the numbers
// the exporters re-sum for their totals rows, so neither backend ever
// reaches back to source records.
type ShapedRow struct {
	VehicleDriver string
	Date          string
	Route         string
	Outlay        string
	Billed        string
	Margin        string
	StatusLabel   string

	OutlayValue float64
	BilledValue float64
	MarginValue float64
	Masked      bool
}

// Cells returns the display cells in export column order.
func (r ShapedRow) Cells() [7]string {
	return [7]string{r.VehicleDriver, r.Date, r.Route, r.Outlay, r.Billed, r.Margin, r.StatusLabel}
}

// ShapeRow maps one normalized record to its shaped row. This is the only
// place margin and settlement-status text are computed for export; both
// export backends consume its output verbatim.
func ShapeRow(record shipments.NormalizedRecord, projection Projection) ShapedRow {
	row := ShapedRow{
		VehicleDriver: record.Nopol + " - " + record.Driver,
		Date:          FormatDate(record.Date, record.HasDate),
		Route:         record.Origin + " - " + record.Destinasi,
		StatusLabel:   StatusLabel(record.Status),
	}
	if projection == ProjectionOperations {
		row.Outlay = maskedCell
		row.Billed = maskedCell
		row.Margin = maskedCell
		row.Masked = true
		return row
	}
	margin := record.Margin()
	row.Outlay = FormatRupiah(record.Outlay)
	row.Billed = FormatRupiah(record.Billed)
	row.Margin = FormatRupiah(margin)
	row.OutlayValue = record.Outlay
	row.BilledValue = record.Billed
	row.MarginValue = margin
	return row
}

// ShapeRows shapes a record sequence preserving order.
func ShapeRows(records []shipments.NormalizedRecord, projection Projection) []ShapedRow {
	rows := make([]ShapedRow, 0, len(records))
	for _, record := range records {
		rows = append(rows, ShapeRow(record, projection))
	}
	return rows
}

// FormatDate renders a date as the id-ID short form (day/month/year, no
// leading zeros), or the fixed placeholder when the date is unavailable.
func FormatDate(date time.Time, hasDate bool) string {
	if !hasDate {
		return datePlaceholder
	}
	return fmt.Sprintf("%d/%d/%d", date.Day(), int(date.Month()), date.Year())
}

// StatusLabel translates a settlement status for display. Unknown values
// pass through verbatim.
func StatusLabel(status shipments.SettlementStatus) string {
	switch status {
	case shipments.StatusConfirmed:
		return "Lunas"
	case shipments.StatusPending:
		return "Pending"
	case shipments.StatusCanceled:
		return "Cancel"
	default:
		return string(status)
	}
}

// FormatRupiah renders a monetary amount the way the dashboard does:
// "Rp. " prefix, id-ID digit grouping, comma decimal separator.
func FormatRupiah(amount float64) string {
	return "Rp. " + formatIDNumber(amount)
}

func formatIDNumber(amount float64) string {
	text := strconv.FormatFloat(amount, 'f', -1, 64)
	sign := ""
	if strings.HasPrefix(text, "-") {
		sign = "-"
		text = text[1:]
	}
	intPart, fracPart, hasFrac := strings.Cut(text, ".")

	var grouped strings.Builder
	lead := len(intPart) % 3
	if lead > 0 {
		grouped.WriteString(intPart[:lead])
	}
	for at := lead; at < len(intPart); at += 3 {
		if grouped.Len() > 0 {
			grouped.WriteByte('.')
		}
		grouped.WriteString(intPart[at : at+3])
	}

	result := sign + grouped.String()
	if hasFrac {
		result += "," + fracPart
	}
	return result
}
