package recap

import (
	"testing"
	"time"

	shipments "logistics-cloud/internal/shipments/domain"
)

func TestShapeRowFullProjection(t *testing.T) {
	record := shipments.NormalizedRecord{
		Nopol:     "B 9012 TRK",
		Driver:    "Slamet",
		Date:      time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC),
		HasDate:   true,
		Origin:    "Jakarta",
		Destinasi: "Surabaya",
		Outlay:    1500000,
		Billed:    2250000,
		Status:    shipments.StatusConfirmed,
	}
	row := ShapeRow(record, ProjectionFull)

	cells := row.Cells()
	want := [7]string{
		"B 9012 TRK - Slamet",
		"5/3/2026",
		"Jakarta - Surabaya",
		"Rp. 1.500.000",
		"Rp. 2.250.000",
		"Rp. 750.000",
		"Lunas",
	}
	if cells != want {
		t.Fatalf("cells mismatch:\n got %v\nwant %v", cells, want)
	}
	if row.MarginValue != 750000 {
		t.Fatalf("expected margin value 750000, got %v", row.MarginValue)
	}
	if row.Masked {
		t.Fatal("full projection must not be masked")
	}
}

func TestShapeRowOperationsMasksMoney(t *testing.T) {
	record := shipments.NormalizedRecord{
		Nopol:  "B 1 A",
		Driver: "Andi",
		Outlay: 100000,
		Billed: 250000,
		Status: shipments.StatusPending,
	}
	row := ShapeRow(record, ProjectionOperations)

	if row.Outlay != "-" || row.Billed != "-" || row.Margin != "-" {
		t.Fatalf("monetary cells must be masked, got %q %q %q", row.Outlay, row.Billed, row.Margin)
	}
	if row.OutlayValue != 0 || row.BilledValue != 0 || row.MarginValue != 0 {
		t.Fatalf("masked rows must not carry numeric values: %+v", row)
	}
	if !row.Masked {
		t.Fatal("operations projection must set Masked")
	}
	if row.StatusLabel != "Pending" {
		t.Fatalf("status stays visible under masking, got %q", row.StatusLabel)
	}
}

func TestShapeRowsPreservesOrder(t *testing.T) {
	records := []shipments.NormalizedRecord{
		{Nopol: "B 1 A", Driver: "Andi"},
		{Nopol: "B 2 B", Driver: "Budi"},
		{Nopol: "B 3 C", Driver: "Citra"},
	}
	rows := ShapeRows(records, ProjectionFull)
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	for i, record := range records {
		want := record.Nopol + " - " + record.Driver
		if rows[i].VehicleDriver != want {
			t.Fatalf("row %d out of order: got %q want %q", i, rows[i].VehicleDriver, want)
		}
	}
}

func TestFormatDate(t *testing.T) {
	cases := []struct {
		date    time.Time
		hasDate bool
		want    string
	}{
		{time.Date(2026, time.January, 7, 0, 0, 0, 0, time.UTC), true, "7/1/2026"},
		{time.Date(2026, time.December, 31, 0, 0, 0, 0, time.UTC), true, "31/12/2026"},
		{time.Time{}, false, "N/A"},
	}
	for _, tc := range cases {
		if got := FormatDate(tc.date, tc.hasDate); got != tc.want {
			t.Fatalf("FormatDate(%v, %v) = %q, want %q", tc.date, tc.hasDate, got, tc.want)
		}
	}
}

func TestStatusLabel(t *testing.T) {
	cases := []struct {
		status shipments.SettlementStatus
		want   string
	}{
		{shipments.StatusConfirmed, "Lunas"},
		{shipments.StatusPending, "Pending"},
		{shipments.StatusCanceled, "Cancel"},
		{"archived", "archived"},
	}
	for _, tc := range cases {
		if got := StatusLabel(tc.status); got != tc.want {
			t.Fatalf("StatusLabel(%q) = %q, want %q", tc.status, got, tc.want)
		}
	}
}

func TestFormatRupiah(t *testing.T) {
	cases := []struct {
		amount float64
		want   string
	}{
		{0, "Rp. 0"},
		{500, "Rp. 500"},
		{150000, "Rp. 150.000"},
		{1234567, "Rp. 1.234.567"},
		{-75000, "Rp. -75.000"},
		{1500.5, "Rp. 1.500,5"},
	}
	for _, tc := range cases {
		if got := FormatRupiah(tc.amount); got != tc.want {
			t.Fatalf("FormatRupiah(%v) = %q, want %q", tc.amount, got, tc.want)
		}
	}
}
