package shipments

import (
	"testing"
	"time"
)

func strPtr(v string) *string { return &v }

func numPtr(v float64) *float64 { return &v }

func TestNormalizeDefaults(t *testing.T) {
	raw := ShipmentRecord{
		ID:        7,
		Nopol:     "B 9123 TRK",
		Driver:    "Budi",
		Origin:    "Jakarta",
		Destinasi: "Medan",
		Status:    "pending",
		StatusSJ:  "Belum selesai",
	}
	normalized := Normalize(raw)
	if normalized.HasDate {
		t.Fatalf("expected no date for nil tanggal")
	}
	if normalized.Outlay != 0 || normalized.Billed != 0 {
		t.Fatalf("expected zero money defaults, got %v / %v", normalized.Outlay, normalized.Billed)
	}
	if normalized.Margin() != 0 {
		t.Fatalf("expected zero margin, got %v", normalized.Margin())
	}
}

func TestNormalizeParsesDateLayouts(t *testing.T) {
	cases := []string{
		"2026-03-15",
		"2026-03-15 08:30:00",
		"2026-03-15T08:30:00Z",
	}
	want := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	for _, value := range cases {
		normalized := Normalize(ShipmentRecord{Tanggal: strPtr(value)})
		if !normalized.HasDate {
			t.Fatalf("%q: expected date to parse", value)
		}
		if !normalized.Date.Equal(want) {
			t.Fatalf("%q: got %v want %v", value, normalized.Date, want)
		}
	}
}

func TestNormalizeUnparseableDate(t *testing.T) {
	normalized := Normalize(ShipmentRecord{Tanggal: strPtr("15/03/2026")})
	if normalized.HasDate {
		t.Fatalf("expected unparseable date to be marked unavailable")
	}
}

func TestNormalizeNegativeMoneyPassesThrough(t *testing.T) {
	normalized := Normalize(ShipmentRecord{UJ: numPtr(-25000), Harga: numPtr(100000)})
	if normalized.Outlay != -25000 {
		t.Fatalf("expected negative outlay preserved, got %v", normalized.Outlay)
	}
	if normalized.Margin() != 125000 {
		t.Fatalf("expected margin 125000, got %v", normalized.Margin())
	}
}

func TestNormalizeMarginExact(t *testing.T) {
	normalized := Normalize(ShipmentRecord{UJ: numPtr(100000), Harga: numPtr(150000)})
	if got := normalized.Margin(); got != 50000 {
		t.Fatalf("expected margin 50000, got %v", got)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	raw := ShipmentRecord{
		ID:        3,
		Tanggal:   strPtr("2026-02-01"),
		Nopol:     "D 8821 KL",
		Driver:    "Agus",
		Origin:    "Bandung",
		Destinasi: "Palembang",
		UJ:        numPtr(200000),
		Harga:     numPtr(150000),
		Status:    "canceled",
		StatusSJ:  "Terkirim",
	}
	first := Normalize(raw)
	second := Normalize(first.Record())
	if first != second {
		t.Fatalf("normalization not idempotent:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestUnknownStatusPreservedVerbatim(t *testing.T) {
	normalized := Normalize(ShipmentRecord{Status: "unknown-value"})
	if normalized.Status != "unknown-value" {
		t.Fatalf("expected verbatim status, got %q", normalized.Status)
	}
	if normalized.Status.IsKnown() {
		t.Fatalf("expected unknown status to report IsKnown false")
	}
}
