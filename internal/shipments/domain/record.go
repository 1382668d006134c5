package shipments

import "time"

// SettlementStatus is the payment lifecycle state of a shipment.
type SettlementStatus string

const (
	StatusPending   SettlementStatus = "pending"
	StatusConfirmed SettlementStatus = "confirmed"
	StatusCanceled  SettlementStatus = "canceled"
)

// IsKnown reports whether the status is one of the supported values.
// Unknown values are preserved verbatim and rendered through a passthrough
// rule downstream, never rejected.
func (s SettlementStatus) IsKnown() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCanceled:
		return true
	default:
		return false
	}
}

// DeliveryStatus is the delivery-note (surat jalan) lifecycle state.
// It is independent from the payment lifecycle.
type DeliveryStatus string

const (
	DeliveryNotDone   DeliveryStatus = "Belum selesai"
	DeliveryShipped   DeliveryStatus = "Terkirim"
	DeliveryReceived  DeliveryStatus = "Diterima"
	DeliveryCompleted DeliveryStatus = "Selesai"
)

// IsKnown reports whether the delivery-note status is a supported value.
func (s DeliveryStatus) IsKnown() bool {
	switch s {
	case DeliveryNotDone, DeliveryShipped, DeliveryReceived, DeliveryCompleted:
		return true
	default:
		return false
	}
}

// ShipmentRecord is the wire shape of one shipment as the data store hands
// it out. Monetary fields and the date may be absent.
type ShipmentRecord struct {
	ID              int64    `json:"id"`
	Tanggal         *string  `json:"tanggal"`
	Nopol           string   `json:"nopol"`
	Driver          string   `json:"driver"`
	Origin          string   `json:"origin"`
	Destinasi       string   `json:"destinasi"`
	UJ              *float64 `json:"uj"`
	Harga           *float64 `json:"harga"`
	Status          string   `json:"status"`
	StatusSJ        string   `json:"status_sj"`
	TanggalUpdateSJ *string  `json:"tanggal_update_sj"`
}

// NormalizedRecord is a ShipmentRecord with the date parsed (or explicitly
// marked unavailable) and monetary fields guaranteed numeric.
type NormalizedRecord struct {
	ID        int64
	Date      time.Time
	HasDate   bool
	Nopol     string
	Driver    string
	Origin    string
	Destinasi string
	Outlay    float64
	Billed    float64

	Status          SettlementStatus
	DeliveryStatus  DeliveryStatus
	DeliveryUpdated string
}

// dateLayouts are accepted input date formats, most specific first.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Normalize coerces a raw record into its canonical shape. It is a pure
// function and idempotent: normalizing the Record() of a normalized record
// yields the same result.
func Normalize(raw ShipmentRecord) NormalizedRecord {
	normalized := NormalizedRecord{
		ID:             raw.ID,
		Nopol:          raw.Nopol,
		Driver:         raw.Driver,
		Origin:         raw.Origin,
		Destinasi:      raw.Destinasi,
		Status:         SettlementStatus(raw.Status),
		DeliveryStatus: DeliveryStatus(raw.StatusSJ),
	}
	if raw.Tanggal != nil {
		if parsed, ok := parseDate(*raw.Tanggal); ok {
			// Calendar-day resolution; keeps normalization idempotent when a
			// source timestamp carries a time component.
			normalized.Date = truncateToDay(parsed)
			normalized.HasDate = true
		}
	}
	if raw.UJ != nil {
		normalized.Outlay = *raw.UJ
	}
	if raw.Harga != nil {
		normalized.Billed = *raw.Harga
	}
	if raw.TanggalUpdateSJ != nil {
		normalized.DeliveryUpdated = *raw.TanggalUpdateSJ
	}
	return normalized
}

// Margin is the single derivation of billed minus outlay. Every consumer,
// including both export backends, must go through this method so the number
// cannot drift between surfaces.
func (n NormalizedRecord) Margin() float64 {
	return n.Billed - n.Outlay
}

// Record converts back to the wire shape. Round-tripping through Normalize
// is lossless for already-normalized data.
func (n NormalizedRecord) Record() ShipmentRecord {
	record := ShipmentRecord{
		ID:        n.ID,
		Nopol:     n.Nopol,
		Driver:    n.Driver,
		Origin:    n.Origin,
		Destinasi: n.Destinasi,
		UJ:        float64Ptr(n.Outlay),
		Harga:     float64Ptr(n.Billed),
		Status:    string(n.Status),
		StatusSJ:  string(n.DeliveryStatus),
	}
	if n.HasDate {
		date := n.Date.Format("2006-01-02")
		record.Tanggal = &date
	}
	if n.DeliveryUpdated != "" {
		updated := n.DeliveryUpdated
		record.TanggalUpdateSJ = &updated
	}
	return record
}

// NormalizeAll normalizes a full record sequence preserving input order.
func NormalizeAll(raws []ShipmentRecord) []NormalizedRecord {
	normalized := make([]NormalizedRecord, 0, len(raws))
	for _, raw := range raws {
		normalized = append(normalized, Normalize(raw))
	}
	return normalized
}

func parseDate(value string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func float64Ptr(v float64) *float64 { return &v }
