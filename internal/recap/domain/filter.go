package recap

import (
	"strings"
	"time"

	shipments "logistics-cloud/internal/shipments/domain"
)

// Filter narrows a record set for an ad-hoc recap query. String fields
// match as case-insensitive substrings; empty fields match everything.
type Filter struct {
	Nopol  string
	Driver string
	Origin string
	From   time.Time
	To     time.Time
}

// HasRange reports whether a date range is set.
func (f Filter) HasRange() bool { return !f.From.IsZero() || !f.To.IsZero() }

// Apply returns the matching records in input order. When a date range is
// set, records without a date cannot be placed in the range and are
// excluded; without a range they match.
func (f Filter) Apply(records []shipments.NormalizedRecord) []shipments.NormalizedRecord {
	matched := make([]shipments.NormalizedRecord, 0, len(records))
	for _, record := range records {
		if !f.matches(record) {
			continue
		}
		matched = append(matched, record)
	}
	return matched
}

func (f Filter) matches(record shipments.NormalizedRecord) bool {
	if !containsFold(record.Nopol, f.Nopol) {
		return false
	}
	if !containsFold(record.Driver, f.Driver) {
		return false
	}
	if !containsFold(record.Origin, f.Origin) {
		return false
	}
	if f.HasRange() {
		if !record.HasDate {
			return false
		}
		if !f.From.IsZero() && record.Date.Before(f.From) {
			return false
		}
		if !f.To.IsZero() && record.Date.After(f.To) {
			return false
		}
	}
	return true
}

func containsFold(value, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(value), strings.ToLower(needle))
}
