package recap

import (
	"fmt"
	"time"

	shipments "logistics-cloud/internal/shipments/domain"
)

// UnscheduledKey is the bucket key for records whose date is unavailable.
const UnscheduledKey = "unscheduled"

const periodKeyLayout = "2006-01"

// monthNames holds id-ID month names, January first.
var monthNames = [...]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// PeriodKey derives the year-month bucket key for a record date.
func PeriodKey(date time.Time, hasDate bool) string {
	if !hasDate {
		return UnscheduledKey
	}
	return date.Format(periodKeyLayout)
}

// PeriodLabel derives the human-readable caption for a period key. Key and
// label come from the same derivation so a bucket can never be captioned
// with a month that disagrees with its key.
func PeriodLabel(key string) string {
	if key == UnscheduledKey {
		return "Tanpa Tanggal"
	}
	parsed, err := time.Parse(periodKeyLayout, key)
	if err != nil {
		return key
	}
	return fmt.Sprintf("%s %d", monthNames[parsed.Month()-1], parsed.Year())
}

// MonthBucket holds the records of one period in input order.
type MonthBucket struct {
	Key     string
	Records []shipments.NormalizedRecord
}

// Label returns the bucket caption.
func (b MonthBucket) Label() string { return PeriodLabel(b.Key) }

// Count returns the number of records in the bucket.
func (b MonthBucket) Count() int { return len(b.Records) }

// GroupByMonth partitions records into month buckets in a single pass.
// Bucket order is first-seen order of period keys and records keep their
// input order within a bucket; callers needing chronological order must
// sort the keys themselves.
func GroupByMonth(records []shipments.NormalizedRecord) []MonthBucket {
	index := make(map[string]int, 8)
	buckets := make([]MonthBucket, 0, 8)
	for _, record := range records {
		key := PeriodKey(record.Date, record.HasDate)
		at, ok := index[key]
		if !ok {
			at = len(buckets)
			index[key] = at
			buckets = append(buckets, MonthBucket{Key: key})
		}
		buckets[at].Records = append(buckets[at].Records, record)
	}
	return buckets
}
