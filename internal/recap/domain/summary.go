package recap

import shipments "logistics-cloud/internal/shipments/domain"

// Classification marks a period total as profit or loss.
type Classification string

const (
	ClassificationProfit Classification = "profit"
	ClassificationLoss   Classification = "loss"
)

// AggregateSummary is the financial reduction of a record set, consumed by
// the dashboard summary panel. It is recomputed fresh on every call and
// never persisted.
type AggregateSummary struct {
	MarginSum      float64        `json:"marginSum"`
	Classification Classification `json:"classification"`
	CountConfirmed int            `json:"countConfirmed"`
	CountPending   int            `json:"countPending"`
	CountCanceled  int            `json:"countCanceled"`
}

// Summarize reduces a record sequence (a bucket's contents or an ad-hoc
// filtered subset) into an aggregate summary.
//
// MarginSum includes every record regardless of settlement status; canceled
// shipments still contribute their committed margin. This mirrors the
// dashboard totals and is preserved deliberately even where it looks
// counterintuitive.
//
// Zero is classified as profit (non-strict boundary). Records with an
// unrecognized status are excluded from all three counts but still
// contribute to the margin total. Empty input yields a zero-valued profit
// summary.
func Summarize(records []shipments.NormalizedRecord) AggregateSummary {
	summary := AggregateSummary{Classification: ClassificationProfit}
	for _, record := range records {
		summary.MarginSum += record.Margin()
		switch record.Status {
		case shipments.StatusConfirmed:
			summary.CountConfirmed++
		case shipments.StatusPending:
			summary.CountPending++
		case shipments.StatusCanceled:
			summary.CountCanceled++
		}
	}
	if summary.MarginSum < 0 {
		summary.Classification = ClassificationLoss
	}
	return summary
}
