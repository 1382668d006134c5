package recap

import (
	"testing"

	shipments "logistics-cloud/internal/shipments/domain"
)

func moneyRecord(outlay, billed float64, status shipments.SettlementStatus) shipments.NormalizedRecord {
	return shipments.NormalizedRecord{Outlay: outlay, Billed: billed, Status: status}
}

func TestSummarizeEmptyInput(t *testing.T) {
	summary := Summarize(nil)
	if summary.MarginSum != 0 {
		t.Fatalf("expected zero margin sum, got %v", summary.MarginSum)
	}
	if summary.Classification != ClassificationProfit {
		t.Fatalf("expected profit classification, got %q", summary.Classification)
	}
	if summary.CountConfirmed != 0 || summary.CountPending != 0 || summary.CountCanceled != 0 {
		t.Fatalf("expected zero counts, got %+v", summary)
	}
}

func TestSummarizeZeroBoundaryIsProfit(t *testing.T) {
	records := []shipments.NormalizedRecord{
		moneyRecord(100000, 150000, shipments.StatusConfirmed),
		moneyRecord(200000, 150000, shipments.StatusPending),
	}
	summary := Summarize(records)
	if summary.MarginSum != 0 {
		t.Fatalf("expected margin sum 0, got %v", summary.MarginSum)
	}
	if summary.Classification != ClassificationProfit {
		t.Fatalf("zero must classify as profit, got %q", summary.Classification)
	}
	if summary.CountConfirmed != 1 || summary.CountPending != 1 || summary.CountCanceled != 0 {
		t.Fatalf("unexpected counts: %+v", summary)
	}
}

func TestSummarizeLoss(t *testing.T) {
	records := []shipments.NormalizedRecord{
		moneyRecord(300000, 150000, shipments.StatusConfirmed),
	}
	summary := Summarize(records)
	if summary.MarginSum != -150000 {
		t.Fatalf("expected margin sum -150000, got %v", summary.MarginSum)
	}
	if summary.Classification != ClassificationLoss {
		t.Fatalf("expected loss, got %q", summary.Classification)
	}
}

func TestSummarizeCanceledContributesMargin(t *testing.T) {
	records := []shipments.NormalizedRecord{
		moneyRecord(100000, 400000, shipments.StatusCanceled),
	}
	summary := Summarize(records)
	if summary.MarginSum != 300000 {
		t.Fatalf("canceled margin must count, got %v", summary.MarginSum)
	}
	if summary.CountCanceled != 1 {
		t.Fatalf("expected one canceled record, got %d", summary.CountCanceled)
	}
}

func TestSummarizeUnknownStatusCountedNowhere(t *testing.T) {
	records := []shipments.NormalizedRecord{
		moneyRecord(100000, 250000, "unknown-value"),
		moneyRecord(100000, 150000, shipments.StatusConfirmed),
	}
	summary := Summarize(records)
	if summary.MarginSum != 200000 {
		t.Fatalf("unknown status must still contribute margin, got %v", summary.MarginSum)
	}
	if summary.CountConfirmed != 1 || summary.CountPending != 0 || summary.CountCanceled != 0 {
		t.Fatalf("unknown status leaked into counts: %+v", summary)
	}
}

func TestSummaryMatchesShapedRowTotals(t *testing.T) {
	records := []shipments.NormalizedRecord{
		moneyRecord(120000, 310000, shipments.StatusConfirmed),
		moneyRecord(90000, 40000, shipments.StatusPending),
		moneyRecord(50000, 75000, "misc"),
	}
	summary := Summarize(records)
	var shapedTotal float64
	for _, row := range ShapeRows(records, ProjectionFull) {
		shapedTotal += row.MarginValue
	}
	if shapedTotal != summary.MarginSum {
		t.Fatalf("shaped rows sum %v disagrees with summary %v", shapedTotal, summary.MarginSum)
	}
}
