package application

import (
	"context"
	"errors"
	"time"

	"logistics-cloud/internal/observability/metrics"
	recap "logistics-cloud/internal/recap/domain"
	shipments "logistics-cloud/internal/shipments/domain"
)

// Clock provides time for filename stamping.
type Clock interface {
	Now() time.Time
}

// SystemClock uses time.Now.
type SystemClock struct{}

// Now returns current time.
func (SystemClock) Now() time.Time { return time.Now() }

// MonthView is one dashboard tab: a period bucket with its records and
// financial summary.
type MonthView struct {
	Key     string                     `json:"monthYear"`
	Label   string                     `json:"label"`
	Count   int                        `json:"count"`
	Summary recap.AggregateSummary     `json:"summary"`
	Records []shipments.ShipmentRecord `json:"data"`
}

// RecapResult is the outcome of an ad-hoc recap query.
type RecapResult struct {
	Records []shipments.ShipmentRecord `json:"data"`
	Summary recap.AggregateSummary     `json:"summary"`
}

// RecapService serves dashboard aggregation and recap queries. Every call
// takes a fresh snapshot of the record set; nothing is cached between
// calls.
type RecapService struct {
	repo  shipments.Repository
	cfg   ReportConfig
	clock Clock
}

// NewRecapService constructs a service.
func NewRecapService(repo shipments.Repository, cfg ReportConfig, clock Clock) (*RecapService, error) {
	if repo == nil {
		return nil, errors.New("recap service: nil repository")
	}
	if clock == nil {
		clock = SystemClock{}
	}
	return &RecapService{repo: repo, cfg: cfg, clock: clock}, nil
}

// Config returns the report presentation settings.
func (s *RecapService) Config() ReportConfig { return s.cfg }

// Dashboard groups the full record set into month buckets with per-bucket
// summaries, in first-seen period order.
func (s *RecapService) Dashboard(ctx context.Context) ([]MonthView, error) {
	start := time.Now()
	result := metrics.ResultSuccess
	defer func() {
		metrics.ObserveRecapQuery(result, time.Since(start))
	}()

	records, err := s.snapshot(ctx)
	if err != nil {
		result = metrics.ResultError
		return nil, err
	}

	buckets := recap.GroupByMonth(records)
	views := make([]MonthView, 0, len(buckets))
	for _, bucket := range buckets {
		view := MonthView{
			Key:     bucket.Key,
			Label:   bucket.Label(),
			Count:   bucket.Count(),
			Summary: recap.Summarize(bucket.Records),
			Records: make([]shipments.ShipmentRecord, 0, bucket.Count()),
		}
		for _, record := range bucket.Records {
			view.Records = append(view.Records, record.Record())
		}
		views = append(views, view)
	}
	return views, nil
}

// Recap runs an ad-hoc filtered query and summarizes the matches.
func (s *RecapService) Recap(ctx context.Context, filter recap.Filter) (RecapResult, error) {
	start := time.Now()
	result := metrics.ResultSuccess
	defer func() {
		metrics.ObserveRecapQuery(result, time.Since(start))
	}()

	records, err := s.snapshot(ctx)
	if err != nil {
		result = metrics.ResultError
		return RecapResult{}, err
	}

	matched := filter.Apply(records)
	out := RecapResult{
		Records: make([]shipments.ShipmentRecord, 0, len(matched)),
		Summary: recap.Summarize(matched),
	}
	for _, record := range matched {
		out.Records = append(out.Records, record.Record())
	}
	return out, nil
}

// ShapedRows resolves a filtered query to export-ready rows under the given
// projection. Both export backends consume this output and nothing else.
func (s *RecapService) ShapedRows(ctx context.Context, filter recap.Filter, projection recap.Projection) ([]recap.ShapedRow, error) {
	records, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return recap.ShapeRows(filter.Apply(records), projection), nil
}

// ExportFilename builds the artifact name with the generation date. The
// date is a naming convenience, not a uniqueness guarantee.
func (s *RecapService) ExportFilename(extension string) string {
	return s.cfg.FilenamePrefix + "_" + s.clock.Now().Format("2006-01-02") + "." + extension
}

func (s *RecapService) snapshot(ctx context.Context) ([]shipments.NormalizedRecord, error) {
	raws, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return shipments.NormalizeAll(raws), nil
}
