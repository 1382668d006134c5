package application

import (
	"context"
	"errors"
	"time"

	"logistics-cloud/internal/observability/metrics"
	shipments "logistics-cloud/internal/shipments/domain"
)

// Clock provides time for delivery-note update stamps.
type Clock interface {
	Now() time.Time
}

// SystemClock uses time.Now.
type SystemClock struct{}

// Now returns current time.
func (SystemClock) Now() time.Time { return time.Now() }

// Service handles shipment record workflows.
type Service struct {
	repo  shipments.Repository
	clock Clock
}

// NewService constructs a service.
func NewService(repo shipments.Repository, clock Clock) (*Service, error) {
	if repo == nil {
		return nil, errors.New("shipment service: nil repository")
	}
	if clock == nil {
		clock = SystemClock{}
	}
	return &Service{repo: repo, clock: clock}, nil
}

// Get loads one record.
func (s *Service) Get(ctx context.Context, id int64) (*shipments.ShipmentRecord, error) {
	return s.repo.Get(ctx, id)
}

// Create validates and stores a new record, returning its id.
func (s *Service) Create(ctx context.Context, record shipments.ShipmentRecord) (int64, error) {
	start := time.Now()
	result := metrics.ResultSuccess
	defer func() {
		metrics.ObserveShipmentWrite("create", result, time.Since(start))
	}()

	if err := validateWrite(record); err != nil {
		result = metrics.ResultError
		return 0, err
	}
	if record.Status == "" {
		record.Status = string(shipments.StatusPending)
	}
	if record.StatusSJ == "" {
		record.StatusSJ = string(shipments.DeliveryNotDone)
	}
	id, err := s.repo.Create(ctx, record)
	if err != nil {
		result = metrics.ResultError
		return 0, err
	}
	return id, nil
}

// Update validates and overwrites an existing record.
func (s *Service) Update(ctx context.Context, record shipments.ShipmentRecord) error {
	start := time.Now()
	result := metrics.ResultSuccess
	defer func() {
		metrics.ObserveShipmentWrite("update", result, time.Since(start))
	}()

	if err := validateWrite(record); err != nil {
		result = metrics.ResultError
		return err
	}
	if err := s.repo.Update(ctx, record); err != nil {
		result = metrics.ResultError
		return err
	}
	return nil
}

// Settle marks a shipment as paid (status confirmed).
func (s *Service) Settle(ctx context.Context, id int64) error {
	start := time.Now()
	result := metrics.ResultSuccess
	defer func() {
		metrics.ObserveShipmentWrite("settle", result, time.Since(start))
	}()

	if err := s.repo.SetSettlementStatus(ctx, id, shipments.StatusConfirmed); err != nil {
		result = metrics.ResultError
		return err
	}
	return nil
}

// UpdateDeliveryNote advances the delivery-note lifecycle and stamps the
// update time.
func (s *Service) UpdateDeliveryNote(ctx context.Context, id int64, status shipments.DeliveryStatus) error {
	start := time.Now()
	result := metrics.ResultSuccess
	defer func() {
		metrics.ObserveShipmentWrite("delivery_note", result, time.Since(start))
	}()

	if !status.IsKnown() {
		result = metrics.ResultError
		return shipments.ErrInvalidDeliveryStatus
	}
	updatedAt := s.clock.Now().UTC().Format("2006-01-02 15:04:05")
	if err := s.repo.SetDeliveryStatus(ctx, id, status, updatedAt); err != nil {
		result = metrics.ResultError
		return err
	}
	return nil
}

// Delete removes a record.
func (s *Service) Delete(ctx context.Context, id int64) error {
	start := time.Now()
	result := metrics.ResultSuccess
	defer func() {
		metrics.ObserveShipmentWrite("delete", result, time.Since(start))
	}()

	if err := s.repo.Delete(ctx, id); err != nil {
		result = metrics.ResultError
		return err
	}
	return nil
}

// validateWrite rejects writes with missing identity fields or an unknown
// settlement status. Reads stay permissive; only edits are gated.
func validateWrite(record shipments.ShipmentRecord) error {
	if record.Nopol == "" {
		return shipments.ErrEmptyNopol
	}
	if record.Driver == "" {
		return shipments.ErrEmptyDriver
	}
	if record.Status != "" && !shipments.SettlementStatus(record.Status).IsKnown() {
		return shipments.ErrInvalidStatus
	}
	if record.StatusSJ != "" && !shipments.DeliveryStatus(record.StatusSJ).IsKnown() {
		return shipments.ErrInvalidDeliveryStatus
	}
	return nil
}
