package memory

import (
	"context"
	"sync"

	shipments "logistics-cloud/internal/shipments/domain"
)

// ShipmentRepository is an in-memory repository for shipments, used by
// tests and local runs without a database.
type ShipmentRepository struct {
	mu     sync.RWMutex
	nextID int64
	order  []int64
	data   map[int64]shipments.ShipmentRecord
}

// NewShipmentRepository constructs a repository.
func NewShipmentRepository() *ShipmentRepository {
	return &ShipmentRepository{nextID: 1, data: make(map[int64]shipments.ShipmentRecord)}
}

// List returns records in insertion order.
func (r *ShipmentRepository) List(ctx context.Context) ([]shipments.ShipmentRecord, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	records := make([]shipments.ShipmentRecord, 0, len(r.order))
	for _, id := range r.order {
		records = append(records, cloneRecord(r.data[id]))
	}
	return records, nil
}

// Get loads one record by id.
func (r *ShipmentRepository) Get(ctx context.Context, id int64) (*shipments.ShipmentRecord, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	record, ok := r.data[id]
	if !ok {
		return nil, shipments.ErrNotFound
	}
	cloned := cloneRecord(record)
	return &cloned, nil
}

// Create stores a record and returns the assigned id.
func (r *ShipmentRepository) Create(ctx context.Context, record shipments.ShipmentRecord) (int64, error) {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	record.ID = r.nextID
	r.nextID++
	r.data[record.ID] = cloneRecord(record)
	r.order = append(r.order, record.ID)
	return record.ID, nil
}

// Update overwrites an existing record.
func (r *ShipmentRepository) Update(ctx context.Context, record shipments.ShipmentRecord) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.data[record.ID]; !ok {
		return shipments.ErrNotFound
	}
	r.data[record.ID] = cloneRecord(record)
	return nil
}

// SetSettlementStatus updates the payment lifecycle state.
func (r *ShipmentRepository) SetSettlementStatus(ctx context.Context, id int64, status shipments.SettlementStatus) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	record, ok := r.data[id]
	if !ok {
		return shipments.ErrNotFound
	}
	record.Status = string(status)
	r.data[id] = record
	return nil
}

// SetDeliveryStatus updates the delivery-note state and stamp.
func (r *ShipmentRepository) SetDeliveryStatus(ctx context.Context, id int64, status shipments.DeliveryStatus, updatedAt string) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	record, ok := r.data[id]
	if !ok {
		return shipments.ErrNotFound
	}
	record.StatusSJ = string(status)
	record.TanggalUpdateSJ = &updatedAt
	r.data[id] = record
	return nil
}

// Delete removes a record.
func (r *ShipmentRepository) Delete(ctx context.Context, id int64) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.data[id]; !ok {
		return shipments.ErrNotFound
	}
	delete(r.data, id)
	for at, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:at], r.order[at+1:]...)
			break
		}
	}
	return nil
}

func cloneRecord(record shipments.ShipmentRecord) shipments.ShipmentRecord {
	cloned := record
	if record.Tanggal != nil {
		value := *record.Tanggal
		cloned.Tanggal = &value
	}
	if record.UJ != nil {
		value := *record.UJ
		cloned.UJ = &value
	}
	if record.Harga != nil {
		value := *record.Harga
		cloned.Harga = &value
	}
	if record.TanggalUpdateSJ != nil {
		value := *record.TanggalUpdateSJ
		cloned.TanggalUpdateSJ = &value
	}
	return cloned
}
