package shipments

import "context"

// Repository defines the persistence capabilities the shipment workflows need.
type Repository interface {
	List(ctx context.Context) ([]ShipmentRecord, error)
	Get(ctx context.Context, id int64) (*ShipmentRecord, error)
	Create(ctx context.Context, record ShipmentRecord) (int64, error)
	Update(ctx context.Context, record ShipmentRecord) error
	SetSettlementStatus(ctx context.Context, id int64, status SettlementStatus) error
	SetDeliveryStatus(ctx context.Context, id int64, status DeliveryStatus, updatedAt string) error
	Delete(ctx context.Context, id int64) error
}
