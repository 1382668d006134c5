package postgres

import (
	"context"
	"database/sql"
	"errors"

	shipments "logistics-cloud/internal/shipments/domain"
)

// ShipmentRepository persists shipment records.
type ShipmentRepository struct {
	db *sql.DB
}

// NewShipmentRepository constructs a repository.
func NewShipmentRepository(db *sql.DB) *ShipmentRepository {
	return &ShipmentRepository{db: db}
}

// List returns every record, oldest insert first. Month grouping downstream
// relies on a stable input order, not on this being chronological.
func (r *ShipmentRepository) List(ctx context.Context) ([]shipments.ShipmentRecord, error) {
	if r == nil || r.db == nil {
		return nil, errors.New("shipment repo: nil db")
	}
	rows, err := r.db.QueryContext(ctx, `
SELECT id, tanggal, nopol, driver, origin, destinasi, uj, harga, status, status_sj, tanggal_update_sj
FROM shipments
ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []shipments.ShipmentRecord
	for rows.Next() {
		record, err := scanShipment(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// Get loads one record by id.
func (r *ShipmentRepository) Get(ctx context.Context, id int64) (*shipments.ShipmentRecord, error) {
	if r == nil || r.db == nil {
		return nil, errors.New("shipment repo: nil db")
	}
	row := r.db.QueryRowContext(ctx, `
SELECT id, tanggal, nopol, driver, origin, destinasi, uj, harga, status, status_sj, tanggal_update_sj
FROM shipments
WHERE id = $1`, id)
	record, err := scanShipment(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, shipments.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// Create inserts a record and returns the generated id.
func (r *ShipmentRepository) Create(ctx context.Context, record shipments.ShipmentRecord) (int64, error) {
	if r == nil || r.db == nil {
		return 0, errors.New("shipment repo: nil db")
	}
	var id int64
	err := r.db.QueryRowContext(ctx, `
INSERT INTO shipments (tanggal, nopol, driver, origin, destinasi, uj, harga, status, status_sj, tanggal_update_sj)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
RETURNING id`,
		record.Tanggal, record.Nopol, record.Driver, record.Origin, record.Destinasi,
		record.UJ, record.Harga, record.Status, record.StatusSJ, record.TanggalUpdateSJ,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// Update overwrites a record.
func (r *ShipmentRepository) Update(ctx context.Context, record shipments.ShipmentRecord) error {
	if r == nil || r.db == nil {
		return errors.New("shipment repo: nil db")
	}
	result, err := r.db.ExecContext(ctx, `
UPDATE shipments
SET tanggal = $2, nopol = $3, driver = $4, origin = $5, destinasi = $6,
	uj = $7, harga = $8, status = $9, status_sj = $10, tanggal_update_sj = $11
WHERE id = $1`,
		record.ID, record.Tanggal, record.Nopol, record.Driver, record.Origin, record.Destinasi,
		record.UJ, record.Harga, record.Status, record.StatusSJ, record.TanggalUpdateSJ,
	)
	if err != nil {
		return err
	}
	return ensureAffected(result)
}

// SetSettlementStatus updates the payment lifecycle state.
func (r *ShipmentRepository) SetSettlementStatus(ctx context.Context, id int64, status shipments.SettlementStatus) error {
	if r == nil || r.db == nil {
		return errors.New("shipment repo: nil db")
	}
	result, err := r.db.ExecContext(ctx, `
UPDATE shipments SET status = $2 WHERE id = $1`, id, string(status))
	if err != nil {
		return err
	}
	return ensureAffected(result)
}

// SetDeliveryStatus updates the delivery-note state and its update stamp.
func (r *ShipmentRepository) SetDeliveryStatus(ctx context.Context, id int64, status shipments.DeliveryStatus, updatedAt string) error {
	if r == nil || r.db == nil {
		return errors.New("shipment repo: nil db")
	}
	result, err := r.db.ExecContext(ctx, `
UPDATE shipments SET status_sj = $2, tanggal_update_sj = $3 WHERE id = $1`, id, string(status), updatedAt)
	if err != nil {
		return err
	}
	return ensureAffected(result)
}

// Delete removes a record.
func (r *ShipmentRepository) Delete(ctx context.Context, id int64) error {
	if r == nil || r.db == nil {
		return errors.New("shipment repo: nil db")
	}
	result, err := r.db.ExecContext(ctx, `DELETE FROM shipments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return ensureAffected(result)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanShipment(row rowScanner) (shipments.ShipmentRecord, error) {
	var (
		record    shipments.ShipmentRecord
		tanggal   sql.NullString
		uj        sql.NullFloat64
		harga     sql.NullFloat64
		updatedSJ sql.NullString
	)
	err := row.Scan(
		&record.ID, &tanggal, &record.Nopol, &record.Driver, &record.Origin, &record.Destinasi,
		&uj, &harga, &record.Status, &record.StatusSJ, &updatedSJ,
	)
	if err != nil {
		return shipments.ShipmentRecord{}, err
	}
	if tanggal.Valid {
		record.Tanggal = &tanggal.String
	}
	if uj.Valid {
		record.UJ = &uj.Float64
	}
	if harga.Valid {
		record.Harga = &harga.Float64
	}
	if updatedSJ.Valid {
		record.TanggalUpdateSJ = &updatedSJ.String
	}
	return record, nil
}

func ensureAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return shipments.ErrNotFound
	}
	return nil
}
