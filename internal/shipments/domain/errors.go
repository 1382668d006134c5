package shipments

import "errors"

var (
	// ErrNotFound is returned when a shipment record does not exist.
	ErrNotFound = errors.New("shipments: record not found")
	// ErrEmptyNopol is returned when the vehicle plate is missing.
	ErrEmptyNopol = errors.New("shipments: nopol required")
	// ErrEmptyDriver is returned when the driver name is missing.
	ErrEmptyDriver = errors.New("shipments: driver required")
	// ErrInvalidStatus is returned when a write carries an unsupported settlement status.
	ErrInvalidStatus = errors.New("shipments: invalid settlement status")
	// ErrInvalidDeliveryStatus is returned when a write carries an unsupported delivery-note status.
	ErrInvalidDeliveryStatus = errors.New("shipments: invalid delivery-note status")
)
