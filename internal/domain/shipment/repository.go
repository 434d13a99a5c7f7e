package shipment

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Repository defines the interface for shipment persistence. Implementations
// must back TrackingNumber with a unique index: the generator's pre-check
// loop only reduces collisions, the index is the correctness guarantee.
type Repository interface {
	// Create persists the shipment together with its initial history entry
	// in a single transaction.
	Create(ctx context.Context, s *Shipment) error

	GetByID(ctx context.Context, shipmentID uuid.UUID) (*Shipment, error)
	GetByTrackingNumber(ctx context.Context, trackingNumber string) (*Shipment, error)
	ExistsByTrackingNumber(ctx context.Context, trackingNumber string) (bool, error)

	// List returns all shipments, newest first.
	List(ctx context.Context) ([]*Shipment, error)

	// UpdateStatus appends the entry to the shipment's history and updates
	// the shipment-level status, remark and updated_at atomically.
	UpdateStatus(ctx context.Context, shipmentID uuid.UUID, entry *HistoryEntry) error

	// AddRemark appends the entry without changing the shipment status;
	// the entry carries a snapshot of the current status.
	AddRemark(ctx context.Context, shipmentID uuid.UUID, entry *HistoryEntry) error

	UpdateFreightCost(ctx context.Context, shipmentID uuid.UUID, cost decimal.Decimal) error

	Delete(ctx context.Context, shipmentID uuid.UUID) error

	Statistics(ctx context.Context) (*Statistics, error)
}
