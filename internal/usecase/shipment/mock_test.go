package shipment

import (
	"context"
	"time"

	domainShipment "shipment-tracker/internal/domain/shipment"
	"shipment-tracker/internal/events"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// mockRepository is an in-memory implementation of the shipment repository
// for testing. It mirrors the store contract: tracking numbers are unique,
// history rows are append-only.
type mockRepository struct {
	shipments map[uuid.UUID]*domainShipment.Shipment

	// existsFunc overrides ExistsByTrackingNumber when set.
	existsFunc  func(trackingNumber string) (bool, error)
	existsCalls int
}

func newMockRepository() *mockRepository {
	return &mockRepository{
		shipments: make(map[uuid.UUID]*domainShipment.Shipment),
	}
}

func (m *mockRepository) Create(_ context.Context, s *domainShipment.Shipment) error {
	for _, existing := range m.shipments {
		if existing.TrackingNumber == s.TrackingNumber {
			return domainShipment.ErrDuplicateTrackingNumber
		}
	}

	s.ID = uuid.New()
	now := time.Now()
	s.CreatedAt = now
	s.UpdatedAt = now
	if s.Status == "" {
		s.Status = domainShipment.StatusPending
	}
	for i := range s.History {
		s.History[i].ID = uuid.New()
		s.History[i].ShipmentID = s.ID
	}

	m.shipments[s.ID] = cloneShipment(s)
	return nil
}

func (m *mockRepository) GetByID(_ context.Context, shipmentID uuid.UUID) (*domainShipment.Shipment, error) {
	s, ok := m.shipments[shipmentID]
	if !ok {
		return nil, domainShipment.ErrShipmentNotFound
	}
	return cloneShipment(s), nil
}

func (m *mockRepository) GetByTrackingNumber(_ context.Context, trackingNumber string) (*domainShipment.Shipment, error) {
	for _, s := range m.shipments {
		if s.TrackingNumber == trackingNumber {
			return cloneShipment(s), nil
		}
	}
	return nil, domainShipment.ErrShipmentNotFound
}

func (m *mockRepository) ExistsByTrackingNumber(_ context.Context, trackingNumber string) (bool, error) {
	m.existsCalls++
	if m.existsFunc != nil {
		return m.existsFunc(trackingNumber)
	}
	for _, s := range m.shipments {
		if s.TrackingNumber == trackingNumber {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockRepository) List(_ context.Context) ([]*domainShipment.Shipment, error) {
	result := make([]*domainShipment.Shipment, 0, len(m.shipments))
	for _, s := range m.shipments {
		result = append(result, cloneShipment(s))
	}
	return result, nil
}

func (m *mockRepository) UpdateStatus(_ context.Context, shipmentID uuid.UUID, entry *domainShipment.HistoryEntry) error {
	s, ok := m.shipments[shipmentID]
	if !ok {
		return domainShipment.ErrShipmentNotFound
	}

	entry.ID = uuid.New()
	entry.ShipmentID = shipmentID
	s.History = append(s.History, *entry)
	s.Status = entry.Status
	s.Remark = entry.Remark
	s.UpdatedAt = entry.Timestamp
	return nil
}

func (m *mockRepository) AddRemark(_ context.Context, shipmentID uuid.UUID, entry *domainShipment.HistoryEntry) error {
	s, ok := m.shipments[shipmentID]
	if !ok {
		return domainShipment.ErrShipmentNotFound
	}

	entry.ID = uuid.New()
	entry.ShipmentID = shipmentID
	s.History = append(s.History, *entry)
	s.Remark = entry.Remark
	s.UpdatedAt = entry.Timestamp
	return nil
}

func (m *mockRepository) UpdateFreightCost(_ context.Context, shipmentID uuid.UUID, cost decimal.Decimal) error {
	s, ok := m.shipments[shipmentID]
	if !ok {
		return domainShipment.ErrShipmentNotFound
	}

	s.FreightCost = cost
	s.UpdatedAt = time.Now()
	return nil
}

func (m *mockRepository) Delete(_ context.Context, shipmentID uuid.UUID) error {
	if _, ok := m.shipments[shipmentID]; !ok {
		return domainShipment.ErrShipmentNotFound
	}
	delete(m.shipments, shipmentID)
	return nil
}

func (m *mockRepository) Statistics(_ context.Context) (*domainShipment.Statistics, error) {
	stats := &domainShipment.Statistics{}
	for _, s := range m.shipments {
		stats.Total++
		switch {
		case s.Status == domainShipment.StatusPending:
			stats.Pending++
		case s.Status == domainShipment.StatusDelivered:
			stats.Delivered++
		case s.Status.Active():
			stats.Active++
		}
	}
	for _, s := range m.shipments {
		stats.Recent = append(stats.Recent, cloneShipment(s))
		if len(stats.Recent) == 5 {
			break
		}
	}
	return stats, nil
}

func cloneShipment(s *domainShipment.Shipment) *domainShipment.Shipment {
	clone := *s
	clone.History = make([]domainShipment.HistoryEntry, len(s.History))
	copy(clone.History, s.History)
	return &clone
}

// recordingNotifier captures published status events.
type recordingNotifier struct {
	published []events.StatusEvent
}

func (n *recordingNotifier) NotifyStatusChange(event events.StatusEvent) {
	n.published = append(n.published, event)
}
