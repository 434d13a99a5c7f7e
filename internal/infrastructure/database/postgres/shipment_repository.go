package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"shipment-tracker/internal/domain/shipment"
	"shipment-tracker/internal/infrastructure/database/postgres/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ShipmentRepository struct {
	db *DB
}

func NewShipmentRepository(db *DB) *ShipmentRepository {
	return &ShipmentRepository{db: db}
}

func (r *ShipmentRepository) Create(ctx context.Context, s *shipment.Shipment) error {
	s.ID = uuid.New()
	s.CreatedAt = time.Now()
	s.UpdatedAt = s.CreatedAt
	if s.Status == "" {
		s.Status = shipment.StatusPending
	}

	dbModel := toShipmentModel(s)
	for i := range s.History {
		s.History[i].ID = uuid.New()
		s.History[i].ShipmentID = s.ID
		dbModel.History = append(dbModel.History, *toTrackingEventModel(&s.History[i]))
	}

	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return shipment.ErrDuplicateTrackingNumber
		}
		return fmt.Errorf("failed to create shipment: %w", err)
	}

	s.CreatedAt = dbModel.CreatedAt
	s.UpdatedAt = dbModel.UpdatedAt

	return nil
}

func (r *ShipmentRepository) GetByID(ctx context.Context, shipmentID uuid.UUID) (*shipment.Shipment, error) {
	var dbModel models.ShipmentModel
	err := r.db.DB.WithContext(ctx).
		Preload("History", func(db *gorm.DB) *gorm.DB {
			return db.Order("timestamp ASC")
		}).
		Where("id = ?", shipmentID).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, shipment.ErrShipmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get shipment: %w", err)
	}

	return toShipmentEntity(&dbModel), nil
}

func (r *ShipmentRepository) GetByTrackingNumber(ctx context.Context, trackingNumber string) (*shipment.Shipment, error) {
	var dbModel models.ShipmentModel
	err := r.db.DB.WithContext(ctx).
		Preload("History", func(db *gorm.DB) *gorm.DB {
			return db.Order("timestamp ASC")
		}).
		Where("tracking_number = ?", trackingNumber).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, shipment.ErrShipmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get shipment by tracking number: %w", err)
	}

	return toShipmentEntity(&dbModel), nil
}

func (r *ShipmentRepository) ExistsByTrackingNumber(ctx context.Context, trackingNumber string) (bool, error) {
	var count int64
	err := r.db.DB.WithContext(ctx).
		Model(&models.ShipmentModel{}).
		Where("tracking_number = ?", trackingNumber).
		Count(&count).Error

	if err != nil {
		return false, fmt.Errorf("failed to check tracking number: %w", err)
	}

	return count > 0, nil
}

func (r *ShipmentRepository) List(ctx context.Context) ([]*shipment.Shipment, error) {
	var dbModels []models.ShipmentModel
	err := r.db.DB.WithContext(ctx).
		Preload("History", func(db *gorm.DB) *gorm.DB {
			return db.Order("timestamp ASC")
		}).
		Order("created_at DESC").
		Find(&dbModels).Error

	if err != nil {
		return nil, fmt.Errorf("failed to list shipments: %w", err)
	}

	shipments := make([]*shipment.Shipment, len(dbModels))
	for i := range dbModels {
		shipments[i] = toShipmentEntity(&dbModels[i])
	}

	return shipments, nil
}

// UpdateStatus inserts the history row and updates the shipment-level fields
// in one transaction. The history insert never overwrites existing rows, so
// concurrent updates preserve every appended entry.
func (r *ShipmentRepository) UpdateStatus(ctx context.Context, shipmentID uuid.UUID, entry *shipment.HistoryEntry) error {
	return r.db.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.ShipmentModel{}).
			Where("id = ?", shipmentID).
			Updates(map[string]interface{}{
				"status":     string(entry.Status),
				"remark":     entry.Remark,
				"updated_at": entry.Timestamp,
			})

		if result.Error != nil {
			return fmt.Errorf("failed to update shipment status: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return shipment.ErrShipmentNotFound
		}

		entry.ID = uuid.New()
		entry.ShipmentID = shipmentID
		if err := tx.Create(toTrackingEventModel(entry)).Error; err != nil {
			return fmt.Errorf("failed to append tracking event: %w", err)
		}

		return nil
	})
}

// AddRemark appends a history row carrying a snapshot of the current status,
// updating only the shipment-level remark and updated_at.
func (r *ShipmentRepository) AddRemark(ctx context.Context, shipmentID uuid.UUID, entry *shipment.HistoryEntry) error {
	return r.db.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.ShipmentModel{}).
			Where("id = ?", shipmentID).
			Updates(map[string]interface{}{
				"remark":     entry.Remark,
				"updated_at": entry.Timestamp,
			})

		if result.Error != nil {
			return fmt.Errorf("failed to update shipment remark: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return shipment.ErrShipmentNotFound
		}

		entry.ID = uuid.New()
		entry.ShipmentID = shipmentID
		if err := tx.Create(toTrackingEventModel(entry)).Error; err != nil {
			return fmt.Errorf("failed to append tracking event: %w", err)
		}

		return nil
	})
}

func (r *ShipmentRepository) UpdateFreightCost(ctx context.Context, shipmentID uuid.UUID, cost decimal.Decimal) error {
	result := r.db.DB.WithContext(ctx).
		Model(&models.ShipmentModel{}).
		Where("id = ?", shipmentID).
		Updates(map[string]interface{}{
			"freight_cost": cost,
			"updated_at":   time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update freight cost: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return shipment.ErrShipmentNotFound
	}

	return nil
}

func (r *ShipmentRepository) Delete(ctx context.Context, shipmentID uuid.UUID) error {
	result := r.db.DB.WithContext(ctx).
		Where("id = ?", shipmentID).
		Delete(&models.ShipmentModel{})

	if result.Error != nil {
		return fmt.Errorf("failed to delete shipment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return shipment.ErrShipmentNotFound
	}

	return nil
}

func (r *ShipmentRepository) Statistics(ctx context.Context) (*shipment.Statistics, error) {
	stats := &shipment.Statistics{}

	var total int64
	if err := r.db.DB.WithContext(ctx).
		Model(&models.ShipmentModel{}).
		Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count shipments: %w", err)
	}
	stats.Total = int(total)

	var statusCounts []struct {
		Status string
		Count  int
	}
	err := r.db.DB.WithContext(ctx).
		Model(&models.ShipmentModel{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&statusCounts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get status counts: %w", err)
	}

	for _, sc := range statusCounts {
		switch status := shipment.Status(sc.Status); {
		case status == shipment.StatusPending:
			stats.Pending += sc.Count
		case status == shipment.StatusDelivered:
			stats.Delivered += sc.Count
		case status.Active():
			stats.Active += sc.Count
		}
	}

	var recentModels []models.ShipmentModel
	err = r.db.DB.WithContext(ctx).
		Preload("History", func(db *gorm.DB) *gorm.DB {
			return db.Order("timestamp ASC")
		}).
		Order("created_at DESC").
		Limit(5).
		Find(&recentModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get recent shipments: %w", err)
	}

	stats.Recent = make([]*shipment.Shipment, len(recentModels))
	for i := range recentModels {
		stats.Recent[i] = toShipmentEntity(&recentModels[i])
	}

	return stats, nil
}

// Helper functions to convert between domain entities and database models
func toShipmentModel(s *shipment.Shipment) *models.ShipmentModel {
	return &models.ShipmentModel{
		ID:                 s.ID,
		TrackingNumber:     s.TrackingNumber,
		SenderName:         s.Sender.Name,
		SenderEmail:        s.Sender.Email,
		SenderPhone:        s.Sender.Phone,
		SenderAddress:      s.Sender.Address,
		RecipientName:      s.Recipient.Name,
		RecipientEmail:     s.Recipient.Email,
		RecipientPhone:     s.Recipient.Phone,
		RecipientAddress:   s.Recipient.Address,
		Origin:             s.Origin,
		Destination:        s.Destination,
		Carrier:            s.Carrier,
		ShipmentType:       string(s.ShipmentType),
		PackageType:        s.Package.Type,
		PackageStatus:      s.Package.Status,
		Product:            s.Package.Product,
		Quantity:           s.Package.Quantity,
		PieceType:          s.Package.PieceType,
		PackageDescription: s.Package.Description,
		Length:             s.Package.Length,
		Width:              s.Package.Width,
		Height:             s.Package.Height,
		Weight:             s.Package.Weight,
		PaymentMode:        string(s.PaymentMode),
		FreightCost:        s.FreightCost,
		ExpectedDelivery:   s.ExpectedDelivery,
		DepartureDate:      s.DepartureDate,
		PickupDate:         s.PickupDate,
		Status:             string(s.Status),
		Remark:             s.Remark,
		CreatedBy:          s.CreatedBy,
		CreatedAt:          s.CreatedAt,
		UpdatedAt:          s.UpdatedAt,
	}
}

func toShipmentEntity(m *models.ShipmentModel) *shipment.Shipment {
	history := make([]shipment.HistoryEntry, len(m.History))
	for i := range m.History {
		history[i] = *toTrackingEventEntity(&m.History[i])
	}

	return &shipment.Shipment{
		ID:             m.ID,
		TrackingNumber: m.TrackingNumber,
		Sender: shipment.Party{
			Name:    m.SenderName,
			Email:   m.SenderEmail,
			Phone:   m.SenderPhone,
			Address: m.SenderAddress,
		},
		Recipient: shipment.Party{
			Name:    m.RecipientName,
			Email:   m.RecipientEmail,
			Phone:   m.RecipientPhone,
			Address: m.RecipientAddress,
		},
		Origin:       m.Origin,
		Destination:  m.Destination,
		Carrier:      m.Carrier,
		ShipmentType: shipment.ShipmentType(m.ShipmentType),
		Package: shipment.Package{
			Type:        m.PackageType,
			Status:      m.PackageStatus,
			Product:     m.Product,
			Quantity:    m.Quantity,
			PieceType:   m.PieceType,
			Description: m.PackageDescription,
			Length:      m.Length,
			Width:       m.Width,
			Height:      m.Height,
			Weight:      m.Weight,
		},
		PaymentMode:      shipment.PaymentMode(m.PaymentMode),
		FreightCost:      m.FreightCost,
		ExpectedDelivery: m.ExpectedDelivery,
		DepartureDate:    m.DepartureDate,
		PickupDate:       m.PickupDate,
		Status:           shipment.Status(m.Status),
		Remark:           m.Remark,
		History:          history,
		CreatedBy:        m.CreatedBy,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

func toTrackingEventModel(e *shipment.HistoryEntry) *models.TrackingEventModel {
	return &models.TrackingEventModel{
		ID:         e.ID,
		ShipmentID: e.ShipmentID,
		Status:     string(e.Status),
		Location:   e.Location,
		Message:    e.Message,
		Remark:     e.Remark,
		Timestamp:  e.Timestamp,
	}
}

func toTrackingEventEntity(m *models.TrackingEventModel) *shipment.HistoryEntry {
	return &shipment.HistoryEntry{
		ID:         m.ID,
		ShipmentID: m.ShipmentID,
		Status:     shipment.Status(m.Status),
		Location:   m.Location,
		Message:    m.Message,
		Remark:     m.Remark,
		Timestamp:  m.Timestamp,
	}
}
