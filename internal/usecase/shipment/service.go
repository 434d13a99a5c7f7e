package shipment

import (
	"context"
	"fmt"
	"time"

	domainShipment "shipment-tracker/internal/domain/shipment"
	"shipment-tracker/internal/events"
	"shipment-tracker/internal/logger"
	appErrors "shipment-tracker/pkg/errors"
	"shipment-tracker/pkg/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Service implements the shipment lifecycle use cases
type Service struct {
	repo      domainShipment.Repository
	generator *NumberGenerator
	notifier  events.Notifier
}

// NewService creates a new shipment service
func NewService(repo domainShipment.Repository, generator *NumberGenerator, notifier events.Notifier) *Service {
	if notifier == nil {
		notifier = events.NoopNotifier{}
	}
	return &Service{
		repo:      repo,
		generator: generator,
		notifier:  notifier,
	}
}

// Create persists a new shipment with exactly one synthesized history entry.
// When the caller supplies no tracking number one is minted; a supplied
// number that collides fails with ErrDuplicateTrackingNumber.
func (s *Service) Create(ctx context.Context, createdBy uuid.UUID, req *CreateShipmentRequest) (*ShipmentResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}
	if err := ValidateCreateRequest(req); err != nil {
		return nil, err
	}

	trackingNumber := req.TrackingNumber
	if trackingNumber == "" {
		generated, err := s.generator.Generate(ctx)
		if err != nil {
			return nil, err
		}
		trackingNumber = generated
	}

	status := domainShipment.StatusPending
	if req.Status != "" {
		status = domainShipment.Status(req.Status)
	}

	freightCost := decimal.Zero
	if req.FreightCost != nil {
		freightCost = *req.FreightCost
	}

	now := time.Now()
	remark := utils.SanitizeText(req.Remark)

	shipment := &domainShipment.Shipment{
		TrackingNumber: trackingNumber,
		Sender: domainShipment.Party{
			Name:    req.SenderName,
			Email:   req.SenderEmail,
			Phone:   utils.SanitizePhone(req.SenderPhone),
			Address: req.SenderAddress,
		},
		Recipient: domainShipment.Party{
			Name:    req.RecipientName,
			Email:   req.RecipientEmail,
			Phone:   utils.SanitizePhone(req.RecipientPhone),
			Address: req.DeliveryAddress,
		},
		Origin:       req.Origin,
		Destination:  req.Destination,
		Carrier:      req.Carrier,
		ShipmentType: domainShipment.ShipmentType(req.ShipmentType),
		Package: domainShipment.Package{
			Type:        req.PackageType,
			Status:      req.PackageStatus,
			Product:     req.Product,
			Quantity:    req.Quantity,
			PieceType:   req.PieceType,
			Description: req.PackageDescription,
			Length:      req.Length,
			Width:       req.Width,
			Height:      req.Height,
			Weight:      req.Weight,
		},
		PaymentMode:      domainShipment.PaymentMode(req.PaymentMode),
		FreightCost:      freightCost,
		ExpectedDelivery: req.ExpectedDelivery,
		DepartureDate:    req.DepartureDate,
		PickupDate:       req.PickupDate,
		Status:           status,
		Remark:           remark,
		CreatedBy:        &createdBy,
		History: []domainShipment.HistoryEntry{
			{
				Status:    status,
				Location:  req.Origin,
				Message:   "Shipment created",
				Remark:    remark,
				Timestamp: now,
			},
		},
	}

	if err := s.repo.Create(ctx, shipment); err != nil {
		return nil, err
	}

	logger.Info("Shipment created",
		zap.String("shipment_id", shipment.ID.String()),
		zap.String("tracking_number", shipment.TrackingNumber),
		zap.String("status", string(shipment.Status)),
		zap.String("created_by", createdBy.String()),
		zap.String("event", "shipment_created"),
	)

	return ToShipmentResponse(shipment), nil
}

// UpdateStatus appends exactly one history entry and moves the
// shipment-level status, remark and updated_at along with it. The remark
// is mandatory; location falls back to the shipment's origin and the
// message is synthesized when absent.
func (s *Service) UpdateStatus(ctx context.Context, shipmentID uuid.UUID, req *UpdateStatusRequest) (*ShipmentResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}
	if err := ValidateStatus(req.Status); err != nil {
		return nil, err
	}
	if err := ValidateRemark(req.Remark); err != nil {
		return nil, err
	}

	current, err := s.repo.GetByID(ctx, shipmentID)
	if err != nil {
		return nil, err
	}

	location := req.Location
	if location == "" {
		location = current.Origin
	}
	message := req.Message
	if message == "" {
		message = fmt.Sprintf("Status updated to %s", req.Status)
	}

	entry := &domainShipment.HistoryEntry{
		Status:    domainShipment.Status(req.Status),
		Location:  utils.SanitizeText(location),
		Message:   utils.SanitizeText(message),
		Remark:    utils.SanitizeText(req.Remark),
		Timestamp: time.Now(),
	}

	if err := s.repo.UpdateStatus(ctx, shipmentID, entry); err != nil {
		return nil, err
	}

	s.notifier.NotifyStatusChange(events.StatusEvent{
		TrackingNumber: current.TrackingNumber,
		Status:         string(entry.Status),
		Location:       entry.Location,
		OccurredAt:     entry.Timestamp,
	})

	logger.Info("Shipment status updated",
		zap.String("shipment_id", shipmentID.String()),
		zap.String("tracking_number", current.TrackingNumber),
		zap.String("from_status", string(current.Status)),
		zap.String("to_status", string(entry.Status)),
		zap.String("event", "shipment_status_updated"),
	)

	return s.getResponse(ctx, shipmentID)
}

// AddRemark appends a history entry carrying a snapshot of the current
// status, without changing it.
func (s *Service) AddRemark(ctx context.Context, shipmentID uuid.UUID, req *AddRemarkRequest) (*ShipmentResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}
	if err := ValidateRemark(req.Remark); err != nil {
		return nil, err
	}

	current, err := s.repo.GetByID(ctx, shipmentID)
	if err != nil {
		return nil, err
	}

	location := req.Location
	if location == "" {
		location = current.Origin
	}
	message := req.Message
	if message == "" {
		message = "Remark added"
	}

	entry := &domainShipment.HistoryEntry{
		Status:    current.Status,
		Location:  utils.SanitizeText(location),
		Message:   utils.SanitizeText(message),
		Remark:    utils.SanitizeText(req.Remark),
		Timestamp: time.Now(),
	}

	if err := s.repo.AddRemark(ctx, shipmentID, entry); err != nil {
		return nil, err
	}

	logger.Info("Shipment remark added",
		zap.String("shipment_id", shipmentID.String()),
		zap.String("tracking_number", current.TrackingNumber),
		zap.String("event", "shipment_remark_added"),
	)

	return s.getResponse(ctx, shipmentID)
}

// UpdateFreightCost sets the freight cost without touching the history log.
// Absent values coerce to zero; negative values are rejected.
func (s *Service) UpdateFreightCost(ctx context.Context, shipmentID uuid.UUID, req *UpdateFreightCostRequest) (*ShipmentResponse, error) {
	cost := decimal.Zero
	if req.FreightCost != nil {
		cost = *req.FreightCost
	}
	if cost.IsNegative() {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Freight cost cannot be negative", domainShipment.ErrNegativeFreightCost)
	}

	if err := s.repo.UpdateFreightCost(ctx, shipmentID, cost); err != nil {
		return nil, err
	}

	logger.Info("Shipment freight cost updated",
		zap.String("shipment_id", shipmentID.String()),
		zap.String("freight_cost", cost.String()),
		zap.String("event", "shipment_freight_updated"),
	)

	return s.getResponse(ctx, shipmentID)
}

// GetByTrackingNumber is the public read used by the tracking page.
func (s *Service) GetByTrackingNumber(ctx context.Context, trackingNumber string) (*ShipmentResponse, error) {
	shipment, err := s.repo.GetByTrackingNumber(ctx, trackingNumber)
	if err != nil {
		return nil, err
	}
	return ToShipmentResponse(shipment), nil
}

func (s *Service) GetByID(ctx context.Context, shipmentID uuid.UUID) (*ShipmentResponse, error) {
	return s.getResponse(ctx, shipmentID)
}

func (s *Service) List(ctx context.Context) ([]*ShipmentResponse, error) {
	shipments, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*ShipmentResponse, len(shipments))
	for i, shipment := range shipments {
		responses[i] = ToShipmentResponse(shipment)
	}
	return responses, nil
}

func (s *Service) Delete(ctx context.Context, shipmentID uuid.UUID) error {
	if err := s.repo.Delete(ctx, shipmentID); err != nil {
		return err
	}

	logger.Info("Shipment deleted",
		zap.String("shipment_id", shipmentID.String()),
		zap.String("event", "shipment_deleted"),
	)

	return nil
}

func (s *Service) Statistics(ctx context.Context) (*StatisticsResponse, error) {
	stats, err := s.repo.Statistics(ctx)
	if err != nil {
		return nil, err
	}
	return ToStatisticsResponse(stats), nil
}

func (s *Service) getResponse(ctx context.Context, shipmentID uuid.UUID) (*ShipmentResponse, error) {
	shipment, err := s.repo.GetByID(ctx, shipmentID)
	if err != nil {
		return nil, err
	}
	return ToShipmentResponse(shipment), nil
}
