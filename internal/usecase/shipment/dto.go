package shipment

import (
	"time"

	domainShipment "shipment-tracker/internal/domain/shipment"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs
type CreateShipmentRequest struct {
	TrackingNumber string `json:"tracking_number" validate:"omitempty,min=6,max=32"`

	SenderName    string  `json:"sender_name"`
	SenderEmail   *string `json:"sender_email" validate:"omitempty,email"`
	SenderPhone   string  `json:"sender_phone"`
	SenderAddress string  `json:"sender_address"`

	RecipientName   string  `json:"recipient_name"`
	RecipientEmail  *string `json:"recipient_email" validate:"omitempty,email"`
	RecipientPhone  string  `json:"recipient_phone"`
	DeliveryAddress string  `json:"delivery_address"`

	Origin       string `json:"origin"`
	Destination  string `json:"destination"`
	Carrier      string `json:"carrier" validate:"omitempty,max=255"`
	ShipmentType string `json:"shipment_type" validate:"omitempty,oneof=AIR ROAD WATER RAIL"`

	PackageType        string   `json:"package_type" validate:"omitempty,max=64"`
	PackageStatus      string   `json:"package_status" validate:"omitempty,max=64"`
	Product            string   `json:"product" validate:"omitempty,max=255"`
	Quantity           int      `json:"quantity" validate:"omitempty,min=0"`
	PieceType          string   `json:"piece_type" validate:"omitempty,max=64"`
	PackageDescription string   `json:"description" validate:"omitempty,max=2000"`
	Length             *float64 `json:"length" validate:"omitempty,min=0"`
	Width              *float64 `json:"width" validate:"omitempty,min=0"`
	Height             *float64 `json:"height" validate:"omitempty,min=0"`
	Weight             *float64 `json:"weight" validate:"omitempty,min=0"`

	PaymentMode string           `json:"payment_mode"`
	FreightCost *decimal.Decimal `json:"freight_cost"`

	ExpectedDelivery *time.Time `json:"expected_delivery"`
	DepartureDate    *time.Time `json:"departure_date"`
	PickupDate       *time.Time `json:"pickup_date"`

	Status string `json:"status"`
	Remark string `json:"remark"`
}

type UpdateStatusRequest struct {
	Status   string `json:"status" validate:"required"`
	Location string `json:"location" validate:"omitempty,max=255"`
	Message  string `json:"message" validate:"omitempty,max=1000"`
	Remark   string `json:"remark"`
}

type AddRemarkRequest struct {
	Remark   string `json:"remark"`
	Location string `json:"location" validate:"omitempty,max=255"`
	Message  string `json:"message" validate:"omitempty,max=1000"`
}

type UpdateFreightCostRequest struct {
	FreightCost *decimal.Decimal `json:"freight_cost"`
}

// Response DTOs
type PartyResponse struct {
	Name    string  `json:"name"`
	Email   *string `json:"email,omitempty"`
	Phone   string  `json:"phone"`
	Address string  `json:"address"`
}

type PackageResponse struct {
	Type        string   `json:"type,omitempty"`
	Status      string   `json:"status,omitempty"`
	Product     string   `json:"product,omitempty"`
	Quantity    int      `json:"quantity"`
	PieceType   string   `json:"piece_type,omitempty"`
	Description string   `json:"description,omitempty"`
	Length      *float64 `json:"length,omitempty"`
	Width       *float64 `json:"width,omitempty"`
	Height      *float64 `json:"height,omitempty"`
	Weight      *float64 `json:"weight,omitempty"`
}

type HistoryEntryResponse struct {
	Status    string    `json:"status"`
	Location  string    `json:"location"`
	Message   string    `json:"message"`
	Remark    string    `json:"remark,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type ShipmentResponse struct {
	ID             uuid.UUID `json:"id"`
	TrackingNumber string    `json:"tracking_number"`

	Sender    PartyResponse `json:"sender"`
	Recipient PartyResponse `json:"recipient"`

	Origin       string `json:"origin"`
	Destination  string `json:"destination"`
	Carrier      string `json:"carrier,omitempty"`
	ShipmentType string `json:"shipment_type,omitempty"`

	Package PackageResponse `json:"package"`

	PaymentMode string          `json:"payment_mode,omitempty"`
	FreightCost decimal.Decimal `json:"freight_cost"`

	ExpectedDelivery *time.Time `json:"expected_delivery,omitempty"`
	DepartureDate    *time.Time `json:"departure_date,omitempty"`
	PickupDate       *time.Time `json:"pickup_date,omitempty"`

	Status  string                 `json:"status"`
	Remark  string                 `json:"remark,omitempty"`
	History []HistoryEntryResponse `json:"history"`

	CreatedBy *uuid.UUID `json:"created_by,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type StatisticsResponse struct {
	Total     int                 `json:"total"`
	Active    int                 `json:"active"`
	Delivered int                 `json:"delivered"`
	Pending   int                 `json:"pending"`
	Recent    []*ShipmentResponse `json:"recent"`
}

func ToShipmentResponse(s *domainShipment.Shipment) *ShipmentResponse {
	history := make([]HistoryEntryResponse, len(s.History))
	for i, entry := range s.History {
		history[i] = HistoryEntryResponse{
			Status:    string(entry.Status),
			Location:  entry.Location,
			Message:   entry.Message,
			Remark:    entry.Remark,
			Timestamp: entry.Timestamp,
		}
	}

	return &ShipmentResponse{
		ID:             s.ID,
		TrackingNumber: s.TrackingNumber,
		Sender: PartyResponse{
			Name:    s.Sender.Name,
			Email:   s.Sender.Email,
			Phone:   s.Sender.Phone,
			Address: s.Sender.Address,
		},
		Recipient: PartyResponse{
			Name:    s.Recipient.Name,
			Email:   s.Recipient.Email,
			Phone:   s.Recipient.Phone,
			Address: s.Recipient.Address,
		},
		Origin:       s.Origin,
		Destination:  s.Destination,
		Carrier:      s.Carrier,
		ShipmentType: string(s.ShipmentType),
		Package: PackageResponse{
			Type:        s.Package.Type,
			Status:      s.Package.Status,
			Product:     s.Package.Product,
			Quantity:    s.Package.Quantity,
			PieceType:   s.Package.PieceType,
			Description: s.Package.Description,
			Length:      s.Package.Length,
			Width:       s.Package.Width,
			Height:      s.Package.Height,
			Weight:      s.Package.Weight,
		},
		PaymentMode:      string(s.PaymentMode),
		FreightCost:      s.FreightCost,
		ExpectedDelivery: s.ExpectedDelivery,
		DepartureDate:    s.DepartureDate,
		PickupDate:       s.PickupDate,
		Status:           string(s.Status),
		Remark:           s.Remark,
		History:          history,
		CreatedBy:        s.CreatedBy,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
}

func ToStatisticsResponse(stats *domainShipment.Statistics) *StatisticsResponse {
	recent := make([]*ShipmentResponse, len(stats.Recent))
	for i, s := range stats.Recent {
		recent[i] = ToShipmentResponse(s)
	}

	return &StatisticsResponse{
		Total:     stats.Total,
		Active:    stats.Active,
		Delivered: stats.Delivered,
		Pending:   stats.Pending,
		Recent:    recent,
	}
}
