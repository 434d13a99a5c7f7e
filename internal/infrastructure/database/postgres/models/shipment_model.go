package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ShipmentModel represents the database model for Shipments
type ShipmentModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	TrackingNumber string    `gorm:"type:varchar(32);not null;uniqueIndex"`

	SenderName    string  `gorm:"type:varchar(255);not null"`
	SenderEmail   *string `gorm:"type:varchar(255)"`
	SenderPhone   string  `gorm:"type:varchar(32);not null"`
	SenderAddress string  `gorm:"type:text;not null"`

	RecipientName    string  `gorm:"type:varchar(255);not null"`
	RecipientEmail   *string `gorm:"type:varchar(255)"`
	RecipientPhone   string  `gorm:"type:varchar(32);not null"`
	RecipientAddress string  `gorm:"type:text;not null"`

	Origin       string `gorm:"type:varchar(255);not null"`
	Destination  string `gorm:"type:varchar(255);not null"`
	Carrier      string `gorm:"type:varchar(255)"`
	ShipmentType string `gorm:"type:varchar(16)"`

	PackageType        string   `gorm:"type:varchar(64)"`
	PackageStatus      string   `gorm:"type:varchar(64)"`
	Product            string   `gorm:"type:varchar(255)"`
	Quantity           int      `gorm:"type:integer;default:0"`
	PieceType          string   `gorm:"type:varchar(64)"`
	PackageDescription string   `gorm:"type:text"`
	Length             *float64 `gorm:"type:decimal(8,2)"`
	Width              *float64 `gorm:"type:decimal(8,2)"`
	Height             *float64 `gorm:"type:decimal(8,2)"`
	Weight             *float64 `gorm:"type:decimal(8,2)"`

	PaymentMode string          `gorm:"type:varchar(32)"`
	FreightCost decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`

	ExpectedDelivery *time.Time `gorm:"type:timestamptz"`
	DepartureDate    *time.Time `gorm:"type:timestamptz"`
	PickupDate       *time.Time `gorm:"type:timestamptz"`

	Status string `gorm:"type:varchar(32);not null;default:'pending';index"`
	Remark string `gorm:"type:text"`

	CreatedBy *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt time.Time  `gorm:"not null;index"`
	UpdatedAt time.Time  `gorm:"not null"`

	// Relations
	History []TrackingEventModel `gorm:"foreignKey:ShipmentID;constraint:OnDelete:CASCADE"`
	Creator *UserModel           `gorm:"foreignKey:CreatedBy"`
}

func (ShipmentModel) TableName() string {
	return "shipments"
}

// TrackingEventModel represents one row of a shipment's append-only history log
type TrackingEventModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ShipmentID uuid.UUID `gorm:"type:uuid;not null;index:idx_tracking_events_shipment_ts,priority:1"`
	Status     string    `gorm:"type:varchar(32);not null"`
	Location   string    `gorm:"type:varchar(255)"`
	Message    string    `gorm:"type:text"`
	Remark     string    `gorm:"type:text"`
	Timestamp  time.Time `gorm:"not null;index:idx_tracking_events_shipment_ts,priority:2"`
}

func (TrackingEventModel) TableName() string {
	return "tracking_events"
}
