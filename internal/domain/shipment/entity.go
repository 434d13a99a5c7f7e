package shipment

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Status represents the current status of a shipment
type Status string

const (
	StatusPending        Status = "pending"          // Initial status on creation
	StatusPickedUp       Status = "picked up"        // Carrier has collected the package
	StatusInTransit      Status = "in transit"       // Moving between facilities
	StatusOnHold         Status = "on hold"          // Held at a facility
	StatusOutForDelivery Status = "out for delivery" // Final-mile delivery in progress
	StatusDelivered      Status = "delivered"        // Terminal status
)

// AllStatuses is the closed set of statuses a shipment may hold.
var AllStatuses = []Status{
	StatusPending,
	StatusPickedUp,
	StatusInTransit,
	StatusOnHold,
	StatusOutForDelivery,
	StatusDelivered,
}

// Valid reports whether s belongs to the closed status set.
func (s Status) Valid() bool {
	for _, known := range AllStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Active reports whether s counts as an in-flight status. Everything
// between creation and delivery is active.
func (s Status) Active() bool {
	return s.Valid() && s != StatusPending && s != StatusDelivered
}

// ShipmentType represents the transport mode
type ShipmentType string

const (
	TypeAir   ShipmentType = "AIR"
	TypeRoad  ShipmentType = "ROAD"
	TypeWater ShipmentType = "WATER"
	TypeRail  ShipmentType = "RAIL"
)

func (t ShipmentType) Valid() bool {
	switch t {
	case TypeAir, TypeRoad, TypeWater, TypeRail:
		return true
	}
	return false
}

// PaymentMode represents how freight is paid for
type PaymentMode string

const (
	PaymentCash         PaymentMode = "cash"
	PaymentBankTransfer PaymentMode = "bank transfer"
	PaymentCard         PaymentMode = "card"
	PaymentMobileMoney  PaymentMode = "mobile money"
)

func (p PaymentMode) Valid() bool {
	switch p {
	case PaymentCash, PaymentBankTransfer, PaymentCard, PaymentMobileMoney:
		return true
	}
	return false
}

// Party holds the identity of a sender or recipient
type Party struct {
	Name    string
	Email   *string
	Phone   string
	Address string
}

// Package holds the physical attributes of the consignment
type Package struct {
	Type        string
	Status      string
	Product     string
	Quantity    int
	PieceType   string
	Description string
	Length      *float64
	Width       *float64
	Height      *float64
	Weight      *float64
}

// Shipment represents a trackable consignment, keyed externally by its
// tracking number. History is an append-only log; entries are never
// edited or removed after the fact.
type Shipment struct {
	ID             uuid.UUID
	TrackingNumber string

	Sender    Party
	Recipient Party

	Origin       string
	Destination  string
	Carrier      string
	ShipmentType ShipmentType
	Package      Package

	PaymentMode PaymentMode
	FreightCost decimal.Decimal

	ExpectedDelivery *time.Time
	DepartureDate    *time.Time
	PickupDate       *time.Time

	Status Status
	Remark string

	History []HistoryEntry

	CreatedBy *uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HistoryEntry is one immutable audit event in a shipment's tracking log.
type HistoryEntry struct {
	ID         uuid.UUID
	ShipmentID uuid.UUID
	Status     Status
	Location   string
	Message    string
	Remark     string
	Timestamp  time.Time
}

// Statistics represents aggregate counts across all shipments
type Statistics struct {
	Total     int
	Active    int
	Delivered int
	Pending   int
	Recent    []*Shipment
}
