package shipment

import "errors"

var (
	ErrShipmentNotFound        = errors.New("shipment not found")
	ErrDuplicateTrackingNumber = errors.New("tracking number already exists")
	ErrGenerationExhausted     = errors.New("could not generate a unique tracking number")
	ErrInvalidStatus           = errors.New("invalid shipment status")
	ErrInvalidShipmentType     = errors.New("invalid shipment type")
	ErrInvalidPaymentMode      = errors.New("invalid payment mode")
	ErrRemarkRequired          = errors.New("remark is required")
	ErrNegativeFreightCost     = errors.New("freight cost cannot be negative")
)
