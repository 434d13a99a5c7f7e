package shipment

import (
	"fmt"
	"strings"

	domainShipment "shipment-tracker/internal/domain/shipment"
	appErrors "shipment-tracker/pkg/errors"
)

// ValidateCreateRequest checks the presence of every required field and
// enumerates the missing ones in a single error, so a caller can fix the
// request in one round trip.
func ValidateCreateRequest(req *CreateShipmentRequest) error {
	required := []struct {
		name  string
		value string
	}{
		{"sender_name", req.SenderName},
		{"sender_phone", req.SenderPhone},
		{"sender_address", req.SenderAddress},
		{"recipient_name", req.RecipientName},
		{"recipient_phone", req.RecipientPhone},
		{"delivery_address", req.DeliveryAddress},
		{"origin", req.Origin},
		{"destination", req.Destination},
		{"remark", req.Remark},
	}

	var missing []string
	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			missing = append(missing, field.name)
		}
	}

	if len(missing) > 0 {
		return appErrors.NewAppError(
			"VALIDATION_ERROR",
			fmt.Sprintf("Missing required fields: %s", strings.Join(missing, ", ")),
			nil,
		)
	}

	if req.Status != "" && !domainShipment.Status(req.Status).Valid() {
		return appErrors.NewAppError("VALIDATION_ERROR", "Invalid status", domainShipment.ErrInvalidStatus)
	}
	if req.ShipmentType != "" && !domainShipment.ShipmentType(req.ShipmentType).Valid() {
		return appErrors.NewAppError("VALIDATION_ERROR", "Invalid shipment type", domainShipment.ErrInvalidShipmentType)
	}
	if req.PaymentMode != "" && !domainShipment.PaymentMode(req.PaymentMode).Valid() {
		return appErrors.NewAppError("VALIDATION_ERROR", "Invalid payment mode", domainShipment.ErrInvalidPaymentMode)
	}
	if req.FreightCost != nil && req.FreightCost.IsNegative() {
		return appErrors.NewAppError("VALIDATION_ERROR", "Freight cost cannot be negative", domainShipment.ErrNegativeFreightCost)
	}

	return nil
}

// ValidateRemark enforces the mandatory-justification rule for every
// user-initiated history append.
func ValidateRemark(remark string) error {
	if strings.TrimSpace(remark) == "" {
		return appErrors.NewAppError("VALIDATION_ERROR", "Remark is required", domainShipment.ErrRemarkRequired)
	}
	return nil
}

// ValidateStatus rejects statuses outside the closed set. Transitions inside
// the set are deliberately unrestricted: any status may follow any other.
func ValidateStatus(status string) error {
	if !domainShipment.Status(status).Valid() {
		return appErrors.NewAppError("VALIDATION_ERROR", "Invalid status", domainShipment.ErrInvalidStatus)
	}
	return nil
}
