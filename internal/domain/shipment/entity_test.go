package shipment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus_Valid(t *testing.T) {
	for _, status := range AllStatuses {
		assert.True(t, status.Valid(), "expected %q to be valid", status)
	}
	assert.False(t, Status("misplaced").Valid())
	assert.False(t, Status("").Valid())
}

func TestStatus_Active(t *testing.T) {
	assert.False(t, StatusPending.Active())
	assert.False(t, StatusDelivered.Active())
	assert.False(t, Status("unknown").Active())

	for _, status := range []Status{StatusPickedUp, StatusInTransit, StatusOnHold, StatusOutForDelivery} {
		assert.True(t, status.Active(), "expected %q to be active", status)
	}
}

func TestShipmentType_Valid(t *testing.T) {
	for _, st := range []ShipmentType{TypeAir, TypeRoad, TypeWater, TypeRail} {
		assert.True(t, st.Valid())
	}
	assert.False(t, ShipmentType("SEA").Valid())
}

func TestPaymentMode_Valid(t *testing.T) {
	for _, mode := range []PaymentMode{PaymentCash, PaymentBankTransfer, PaymentCard, PaymentMobileMoney} {
		assert.True(t, mode.Valid())
	}
	assert.False(t, PaymentMode("barter").Valid())
}
