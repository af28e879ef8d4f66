package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	allowed := []struct {
		from, to BookingStatus
	}{
		{BookingStatusPending, BookingStatusConfirmed},
		{BookingStatusPending, BookingStatusCancelled},
		{BookingStatusConfirmed, BookingStatusCompleted},
		{BookingStatusConfirmed, BookingStatusCancelled},
		{BookingStatusConfirmed, BookingStatusNoShow},
	}
	for _, tc := range allowed {
		assert.True(t, CanTransition(tc.from, tc.to), "%s -> %s should be legal", tc.from, tc.to)
	}

	rejected := []struct {
		from, to BookingStatus
	}{
		{BookingStatusPending, BookingStatusCompleted},
		{BookingStatusPending, BookingStatusNoShow},
		{BookingStatusPending, BookingStatusPending},
		{BookingStatusConfirmed, BookingStatusPending},
		{BookingStatusCompleted, BookingStatusConfirmed},
		{BookingStatusCompleted, BookingStatusCancelled},
		{BookingStatusCancelled, BookingStatusConfirmed},
		{BookingStatusNoShow, BookingStatusCompleted},
		{BookingStatusDeleted, BookingStatusConfirmed},
		{BookingStatusPending, BookingStatusDeleted},
		{BookingStatusConfirmed, BookingStatusDeleted},
	}
	for _, tc := range rejected {
		assert.False(t, CanTransition(tc.from, tc.to), "%s -> %s should be rejected", tc.from, tc.to)
	}
}

func TestStatusIsActive(t *testing.T) {
	assert.True(t, BookingStatusPending.IsActive())
	assert.True(t, BookingStatusConfirmed.IsActive())
	assert.False(t, BookingStatusCompleted.IsActive())
	assert.False(t, BookingStatusCancelled.IsActive())
	assert.False(t, BookingStatusNoShow.IsActive())
	assert.False(t, BookingStatusDeleted.IsActive())
}

func TestValidPaymentStatus(t *testing.T) {
	for _, s := range []PaymentStatus{PaymentStatusUnpaid, PaymentStatusPaid, PaymentStatusRefunded, PaymentStatusFailed} {
		assert.True(t, ValidPaymentStatus(s))
	}
	assert.False(t, ValidPaymentStatus("pending"))
	assert.False(t, ValidPaymentStatus(""))
}

func TestValidRole(t *testing.T) {
	for _, r := range []ActorRole{RoleMember, RoleTrainer, RoleAdmin, RoleSystem} {
		assert.True(t, ValidRole(r))
	}
	assert.False(t, ValidRole("superuser"))
	assert.False(t, ValidRole(""))
}
