package models

import (
	"time"
)

// BookingHistoryEntry is one immutable audit record of a booking state
// transition. Rows are only ever inserted, never updated or deleted, so the
// struct deliberately avoids gorm.Model.
type BookingHistoryEntry struct {
	ID             uint          `json:"id" gorm:"primarykey"`
	BookingID      uint          `json:"bookingId" gorm:"not null;index"`
	Action         string        `json:"action" gorm:"not null"`
	PreviousStatus BookingStatus `json:"previousStatus"`
	NewStatus      BookingStatus `json:"newStatus"`
	ChangedByRole  ActorRole     `json:"changedByRole" gorm:"not null"`
	ChangedByID    uint          `json:"changedById"`
	Notes          string        `json:"notes"`
	ChangedAt      time.Time     `json:"changedAt" gorm:"not null"`
}
