package models

import (
	"time"

	"gorm.io/gorm"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusNoShow    BookingStatus = "no-show"
	BookingStatusDeleted   BookingStatus = "deleted"
)

type PaymentStatus string

const (
	PaymentStatusUnpaid   PaymentStatus = "unpaid"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusRefunded PaymentStatus = "refunded"
	PaymentStatusFailed   PaymentStatus = "failed"
)

// legalTransitions holds the allowed lifecycle moves. Soft delete is not
// listed here: it is an administrative action that bypasses the lifecycle
// and is recorded as its own history action.
var legalTransitions = map[BookingStatus][]BookingStatus{
	BookingStatusPending:   {BookingStatusConfirmed, BookingStatusCancelled},
	BookingStatusConfirmed: {BookingStatusCompleted, BookingStatusCancelled, BookingStatusNoShow},
}

// CanTransition reports whether a booking in status from may move to status to.
func CanTransition(from, to BookingStatus) bool {
	for _, allowed := range legalTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// IsActive reports whether the status still holds a claim on a slot.
func (s BookingStatus) IsActive() bool {
	return s == BookingStatusPending || s == BookingStatusConfirmed
}

func ValidPaymentStatus(s PaymentStatus) bool {
	switch s {
	case PaymentStatusUnpaid, PaymentStatusPaid, PaymentStatusRefunded, PaymentStatusFailed:
		return true
	}
	return false
}

type Booking struct {
	gorm.Model
	BookingNumber string `json:"bookingNumber" gorm:"uniqueIndex;not null"`
	MemberID      uint   `json:"memberId" gorm:"not null;index"`
	TrainerID     uint   `json:"trainerId" gorm:"not null;index"`
	ServiceID     uint   `json:"serviceId" gorm:"not null"`

	// Display fields are captured at creation time so listings stay stable
	// even if the directories change later.
	ServiceName string `json:"serviceName"`
	TrainerName string `json:"trainerName"`
	MemberName  string `json:"memberName"`
	MemberEmail string `json:"memberEmail"`

	BookingDate     string `json:"bookingDate" gorm:"not null;index"`
	BookingTime     string `json:"bookingTime" gorm:"not null"`
	DurationMinutes int    `json:"durationMinutes" gorm:"not null;default:60"`
	SessionType     string `json:"sessionType"`

	Status        BookingStatus `json:"status" gorm:"not null;default:'pending'"`
	PaymentStatus PaymentStatus `json:"paymentStatus" gorm:"not null;default:'unpaid'"`
	PaymentMethod string        `json:"paymentMethod"`
	TransactionID string        `json:"transactionId"`
	Amount        float64       `json:"amount"`

	Notes              string `json:"notes"`
	SpecialRequests    string `json:"specialRequests"`
	RescheduleCount    int    `json:"rescheduleCount" gorm:"not null;default:0"`
	CancellationReason string `json:"cancellationReason"`

	CancelledAt *time.Time `json:"cancelledAt"`
	CompletedAt *time.Time `json:"completedAt"`
}
