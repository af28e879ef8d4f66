package models

import (
	"gorm.io/gorm"
)

// AvailabilitySlot is one unit of bookable trainer capacity. The composite
// unique index on (trainer_id, available_date, available_time) is the
// exclusivity primitive the booking engine relies on.
type AvailabilitySlot struct {
	gorm.Model
	TrainerID     uint   `json:"trainerId" gorm:"not null;uniqueIndex:idx_trainer_slot"`
	AvailableDate string `json:"availableDate" gorm:"not null;uniqueIndex:idx_trainer_slot"`
	AvailableTime string `json:"availableTime" gorm:"not null;uniqueIndex:idx_trainer_slot"`
	IsBooked      bool   `json:"isBooked" gorm:"not null;default:false"`
	BookingID     *uint  `json:"bookingId"`
}
