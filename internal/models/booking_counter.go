package models

// BookingCounter backs the daily booking number sequence. One row per
// calendar day, advanced atomically inside the creating transaction with an
// INSERT ... ON CONFLICT DO UPDATE ... RETURNING statement.
type BookingCounter struct {
	Day string `json:"day" gorm:"primarykey"`
	Seq int    `json:"seq" gorm:"not null"`
}
