package database

import (
	"github.com/gymbook/gymbook-backend/internal/models"
	"gorm.io/gorm"
)

func RunMigrations(db *gorm.DB) error {
	// Create tables if they don't exist. The composite unique index on
	// availability_slots comes from the model tags and is the store-level
	// exclusivity constraint behind slot claims.
	err := db.AutoMigrate(
		&models.Member{},
		&models.Trainer{},
		&models.GymService{},
		&models.AvailabilitySlot{},
		&models.Booking{},
		&models.BookingHistoryEntry{},
		&models.BookingCounter{},
	)
	if err != nil {
		return err
	}

	// Guard the enum columns at the database level
	db.Exec(`ALTER TABLE bookings DROP CONSTRAINT IF EXISTS bookings_status_check`)
	if err := db.Exec(`ALTER TABLE bookings ADD CONSTRAINT bookings_status_check
		CHECK (status IN ('pending', 'confirmed', 'completed', 'cancelled', 'no-show', 'deleted'))`).Error; err != nil {
		return err
	}

	db.Exec(`ALTER TABLE bookings DROP CONSTRAINT IF EXISTS bookings_payment_status_check`)
	if err := db.Exec(`ALTER TABLE bookings ADD CONSTRAINT bookings_payment_status_check
		CHECK (payment_status IN ('unpaid', 'paid', 'refunded', 'failed'))`).Error; err != nil {
		return err
	}

	return nil
}
