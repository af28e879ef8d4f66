package booking

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// FormatBookingNumber renders the human-readable identifier, e.g.
// "BK202406010001".
func FormatBookingNumber(day string, seq int) string {
	return fmt.Sprintf("BK%s%04d", day, seq)
}

// nextBookingNumber advances the per-day counter row atomically inside the
// caller's transaction. A plain MAX()+1 read would race under concurrent
// same-day creates; the upsert keeps the sequence gap-free and unique.
func nextBookingNumber(tx *gorm.DB, now time.Time) (string, error) {
	day := now.Format("20060102")

	var seq int
	err := tx.Raw(`
		INSERT INTO booking_counters (day, seq)
		VALUES (?, 1)
		ON CONFLICT (day) DO UPDATE SET seq = booking_counters.seq + 1
		RETURNING seq`, day).Scan(&seq).Error
	if err != nil {
		return "", persistf("advance booking counter", err)
	}

	return FormatBookingNumber(day, seq), nil
}
