package booking

import (
	"context"
	"sort"

	"gorm.io/gorm/clause"

	"github.com/gymbook/gymbook-backend/internal/models"
)

type SlotView struct {
	Time     string `json:"time"`
	IsBooked bool   `json:"isBooked"`
}

// CheckAvailability returns a trainer's slots for one date in chronological
// order. Read-only; a slightly stale answer is acceptable, the claim step is
// what must never be stale.
func (l *Ledger) CheckAvailability(ctx context.Context, trainerID uint, date string) ([]SlotView, error) {
	if trainerID == 0 {
		return nil, validationf("trainerId is required")
	}
	date, err := NormalizeDate(date)
	if err != nil {
		return nil, err
	}

	var slots []models.AvailabilitySlot
	err = l.db.WithContext(ctx).
		Where("trainer_id = ? AND available_date = ?", trainerID, date).
		Find(&slots).Error
	if err != nil {
		return nil, persistf("load slots", err)
	}

	sort.Slice(slots, func(i, j int) bool {
		return minutesOfDay(slots[i].AvailableTime) < minutesOfDay(slots[j].AvailableTime)
	})

	views := make([]SlotView, 0, len(slots))
	for _, slot := range slots {
		views = append(views, SlotView{Time: slot.AvailableTime, IsBooked: slot.IsBooked})
	}
	return views, nil
}

// CreateSlots publishes a trainer's open slots for a date. The upsert is
// idempotent: times that already exist are skipped, claimed or not. Returns
// the number of newly created slots.
func (l *Ledger) CreateSlots(ctx context.Context, trainerID uint, date string, times []string) (int, error) {
	if trainerID == 0 {
		return 0, validationf("trainerId is required")
	}
	date, err := NormalizeDate(date)
	if err != nil {
		return 0, err
	}
	if len(times) == 0 {
		return 0, validationf("at least one time is required")
	}

	seen := make(map[string]bool, len(times))
	slots := make([]models.AvailabilitySlot, 0, len(times))
	for _, raw := range times {
		canonical, err := NormalizeTime(raw)
		if err != nil {
			return 0, err
		}
		if seen[canonical] {
			continue
		}
		seen[canonical] = true
		slots = append(slots, models.AvailabilitySlot{
			TrainerID:     trainerID,
			AvailableDate: date,
			AvailableTime: canonical,
		})
	}

	res := l.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "trainer_id"}, {Name: "available_date"}, {Name: "available_time"},
		},
		DoNothing: true,
	}).Create(&slots)
	if res.Error != nil {
		return 0, persistf("create slots", res.Error)
	}

	return int(res.RowsAffected), nil
}
