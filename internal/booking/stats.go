package booking

import (
	"context"

	"github.com/gymbook/gymbook-backend/internal/models"
)

type NameCount struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

type Stats struct {
	StatusCounts map[models.BookingStatus]int64 `json:"statusCounts"`
	TotalRevenue float64                        `json:"totalRevenue"`
	TopServices  []NameCount                    `json:"topServices"`
	TopTrainers  []NameCount                    `json:"topTrainers"`
}

// GetStats aggregates the ledger for admin dashboards: counts per status,
// paid revenue, and the most-booked services and trainers. Strictly
// read-only; soft-deleted bookings are excluded like everywhere else.
func (l *Ledger) GetStats(ctx context.Context, topN int) (*Stats, error) {
	if topN < 1 {
		topN = 5
	}

	var statusRows []struct {
		Status models.BookingStatus
		Count  int64
	}
	err := l.db.WithContext(ctx).
		Model(&models.Booking{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&statusRows).Error
	if err != nil {
		return nil, persistf("count statuses", err)
	}

	statusCounts := make(map[models.BookingStatus]int64, len(statusRows))
	for _, row := range statusRows {
		statusCounts[row.Status] = row.Count
	}

	var revenue float64
	err = l.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("payment_status = ?", models.PaymentStatusPaid).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&revenue).Error
	if err != nil {
		return nil, persistf("sum revenue", err)
	}

	topServices := []NameCount{}
	err = l.db.WithContext(ctx).
		Model(&models.Booking{}).
		Select("service_name AS name, COUNT(*) AS count").
		Group("service_name").
		Order("count DESC").
		Limit(topN).
		Scan(&topServices).Error
	if err != nil {
		return nil, persistf("rank services", err)
	}

	topTrainers := []NameCount{}
	err = l.db.WithContext(ctx).
		Model(&models.Booking{}).
		Select("trainer_name AS name, COUNT(*) AS count").
		Group("trainer_name").
		Order("count DESC").
		Limit(topN).
		Scan(&topTrainers).Error
	if err != nil {
		return nil, persistf("rank trainers", err)
	}

	return &Stats{
		StatusCounts: statusCounts,
		TotalRevenue: revenue,
		TopServices:  topServices,
		TopTrainers:  topTrainers,
	}, nil
}
