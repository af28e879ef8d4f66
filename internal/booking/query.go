package booking

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/gymbook/gymbook-backend/internal/models"
)

const (
	defaultPageLimit = 10
	maxPageLimit     = 100
)

// Ordering variants: admin listings show newest bookings first, while the
// member and trainer views read chronologically. Slot times are stored in
// display form, so chronological ordering parses them server side.
const (
	orderNewestFirst   = "created_at DESC"
	orderChronological = "booking_date ASC, to_timestamp(booking_time, 'HH12:MI AM') ASC"
)

// Filter is the one query shape shared by every finder. Zero values mean
// "not filtered".
type Filter struct {
	Status    string `form:"status"`
	MemberID  uint   `form:"memberId"`
	TrainerID uint   `form:"trainerId"`
	DateFrom  string `form:"dateFrom"`
	DateTo    string `form:"dateTo"`
	Search    string `form:"search"`
	Page      int    `form:"page"`
	Limit     int    `form:"limit"`
}

func (f *Filter) normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = defaultPageLimit
	}
	if f.Limit > maxPageLimit {
		f.Limit = maxPageLimit
	}
}

type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

func NewPagination(page, limit int, total int64) Pagination {
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return Pagination{Page: page, Limit: limit, Total: total, TotalPages: totalPages}
}

type BookingPage struct {
	Items      []models.Booking `json:"items"`
	Pagination Pagination       `json:"pagination"`
}

// applyFilter translates a Filter into one parametrized query. All finder
// variants go through here so the three listing paths cannot drift apart.
func applyFilter(db *gorm.DB, f Filter) *gorm.DB {
	q := db.Model(&models.Booking{})
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.MemberID != 0 {
		q = q.Where("member_id = ?", f.MemberID)
	}
	if f.TrainerID != 0 {
		q = q.Where("trainer_id = ?", f.TrainerID)
	}
	if f.DateFrom != "" {
		q = q.Where("booking_date >= ?", f.DateFrom)
	}
	if f.DateTo != "" {
		q = q.Where("booking_date <= ?", f.DateTo)
	}
	if f.Search != "" {
		like := "%" + f.Search + "%"
		q = q.Where(
			"booking_number ILIKE ? OR member_name ILIKE ? OR trainer_name ILIKE ? OR service_name ILIKE ?",
			like, like, like, like)
	}
	return q
}

func (l *Ledger) FindByID(ctx context.Context, id uint) (*models.Booking, error) {
	var booking models.Booking
	err := l.db.WithContext(ctx).First(&booking, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: booking %d", ErrNotFound, id)
	}
	if err != nil {
		return nil, persistf("load booking", err)
	}
	return &booking, nil
}

// FindAll is the admin listing, newest created first.
func (l *Ledger) FindAll(ctx context.Context, f Filter) (*BookingPage, error) {
	return l.findPage(ctx, f, orderNewestFirst)
}

// FindByMember lists one member's bookings in chronological order.
func (l *Ledger) FindByMember(ctx context.Context, memberID uint, f Filter) (*BookingPage, error) {
	f.MemberID = memberID
	return l.findPage(ctx, f, orderChronological)
}

// FindByTrainer lists one trainer's bookings in chronological order.
func (l *Ledger) FindByTrainer(ctx context.Context, trainerID uint, f Filter) (*BookingPage, error) {
	f.TrainerID = trainerID
	return l.findPage(ctx, f, orderChronological)
}

func (l *Ledger) findPage(ctx context.Context, f Filter, order string) (*BookingPage, error) {
	f.normalize()

	var total int64
	if err := applyFilter(l.db.WithContext(ctx), f).Count(&total).Error; err != nil {
		return nil, persistf("count bookings", err)
	}

	items := []models.Booking{}
	err := applyFilter(l.db.WithContext(ctx), f).
		Order(order).
		Offset((f.Page - 1) * f.Limit).
		Limit(f.Limit).
		Find(&items).Error
	if err != nil {
		return nil, persistf("list bookings", err)
	}

	return &BookingPage{Items: items, Pagination: NewPagination(f.Page, f.Limit, total)}, nil
}

// GetHistory returns the full ordered audit trail for a booking, including
// soft-deleted bookings: the trail outlives the default listing visibility.
func (l *Ledger) GetHistory(ctx context.Context, bookingID uint) ([]models.BookingHistoryEntry, error) {
	var count int64
	err := l.db.WithContext(ctx).Unscoped().
		Model(&models.Booking{}).
		Where("id = ?", bookingID).
		Count(&count).Error
	if err != nil {
		return nil, persistf("load booking", err)
	}
	if count == 0 {
		return nil, fmt.Errorf("%w: booking %d", ErrNotFound, bookingID)
	}

	entries := []models.BookingHistoryEntry{}
	err = l.db.WithContext(ctx).
		Where("booking_id = ?", bookingID).
		Order("changed_at ASC, id ASC").
		Find(&entries).Error
	if err != nil {
		return nil, persistf("load history", err)
	}
	return entries, nil
}
