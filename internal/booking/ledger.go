package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/gymbook/gymbook-backend/internal/models"
)

// Ledger is the authoritative booking record and its state machine. Every
// mutating operation runs inside one transaction spanning the booking row,
// the slot claim and the history entry, so a booking is never visible in a
// partially applied state.
type Ledger struct {
	db  *gorm.DB
	dir Directory
	log *zap.Logger
}

func NewLedger(db *gorm.DB, dir Directory, log *zap.Logger) *Ledger {
	return &Ledger{db: db, dir: dir, log: log}
}

// Create books a free slot for a member: it generates the booking number,
// inserts the booking row, claims the slot and appends the created history
// entry atomically. Concurrent creates for the same slot resolve to exactly
// one winner; the rest get ErrSlotUnavailable.
func (l *Ledger) Create(ctx context.Context, req CreateRequest, actor models.Actor) (*models.Booking, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Directory lookups happen before the transaction opens; nothing blocks
	// on an external read while the transaction is held.
	member, err := l.dir.Member(ctx, req.MemberID)
	if err != nil {
		return nil, err
	}
	trainer, err := l.dir.Trainer(ctx, req.TrainerID)
	if err != nil {
		return nil, err
	}
	svc, err := l.dir.Service(ctx, req.ServiceID)
	if err != nil {
		return nil, err
	}

	duration := req.DurationMinutes
	if duration == 0 {
		duration = svc.DurationMinutes
	}
	if duration == 0 {
		duration = 60
	}

	var booking models.Booking
	err = l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var slot models.AvailabilitySlot
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("trainer_id = ? AND available_date = ? AND available_time = ?",
				req.TrainerID, req.BookingDate, req.BookingTime).
			First(&slot).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: no published slot for trainer %d at %s %s",
				ErrNotFound, req.TrainerID, req.BookingDate, req.BookingTime)
		}
		if err != nil {
			return persistf("load slot", err)
		}
		if slot.IsBooked {
			return fmt.Errorf("%w: trainer %d at %s %s",
				ErrSlotUnavailable, req.TrainerID, req.BookingDate, req.BookingTime)
		}

		number, err := nextBookingNumber(tx, time.Now())
		if err != nil {
			return err
		}

		booking = models.Booking{
			BookingNumber:   number,
			MemberID:        req.MemberID,
			TrainerID:       req.TrainerID,
			ServiceID:       req.ServiceID,
			ServiceName:     svc.Name,
			TrainerName:     trainer.Name,
			MemberName:      member.Name,
			MemberEmail:     member.Email,
			BookingDate:     req.BookingDate,
			BookingTime:     req.BookingTime,
			DurationMinutes: duration,
			SessionType:     req.SessionType,
			Status:          models.BookingStatusPending,
			PaymentStatus:   models.PaymentStatusUnpaid,
			Amount:          svc.Price,
			Notes:           req.Notes,
			SpecialRequests: req.SpecialRequests,
		}
		if err := tx.Create(&booking).Error; err != nil {
			return persistf("insert booking", err)
		}

		// Compare-and-swap on is_booked; the row lock above already
		// serializes claimers and the unique slot index is the backstop.
		res := tx.Model(&models.AvailabilitySlot{}).
			Where("id = ? AND is_booked = ?", slot.ID, false).
			Updates(map[string]interface{}{"is_booked": true, "booking_id": booking.ID})
		if res.Error != nil {
			return persistf("claim slot", res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%w: trainer %d at %s %s",
				ErrSlotUnavailable, req.TrainerID, req.BookingDate, req.BookingTime)
		}

		return appendHistory(tx, booking.ID, "created", "", models.BookingStatusPending, actor, "")
	})
	if err != nil {
		return nil, err
	}

	l.log.Info("booking created",
		zap.Uint("booking_id", booking.ID),
		zap.String("booking_number", booking.BookingNumber),
		zap.Uint("member_id", booking.MemberID),
		zap.Uint("trainer_id", booking.TrainerID),
		zap.String("date", booking.BookingDate),
		zap.String("time", booking.BookingTime),
	)

	return &booking, nil
}

// UpdateStatus applies one legal lifecycle transition and records it.
// Cancellation requires a non-empty reason and releases the held slot.
func (l *Ledger) UpdateStatus(ctx context.Context, id uint, newStatus models.BookingStatus, actor models.Actor, reason string) (*models.Booking, error) {
	switch newStatus {
	case models.BookingStatusConfirmed, models.BookingStatusCompleted,
		models.BookingStatusCancelled, models.BookingStatusNoShow:
	case models.BookingStatusDeleted:
		return nil, fmt.Errorf("%w: deleted is only reachable through soft delete", ErrInvalidTransition)
	default:
		return nil, validationf("unknown status %q", newStatus)
	}
	reason = strings.TrimSpace(reason)
	if newStatus == models.BookingStatusCancelled && reason == "" {
		return nil, validationf("cancellation requires a reason")
	}

	var booking models.Booking
	err := l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&booking, id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: booking %d", ErrNotFound, id)
		}
		if err != nil {
			return persistf("load booking", err)
		}

		if !models.CanTransition(booking.Status, newStatus) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, newStatus)
		}

		prev := booking.Status
		now := time.Now()
		notes := ""
		booking.Status = newStatus

		switch newStatus {
		case models.BookingStatusCancelled:
			booking.CancellationReason = reason
			booking.CancelledAt = &now
			notes = reason
			if err := releaseSlot(tx, booking.ID); err != nil {
				return err
			}
		case models.BookingStatusCompleted:
			booking.CompletedAt = &now
		}

		if err := tx.Save(&booking).Error; err != nil {
			return persistf("update booking", err)
		}

		return appendHistory(tx, booking.ID, string(newStatus), prev, newStatus, actor, notes)
	})
	if err != nil {
		return nil, err
	}

	l.log.Info("booking status updated",
		zap.Uint("booking_id", booking.ID),
		zap.String("status", string(booking.Status)),
		zap.String("actor_role", string(actor.Role)),
		zap.Uint("actor_id", actor.ID),
	)

	return &booking, nil
}

// Reschedule moves a booking's claim to a new slot in one atomic step:
// release old slot, claim new slot, update the row, append one rescheduled
// entry. Either all of it commits or none of it does.
func (l *Ledger) Reschedule(ctx context.Context, id uint, newDate, newTime string, actor models.Actor) (*models.Booking, error) {
	newDate, err := NormalizeDate(newDate)
	if err != nil {
		return nil, err
	}
	newTime, err = NormalizeTime(newTime)
	if err != nil {
		return nil, err
	}

	var booking models.Booking
	err = l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&booking, id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: booking %d", ErrNotFound, id)
		}
		if err != nil {
			return persistf("load booking", err)
		}

		if !booking.Status.IsActive() {
			return fmt.Errorf("%w: %s booking cannot be rescheduled", ErrInvalidTransition, booking.Status)
		}
		if booking.BookingDate == newDate && booking.BookingTime == newTime {
			return validationf("reschedule target matches the current slot")
		}

		var newSlot models.AvailabilitySlot
		err = tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("trainer_id = ? AND available_date = ? AND available_time = ?",
				booking.TrainerID, newDate, newTime).
			First(&newSlot).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: no published slot for trainer %d at %s %s",
				ErrNotFound, booking.TrainerID, newDate, newTime)
		}
		if err != nil {
			return persistf("load slot", err)
		}
		if newSlot.IsBooked {
			return fmt.Errorf("%w: trainer %d at %s %s",
				ErrSlotUnavailable, booking.TrainerID, newDate, newTime)
		}

		if err := releaseSlot(tx, booking.ID); err != nil {
			return err
		}

		res := tx.Model(&models.AvailabilitySlot{}).
			Where("id = ? AND is_booked = ?", newSlot.ID, false).
			Updates(map[string]interface{}{"is_booked": true, "booking_id": booking.ID})
		if res.Error != nil {
			return persistf("claim slot", res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%w: trainer %d at %s %s",
				ErrSlotUnavailable, booking.TrainerID, newDate, newTime)
		}

		prev := booking.Status
		notes := fmt.Sprintf("moved from %s %s to %s %s",
			booking.BookingDate, booking.BookingTime, newDate, newTime)

		booking.BookingDate = newDate
		booking.BookingTime = newTime
		booking.RescheduleCount++
		booking.Status = models.BookingStatusConfirmed

		if err := tx.Save(&booking).Error; err != nil {
			return persistf("update booking", err)
		}

		return appendHistory(tx, booking.ID, "rescheduled", prev, models.BookingStatusConfirmed, actor, notes)
	})
	if err != nil {
		return nil, err
	}

	l.log.Info("booking rescheduled",
		zap.Uint("booking_id", booking.ID),
		zap.String("date", booking.BookingDate),
		zap.String("time", booking.BookingTime),
		zap.Int("reschedule_count", booking.RescheduleCount),
	)

	return &booking, nil
}

// Delete soft-deletes a booking: the row and its full history are retained
// for audit, default listings exclude it, and any held slot is released in
// the same transaction so capacity is not lost forever.
func (l *Ledger) Delete(ctx context.Context, id uint, actor models.Actor) error {
	err := l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&booking, id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: booking %d", ErrNotFound, id)
		}
		if err != nil {
			return persistf("load booking", err)
		}

		prev := booking.Status
		if prev.IsActive() {
			if err := releaseSlot(tx, booking.ID); err != nil {
				return err
			}
		}

		booking.Status = models.BookingStatusDeleted
		if err := tx.Save(&booking).Error; err != nil {
			return persistf("update booking", err)
		}
		if err := tx.Delete(&booking).Error; err != nil {
			return persistf("soft delete booking", err)
		}

		return appendHistory(tx, booking.ID, "deleted", prev, models.BookingStatusDeleted, actor, "")
	})
	if err != nil {
		return err
	}

	l.log.Info("booking deleted",
		zap.Uint("booking_id", id),
		zap.String("actor_role", string(actor.Role)),
		zap.Uint("actor_id", actor.ID),
	)

	return nil
}

// UpdatePaymentStatus is the inbound hook for the payment subsystem. The
// booking lifecycle status is untouched; the change is still audited.
func (l *Ledger) UpdatePaymentStatus(ctx context.Context, id uint, status models.PaymentStatus, method, transactionID string) (*models.Booking, error) {
	if !models.ValidPaymentStatus(status) {
		return nil, validationf("unknown payment status %q", status)
	}

	var booking models.Booking
	err := l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&booking, id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: booking %d", ErrNotFound, id)
		}
		if err != nil {
			return persistf("load booking", err)
		}

		booking.PaymentStatus = status
		booking.PaymentMethod = method
		booking.TransactionID = transactionID

		if err := tx.Save(&booking).Error; err != nil {
			return persistf("update booking", err)
		}

		notes := method
		if transactionID != "" {
			notes = fmt.Sprintf("%s (txn %s)", method, transactionID)
		}
		actor := models.Actor{Role: models.RoleSystem}
		return appendHistory(tx, booking.ID, "payment_"+string(status), booking.Status, booking.Status, actor, notes)
	})
	if err != nil {
		return nil, err
	}

	l.log.Info("payment status updated",
		zap.Uint("booking_id", booking.ID),
		zap.String("payment_status", string(booking.PaymentStatus)),
		zap.String("method", method),
	)

	return &booking, nil
}

// releaseSlot frees whichever slot currently references the booking. No row
// matching is not an error: terminal bookings hold no claim.
func releaseSlot(tx *gorm.DB, bookingID uint) error {
	res := tx.Model(&models.AvailabilitySlot{}).
		Where("booking_id = ?", bookingID).
		Updates(map[string]interface{}{"is_booked": false, "booking_id": nil})
	if res.Error != nil {
		return persistf("release slot", res.Error)
	}
	return nil
}

func appendHistory(tx *gorm.DB, bookingID uint, action string, prev, next models.BookingStatus, actor models.Actor, notes string) error {
	entry := models.BookingHistoryEntry{
		BookingID:      bookingID,
		Action:         action,
		PreviousStatus: prev,
		NewStatus:      next,
		ChangedByRole:  actor.Role,
		ChangedByID:    actor.ID,
		Notes:          notes,
		ChangedAt:      time.Now(),
	}
	if err := tx.Create(&entry).Error; err != nil {
		return persistf("append history", err)
	}
	return nil
}
