package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/gymbook/gymbook-backend/internal/booking"
	"github.com/gymbook/gymbook-backend/internal/models"
	"github.com/gymbook/gymbook-backend/internal/services"
)

// notifyBooking pushes a committed transition to the websocket feed and the
// notification pub/sub channel, then drops stale cache entries. Runs only
// after the transaction committed; failures here are logged by the services
// layer and never affect the ledger.
func notifyBooking(hub *services.Hub, b *models.Booking, action string) {
	hub.SendBookingEvent(services.BookingEvent{
		BookingID:     b.ID,
		BookingNumber: b.BookingNumber,
		MemberID:      b.MemberID,
		TrainerID:     b.TrainerID,
		Status:        string(b.Status),
		BookingDate:   b.BookingDate,
		BookingTime:   b.BookingTime,
		Action:        action,
		Amount:        b.Amount,
	})

	ctx := context.Background()
	services.PublishBookingUpdate(ctx, b.ID, b.BookingNumber, string(b.Status), map[string]interface{}{
		"action":      action,
		"memberId":    b.MemberID,
		"trainerId":   b.TrainerID,
		"bookingDate": b.BookingDate,
		"bookingTime": b.BookingTime,
	})
	services.InvalidateAvailability(ctx, b.TrainerID, b.BookingDate)
	services.InvalidateStats(ctx)
}

// CreateBooking books a slot for a member
func CreateBooking(ledger *booking.Ledger, hub *services.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := actorFrom(c)

		var req booking.CreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		// Members always book for themselves
		if actor.Role == models.RoleMember {
			req.MemberID = actor.ID
		}

		b, err := ledger.Create(c.Request.Context(), req, actor)
		if err != nil {
			respondError(c, err)
			return
		}

		notifyBooking(hub, b, "created")
		c.JSON(201, b)
	}
}

// GetBooking retrieves one booking
func GetBooking(ledger *booking.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := bookingID(c)
		if !ok {
			return
		}
		actor := actorFrom(c)

		b, err := ledger.FindByID(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}

		if actor.Role == models.RoleMember && b.MemberID != actor.ID {
			c.JSON(403, gin.H{"error": "Unauthorized"})
			return
		}
		if actor.Role == models.RoleTrainer && b.TrainerID != actor.ID {
			c.JSON(403, gin.H{"error": "Unauthorized"})
			return
		}

		c.JSON(200, b)
	}
}

// GetMemberBookings lists the calling member's bookings chronologically
func GetMemberBookings(ledger *booking.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := actorFrom(c)
		if actor.Role != models.RoleMember {
			c.JSON(403, gin.H{"error": "Members only"})
			return
		}

		var f booking.Filter
		if err := c.ShouldBindQuery(&f); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		page, err := ledger.FindByMember(c.Request.Context(), actor.ID, f)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(200, page)
	}
}

// GetTrainerBookings lists the calling trainer's bookings chronologically
func GetTrainerBookings(ledger *booking.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := actorFrom(c)
		if actor.Role != models.RoleTrainer {
			c.JSON(403, gin.H{"error": "Trainers only"})
			return
		}

		var f booking.Filter
		if err := c.ShouldBindQuery(&f); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		page, err := ledger.FindByTrainer(c.Request.Context(), actor.ID, f)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(200, page)
	}
}

// GetAllBookings is the admin listing, newest first
func GetAllBookings(ledger *booking.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := actorFrom(c)
		if actor.Role != models.RoleAdmin {
			c.JSON(403, gin.H{"error": "Admins only"})
			return
		}

		var f booking.Filter
		if err := c.ShouldBindQuery(&f); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		page, err := ledger.FindAll(c.Request.Context(), f)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(200, page)
	}
}

// UpdateBookingStatus applies one lifecycle transition
func UpdateBookingStatus(ledger *booking.Ledger, hub *services.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := bookingID(c)
		if !ok {
			return
		}
		actor := actorFrom(c)

		var input struct {
			Status string `json:"status" binding:"required"`
			Reason string `json:"reason"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		current, err := ledger.FindByID(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}

		newStatus := models.BookingStatus(input.Status)
		switch actor.Role {
		case models.RoleAdmin:
		case models.RoleTrainer:
			if current.TrainerID != actor.ID {
				c.JSON(403, gin.H{"error": "Unauthorized"})
				return
			}
		case models.RoleMember:
			// Members may only cancel their own booking
			if current.MemberID != actor.ID || newStatus != models.BookingStatusCancelled {
				c.JSON(403, gin.H{"error": "Unauthorized"})
				return
			}
		default:
			c.JSON(403, gin.H{"error": "Unauthorized"})
			return
		}

		b, err := ledger.UpdateStatus(c.Request.Context(), id, newStatus, actor, input.Reason)
		if err != nil {
			respondError(c, err)
			return
		}

		notifyBooking(hub, b, string(b.Status))
		c.JSON(200, b)
	}
}

// RescheduleBooking moves a booking to a new slot atomically
func RescheduleBooking(ledger *booking.Ledger, hub *services.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := bookingID(c)
		if !ok {
			return
		}
		actor := actorFrom(c)

		var input struct {
			Date string `json:"date" binding:"required"`
			Time string `json:"time" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		current, err := ledger.FindByID(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}
		if actor.Role == models.RoleMember && current.MemberID != actor.ID {
			c.JSON(403, gin.H{"error": "Unauthorized"})
			return
		}
		if actor.Role == models.RoleTrainer && current.TrainerID != actor.ID {
			c.JSON(403, gin.H{"error": "Unauthorized"})
			return
		}
		oldDate := current.BookingDate

		b, err := ledger.Reschedule(c.Request.Context(), id, input.Date, input.Time, actor)
		if err != nil {
			respondError(c, err)
			return
		}

		notifyBooking(hub, b, "rescheduled")
		// The vacated slot's listing changed too
		services.InvalidateAvailability(context.Background(), b.TrainerID, oldDate)
		c.JSON(200, b)
	}
}

// DeleteBooking soft-deletes a booking, keeping the row and its audit trail
func DeleteBooking(ledger *booking.Ledger, hub *services.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := bookingID(c)
		if !ok {
			return
		}
		actor := actorFrom(c)
		if actor.Role != models.RoleAdmin {
			c.JSON(403, gin.H{"error": "Admins only"})
			return
		}

		current, err := ledger.FindByID(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}

		if err := ledger.Delete(c.Request.Context(), id, actor); err != nil {
			respondError(c, err)
			return
		}

		current.Status = models.BookingStatusDeleted
		notifyBooking(hub, current, "deleted")
		c.JSON(200, gin.H{"message": "Booking deleted"})
	}
}

// GetBookingHistory returns the ordered audit trail, including entries of
// soft-deleted bookings
func GetBookingHistory(ledger *booking.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := bookingID(c)
		if !ok {
			return
		}
		actor := actorFrom(c)

		if actor.Role != models.RoleAdmin {
			b, err := ledger.FindByID(c.Request.Context(), id)
			if err != nil {
				respondError(c, err)
				return
			}
			if actor.Role == models.RoleMember && b.MemberID != actor.ID {
				c.JSON(403, gin.H{"error": "Unauthorized"})
				return
			}
			if actor.Role == models.RoleTrainer && b.TrainerID != actor.ID {
				c.JSON(403, gin.H{"error": "Unauthorized"})
				return
			}
		}

		entries, err := ledger.GetHistory(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(200, gin.H{"items": entries})
	}
}
