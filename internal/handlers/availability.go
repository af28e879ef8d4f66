package handlers

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gymbook/gymbook-backend/internal/booking"
	"github.com/gymbook/gymbook-backend/internal/models"
	"github.com/gymbook/gymbook-backend/internal/services"
)

// GetAvailability lists a trainer's slots for one date, cached briefly in
// Redis. The cache only serves listings; claims read the store directly.
func GetAvailability(ledger *booking.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		trainerID, err := strconv.ParseUint(c.Query("trainerId"), 10, 32)
		if err != nil {
			c.JSON(400, gin.H{"error": "Invalid trainerId"})
			return
		}
		date := c.Query("date")

		var cached []booking.SlotView
		hit, err := services.GetCachedAvailability(c.Request.Context(), uint(trainerID), date, &cached)
		if err == nil && hit {
			c.JSON(200, gin.H{"trainerId": trainerID, "date": date, "slots": cached})
			return
		}

		slots, err := ledger.CheckAvailability(c.Request.Context(), uint(trainerID), date)
		if err != nil {
			respondError(c, err)
			return
		}

		services.CacheAvailability(c.Request.Context(), uint(trainerID), date, slots)
		c.JSON(200, gin.H{"trainerId": trainerID, "date": date, "slots": slots})
	}
}

// CreateAvailability publishes open slots for a trainer. Trainers publish
// their own schedule; admins can publish for anyone.
func CreateAvailability(ledger *booking.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := actorFrom(c)

		var input struct {
			TrainerID uint     `json:"trainerId"`
			Date      string   `json:"date" binding:"required"`
			Times     []string `json:"times" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		switch actor.Role {
		case models.RoleTrainer:
			input.TrainerID = actor.ID
		case models.RoleAdmin:
		default:
			c.JSON(403, gin.H{"error": "Unauthorized"})
			return
		}

		created, err := ledger.CreateSlots(c.Request.Context(), input.TrainerID, input.Date, input.Times)
		if err != nil {
			respondError(c, err)
			return
		}

		services.InvalidateAvailability(context.Background(), input.TrainerID, input.Date)
		c.JSON(201, gin.H{"created": created})
	}
}
