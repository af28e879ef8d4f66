package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gymbook/gymbook-backend/internal/booking"
	"github.com/gymbook/gymbook-backend/internal/models"
)

func actorFrom(c *gin.Context) models.Actor {
	return models.Actor{
		Role: models.ActorRole(c.GetString("actorRole")),
		ID:   c.GetUint("actorId"),
	}
}

func bookingID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid booking id"})
		return 0, false
	}
	return uint(id), true
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, booking.ErrValidation):
		return 400
	case errors.Is(err, booking.ErrNotFound):
		return 404
	case errors.Is(err, booking.ErrSlotUnavailable),
		errors.Is(err, booking.ErrInvalidTransition),
		errors.Is(err, booking.ErrConflict):
		return 409
	default:
		return 500
	}
}

// respondError maps engine error kinds to HTTP statuses so clients can
// branch: a 409 slot conflict means pick another time, not retry.
func respondError(c *gin.Context, err error) {
	status := errorStatus(err)
	if status == 500 {
		c.JSON(500, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
