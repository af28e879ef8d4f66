package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/gymbook/gymbook-backend/internal/booking"
	"github.com/gymbook/gymbook-backend/internal/models"
	"github.com/gymbook/gymbook-backend/internal/services"
)

// UpdatePaymentStatus is the inbound hook for the payment subsystem. The
// engine records the outcome; it never calls out to any gateway itself.
func UpdatePaymentStatus(ledger *booking.Ledger, hub *services.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := bookingID(c)
		if !ok {
			return
		}
		actor := actorFrom(c)
		if actor.Role != models.RoleSystem && actor.Role != models.RoleAdmin {
			c.JSON(403, gin.H{"error": "Unauthorized"})
			return
		}

		var input struct {
			Status        string `json:"status" binding:"required"`
			Method        string `json:"method"`
			TransactionID string `json:"transactionId"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		b, err := ledger.UpdatePaymentStatus(c.Request.Context(), id,
			models.PaymentStatus(input.Status), input.Method, input.TransactionID)
		if err != nil {
			respondError(c, err)
			return
		}

		notifyBooking(hub, b, "payment_"+input.Status)
		c.JSON(200, b)
	}
}
