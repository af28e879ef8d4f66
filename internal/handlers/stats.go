package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gymbook/gymbook-backend/internal/booking"
	"github.com/gymbook/gymbook-backend/internal/models"
	"github.com/gymbook/gymbook-backend/internal/services"
)

// GetBookingStats serves the admin dashboard aggregates with a short-lived
// Redis cache in front of the ledger.
func GetBookingStats(ledger *booking.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := actorFrom(c)
		if actor.Role != models.RoleAdmin {
			c.JSON(403, gin.H{"error": "Admins only"})
			return
		}

		var cached booking.Stats
		hit, err := services.GetCachedStats(c.Request.Context(), &cached)
		if err == nil && hit {
			c.JSON(200, cached)
			return
		}

		topN, _ := strconv.Atoi(c.DefaultQuery("top", "5"))
		stats, err := ledger.GetStats(c.Request.Context(), topN)
		if err != nil {
			respondError(c, err)
			return
		}

		services.CacheStats(c.Request.Context(), stats)
		c.JSON(200, stats)
	}
}
