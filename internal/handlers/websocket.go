package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/gymbook/gymbook-backend/internal/services"
)

// WebSocketHandler attaches a client to the booking event feed
func WebSocketHandler(hub *services.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		actorID := c.GetUint("actorId")
		actorRole := c.GetString("actorRole")

		// Convert Gin's ResponseWriter to http.ResponseWriter
		services.HandleWebSocket(hub, c.Writer, c.Request, actorID, actorRole)
	}
}
