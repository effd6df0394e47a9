package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/rapcars/rental-backend/internal/services"
)

// WebSocketHandler upgrades the connection and hands it to the hub.
// Auth middleware already resolved the user from the token query param.
func WebSocketHandler(hub *services.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.MustGet("userId").(uint)
		role := c.MustGet("role").(string)
		services.HandleWebSocket(hub, c.Writer, c.Request, userID, role)
	}
}
