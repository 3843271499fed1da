package handlers

import (
	"net/http"

	"github.com/osenco/osen-wc-tingg/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware guards the merchant-facing checkout endpoints. The payment
// webhook stays open because the gateway calls it directly.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		clientID, err := utils.ExtractClientIDFromToken(c.GetHeader("Authorization"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		c.Set("client_id", clientID)
		c.Next()
	}
}
