package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"healthbot/services/accesscontrol"
	"healthbot/services/factory"
)

// StatsHandler returns session statistics. Admin only.
func StatsHandler(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")
	if !accesscontrol.IsAdmin(userID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "admin only"})
		return
	}

	sessionCache := factory.GetInstance().GetSessionCache()
	if sessionCache == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "session cache not available"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"sessions":  sessionCache.GetStats(),
		"date_flag": accesscontrol.GetCurrentDateFlag(),
	})
}
