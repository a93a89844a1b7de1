package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"healthbot/services/factory"
)

// RemindersHandler returns the day's reminder schedule and the next
// upcoming reminder in the bot's timezone.
func RemindersHandler(c *gin.Context) {
	schedule := factory.GetInstance().GetReminderSchedule()
	if schedule == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "reminder schedule not available"})
		return
	}

	now := time.Now()
	c.JSON(http.StatusOK, gin.H{
		"timezone": schedule.Location().String(),
		"next":     schedule.Next(now),
		"today":    schedule.Today(now),
	})
}
