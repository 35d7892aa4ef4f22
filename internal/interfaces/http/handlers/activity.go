// internal/interfaces/http/handlers/activity.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/novagallery/gallery-backend/internal/domain/activity"
)

// ActivityHandler serves the admin audit trail
type ActivityHandler struct {
	activityService *activity.Service
}

// NewActivityHandler creates a new activity handler
func NewActivityHandler(activityService *activity.Service) *ActivityHandler {
	return &ActivityHandler{
		activityService: activityService,
	}
}

// GetLogs handles GET /admin/logs
func (h *ActivityHandler) GetLogs(c *gin.Context) {
	logs, err := h.activityService.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve activity logs",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Activity logs retrieved successfully",
		"data":    logs,
	})
}
