// internal/interfaces/http/handlers/export.go
package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/novagallery/gallery-backend/internal/domain/activity"
	"github.com/novagallery/gallery-backend/internal/domain/order"
	"github.com/novagallery/gallery-backend/internal/pkg/export"
)

// ExportHandler serves the admin CSV downloads
type ExportHandler struct {
	orderService    *order.Service
	activityService *activity.Service
}

// NewExportHandler creates a new export handler
func NewExportHandler(orderService *order.Service, activityService *activity.Service) *ExportHandler {
	return &ExportHandler{
		orderService:    orderService,
		activityService: activityService,
	}
}

// ExportOrders handles GET /admin/orders/export
func (h *ExportHandler) ExportOrders(c *gin.Context) {
	orders, err := h.orderService.ListOrders(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve orders",
		})
		return
	}

	buf, err := export.OrdersCSV(orders)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to export orders",
		})
		return
	}

	h.writeCSV(c, "orders", buf.Bytes())
}

// ExportLogs handles GET /admin/logs/export
func (h *ExportHandler) ExportLogs(c *gin.Context) {
	logs, err := h.activityService.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve activity logs",
		})
		return
	}

	buf, err := export.LogsCSV(logs)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to export activity logs",
		})
		return
	}

	h.writeCSV(c, "activity-logs", buf.Bytes())
}

func (h *ExportHandler) writeCSV(c *gin.Context, name string, data []byte) {
	filename := fmt.Sprintf("%s-%s.csv", name, time.Now().Format("2006-01-02"))

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))

	c.Data(http.StatusOK, "text/csv", data)
}
