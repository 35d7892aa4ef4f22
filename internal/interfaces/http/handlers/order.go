// internal/interfaces/http/handlers/order.go
package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/novagallery/gallery-backend/internal/domain/order"
	"github.com/novagallery/gallery-backend/internal/domain/settings"
	"github.com/novagallery/gallery-backend/internal/pkg/pdf"
)

// OrderHandler handles the admin order ledger endpoints
type OrderHandler struct {
	orderService    *order.Service
	settingsService *settings.Service
	pdfService      *pdf.Service
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *order.Service, settingsService *settings.Service, pdfService *pdf.Service) *OrderHandler {
	return &OrderHandler{
		orderService:    orderService,
		settingsService: settingsService,
		pdfService:      pdfService,
	}
}

// GetOrders handles GET /admin/orders
func (h *OrderHandler) GetOrders(c *gin.Context) {
	orders, err := h.orderService.ListOrders(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve orders",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Orders retrieved successfully",
		"data":    orders,
	})
}

// GetOrder handles GET /admin/orders/:number
func (h *OrderHandler) GetOrder(c *gin.Context) {
	number := c.Param("number")

	o, err := h.orderService.GetOrder(c.Request.Context(), number)
	if err != nil {
		if errors.Is(err, order.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Order not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve order",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order retrieved successfully",
		"data":    o,
	})
}

// VerifyOrder handles POST /admin/orders/:number/verify
func (h *OrderHandler) VerifyOrder(c *gin.Context) {
	number := c.Param("number")

	if err := h.orderService.VerifyOrder(c.Request.Context(), number); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to verify order",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order verified",
	})
}

// GenerateInvoice handles GET /admin/orders/:number/invoice
func (h *OrderHandler) GenerateInvoice(c *gin.Context) {
	number := c.Param("number")

	o, err := h.orderService.GetOrder(c.Request.Context(), number)
	if err != nil {
		if errors.Is(err, order.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Order not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve order",
		})
		return
	}

	invoiceSettings, err := h.settingsService.GetInvoiceSettings(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to load invoice settings",
		})
		return
	}

	pdfBuffer, err := h.pdfService.GenerateInvoice(o, invoiceSettings, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to generate invoice",
		})
		return
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", h.pdfService.Filename(o)))
	c.Header("Content-Length", strconv.Itoa(len(pdfBuffer.Bytes())))

	c.Data(http.StatusOK, "application/pdf", pdfBuffer.Bytes())
}
