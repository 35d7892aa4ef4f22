// internal/interfaces/http/handlers/settings.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/novagallery/gallery-backend/internal/domain/settings"
)

// SettingsHandler handles storefront and back-office settings endpoints
type SettingsHandler struct {
	settingsService *settings.Service
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService *settings.Service) *SettingsHandler {
	return &SettingsHandler{
		settingsService: settingsService,
	}
}

// UpdateQRCodeRequest carries the payment QR image location
type UpdateQRCodeRequest struct {
	URL string `json:"url" binding:"required"`
}

// GetStorefrontSettings handles GET /settings/storefront. The storefront needs the
// payment QR, social links and contact block in one round trip.
func (h *SettingsHandler) GetStorefrontSettings(c *gin.Context) {
	ctx := c.Request.Context()

	qr, err := h.settingsService.GetQRCode(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve settings",
		})
		return
	}

	social, err := h.settingsService.GetSocialLinks(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve settings",
		})
		return
	}

	contact, err := h.settingsService.GetContactSettings(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve settings",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Settings retrieved successfully",
		"data": gin.H{
			"qr_code":      qr,
			"social_links": social,
			"contact":      contact,
		},
	})
}

// GetInvoiceSettings handles GET /admin/settings/invoice
func (h *SettingsHandler) GetInvoiceSettings(c *gin.Context) {
	invoiceSettings, err := h.settingsService.GetInvoiceSettings(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve invoice settings",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Invoice settings retrieved successfully",
		"data":    invoiceSettings,
	})
}

// UpdateInvoiceSettings handles PUT /admin/settings/invoice
func (h *SettingsHandler) UpdateInvoiceSettings(c *gin.Context) {
	var req settings.UpdateInvoiceSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	invoiceSettings, err := h.settingsService.UpdateInvoiceSettings(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to update invoice settings",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Invoice settings updated successfully",
		"data":    invoiceSettings,
	})
}

// UpdateQRCode handles PUT /admin/settings/qr
func (h *SettingsHandler) UpdateQRCode(c *gin.Context) {
	var req UpdateQRCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	qr, err := h.settingsService.UpdateQRCode(c.Request.Context(), req.URL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to update QR code",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "QR code updated successfully",
		"data":    qr,
	})
}

// UpdateSocialLinks handles PUT /admin/settings/social
func (h *SettingsHandler) UpdateSocialLinks(c *gin.Context) {
	var req settings.UpdateSocialLinksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	social, err := h.settingsService.UpdateSocialLinks(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to update social links",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Social links updated successfully",
		"data":    social,
	})
}

// UpdateContactSettings handles PUT /admin/settings/contact
func (h *SettingsHandler) UpdateContactSettings(c *gin.Context) {
	var req settings.UpdateContactSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	contact, err := h.settingsService.UpdateContactSettings(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to update contact settings",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Contact settings updated successfully",
		"data":    contact,
	})
}
