// internal/interfaces/http/handlers/checkout.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/novagallery/gallery-backend/internal/domain/checkout"
	"github.com/novagallery/gallery-backend/internal/domain/order"
	"github.com/novagallery/gallery-backend/internal/interfaces/http/middleware"
)

// CheckoutHandler drives the checkout flow endpoints
type CheckoutHandler struct {
	checkoutService *checkout.Service
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(checkoutService *checkout.Service) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
	}
}

// GetState handles GET /checkout
func (h *CheckoutHandler) GetState(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)

	response, err := h.checkoutService.GetState(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve checkout state",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Checkout state retrieved successfully",
		"data":    response,
	})
}

// Proceed handles POST /checkout/proceed
func (h *CheckoutHandler) Proceed(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)

	response, err := h.checkoutService.Proceed(c.Request.Context(), sessionID)
	if err != nil {
		h.writeFlowError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Proceeded to buyer details",
		"data":    response,
	})
}

// SubmitDetails handles POST /checkout/details
func (h *CheckoutHandler) SubmitDetails(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)

	var req checkout.DetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	response, err := h.checkoutService.SubmitDetails(c.Request.Context(), sessionID, &req)
	if err != nil {
		h.writeFlowError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Buyer details saved",
		"data":    response,
	})
}

// Back handles POST /checkout/back
func (h *CheckoutHandler) Back(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)

	response, err := h.checkoutService.Back(c.Request.Context(), sessionID)
	if err != nil {
		h.writeFlowError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Stepped back",
		"data":    response,
	})
}

// ConfirmPayment handles POST /checkout/confirm
func (h *CheckoutHandler) ConfirmPayment(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)

	response, err := h.checkoutService.ConfirmPayment(c.Request.Context(), sessionID)
	if err != nil {
		h.writeFlowError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Payment confirmed",
		"data":    response,
	})
}

// Reset handles POST /checkout/reset
func (h *CheckoutHandler) Reset(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)

	response, err := h.checkoutService.Reset(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to reset checkout",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Checkout reset",
		"data":    response,
	})
}

// writeFlowError maps checkout flow errors onto HTTP statuses.
func (h *CheckoutHandler) writeFlowError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, checkout.ErrEmptyCart),
		errors.Is(err, checkout.ErrMissingDetails),
		errors.Is(err, order.ErrTotalMismatch):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
	case errors.Is(err, checkout.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{
			"error": err.Error(),
		})
	case errors.Is(err, checkout.ErrConfirmInFlight):
		c.JSON(http.StatusTooManyRequests, gin.H{
			"error": err.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Checkout operation failed",
		})
	}
}
