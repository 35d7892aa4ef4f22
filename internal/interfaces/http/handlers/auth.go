// internal/interfaces/http/handlers/auth.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/novagallery/gallery-backend/internal/config"
	"github.com/novagallery/gallery-backend/internal/domain/activity"
	"github.com/novagallery/gallery-backend/internal/domain/settings"
	"github.com/novagallery/gallery-backend/internal/interfaces/http/middleware"
	"github.com/novagallery/gallery-backend/internal/pkg/auth"
)

// AuthHandler handles the single-admin back-office login
type AuthHandler struct {
	settings  *settings.Service
	recorder  activity.Recorder
	jwt       *auth.JWTManager
	passwords *auth.PasswordManager
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(settingsService *settings.Service, recorder activity.Recorder, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		settings:  settingsService,
		recorder:  recorder,
		jwt:       auth.NewJWTManager(cfg),
		passwords: auth.NewPasswordManager(cfg),
	}
}

// LoginRequest represents the admin login payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ChangeCredentialsRequest represents the credential rotation payload
type ChangeCredentialsRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewEmail        string `json:"new_email" binding:"required,email"`
	NewPassword     string `json:"new_password" binding:"required"`
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	credential, err := h.settings.GetAdminCredential(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to verify credentials",
		})
		return
	}

	if req.Email != credential.Email || h.passwords.VerifyPassword(req.Password, credential.PasswordHash) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Invalid email or password",
		})
		return
	}

	token, err := h.jwt.GenerateAccessToken(credential.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to generate token",
		})
		return
	}

	h.recorder.Record(c.Request.Context(), activity.Entry{
		ActionType: activity.ActionAdminLogin,
		Details:    "Admin logged in",
		ActorEmail: credential.Email,
	})

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"data": gin.H{
			"access_token": token,
			"email":        credential.Email,
		},
	})
}

// Logout handles POST /auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	email, _ := middleware.GetAdminEmailFromContext(c)

	h.recorder.Record(c.Request.Context(), activity.Entry{
		ActionType: activity.ActionAdminLogout,
		Details:    "Admin logged out",
		ActorEmail: email,
	})

	c.JSON(http.StatusOK, gin.H{
		"message": "Logout successful",
	})
}

// ChangeCredentials handles PUT /auth/credentials
func (h *AuthHandler) ChangeCredentials(c *gin.Context) {
	var req ChangeCredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	credential, err := h.settings.GetAdminCredential(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to verify credentials",
		})
		return
	}

	if h.passwords.VerifyPassword(req.CurrentPassword, credential.PasswordHash) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Current password is incorrect",
		})
		return
	}

	if err := h.passwords.ValidatePassword(req.NewPassword); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	hash, err := h.passwords.HashPassword(req.NewPassword)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to update credentials",
		})
		return
	}

	if err := h.settings.UpdateAdminCredential(c.Request.Context(), req.NewEmail, hash); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to update credentials",
		})
		return
	}

	// Existing token stays valid until expiry; the client re-authenticates
	// with the new credentials afterwards.
	c.JSON(http.StatusOK, gin.H{
		"message": "Credentials updated successfully",
	})
}
