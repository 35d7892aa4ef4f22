// internal/interfaces/http/middleware/session.go
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionHeader carries the anonymous storefront session identity.
const SessionHeader = "X-Session-ID"

const sessionKey = "session_id"

// SessionID resolves the caller's session identity. A browser without one
// gets a fresh UUID minted and echoed back so it can persist it.
func SessionID() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader(SessionHeader)
		if sessionID == "" {
			sessionID = uuid.New().String()
		}

		c.Set(sessionKey, sessionID)
		c.Header(SessionHeader, sessionID)

		c.Next()
	}
}

// GetSessionID extracts the resolved session identity from gin context
func GetSessionID(c *gin.Context) string {
	return c.GetString(sessionKey)
}
