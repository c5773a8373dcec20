package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionKey is the gin context key holding the session ID
const SessionKey = "session_id"

// SessionConfig holds session cookie settings
type SessionConfig struct {
	CookieName string
	MaxAge     int
	Secure     bool
}

// Session identifies the browser session that owns the cart and the
// scroll-spy state. A missing or malformed cookie gets a fresh UUID;
// the cookie is re-issued on every request to slide its expiry.
func Session(cfg SessionConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(cfg.CookieName)
		if err != nil || uuid.Validate(sessionID) != nil {
			sessionID = uuid.NewString()
		}

		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(cfg.CookieName, sessionID, cfg.MaxAge, "/", "", cfg.Secure, true)
		c.Set(SessionKey, sessionID)

		c.Next()
	}
}

// GetSessionID returns the session ID set by the Session middleware
func GetSessionID(c *gin.Context) string {
	return c.GetString(SessionKey)
}
