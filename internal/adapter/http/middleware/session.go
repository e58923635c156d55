package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionContextKey is the gin context key holding the visitor session id.
const SessionContextKey = "session_id"

// Session issues a uuid v4 session cookie when the request carries none (or
// an invalid one) and refreshes its expiry on every request.
func Session(cookieName string, secure bool, ttl time.Duration) gin.HandlerFunc {
	maxAge := int(ttl / time.Second)
	return func(c *gin.Context) {
		id, err := c.Cookie(cookieName)
		if err != nil || !validSessionID(id) {
			id = uuid.NewString()
		}

		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(cookieName, id, maxAge, "/", "", secure, true)
		c.Set(SessionContextKey, id)
		c.Next()
	}
}

// SessionID returns the session id stored by Session, or "" outside it.
func SessionID(c *gin.Context) string {
	return c.GetString(SessionContextKey)
}

func validSessionID(id string) bool {
	id = strings.TrimSpace(id)
	if id == "" {
		return false
	}
	_, err := uuid.Parse(id)
	return err == nil
}
