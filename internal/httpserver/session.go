package httpserver

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	sessionCookie = "nautiq_session"
	sessionCtxKey = "sessionID"
	sessionMaxAge = 30 * 24 * time.Hour
)

// sessionMiddleware resolves the caller's cart session: an explicit
// X-Session-ID header wins, then the session cookie; otherwise a new id is
// minted and set as a cookie.
func sessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sid := strings.TrimSpace(c.GetHeader("X-Session-ID"))
		if sid == "" {
			if v, err := c.Cookie(sessionCookie); err == nil {
				sid = v
			}
		}
		if sid == "" {
			sid = uuid.NewString()
			c.SetCookie(sessionCookie, sid, int(sessionMaxAge.Seconds()), "/", "", false, true)
		}
		c.Set(sessionCtxKey, sid)
		c.Next()
	}
}

func sessionID(c *gin.Context) string {
	return c.GetString(sessionCtxKey)
}
