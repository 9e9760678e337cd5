package middlewares

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rachitshetty07/Attendance-RCN/attendance/core"
	"github.com/rachitshetty07/Attendance-RCN/web/common"
	"github.com/sirupsen/logrus"
)

const (
	CookieName = "attendance.session"
	sessionKey = "session"
	tokenKey   = "sessionToken"
)

// SessionVerifier resolves a bearer token to a live session.
type SessionVerifier interface {
	Verify(ctx context.Context, token string) (*core.Session, error)
}

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		cookie, err := c.Cookie(CookieName)
		if err != nil || cookie == "" {
			return "", false
		}
		return cookie, true
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}

// Authentication requires a valid session via Bearer header or cookie.
func Authentication(verifier SessionVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, ok := bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, common.NewErrorResponse("authentication required"))
			return
		}

		session, err := verifier.Verify(c.Request.Context(), tokenStr)
		if errors.Is(err, core.ErrInvalidSession) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, common.NewErrorResponse("invalid or expired session"))
			return
		}
		if err != nil {
			logrus.WithError(err).Error("session lookup failed")
			c.AbortWithStatusJSON(http.StatusInternalServerError, common.NewErrorResponse("session lookup failed"))
			return
		}

		c.Set(sessionKey, session)
		c.Set(tokenKey, tokenStr)
		c.Next()
	}
}

// RequireManager must run after Authentication.
func RequireManager() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := GetSession(c)
		if session == nil || !session.Employee.IsManager() {
			c.AbortWithStatusJSON(http.StatusForbidden, common.NewErrorResponse("manager role required"))
			return
		}
		c.Next()
	}
}

func GetSession(c *gin.Context) *core.Session {
	v, ok := c.Get(sessionKey)
	if !ok {
		return nil
	}
	session, _ := v.(*core.Session)
	return session
}
