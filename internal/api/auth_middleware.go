package api

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/Jambi888/snowball-frenzy-site-sub000/internal/constants"
	"github.com/gin-gonic/gin"
)

const ctxKeyPlayerUUID = "playerUUID"

// setSessionCookie sets the session cookie with appropriate flags for dev/prod.
func setSessionCookie(c *gin.Context, token string, ttl time.Duration) {
	secure := false
	if os.Getenv(constants.EnvSecureCookie) == "1" {
		secure = true
	}
	c.SetCookie(constants.CookieSessionName, token, int(ttl.Seconds()), "/", "", secure, true)
}

func clearSessionCookie(c *gin.Context) {
	c.SetCookie(constants.CookieSessionName, "", -1, "/", "", false, true)
}

// sessionToken pulls the token from the cookie or, failing that, a
// bearer Authorization header so non-browser clients can play too.
func sessionToken(c *gin.Context) string {
	if token, err := c.Cookie(constants.CookieSessionName); err == nil && token != "" {
		return token
	}
	auth := c.GetHeader(constants.HeaderAuthorization)
	if strings.HasPrefix(auth, constants.BearerPrefix) {
		return strings.TrimPrefix(auth, constants.BearerPrefix)
	}
	return ""
}

// AuthRequired validates the session and injects the player identity
// into the request context.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := sessionToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{constants.JSONKeyError: constants.ErrAuthRequired})
			return
		}
		claims, err := parseAndValidateSession(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{constants.JSONKeyError: constants.ErrInvalidSession})
			return
		}
		c.Set(ctxKeyPlayerUUID, claims.Sub)
		c.Next()
	}
}

// currentPlayerUUID reads the identity set by AuthRequired.
func currentPlayerUUID(c *gin.Context) string {
	if v, ok := c.Get(ctxKeyPlayerUUID); ok {
		if s, _ := v.(string); s != "" {
			return s
		}
	}
	return ""
}
