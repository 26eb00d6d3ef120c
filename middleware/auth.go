package middleware

import (
	"net/http"
	"strings"

	"github.com/afnankhn654-alt/ShopNest/auth"
	"github.com/afnankhn654-alt/ShopNest/store"
	"github.com/gin-gonic/gin"
)

const (
	sessionKey = "session"
	claimsKey  = "claims"
)

// ValidateToken resolves the session named by the bearer token.
func ValidateToken(issuer *auth.TokenIssuer, sessions *store.Sessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Get the token from the header
		tokenString := strings.TrimSpace(c.GetHeader("Authorization"))
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is missing"})
			c.Abort()
			return
		}
		tokenString = strings.TrimSpace(strings.TrimPrefix(tokenString, "Bearer "))

		claims, err := issuer.Parse(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		session, err := sessions.Get(claims.SessionID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Session expired, please start a new session"})
			c.Abort()
			return
		}

		c.Set(sessionKey, session)
		c.Set(claimsKey, claims)
		c.Set("user_id", claims.UserID)
		c.Next()
	}
}

// RequireUser rejects sessions without a verified signed-in user.
func RequireUser(c *gin.Context) {
	session := CurrentSession(c)
	if session == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		c.Abort()
		return
	}
	if _, ok := session.Auth.CurrentUser(); !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Please sign in to continue"})
		c.Abort()
		return
	}
	c.Next()
}

// CurrentSession returns the session set by ValidateToken, or nil.
func CurrentSession(c *gin.Context) *store.Session {
	v, ok := c.Get(sessionKey)
	if !ok {
		return nil
	}
	s, _ := v.(*store.Session)
	return s
}

// CurrentUser returns the signed-in identity of the request's session.
func CurrentUser(c *gin.Context) (auth.Identity, bool) {
	s := CurrentSession(c)
	if s == nil {
		return auth.Identity{}, false
	}
	return s.Auth.CurrentUser()
}
