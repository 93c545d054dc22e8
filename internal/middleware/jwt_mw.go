package middleware

import (
	"net/http"
	"strings"

	"reimbursement_tracker/internal/utils"

	"github.com/gin-gonic/gin"
)

// Context keys populated by JWTAuthMiddleware.
const (
	AuthUserKey     = "authUser"
	AuthUsernameKey = "authUsername"
	AuthRoleKey     = "authRole"
)

// JWTAuthMiddleware admits requests carrying a valid bearer token and exposes
// the caller's id, username and role to later handlers.
func JWTAuthMiddleware(jwtUtil *utils.JWTUtil) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Bearer token required"})
			return
		}

		claims, err := jwtUtil.ValidateToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set(AuthUserKey, claims.UserID)
		c.Set(AuthUsernameKey, claims.Username)
		c.Set(AuthRoleKey, claims.Role)
		c.Next()
	}
}

// bearerToken extracts the token from an "Authorization: Bearer <token>" value.
func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// AuthUsername returns the username of the authenticated caller, or "" if
// the JWT middleware did not run.
func AuthUsername(c *gin.Context) string {
	return c.GetString(AuthUsernameKey)
}
