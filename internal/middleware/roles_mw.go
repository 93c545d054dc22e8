package middleware

import (
	"net/http"
	"slices"

	"reimbursement_tracker/internal/model"

	"github.com/gin-gonic/gin"
)

// RoleMiddleware creates a middleware to check for specific user roles
func RoleMiddleware(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleVal, exists := c.Get(AuthRoleKey)
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Role not found in token, ensure JWT middleware runs first"})
			return
		}

		userRole, ok := roleVal.(string)
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Invalid role type in token"})
			return
		}

		if !slices.Contains(allowedRoles, userRole) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "You do not have permission to access this resource"})
			return
		}

		c.Next()
	}
}

// AdminGuard admits administrators only.
func AdminGuard() gin.HandlerFunc {
	return RoleMiddleware(model.RoleAdmin)
}

// FinanceManagerGuard admits finance managers only.
func FinanceManagerGuard() gin.HandlerFunc {
	return RoleMiddleware(model.RoleFinanceManager)
}

// UserGuard admits regular employees only.
func UserGuard() gin.HandlerFunc {
	return RoleMiddleware(model.RoleUser)
}

// GeneralGuard admits finance managers and regular employees.
func GeneralGuard() gin.HandlerFunc {
	return RoleMiddleware(model.RoleFinanceManager, model.RoleUser)
}
