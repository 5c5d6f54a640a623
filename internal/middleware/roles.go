package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	RoleOwner      = "owner"
	RoleContractor = "contractor"
)

// RequireRole is the capability check at the HTTP boundary; the
// scheduling core never inspects roles.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := c.Get(ContextUserRole)
		current, _ := role.(string)

		for _, r := range roles {
			if current == r {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient_role"})
	}
}
