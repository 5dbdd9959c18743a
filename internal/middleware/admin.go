package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/clinic-portal/internal/domain/booking"
)

// RequireAdmin gates admin-only routes. The role is re-read from the store
// rather than trusted from the token, so a demotion takes effect before the
// token expires. Authorization goes through the role enum's capability
// methods, never raw string comparison.
func RequireAdmin(repo domain.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		emailVal, _ := c.Get(ContextEmail)
		email, _ := emailVal.(string)

		user, found, err := repo.FindUserByEmail(c.Request.Context(), email)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
			return
		}
		if !found {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden_access"})
			return
		}

		if !domain.ParseRole(user.Role).CanManageRoster() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden_access"})
			return
		}

		c.Next()
	}
}
