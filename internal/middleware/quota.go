package middleware

import (
	"net/http"                    // HTTP status codes
	"todo_system/internal/domain" // Importing domain models
	"todo_system/internal/store"  // In-memory user store

	"github.com/gin-gonic/gin" // Gin web framework
)

// TodoQuotaMiddleware blocks todo creation for free users already holding the
// full quota. Runs only after UserAccountMiddleware has attached the user.
// Quota is enforced here and nowhere else on the request path; the store
// re-checks under its lock purely to close the concurrent-create window.
func TodoQuotaMiddleware(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := c.MustGet("user").(*domain.User) // Attached by the account gate
		// Check the free plan quota; pro users pass unconditionally
		if s.QuotaReached(user) {
			// If at the limit, abort with forbidden status
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "exceeds 10 todos limit"})
			return
		}
		c.Next() // Exactly one continue, pro or free alike
	}
}
