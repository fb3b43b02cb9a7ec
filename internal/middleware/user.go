package middleware

import (
	"net/http"                   // HTTP status codes
	"todo_system/internal/store" // In-memory user store

	"github.com/gin-gonic/gin" // Gin web framework
)

// UserByIDMiddleware resolves a user from the path-supplied id. Used by the
// two user-scoped routes (get user, upgrade to pro).
func UserByIDMiddleware(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id") // Target user id from the path
		user, ok := s.UserByID(id)
		// Check if the user exists
		if !ok {
			// If not, abort with not found status
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "User not exist"})
			return
		}
		c.Set("user", user) // Store the resolved user in context
		c.Next()            // Proceed to the next handler
	}
}
