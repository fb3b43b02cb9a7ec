package middleware

import (
	"net/http"                   // HTTP status codes
	"todo_system/internal/store" // In-memory user store

	"github.com/gin-gonic/gin" // Gin web framework
)

// UserAccountMiddleware resolves the user named by the plaintext username
// header and attaches it to the context. Entry gate for the todo collection
// routes.
func UserAccountMiddleware(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.GetHeader("username") // Identity is just a header in this system
		user, ok := s.UserByUsername(username)
		// Check if the user exists
		if !ok {
			// If not, abort with not found status
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.Set("user", user) // Store the resolved user in context
		c.Next()            // Proceed to the next handler
	}
}
