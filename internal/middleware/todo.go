package middleware

import (
	"net/http"                   // HTTP status codes
	"todo_system/internal/store" // In-memory user store

	"github.com/gin-gonic/gin" // Gin web framework
	"github.com/google/uuid"   // UUID format validation
)

// TodoExistsMiddleware resolves both the requesting user (username header) and
// the target todo (path id) and attaches them to the context. The todo lookup
// is scoped to the resolved user's own list, so an id belonging to another
// user comes back as not found rather than as a permission error.
func TodoExistsMiddleware(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.GetHeader("username") // Identity is just a header in this system
		user, ok := s.UserByUsername(username)
		// Check if the user exists
		if !ok {
			// If not, abort with not found status
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		id := c.Param("id") // Target todo id from the path
		// Reject malformed ids before any todo lookup
		if err := uuid.Validate(id); err != nil {
			// If not a well-formed UUID, abort with bad request status
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Token invalid"})
			return
		}
		todo, ok := s.TodoByID(user, id) // Scoped to the owner's list only
		// Check if the todo exists under this user
		if !ok {
			// If not, abort with not found status
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Todo not found"})
			return
		}
		c.Set("user", user) // Store the resolved user in context
		c.Set("todo", todo) // Store the resolved todo in context
		c.Next()            // Proceed to the next handler
	}
}
