package api

import (
	"errors"                      // Sentinel error matching
	"net/http"                    // HTTP status codes
	"time"                        // Deadline parsing
	"todo_system/internal/domain" // Importing domain models
	"todo_system/internal/store"  // In-memory user store

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// TodoRequest carries the mutable todo fields for create and update
type TodoRequest struct {
	Title    string    `json:"title" binding:"required"`    // Title must be provided
	Deadline time.Time `json:"deadline" binding:"required"` // Deadline must be provided, RFC 3339
}

// ListTodosHandler returns the resolved user's todos in insertion order
func ListTodosHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := c.MustGet("user").(*domain.User) // Attached by the account gate
		c.JSON(http.StatusOK, s.Todos(user))     // Empty list renders as []
	}
}

// CreateTodoHandler appends a new todo to the resolved user's list
func CreateTodoHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req TodoRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		user := c.MustGet("user").(*domain.User) // Attached by the account gate
		// The quota gate already ran; the store re-checks under its lock to
		// close the window between two concurrent creates
		todo, err := s.AppendTodo(user, req.Title, req.Deadline)
		if errors.Is(err, store.ErrQuotaExceeded) {
			// If the race recheck trips, return the same payload as the gate
			c.JSON(http.StatusForbidden, gin.H{"error": "exceeds 10 todos limit"})
			return
		}
		// Log successful creation
		logrus.WithFields(logrus.Fields{
			"user_id": user.ID, // Owner user ID
			"todo_id": todo.ID, // New todo ID
		}).Info("Todo created") // Log creation
		c.JSON(http.StatusCreated, todo) // Return the created todo
	}
}

// UpdateTodoHandler overwrites title and deadline on the resolved todo
func UpdateTodoHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req TodoRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		todo := c.MustGet("todo").(*domain.Todo)    // Attached by the todo gate
		s.UpdateTodo(todo, req.Title, req.Deadline) // Done and created_at untouched
		c.JSON(http.StatusOK, todo)                 // Return the updated todo
	}
}

// CompleteTodoHandler marks the resolved todo done
func CompleteTodoHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		todo := c.MustGet("todo").(*domain.Todo) // Attached by the todo gate
		s.CompleteTodo(todo)                     // Idempotent in effect
		c.JSON(http.StatusOK, todo)              // Return the completed todo
	}
}

// DeleteTodoHandler removes the resolved todo from its owner's list
func DeleteTodoHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := c.MustGet("user").(*domain.User) // Attached by the account gate
		todo := c.MustGet("todo").(*domain.Todo) // Attached by the todo gate
		// Unreachable in practice since the todo gate just resolved it
		if err := s.RemoveTodo(user, todo.ID); errors.Is(err, store.ErrTodoNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Todo not found"})
			return
		}
		// Log successful deletion
		logrus.WithFields(logrus.Fields{
			"user_id": user.ID, // Owner user ID
			"todo_id": todo.ID, // Removed todo ID
		}).Info("Todo deleted") // Log deletion
		c.Status(http.StatusNoContent) // Success with no body
	}
}
