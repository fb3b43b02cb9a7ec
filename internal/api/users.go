package api

import (
	"errors"                      // Sentinel error matching
	"net/http"                    // HTTP status codes
	"todo_system/internal/domain" // Importing domain models
	"todo_system/internal/store"  // In-memory user store

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// CreateUserRequest represents a registration request
type CreateUserRequest struct {
	Name     string `json:"name" binding:"required"`     // Display name must be provided
	Username string `json:"username" binding:"required"` // Username must be provided
}

// CreateUserHandler registers a new user with an empty todo list
func CreateUserHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateUserRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// Uniqueness check and insert happen in one critical section in the store
		user, err := s.CreateUser(req.Name, req.Username)
		if errors.Is(err, store.ErrUsernameTaken) {
			// If the username is taken, return conflict as bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Username already exists"})
			return
		}
		// Log successful registration
		logrus.WithFields(logrus.Fields{
			"user_id":  user.ID,       // New user ID
			"username": user.Username, // Registered username
		}).Info("User registered") // Log registration
		c.JSON(http.StatusCreated, user) // Return the created user
	}
}

// GetUserHandler returns the user resolved by the id gate
func GetUserHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := c.MustGet("user").(*domain.User) // Attached by the id gate
		c.JSON(http.StatusOK, user)              // Return the user as-is
	}
}

// UpgradeProHandler activates the pro plan on the resolved user
func UpgradeProHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := c.MustGet("user").(*domain.User) // Attached by the id gate
		// The transition is one-way; a second activation is a conflict
		if err := s.UpgradeUser(user); errors.Is(err, store.ErrAlreadyPro) {
			// If already pro, return conflict as bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Pro plan is already activated."})
			return
		}
		// Log successful upgrade
		logrus.WithFields(logrus.Fields{
			"user_id":  user.ID,       // Upgraded user ID
			"username": user.Username, // Upgraded username
		}).Info("Pro plan activated") // Log upgrade
		c.JSON(http.StatusOK, user) // Return the updated user
	}
}
