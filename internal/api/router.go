package api

import (
	"todo_system/internal/middleware" // Request gates
	"todo_system/internal/store"      // In-memory user store

	"github.com/gin-contrib/cors" // CORS middleware
	"github.com/gin-gonic/gin"    // Gin web framework
)

// NewRouter builds the engine with every route bound to its gate chain.
// Shared between main and the tests.
func NewRouter(s *store.Store) *gin.Engine {
	r := gin.Default()    // Gin router instance
	r.Use(cors.Default()) // Allow all origins, matching the open API surface

	// User routes
	r.POST("/users", CreateUserHandler(s))
	r.GET("/users/:id", middleware.UserByIDMiddleware(s), GetUserHandler())
	r.PATCH("/users/:id/pro", middleware.UserByIDMiddleware(s), UpgradeProHandler(s))

	// Todo routes (all gated by the plaintext username header)
	todoGroup := r.Group("/todos")
	todoGroup.GET("", middleware.UserAccountMiddleware(s), ListTodosHandler(s))
	todoGroup.POST("", middleware.UserAccountMiddleware(s), middleware.TodoQuotaMiddleware(s), CreateTodoHandler(s))
	todoGroup.PUT("/:id", middleware.TodoExistsMiddleware(s), UpdateTodoHandler(s))
	todoGroup.PATCH("/:id/done", middleware.TodoExistsMiddleware(s), CompleteTodoHandler(s))
	todoGroup.DELETE("/:id", middleware.UserAccountMiddleware(s), middleware.TodoExistsMiddleware(s), DeleteTodoHandler(s))

	return r // Fully wired engine
}
