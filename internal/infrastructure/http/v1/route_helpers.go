// Package v1 provides HTTP API version 1.
package v1

import (
	"github.com/gin-gonic/gin"

	"eventum/internal/domain/auth"
	"eventum/internal/infrastructure/http/v1/middleware"
)

// EntityRouteHandler defines the interface for entity handlers.
// All entity handlers must implement these methods.
type EntityRouteHandler interface {
	List(c *gin.Context)
	Create(c *gin.Context)
	Get(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	SetDeletionMark(c *gin.Context)
}

// RegisterEntityRoutes registers standard CRUD routes for an entity.
// Reads are open to any authenticated user; writes require the manager
// or admin role.
func RegisterEntityRoutes(group *gin.RouterGroup, handler EntityRouteHandler) {
	write := middleware.RequireRole(auth.RoleManager, auth.RoleAdmin)

	group.GET("", handler.List)
	group.GET("/:id", handler.Get)
	group.POST("", write, handler.Create)
	group.PUT("/:id", write, handler.Update)
	group.DELETE("/:id", write, handler.Delete)
	group.POST("/:id/deletion-mark", write, handler.SetDeletionMark)
}
