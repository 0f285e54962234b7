package controllers

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/A-Basit02/Disaster-Management-App/internal/domain/services/container"
	"github.com/A-Basit02/Disaster-Management-App/internal/error/code"
	"github.com/A-Basit02/Disaster-Management-App/internal/error/response"
)

// healthTimeout bounds the database ping
const healthTimeout = 3 * time.Second

// HealthController reports service liveness
type HealthController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewHealthController creates a health controller
func NewHealthController(ctx *gin.Context, container *container.ServiceContainer) *HealthController {
	return &HealthController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleHealthFunc returns the gin handler for a health method
func HandleHealthFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewHealthController(ctx, container)

		switch method {
		case "banner":
			controller.Banner()
		case "health":
			controller.Health()
		case "notFound":
			controller.NotFound()
		default:
			response.Fail(ctx, code.ErrRouteNotFound)
		}
	}
}

// Banner identifies the service
func (c *HealthController) Banner() {
	response.Success(c.Ctx, gin.H{
		"service": "Disaster Relief Coordination API",
		"docs":    "/swagger/index.html",
	})
}

// Health pings the database
// @Summary      Health check
// @Tags         Health
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      500  {object}  response.ErrorResponse
// @Router       /health [get]
func (c *HealthController) Health() {
	ctx, cancel := context.WithTimeout(c.Ctx.Request.Context(), healthTimeout)
	defer cancel()

	sqlDB, err := c.Container.GetDB().DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		response.Error(c.Ctx, code.Wrap(code.ErrDatabase, err))
		return
	}

	stats := sqlDB.Stats()
	response.Success(c.Ctx, gin.H{
		"status":           "healthy",
		"database":         "connected",
		"open_connections": stats.OpenConnections,
		"in_use":           stats.InUse,
		"timestamp":        time.Now().UTC(),
	})
}

// NotFound answers unmatched routes
func (c *HealthController) NotFound() {
	response.Fail(c.Ctx, code.ErrRouteNotFound)
}
