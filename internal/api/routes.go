package api

import (
	"log/slog"
	"net/http"

	"github.com/UnknownOlympus/hestia/internal/metrics"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the employee endpoints on the given group.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	employees := r.Group("/employees")
	{
		employees.GET("", handler.List)
		employees.POST("", handler.Create)
		employees.GET("/:id", handler.GetByID)
		employees.PUT("/:id", handler.Update)
		employees.DELETE("/:id", handler.Delete)
	}
}

// NewRouter builds the API engine with request id, access log and metrics middleware.
func NewRouter(log *slog.Logger, handler *Handler, m *metrics.Metrics) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery(), RequestID(), AccessLog(log), Instrument(m))

	engine.NoRoute(func(c *gin.Context) {
		writeError(c, http.StatusNotFound, msgNotFound)
	})

	RegisterRoutes(&engine.RouterGroup, handler)

	return engine
}
