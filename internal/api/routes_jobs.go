package api

import (
	"github.com/gin-gonic/gin"

	"github.com/jobboardhq/jobboard/internal/handlers"
)

func registerJobRoutes(r *gin.Engine, handler *handlers.JobHandler) {
	jobs := r.Group("/jobs")
	{
		jobs.GET("", handler.List)
		jobs.GET("/", handler.List)
		jobs.GET("/filter", handler.Filter)
		jobs.GET("/:id", handler.Get)
	}
}
