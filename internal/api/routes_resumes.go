package api

import (
	"github.com/gin-gonic/gin"

	"github.com/jobboardhq/jobboard/internal/handlers"
)

func registerResumeRoutes(r *gin.Engine, handler *handlers.ResumeHandler) {
	resumes := r.Group("/resumes")
	{
		resumes.GET("", handler.List)
		resumes.GET("/", handler.List)
		resumes.GET("/filter", handler.Filter)
		resumes.GET("/:id", handler.Get)
	}
}
