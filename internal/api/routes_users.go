package api

import (
	"github.com/gin-gonic/gin"

	"github.com/jobboardhq/jobboard/internal/handlers"
)

func registerUserRoutes(r *gin.Engine, handler *handlers.UserHandler) {
	users := r.Group("/users")
	{
		// both spellings answer directly, no trailing-slash redirect
		users.GET("", handler.List)
		users.GET("/", handler.List)
		users.GET("/filter", handler.Filter)
		users.GET("/:id", handler.Get)
	}
}
