package http

import (
	"github.com/gin-gonic/gin"

	"tasklist/internal/adapter/http/handlers"
	"tasklist/internal/adapter/http/middleware"
	"tasklist/internal/auth"
)

func RegisterRoutes(
	r *gin.Engine,
	tokens *auth.TokenManager,
	healthHandler *handlers.HealthHandler,
	taskHandler *handlers.TaskHandler,
	userHandler *handlers.UserHandler,
) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", healthHandler.CheckHealth)
		api.GET("/health/report", healthHandler.CheckHealthReport)

		api.POST("/users/register", userHandler.Register)
		api.POST("/users/login", userHandler.Login)
		api.GET("/users/me", middleware.AuthMiddleware(tokens), userHandler.Me)

		tasks := api.Group("/tasks")
		tasks.Use(middleware.AuthMiddleware(tokens))
		{
			tasks.GET("", taskHandler.ListTasks)
			tasks.POST("", taskHandler.CreateTask)
			tasks.GET("/:id", taskHandler.GetTask)
			tasks.PUT("/:id", taskHandler.UpdateTask)
			tasks.PATCH("/:id/toggle", taskHandler.ToggleTask)
			tasks.DELETE("/:id", taskHandler.DeleteTask)
		}
	}
}
