package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/taskflow-dev/taskflow/internal/handlers"
	"github.com/taskflow-dev/taskflow/internal/middleware"
	"github.com/taskflow-dev/taskflow/internal/types"
)

func NewRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)
		api.POST("/register", handlers.Register)
		api.POST("/login", handlers.Login)

		authed := api.Group("", middleware.AuthMiddleware())
		{
			authed.GET("/me", handlers.Me)

			authed.GET("/groups", handlers.ListGroups)
			authed.POST("/groups", handlers.CreateGroup)
			authed.DELETE("/groups/:id", handlers.DeleteGroup)

			authed.GET("/groups/:groupId/members", handlers.ListMembers)
			authed.POST("/groups/:groupId/members", handlers.CreateMember)
			authed.DELETE("/members/:id", handlers.DeleteMember)

			authed.GET("/members/:memberId/tasks", handlers.ListTasks)
			authed.POST("/members/:memberId/tasks", handlers.CreateTask)
			authed.DELETE("/tasks/:id", handlers.DeleteTask)
			authed.PUT("/tasks/:id", handlers.UpdateTask)
		}
	}

	return r
}
