package router

import (
	"serene-backend/controller"
	"serene-backend/middleware"

	"github.com/gin-gonic/gin"
)

func Register() *gin.Engine {
	r := gin.Default()
	r.Use(middleware.CORSMiddleware())

	api := r.Group("/api")
	{
		public := api.Group("")
		{
			public.POST("/user/register", controller.UserRegister)
			public.POST("/user/login", controller.UserLogin)
			public.POST("/counselor/login", controller.CounselorLogin)
		}

		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.POST("/session", controller.CreateSession)
			protected.GET("/sessions", controller.GetSessions)
			protected.GET("/session/:id/messages", controller.GetSessionMessages)

			protected.POST("/chat", controller.Chat)

			counselor := protected.Group("/counselor")
			counselor.Use(middleware.CounselorMiddleware())
			{
				counselor.GET("/sessions", controller.CounselorSessions)
				counselor.GET("/session/:id/messages", controller.CounselorSessionMessages)
				counselor.GET("/stats", controller.CounselorStats)
				counselor.GET("/alerts/ws", controller.CounselorAlerts)
			}
		}
	}

	return r
}
