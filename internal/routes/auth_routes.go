package routes

import (
	"github.com/gin-gonic/gin"

	"teranga_match/internal/controllers"
	"teranga_match/internal/middleware"
)

func AuthRoutes(r *gin.RouterGroup, ctrl *controllers.Controllers) {
	auth := r.Group("/auth")
	{
		auth.POST("/register", ctrl.Auth.Register)
		auth.POST("/login", ctrl.Auth.Login)
		auth.GET("/me", middleware.RequireAuth(), ctrl.Auth.Me)
	}
}
