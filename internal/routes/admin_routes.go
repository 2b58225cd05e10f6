package routes

import (
	"github.com/gin-gonic/gin"

	"teranga_match/internal/controllers"
	"teranga_match/internal/middleware"
	"teranga_match/internal/models"
)

func AdminRoutes(r *gin.RouterGroup, ctrl *controllers.Controllers) {
	admin := r.Group("/admin")
	admin.Use(middleware.RequireAuthWithRole(models.RoleAdmin))
	{
		admin.GET("/users", ctrl.Users.List)
		admin.POST("/users", ctrl.Users.Create)
		admin.GET("/users/:id", ctrl.Users.Get)
		admin.PUT("/users/:id/role", ctrl.Users.UpdateRole)
		admin.DELETE("/users/:id", ctrl.Users.Delete)
	}
}
