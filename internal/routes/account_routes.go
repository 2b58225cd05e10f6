package routes

import (
	"github.com/gin-gonic/gin"

	"teranga_match/internal/controllers"
	"teranga_match/internal/middleware"
	"teranga_match/internal/models"
)

func ProfileRoutes(r *gin.RouterGroup, ctrl *controllers.Controllers) {
	profiles := r.Group("/profiles")
	profiles.Use(middleware.RequireAuth())
	{
		profiles.GET("/me", ctrl.Profiles.Me)
		profiles.PUT("/me", ctrl.Profiles.UpdateMe)
		profiles.GET("/user/:userId", ctrl.Profiles.ByUser)
	}
}

func BookingRoutes(r *gin.RouterGroup, ctrl *controllers.Controllers) {
	bookings := r.Group("/bookings")
	bookings.Use(middleware.RequireAuth())
	{
		bookings.POST("", ctrl.Bookings.Create)
		bookings.GET("", middleware.RequireAuthWithRole(models.RoleAdmin), ctrl.Bookings.List)
		bookings.GET("/me", ctrl.Bookings.Mine)
		bookings.GET("/guide", ctrl.Bookings.ForGuide)
		bookings.GET("/:id", ctrl.Bookings.Get)
		bookings.PUT("/:id/status", ctrl.Bookings.UpdateStatus)
		bookings.DELETE("/:id", ctrl.Bookings.Delete)
	}
}

func MatchRoutes(r *gin.RouterGroup, ctrl *controllers.Controllers) {
	admin := middleware.RequireAuthWithRole(models.RoleAdmin)
	matches := r.Group("/matches")
	matches.Use(middleware.RequireAuth())
	{
		matches.GET("", admin, ctrl.Matches.List)
		matches.POST("", admin, ctrl.Matches.Create)
		matches.GET("/me", ctrl.Matches.Mine)
		matches.PUT("/:id/status", ctrl.Matches.UpdateStatus)
		matches.DELETE("/:id", admin, ctrl.Matches.Delete)
	}
}
