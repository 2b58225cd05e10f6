package routes

import (
	"github.com/gin-gonic/gin"

	"teranga_match/internal/controllers"
	"teranga_match/internal/middleware"
	"teranga_match/internal/models"
)

func ArticleRoutes(r *gin.RouterGroup, ctrl *controllers.Controllers) {
	admin := middleware.RequireAuthWithRole(models.RoleAdmin)
	articles := r.Group("/articles")
	{
		articles.GET("", ctrl.Articles.List)
		articles.GET("/:id", ctrl.Articles.Get)
		articles.POST("", admin, ctrl.Articles.Create)
		articles.PUT("/:id", admin, ctrl.Articles.Update)
		articles.DELETE("/:id", admin, ctrl.Articles.Delete)
	}
}

func EventRoutes(r *gin.RouterGroup, ctrl *controllers.Controllers) {
	organizer := middleware.RequireAuthWithRole(models.RoleOrganizer, models.RoleAdmin)
	events := r.Group("/events")
	{
		events.GET("", ctrl.Events.List)
		events.GET("/type/:type", ctrl.Events.ByType)
		events.GET("/:id", ctrl.Events.Get)
		events.POST("", organizer, ctrl.Events.Create)
		events.PUT("/:id", organizer, ctrl.Events.Update)
		events.DELETE("/:id", organizer, ctrl.Events.Delete)
		events.PUT("/:id/live", organizer, ctrl.Events.UpdateLive)
		events.POST("/:id/participants", middleware.RequireAuth(), ctrl.Events.Join)
		events.DELETE("/:id/participants", middleware.RequireAuth(), ctrl.Events.Leave)
	}
}

func PlaceRoutes(r *gin.RouterGroup, ctrl *controllers.Controllers) {
	admin := middleware.RequireAuthWithRole(models.RoleAdmin)
	places := r.Group("/places")
	{
		places.GET("", ctrl.Places.List)
		places.GET("/geojson", ctrl.Places.GeoJSON)
		places.GET("/near", ctrl.Places.Near)
		places.GET("/:id", ctrl.Places.Get)
		places.POST("", admin, ctrl.Places.Create)
		places.PUT("/:id", admin, ctrl.Places.Update)
		places.DELETE("/:id", admin, ctrl.Places.Delete)
	}
}

func GuideRoutes(r *gin.RouterGroup, ctrl *controllers.Controllers) {
	guides := r.Group("/guides")
	{
		guides.GET("", ctrl.Guides.List)
		guides.GET("/:id", ctrl.Guides.Get)
		guides.POST("", middleware.RequireAuth(), ctrl.Guides.Create)
		guides.PUT("/:id", middleware.RequireAuth(), ctrl.Guides.Update)
		guides.DELETE("/:id", middleware.RequireAuthWithRole(models.RoleAdmin), ctrl.Guides.Delete)
	}
}

func AgencyRoutes(r *gin.RouterGroup, ctrl *controllers.Controllers) {
	admin := middleware.RequireAuthWithRole(models.RoleAdmin)
	agencies := r.Group("/agencies")
	{
		agencies.GET("", ctrl.Agencies.List)
		agencies.GET("/:id", ctrl.Agencies.Get)
		agencies.POST("", admin, ctrl.Agencies.Create)
		agencies.PUT("/:id", admin, ctrl.Agencies.Update)
		agencies.DELETE("/:id", admin, ctrl.Agencies.Delete)
	}
}

func ReviewRoutes(r *gin.RouterGroup, ctrl *controllers.Controllers) {
	reviews := r.Group("/reviews")
	{
		reviews.GET("", ctrl.Reviews.List)
		reviews.GET("/:id", ctrl.Reviews.Get)
		reviews.POST("", middleware.RequireAuth(), ctrl.Reviews.Create)
		reviews.DELETE("/:id", middleware.RequireAuth(), ctrl.Reviews.Delete)
	}
}

func MediaRoutes(r *gin.RouterGroup, ctrl *controllers.Controllers) {
	admin := middleware.RequireAuthWithRole(models.RoleAdmin)
	media := r.Group("/media")
	{
		media.GET("", ctrl.Media.List)
		media.GET("/moderation", admin, ctrl.Media.Moderation)
		media.POST("", middleware.RequireAuth(), ctrl.Media.Create)
		media.PUT("/:id/status", admin, ctrl.Media.Moderate)
		media.DELETE("/:id", admin, ctrl.Media.Delete)
	}
}
