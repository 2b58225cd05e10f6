package routes

import (
	"github.com/gin-gonic/gin"

	"teranga_match/internal/controllers"
)

func WebSocketRoutes(r *gin.Engine, ctrl *controllers.Controllers) {
	ws := r.Group("/ws")
	{
		ws.GET("/events/:id/live", ctrl.Live.Subscribe)
	}
}
