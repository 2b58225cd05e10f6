package routes

import (
	"io"
	"net/http"
	"path/filepath"

	ginlogger "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"teranga_match/internal/controllers"
)

func SetupRouter(ctrl *controllers.Controllers, uploadDir string, accessLog io.Writer) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(ginlogger.SetLogger(
		ginlogger.WithWriter(accessLog),
		ginlogger.WithUTC(true),
		ginlogger.WithSkipPath([]string{"/health"}),
		ginlogger.WithDefaultLevel(zerolog.InfoLevel),
		ginlogger.WithClientErrorLevel(zerolog.WarnLevel),
		ginlogger.WithServerErrorLevel(zerolog.ErrorLevel),
	))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.Static("/uploads/articles", filepath.Join(uploadDir, "articles"))

	api := r.Group("/api")
	AuthRoutes(api, ctrl)
	AdminRoutes(api, ctrl)
	ArticleRoutes(api, ctrl)
	EventRoutes(api, ctrl)
	PlaceRoutes(api, ctrl)
	GuideRoutes(api, ctrl)
	AgencyRoutes(api, ctrl)
	ProfileRoutes(api, ctrl)
	BookingRoutes(api, ctrl)
	MatchRoutes(api, ctrl)
	ReviewRoutes(api, ctrl)
	MediaRoutes(api, ctrl)
	WebSocketRoutes(r, ctrl)

	return r
}
