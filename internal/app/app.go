// Package app assembles repositories, services, controllers and routes
// into one HTTP handler.
package app

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"teranga_match/internal/config"
	"teranga_match/internal/controllers"
	"teranga_match/internal/live"
	"teranga_match/internal/middleware"
	"teranga_match/internal/repository"
	"teranga_match/internal/routes"
	"teranga_match/internal/services"
	"teranga_match/internal/storage"
	"teranga_match/internal/validation"
)

type App struct {
	Handler  http.Handler
	Services *services.Services
	Hub      *live.Hub
}

// New wires the application on top of an open database.
func New(cfg config.Config, db *gorm.DB, accessLog io.Writer) (*App, error) {
	middleware.Configure(cfg.JWTSecret, cfg.JWTTTL)
	validation.Register()

	images, err := storage.New(cfg.UploadDir, cfg.CloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("image storage: %w", err)
	}

	hub := live.NewHub()
	svc := services.New(repository.New(db), middleware.GenerateToken, hub)
	ctrl := controllers.New(svc, images, hub, cfg.AllowedOrigins)
	router := routes.SetupRouter(ctrl, cfg.UploadDir, accessLog)

	return &App{
		Handler:  middleware.EnableCORS(router, cfg.AllowedOrigins),
		Services: svc,
		Hub:      hub,
	}, nil
}

// SeedAdmin creates the bootstrap admin account when both email and password
// are configured.
func (a *App) SeedAdmin(ctx context.Context, email, password string) {
	if strings.TrimSpace(email) == "" || password == "" {
		logrus.Warn("admin seed disabled: ADMIN_EMAIL or ADMIN_PASSWORD not set")
		return
	}
	created, err := a.Services.Users.EnsureAdmin(ctx, email, password)
	switch {
	case err != nil:
		logrus.WithError(err).Error("admin seed failed")
	case created:
		logrus.WithField("email", email).Info("admin account created")
	default:
		logrus.WithField("email", email).Info("admin account already exists")
	}
}
