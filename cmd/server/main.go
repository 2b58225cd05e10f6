package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"teranga_match/internal/app"
	"teranga_match/internal/config"
	"teranga_match/internal/jobs"
	"teranga_match/internal/logger"
)

func main() {
	cfg := config.Load()

	// Structured logging to a rotating file and stdout
	accessLog := logger.Setup(cfg.LogFile, cfg.LogLevel)
	gin.SetMode(gin.ReleaseMode)

	db, err := config.InitDB(cfg, logger.GormLogger())
	if err != nil {
		logrus.WithError(err).Fatal("database init failed")
	}
	logrus.Info("database connected and migrated")

	a, err := app.New(cfg, db, accessLog)
	if err != nil {
		logrus.WithError(err).Fatal("app init failed")
	}

	a.SeedAdmin(context.Background(), cfg.AdminEmail, cfg.AdminPassword)

	sweeper, err := jobs.Start(cfg.BookingSweepSpec, a.Services.Bookings)
	if err != nil {
		logrus.WithError(err).Fatal("cron init failed")
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           a.Handler,
		ReadHeaderTimeout: 15 * time.Second,
	}

	go func() {
		logrus.Infof("🚀 Server running at :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.WithError(err).Fatal("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logrus.WithError(err).Error("server shutdown")
	}
	<-sweeper.Stop().Done()
	a.Hub.Close()
}
