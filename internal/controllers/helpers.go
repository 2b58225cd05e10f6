package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"teranga_match/internal/middleware"
	"teranga_match/internal/repository"
	"teranga_match/internal/services"
)

// parseID reads a numeric path parameter and answers 400 when it is not one.
func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid %s", name)})
		return 0, false
	}
	return uint(id), true
}

// queryID reads an optional numeric query parameter.
func queryID(c *gin.Context, name string) (uint, bool, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, false, nil
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("invalid %s", name)
	}
	return uint(id), true, nil
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

// respondError maps service and repository errors to a status code.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "resource not found"})
	case errors.Is(err, repository.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		logrus.WithError(err).WithFields(logrus.Fields{
			"method": c.Request.Method,
			"path":   c.FullPath(),
		}).Error("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func actor(c *gin.Context) services.Actor {
	return services.Actor{UserID: middleware.CurrentUserID(c), Role: middleware.CurrentRole(c)}
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// parseDateTime accepts RFC3339 as well as zone-less local date-times,
// which are taken as UTC.
func parseDateTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date-time %q", s)
}

// dateTime is a request time field decoded with parseDateTime.
type dateTime struct {
	time.Time
}

func (d *dateTime) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	t, err := parseDateTime(raw)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

func (d *dateTime) ptr() *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time
	return &t
}
