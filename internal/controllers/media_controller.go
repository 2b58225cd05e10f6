package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"teranga_match/internal/models"
	"teranga_match/internal/services"
)

type MediaController struct {
	media *services.MediaService
}

type mediaInput struct {
	URL         string `json:"url" binding:"required,uri"`
	Type        string `json:"type" binding:"omitempty,mediatype"`
	RelatedType string `json:"relatedType" binding:"required,relatedtype"`
	RelatedID   uint   `json:"relatedId" binding:"required"`
}

type moderationInput struct {
	Status string `json:"status" binding:"required,moderationstatus"`
}

// List returns the approved media of ?relatedType=&relatedId=.
func (mc *MediaController) List(c *gin.Context) {
	relatedType, err := models.ParseRelatedType(c.Query("relatedType"))
	if err != nil {
		badRequest(c, err)
		return
	}
	relatedID, present, err := queryID(c, "relatedId")
	if err != nil {
		badRequest(c, err)
		return
	}
	if !present {
		badRequest(c, errors.New("relatedId is required"))
		return
	}
	items, err := mc.media.GetApproved(c.Request.Context(), relatedType, relatedID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// Moderation lists media by ?status=, PENDING by default.
func (mc *MediaController) Moderation(c *gin.Context) {
	status := models.ModerationPending
	if raw := c.Query("status"); raw != "" {
		s, err := models.ParseModerationStatus(raw)
		if err != nil {
			badRequest(c, err)
			return
		}
		status = s
	}
	items, err := mc.media.GetByStatus(c.Request.Context(), status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (mc *MediaController) Create(c *gin.Context) {
	var input mediaInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err)
		return
	}
	mediaType, _ := models.ParseMediaType(input.Type)
	relatedType, _ := models.ParseRelatedType(input.RelatedType)
	m, err := mc.media.Create(c.Request.Context(), actor(c), models.Media{
		URL:         input.URL,
		Type:        mediaType,
		RelatedType: relatedType,
		RelatedID:   input.RelatedID,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, m)
}

func (mc *MediaController) Moderate(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var input moderationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err)
		return
	}
	status, _ := models.ParseModerationStatus(input.Status)
	m, err := mc.media.Moderate(c.Request.Context(), id, status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

func (mc *MediaController) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := mc.media.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
