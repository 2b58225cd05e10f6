package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"teranga_match/internal/middleware"
	"teranga_match/internal/models"
	"teranga_match/internal/services"
)

type MatchController struct {
	matches *services.MatchService
}

type matchInput struct {
	User1ID uint    `json:"user1Id" binding:"required"`
	User2ID uint    `json:"user2Id" binding:"required"`
	Score   float64 `json:"score"`
	Reasons string  `json:"reasons"`
}

type matchStatusInput struct {
	Status string `json:"status" binding:"required,matchstatus"`
}

// List is the admin view, optionally filtered by ?status=.
func (mc *MatchController) List(c *gin.Context) {
	ctx := c.Request.Context()
	var (
		matches []models.Match
		err     error
	)
	if raw := c.Query("status"); raw != "" {
		status, perr := models.ParseMatchStatus(raw)
		if perr != nil {
			badRequest(c, perr)
			return
		}
		matches, err = mc.matches.GetByStatus(ctx, status)
	} else {
		matches, err = mc.matches.GetAll(ctx)
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, matches)
}

func (mc *MatchController) Mine(c *gin.Context) {
	matches, err := mc.matches.GetForUser(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, matches)
}

func (mc *MatchController) Create(c *gin.Context) {
	var input matchInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err)
		return
	}
	m, err := mc.matches.Create(c.Request.Context(), input.User1ID, input.User2ID, input.Score, input.Reasons)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, m)
}

func (mc *MatchController) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var input matchStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err)
		return
	}
	status, _ := models.ParseMatchStatus(input.Status)
	m, err := mc.matches.UpdateStatus(c.Request.Context(), actor(c), id, status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

func (mc *MatchController) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := mc.matches.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
