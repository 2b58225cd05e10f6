package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"teranga_match/internal/middleware"
	"teranga_match/internal/models"
	"teranga_match/internal/services"
)

type ProfileController struct {
	profiles *services.ProfileService
}

type profileInput struct {
	DisplayName string `json:"displayName"`
	Bio         string `json:"bio"`
	City        string `json:"city"`
	PhotoURL    string `json:"photoUrl" binding:"omitempty,uri"`
}

func (pc *ProfileController) Me(c *gin.Context) {
	p, err := pc.profiles.GetByUserID(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (pc *ProfileController) UpdateMe(c *gin.Context) {
	var input profileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err)
		return
	}
	p, err := pc.profiles.Upsert(c.Request.Context(), middleware.CurrentUserID(c), models.Profile{
		DisplayName: input.DisplayName,
		Bio:         input.Bio,
		City:        input.City,
		PhotoURL:    input.PhotoURL,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (pc *ProfileController) ByUser(c *gin.Context) {
	userID, ok := parseID(c, "userId")
	if !ok {
		return
	}
	p, err := pc.profiles.GetByUserID(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}
