package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"teranga_match/internal/models"
	"teranga_match/internal/services"
)

type GuideController struct {
	guides *services.GuideService
}

type guideInput struct {
	UserID         *uint    `json:"userId"`
	Specialties    []string `json:"specialties"`
	HourlyRate     float64  `json:"hourlyRate" binding:"gte=0"`
	AgenceVoyageID *uint    `json:"agenceVoyageId"`
	Verified       *bool    `json:"verified"`
}

func (in guideInput) toService() services.GuideInput {
	return services.GuideInput{
		UserID:         in.UserID,
		Specialties:    in.Specialties,
		HourlyRate:     in.HourlyRate,
		AgenceVoyageID: in.AgenceVoyageID,
		Verified:       in.Verified,
	}
}

// List supports ?verified=true, ?specialty= and ?agencyId= filters.
func (gc *GuideController) List(c *gin.Context) {
	ctx := c.Request.Context()
	agencyID, byAgency, err := queryID(c, "agencyId")
	if err != nil {
		badRequest(c, err)
		return
	}
	var guides []models.Guide
	switch {
	case c.Query("verified") == "true":
		guides, err = gc.guides.GetVerified(ctx)
	case c.Query("specialty") != "":
		guides, err = gc.guides.GetBySpecialty(ctx, c.Query("specialty"))
	case byAgency:
		guides, err = gc.guides.GetByAgency(ctx, agencyID)
	default:
		guides, err = gc.guides.GetAll(ctx)
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, guides)
}

func (gc *GuideController) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	g, err := gc.guides.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, g)
}

func (gc *GuideController) Create(c *gin.Context) {
	var input guideInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err)
		return
	}
	g, err := gc.guides.Create(c.Request.Context(), actor(c), input.toService())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, g)
}

func (gc *GuideController) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var input guideInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err)
		return
	}
	g, err := gc.guides.Update(c.Request.Context(), actor(c), id, input.toService())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, g)
}

func (gc *GuideController) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := gc.guides.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
