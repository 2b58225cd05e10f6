package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"teranga_match/internal/models"
	"teranga_match/internal/services"
)

type AgencyController struct {
	agencies *services.AgencyService
}

type agencyInput struct {
	Nom       string `json:"nom" binding:"required"`
	Adresse   string `json:"adresse"`
	Telephone string `json:"telephone"`
	Email     string `json:"email" binding:"omitempty,email"`
}

func (in agencyInput) toModel() models.AgenceVoyage {
	return models.AgenceVoyage{Nom: in.Nom, Adresse: in.Adresse, Telephone: in.Telephone, Email: in.Email}
}

// List supports ?nom= for an exact name lookup.
func (ac *AgencyController) List(c *gin.Context) {
	ctx := c.Request.Context()
	if nom := c.Query("nom"); nom != "" {
		a, err := ac.agencies.GetByNom(ctx, nom)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, []models.AgenceVoyage{*a})
		return
	}
	agencies, err := ac.agencies.GetAll(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, agencies)
}

func (ac *AgencyController) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	a, err := ac.agencies.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

func (ac *AgencyController) Create(c *gin.Context) {
	var input agencyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err)
		return
	}
	a, err := ac.agencies.Create(c.Request.Context(), input.toModel())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, a)
}

func (ac *AgencyController) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var input agencyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err)
		return
	}
	a, err := ac.agencies.Update(c.Request.Context(), id, input.toModel())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

func (ac *AgencyController) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := ac.agencies.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
