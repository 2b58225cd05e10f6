package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"teranga_match/internal/models"
	"teranga_match/internal/services"
)

type ReviewController struct {
	reviews *services.ReviewService
}

type reviewInput struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
	GuideID *uint  `json:"guideId"`
	PlaceID *uint  `json:"placeId"`
	EventID *uint  `json:"eventId"`
}

// List needs one of ?guideId=, ?placeId=, ?eventId= or ?authorId=.
func (rc *ReviewController) List(c *gin.Context) {
	ctx := c.Request.Context()
	lookups := []struct {
		param string
		find  func(uint) ([]models.Review, error)
	}{
		{"guideId", func(id uint) ([]models.Review, error) { return rc.reviews.GetByGuide(ctx, id) }},
		{"placeId", func(id uint) ([]models.Review, error) { return rc.reviews.GetByPlace(ctx, id) }},
		{"eventId", func(id uint) ([]models.Review, error) { return rc.reviews.GetByEvent(ctx, id) }},
		{"authorId", func(id uint) ([]models.Review, error) { return rc.reviews.GetByAuthor(ctx, id) }},
	}
	for _, l := range lookups {
		id, present, err := queryID(c, l.param)
		if err != nil {
			badRequest(c, err)
			return
		}
		if !present {
			continue
		}
		reviews, err := l.find(id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, toReviewResponses(reviews))
		return
	}
	badRequest(c, errors.New("one of guideId, placeId, eventId or authorId is required"))
}

func (rc *ReviewController) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	r, err := rc.reviews.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toReviewResponse(*r))
}

func (rc *ReviewController) Create(c *gin.Context) {
	var input reviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err)
		return
	}
	r, err := rc.reviews.Create(c.Request.Context(), actor(c), models.Review{
		Rating:  input.Rating,
		Comment: input.Comment,
		GuideID: input.GuideID,
		PlaceID: input.PlaceID,
		EventID: input.EventID,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toReviewResponse(*r))
}

func (rc *ReviewController) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := rc.reviews.Delete(c.Request.Context(), actor(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
