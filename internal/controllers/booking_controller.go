package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"teranga_match/internal/middleware"
	"teranga_match/internal/models"
	"teranga_match/internal/services"
)

type BookingController struct {
	bookings *services.BookingService
}

type bookingInput struct {
	GuideID       uint      `json:"guideId" binding:"required"`
	StartDateTime *dateTime `json:"startDateTime" binding:"required"`
	EndDateTime   *dateTime `json:"endDateTime" binding:"required"`
	Price         *float64  `json:"price"`
}

type bookingStatusInput struct {
	Status string `json:"status" binding:"required,bookingstatus"`
}

func (bc *BookingController) Create(c *gin.Context) {
	var input bookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err)
		return
	}
	b, err := bc.bookings.Create(c.Request.Context(), actor(c), services.BookingInput{
		GuideID:       input.GuideID,
		StartDateTime: input.StartDateTime.Time,
		EndDateTime:   input.EndDateTime.Time,
		Price:         input.Price,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

// List is the admin view, optionally filtered by ?status=.
func (bc *BookingController) List(c *gin.Context) {
	ctx := c.Request.Context()
	var (
		bookings []models.Booking
		err      error
	)
	if raw := c.Query("status"); raw != "" {
		status, perr := models.ParseBookingStatus(raw)
		if perr != nil {
			badRequest(c, perr)
			return
		}
		bookings, err = bc.bookings.GetByStatus(ctx, status)
	} else {
		bookings, err = bc.bookings.GetAll(ctx)
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (bc *BookingController) Mine(c *gin.Context) {
	bookings, err := bc.bookings.GetForVisitor(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// ForGuide lists the bookings made with the calling guide.
func (bc *BookingController) ForGuide(c *gin.Context) {
	bookings, err := bc.bookings.GetForGuide(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (bc *BookingController) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	b, err := bc.bookings.GetByID(c.Request.Context(), actor(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

func (bc *BookingController) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var input bookingStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err)
		return
	}
	status, _ := models.ParseBookingStatus(input.Status)
	b, err := bc.bookings.UpdateStatus(c.Request.Context(), actor(c), id, status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

func (bc *BookingController) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := bc.bookings.Delete(c.Request.Context(), actor(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
