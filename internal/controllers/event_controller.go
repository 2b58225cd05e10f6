package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"teranga_match/internal/middleware"
	"teranga_match/internal/models"
	"teranga_match/internal/services"
)

type EventController struct {
	events *services.EventService
}

type eventInput struct {
	Title         string          `json:"title" binding:"required"`
	Description   string          `json:"description"`
	Location      string          `json:"location"`
	Type          string          `json:"type"`
	Category      string          `json:"category"`
	Status        string          `json:"status"`
	Date          *dateTime       `json:"date"`
	StartDateTime *dateTime       `json:"startDateTime"`
	EndDateTime   *dateTime       `json:"endDateTime"`
	Capacity      *int            `json:"capacity"`
	Price         *float64        `json:"price"`
	Live          bool            `json:"live"`
	LiveData      models.LiveData `json:"liveData"`
}

func (in eventInput) toModel() models.Event {
	return models.Event{
		Title:         in.Title,
		Description:   in.Description,
		Location:      in.Location,
		Type:          in.Type,
		Category:      in.Category,
		Status:        in.Status,
		Date:          in.Date.ptr(),
		StartDateTime: in.StartDateTime.ptr(),
		EndDateTime:   in.EndDateTime.ptr(),
		Capacity:      in.Capacity,
		Price:         in.Price,
		Live:          in.Live,
		LiveData:      in.LiveData,
	}
}

// List supports ?status= and ?location= filters.
func (ec *EventController) List(c *gin.Context) {
	ctx := c.Request.Context()
	var (
		events []models.Event
		err    error
	)
	switch {
	case c.Query("status") != "":
		events, err = ec.events.GetByStatus(ctx, c.Query("status"))
	case c.Query("location") != "":
		events, err = ec.events.GetByLocation(ctx, c.Query("location"))
	default:
		events, err = ec.events.GetAll(ctx)
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toEventResponses(events))
}

func (ec *EventController) ByType(c *gin.Context) {
	events, err := ec.events.GetByType(c.Request.Context(), c.Param("type"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toEventResponses(events))
}

func (ec *EventController) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	e, err := ec.events.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toEventResponse(*e))
}

func (ec *EventController) Create(c *gin.Context) {
	var input eventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err)
		return
	}
	e, err := ec.events.Create(c.Request.Context(), actor(c), input.toModel())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toEventResponse(*e))
}

func (ec *EventController) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var input eventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err)
		return
	}
	e, err := ec.events.Update(c.Request.Context(), actor(c), id, input.toModel())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toEventResponse(*e))
}

func (ec *EventController) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := ec.events.Delete(c.Request.Context(), actor(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// UpdateLive sets the live score and pushes it to websocket subscribers.
func (ec *EventController) UpdateLive(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var data models.LiveData
	if err := c.ShouldBindJSON(&data); err != nil {
		badRequest(c, err)
		return
	}
	e, err := ec.events.UpdateLiveData(c.Request.Context(), actor(c), id, data)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toEventResponse(*e))
}

func (ec *EventController) Join(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	e, err := ec.events.Join(c.Request.Context(), middleware.CurrentUserID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toEventResponse(*e))
}

func (ec *EventController) Leave(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	e, err := ec.events.Leave(c.Request.Context(), middleware.CurrentUserID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toEventResponse(*e))
}
