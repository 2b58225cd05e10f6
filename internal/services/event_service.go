package services

import (
	"context"
	"fmt"
	"strings"

	"teranga_match/internal/models"
	"teranga_match/internal/repository"
)

const defaultEventStatus = "UPCOMING"

type EventService struct {
	events repository.EventRepository
	live   LivePublisher
}

func NewEventService(events repository.EventRepository, live LivePublisher) *EventService {
	if live == nil {
		live = nopPublisher{}
	}
	return &EventService{events: events, live: live}
}

func (s *EventService) GetAll(ctx context.Context) ([]models.Event, error) {
	return s.events.FindAll(ctx)
}

func (s *EventService) GetByID(ctx context.Context, id uint) (*models.Event, error) {
	return s.events.FindByID(ctx, id)
}

func (s *EventService) GetByType(ctx context.Context, eventType string) ([]models.Event, error) {
	return s.events.FindByType(ctx, eventType)
}

func (s *EventService) GetByStatus(ctx context.Context, status string) ([]models.Event, error) {
	return s.events.FindByStatus(ctx, status)
}

func (s *EventService) GetByLocation(ctx context.Context, location string) ([]models.Event, error) {
	return s.events.FindByLocation(ctx, location)
}

// Create stores a new event organized by the caller.
func (s *EventService) Create(ctx context.Context, actor Actor, in models.Event) (*models.Event, error) {
	e := &models.Event{}
	copyEvent(e, in)
	if err := validateEvent(e); err != nil {
		return nil, err
	}
	if e.Status == "" {
		e.Status = defaultEventStatus
	}
	e.OrganizerID = &actor.UserID
	if err := s.events.Create(ctx, e); err != nil {
		return nil, err
	}
	return s.events.FindByID(ctx, e.ID)
}

func (s *EventService) Update(ctx context.Context, actor Actor, id uint, in models.Event) (*models.Event, error) {
	e, err := s.owned(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	copyEvent(e, in)
	if err := validateEvent(e); err != nil {
		return nil, err
	}
	if e.Status == "" {
		e.Status = defaultEventStatus
	}
	if err := s.events.Save(ctx, e); err != nil {
		return nil, err
	}
	return s.events.FindByID(ctx, id)
}

func (s *EventService) Delete(ctx context.Context, actor Actor, id uint) error {
	if _, err := s.owned(ctx, actor, id); err != nil {
		return err
	}
	return s.events.Delete(ctx, id)
}

// UpdateLiveData replaces the live score, marks the event live and pushes
// the new data to websocket subscribers.
func (s *EventService) UpdateLiveData(ctx context.Context, actor Actor, id uint, data models.LiveData) (*models.Event, error) {
	e, err := s.owned(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	e.LiveData = data
	e.Live = true
	if err := s.events.Save(ctx, e); err != nil {
		return nil, err
	}
	s.live.Publish(e.ID, e.LiveData)
	return e, nil
}

// Join adds the user to the participants. Joining twice is a no-op.
func (s *EventService) Join(ctx context.Context, userID, eventID uint) (*models.Event, error) {
	e, err := s.events.FindByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if e.HasParticipant(userID) {
		return e, nil
	}
	if e.Full() {
		return nil, fmt.Errorf("%w: event is full", repository.ErrConflict)
	}
	if err := s.events.AddParticipant(ctx, eventID, userID); err != nil {
		return nil, err
	}
	return s.events.FindByID(ctx, eventID)
}

func (s *EventService) Leave(ctx context.Context, userID, eventID uint) (*models.Event, error) {
	if _, err := s.events.FindByID(ctx, eventID); err != nil {
		return nil, err
	}
	if err := s.events.RemoveParticipant(ctx, eventID, userID); err != nil {
		return nil, err
	}
	return s.events.FindByID(ctx, eventID)
}

// owned loads the event and checks the caller organizes it or is an admin.
func (s *EventService) owned(ctx context.Context, actor Actor, id uint) (*models.Event, error) {
	e, err := s.events.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if actor.IsAdmin() {
		return e, nil
	}
	if e.OrganizerID == nil || *e.OrganizerID != actor.UserID {
		return nil, forbiddenf("not the organizer of event %d", id)
	}
	return e, nil
}

func copyEvent(dst *models.Event, src models.Event) {
	dst.Title = src.Title
	dst.Description = src.Description
	dst.Location = src.Location
	dst.Type = src.Type
	dst.Category = src.Category
	dst.Status = strings.ToUpper(strings.TrimSpace(src.Status))
	dst.Date = src.Date
	dst.StartDateTime = src.StartDateTime
	dst.EndDateTime = src.EndDateTime
	dst.Capacity = src.Capacity
	dst.Price = src.Price
	dst.Live = src.Live
	dst.LiveData = src.LiveData
}

func validateEvent(e *models.Event) error {
	if strings.TrimSpace(e.Title) == "" {
		return invalidf("title is required")
	}
	if e.StartDateTime != nil && e.EndDateTime != nil && e.EndDateTime.Before(*e.StartDateTime) {
		return invalidf("endDateTime must not be before startDateTime")
	}
	if e.Capacity != nil && *e.Capacity < 0 {
		return invalidf("capacity must not be negative")
	}
	if e.Price != nil && *e.Price < 0 {
		return invalidf("price must not be negative")
	}
	return nil
}
