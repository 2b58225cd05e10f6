package services

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"teranga_match/internal/models"
	"teranga_match/internal/repository"
)

type BookingInput struct {
	GuideID       uint
	StartDateTime time.Time
	EndDateTime   time.Time
	// Price defaults to the guide's hourly rate times the duration.
	Price *float64
}

type BookingService struct {
	bookings repository.BookingRepository
	guides   repository.GuideRepository
}

func NewBookingService(bookings repository.BookingRepository, guides repository.GuideRepository) *BookingService {
	return &BookingService{bookings: bookings, guides: guides}
}

func (s *BookingService) GetAll(ctx context.Context) ([]models.Booking, error) {
	return s.bookings.FindAll(ctx)
}

func (s *BookingService) GetByStatus(ctx context.Context, status models.BookingStatus) ([]models.Booking, error) {
	return s.bookings.FindByStatus(ctx, status)
}

// GetByID is visible to the visitor, the guide and admins.
func (s *BookingService) GetByID(ctx context.Context, actor Actor, id uint) (*models.Booking, error) {
	b, err := s.bookings.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() && b.VisitorID != actor.UserID && b.GuideID != actor.UserID {
		return nil, forbiddenf("not your booking")
	}
	return b, nil
}

func (s *BookingService) GetForVisitor(ctx context.Context, visitorID uint) ([]models.Booking, error) {
	return s.bookings.FindByVisitor(ctx, visitorID)
}

func (s *BookingService) GetForGuide(ctx context.Context, guideID uint) ([]models.Booking, error) {
	return s.bookings.FindByGuide(ctx, guideID)
}

// Create books a guide for the caller. New bookings are PENDING.
func (s *BookingService) Create(ctx context.Context, actor Actor, in BookingInput) (*models.Booking, error) {
	if !in.EndDateTime.After(in.StartDateTime) {
		return nil, invalidf("endDateTime must be after startDateTime")
	}
	if in.GuideID == actor.UserID {
		return nil, invalidf("a guide cannot book themselves")
	}
	guide, err := s.guides.FindByID(ctx, in.GuideID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, invalidf("guide %d does not exist", in.GuideID)
		}
		return nil, err
	}

	price := guide.HourlyRate * in.EndDateTime.Sub(in.StartDateTime).Hours()
	if in.Price != nil {
		if *in.Price < 0 {
			return nil, invalidf("price must not be negative")
		}
		price = *in.Price
	}
	b := &models.Booking{
		StartDateTime: in.StartDateTime,
		EndDateTime:   in.EndDateTime,
		Status:        models.BookingPending,
		Price:         price,
		VisitorID:     actor.UserID,
		GuideID:       in.GuideID,
	}
	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, err
	}
	return s.bookings.FindByID(ctx, b.ID)
}

// UpdateStatus lets the visitor cancel, and the guide or an admin set any
// status.
func (s *BookingService) UpdateStatus(ctx context.Context, actor Actor, id uint, status models.BookingStatus) (*models.Booking, error) {
	if !status.Valid() {
		return nil, invalidf("invalid booking status %q", status)
	}
	b, err := s.bookings.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	switch {
	case actor.IsAdmin(), b.GuideID == actor.UserID:
	case b.VisitorID == actor.UserID:
		if status != models.BookingCancelled {
			return nil, forbiddenf("visitors can only cancel a booking")
		}
	default:
		return nil, forbiddenf("not your booking")
	}
	b.Status = status
	if err := s.bookings.Save(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *BookingService) Delete(ctx context.Context, actor Actor, id uint) error {
	b, err := s.bookings.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !actor.IsAdmin() && b.VisitorID != actor.UserID {
		return forbiddenf("not your booking")
	}
	return s.bookings.Delete(ctx, id)
}

// CompleteFinished marks CONFIRMED bookings that ended before now as
// COMPLETED and returns how many were updated.
func (s *BookingService) CompleteFinished(ctx context.Context, now time.Time) (int, error) {
	ended, err := s.bookings.FindEndedWithStatus(ctx, models.BookingConfirmed, now)
	if err != nil {
		return 0, err
	}
	done := 0
	for i := range ended {
		b := &ended[i]
		b.Status = models.BookingCompleted
		if err := s.bookings.Save(ctx, b); err != nil {
			logrus.WithError(err).WithField("booking_id", b.ID).Error("failed to complete booking")
			continue
		}
		done++
	}
	return done, nil
}
