package services

import (
	"context"
	"errors"
	"math"

	"teranga_match/internal/models"
	"teranga_match/internal/repository"
)

type ReviewService struct {
	reviews repository.ReviewRepository
	guides  repository.GuideRepository
	places  repository.PlaceRepository
	events  repository.EventRepository
}

func NewReviewService(reviews repository.ReviewRepository, guides repository.GuideRepository, places repository.PlaceRepository, events repository.EventRepository) *ReviewService {
	return &ReviewService{reviews: reviews, guides: guides, places: places, events: events}
}

func (s *ReviewService) GetByID(ctx context.Context, id uint) (*models.Review, error) {
	return s.reviews.FindByID(ctx, id)
}

func (s *ReviewService) GetByAuthor(ctx context.Context, authorID uint) ([]models.Review, error) {
	return s.reviews.FindByAuthor(ctx, authorID)
}

func (s *ReviewService) GetByGuide(ctx context.Context, guideID uint) ([]models.Review, error) {
	return s.reviews.FindByGuide(ctx, guideID)
}

func (s *ReviewService) GetByPlace(ctx context.Context, placeID uint) ([]models.Review, error) {
	return s.reviews.FindByPlace(ctx, placeID)
}

func (s *ReviewService) GetByEvent(ctx context.Context, eventID uint) ([]models.Review, error) {
	return s.reviews.FindByEvent(ctx, eventID)
}

// Create stores a review written by the caller about exactly one guide,
// place or event.
func (s *ReviewService) Create(ctx context.Context, actor Actor, in models.Review) (*models.Review, error) {
	if in.Rating < 1 || in.Rating > 5 {
		return nil, invalidf("rating must be between 1 and 5")
	}
	if in.TargetCount() != 1 {
		return nil, invalidf("a review targets exactly one of guideId, placeId or eventId")
	}
	if err := s.checkTarget(ctx, in); err != nil {
		return nil, err
	}
	if in.GuideID != nil && *in.GuideID == actor.UserID {
		return nil, invalidf("guides cannot review themselves")
	}

	r := &models.Review{
		Rating:   in.Rating,
		Comment:  in.Comment,
		AuthorID: actor.UserID,
		GuideID:  in.GuideID,
		PlaceID:  in.PlaceID,
		EventID:  in.EventID,
	}
	if err := s.reviews.Create(ctx, r); err != nil {
		return nil, err
	}
	if r.GuideID != nil {
		if err := s.refreshGuideRating(ctx, *r.GuideID); err != nil {
			return nil, err
		}
	}
	return s.reviews.FindByID(ctx, r.ID)
}

// Delete is allowed to the author and to admins.
func (s *ReviewService) Delete(ctx context.Context, actor Actor, id uint) error {
	r, err := s.reviews.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !actor.IsAdmin() && r.AuthorID != actor.UserID {
		return forbiddenf("not your review")
	}
	if err := s.reviews.Delete(ctx, id); err != nil {
		return err
	}
	if r.GuideID != nil {
		return s.refreshGuideRating(ctx, *r.GuideID)
	}
	return nil
}

func (s *ReviewService) checkTarget(ctx context.Context, in models.Review) error {
	var err error
	switch {
	case in.GuideID != nil:
		_, err = s.guides.FindByID(ctx, *in.GuideID)
	case in.PlaceID != nil:
		_, err = s.places.FindByID(ctx, *in.PlaceID)
	case in.EventID != nil:
		_, err = s.events.FindByID(ctx, *in.EventID)
	}
	if errors.Is(err, repository.ErrNotFound) {
		return invalidf("review target does not exist")
	}
	return err
}

func (s *ReviewService) refreshGuideRating(ctx context.Context, guideID uint) error {
	avg, _, err := s.reviews.AverageForGuide(ctx, guideID)
	if err != nil {
		return err
	}
	return s.guides.UpdateRating(ctx, guideID, math.Round(avg*100)/100)
}
