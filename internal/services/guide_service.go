package services

import (
	"context"
	"errors"

	"teranga_match/internal/models"
	"teranga_match/internal/repository"
)

// GuideInput carries the writable fields of a guide.
type GuideInput struct {
	// UserID lets an admin register someone else as a guide.
	UserID         *uint
	Specialties    []string
	HourlyRate     float64
	AgenceVoyageID *uint
	Verified       *bool
}

type GuideService struct {
	guides   repository.GuideRepository
	users    repository.UserRepository
	agencies repository.AgencyRepository
}

func NewGuideService(guides repository.GuideRepository, users repository.UserRepository, agencies repository.AgencyRepository) *GuideService {
	return &GuideService{guides: guides, users: users, agencies: agencies}
}

func (s *GuideService) GetAll(ctx context.Context) ([]models.Guide, error) {
	return s.guides.FindAll(ctx)
}

func (s *GuideService) GetByID(ctx context.Context, id uint) (*models.Guide, error) {
	return s.guides.FindByID(ctx, id)
}

func (s *GuideService) GetVerified(ctx context.Context) ([]models.Guide, error) {
	return s.guides.FindVerified(ctx)
}

func (s *GuideService) GetBySpecialty(ctx context.Context, specialty string) ([]models.Guide, error) {
	return s.guides.FindBySpecialty(ctx, specialty)
}

func (s *GuideService) GetByAgency(ctx context.Context, agencyID uint) ([]models.Guide, error) {
	return s.guides.FindByAgency(ctx, agencyID)
}

// Create turns a user into a guide. The caller becomes the guide unless an
// admin names another user.
func (s *GuideService) Create(ctx context.Context, actor Actor, in GuideInput) (*models.Guide, error) {
	userID := actor.UserID
	if in.UserID != nil && *in.UserID != actor.UserID {
		if !actor.IsAdmin() {
			return nil, forbiddenf("only an admin can register another user as guide")
		}
		userID = *in.UserID
	}
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, invalidf("user %d does not exist", userID)
		}
		return nil, err
	}
	exists, err := s.guides.ExistsByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, repository.ErrConflict
	}

	g := &models.Guide{ID: userID}
	if err := s.apply(ctx, actor, g, in); err != nil {
		return nil, err
	}
	if err := s.guides.Create(ctx, g); err != nil {
		return nil, err
	}
	return s.guides.FindByID(ctx, g.ID)
}

// Update is allowed to the guide itself or an admin.
func (s *GuideService) Update(ctx context.Context, actor Actor, id uint, in GuideInput) (*models.Guide, error) {
	if actor.UserID != id && !actor.IsAdmin() {
		return nil, forbiddenf("not your guide profile")
	}
	g, err := s.guides.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.apply(ctx, actor, g, in); err != nil {
		return nil, err
	}
	g.AgenceVoyage = nil
	if err := s.guides.Save(ctx, g); err != nil {
		return nil, err
	}
	return s.guides.FindByID(ctx, id)
}

func (s *GuideService) apply(ctx context.Context, actor Actor, g *models.Guide, in GuideInput) error {
	if in.HourlyRate < 0 {
		return invalidf("hourlyRate must not be negative")
	}
	if in.AgenceVoyageID != nil {
		if _, err := s.agencies.FindByID(ctx, *in.AgenceVoyageID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return invalidf("agency %d does not exist", *in.AgenceVoyageID)
			}
			return err
		}
	}
	if in.Verified != nil {
		if !actor.IsAdmin() {
			return forbiddenf("only an admin can verify a guide")
		}
		g.Verified = *in.Verified
	}
	g.Specialties = models.NewSpecialties(in.Specialties)
	g.HourlyRate = in.HourlyRate
	g.AgenceVoyageID = in.AgenceVoyageID
	return nil
}

func (s *GuideService) Delete(ctx context.Context, id uint) error {
	return s.guides.Delete(ctx, id)
}
