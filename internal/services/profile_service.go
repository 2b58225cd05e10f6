package services

import (
	"context"
	"errors"

	"teranga_match/internal/models"
	"teranga_match/internal/repository"
)

type ProfileService struct {
	profiles repository.ProfileRepository
	users    repository.UserRepository
}

func NewProfileService(profiles repository.ProfileRepository, users repository.UserRepository) *ProfileService {
	return &ProfileService{profiles: profiles, users: users}
}

func (s *ProfileService) GetByUserID(ctx context.Context, userID uint) (*models.Profile, error) {
	return s.profiles.FindByUserID(ctx, userID)
}

// Upsert writes the editable fields of the user's profile, creating it on
// first use. Verified is left untouched.
func (s *ProfileService) Upsert(ctx context.Context, userID uint, in models.Profile) (*models.Profile, error) {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return nil, err
	}
	p, err := s.profiles.FindByUserID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		p = &models.Profile{UserID: userID}
	} else if err != nil {
		return nil, err
	}
	p.DisplayName = in.DisplayName
	p.Bio = in.Bio
	p.City = in.City
	p.PhotoURL = in.PhotoURL
	if err := s.profiles.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}
