package services

import (
	"context"
	"errors"

	"teranga_match/internal/models"
	"teranga_match/internal/repository"
)

type MatchService struct {
	matches repository.MatchRepository
	users   repository.UserRepository
}

func NewMatchService(matches repository.MatchRepository, users repository.UserRepository) *MatchService {
	return &MatchService{matches: matches, users: users}
}

func (s *MatchService) GetAll(ctx context.Context) ([]models.Match, error) {
	return s.matches.FindAll(ctx)
}

func (s *MatchService) GetByID(ctx context.Context, id uint) (*models.Match, error) {
	return s.matches.FindByID(ctx, id)
}

func (s *MatchService) GetForUser(ctx context.Context, userID uint) ([]models.Match, error) {
	return s.matches.FindByUser(ctx, userID)
}

func (s *MatchService) GetByStatus(ctx context.Context, status models.MatchStatus) ([]models.Match, error) {
	return s.matches.FindByStatus(ctx, status)
}

// Create pairs two distinct existing users in a PENDING match.
func (s *MatchService) Create(ctx context.Context, user1ID, user2ID uint, score float64, reasons string) (*models.Match, error) {
	if user1ID == 0 || user2ID == 0 || user1ID == user2ID {
		return nil, invalidf("a match needs two distinct users")
	}
	for _, id := range []uint{user1ID, user2ID} {
		if _, err := s.users.FindByID(ctx, id); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, invalidf("user %d does not exist", id)
			}
			return nil, err
		}
	}
	m := &models.Match{
		User1ID: user1ID,
		User2ID: user2ID,
		Score:   score,
		Reasons: reasons,
		Status:  models.MatchPending,
	}
	if err := s.matches.Create(ctx, m); err != nil {
		return nil, err
	}
	return s.matches.FindByID(ctx, m.ID)
}

// UpdateStatus is open to either matched user and to admins.
func (s *MatchService) UpdateStatus(ctx context.Context, actor Actor, id uint, status models.MatchStatus) (*models.Match, error) {
	if !status.Valid() {
		return nil, invalidf("invalid match status %q", status)
	}
	m, err := s.matches.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() && !m.Involves(actor.UserID) {
		return nil, forbiddenf("not your match")
	}
	m.Status = status
	if err := s.matches.Save(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *MatchService) Delete(ctx context.Context, id uint) error {
	return s.matches.Delete(ctx, id)
}
