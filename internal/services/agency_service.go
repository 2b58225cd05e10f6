package services

import (
	"context"
	"strings"

	"teranga_match/internal/models"
	"teranga_match/internal/repository"
)

type AgencyService struct {
	agencies repository.AgencyRepository
}

func NewAgencyService(agencies repository.AgencyRepository) *AgencyService {
	return &AgencyService{agencies: agencies}
}

func (s *AgencyService) GetAll(ctx context.Context) ([]models.AgenceVoyage, error) {
	return s.agencies.FindAll(ctx)
}

func (s *AgencyService) GetByID(ctx context.Context, id uint) (*models.AgenceVoyage, error) {
	return s.agencies.FindByID(ctx, id)
}

func (s *AgencyService) GetByNom(ctx context.Context, nom string) (*models.AgenceVoyage, error) {
	return s.agencies.FindByNom(ctx, nom)
}

func (s *AgencyService) Create(ctx context.Context, in models.AgenceVoyage) (*models.AgenceVoyage, error) {
	if strings.TrimSpace(in.Nom) == "" {
		return nil, invalidf("nom is required")
	}
	if err := s.checkEmail(ctx, in.Email); err != nil {
		return nil, err
	}
	a := &models.AgenceVoyage{Nom: in.Nom, Adresse: in.Adresse, Telephone: in.Telephone, Email: in.Email}
	if err := s.agencies.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *AgencyService) Update(ctx context.Context, id uint, in models.AgenceVoyage) (*models.AgenceVoyage, error) {
	a, err := s.agencies.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Nom) == "" {
		return nil, invalidf("nom is required")
	}
	if !strings.EqualFold(a.Email, in.Email) {
		if err := s.checkEmail(ctx, in.Email); err != nil {
			return nil, err
		}
	}
	a.Nom, a.Adresse, a.Telephone, a.Email = in.Nom, in.Adresse, in.Telephone, in.Email
	if err := s.agencies.Save(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *AgencyService) Delete(ctx context.Context, id uint) error {
	return s.agencies.Delete(ctx, id)
}

func (s *AgencyService) checkEmail(ctx context.Context, email string) error {
	if email == "" {
		return nil
	}
	exists, err := s.agencies.ExistsByEmail(ctx, email)
	if err != nil {
		return err
	}
	if exists {
		return repository.ErrConflict
	}
	return nil
}
