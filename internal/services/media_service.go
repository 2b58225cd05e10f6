package services

import (
	"context"
	"strings"

	"teranga_match/internal/models"
	"teranga_match/internal/repository"
)

type MediaService struct {
	media repository.MediaRepository
}

func NewMediaService(media repository.MediaRepository) *MediaService {
	return &MediaService{media: media}
}

func (s *MediaService) GetByID(ctx context.Context, id uint) (*models.Media, error) {
	return s.media.FindByID(ctx, id)
}

// GetApproved lists the approved media attached to a record.
func (s *MediaService) GetApproved(ctx context.Context, relatedType models.RelatedType, relatedID uint) ([]models.Media, error) {
	items, err := s.media.FindByRelated(ctx, relatedType, relatedID)
	if err != nil {
		return nil, err
	}
	approved := items[:0]
	for _, m := range items {
		if m.Status == models.ModerationApproved {
			approved = append(approved, m)
		}
	}
	return approved, nil
}

func (s *MediaService) GetByStatus(ctx context.Context, status models.ModerationStatus) ([]models.Media, error) {
	return s.media.FindByStatus(ctx, status)
}

// Create submits a media item for moderation.
func (s *MediaService) Create(ctx context.Context, actor Actor, in models.Media) (*models.Media, error) {
	if strings.TrimSpace(in.URL) == "" {
		return nil, invalidf("url is required")
	}
	if in.Type == "" {
		in.Type = models.MediaImage
	}
	if !in.Type.Valid() {
		return nil, invalidf("invalid media type %q", in.Type)
	}
	if !in.RelatedType.Valid() {
		return nil, invalidf("invalid related type %q", in.RelatedType)
	}
	m := &models.Media{
		URL:         in.URL,
		Type:        in.Type,
		Status:      models.ModerationPending,
		RelatedType: in.RelatedType,
		RelatedID:   in.RelatedID,
		UploaderID:  &actor.UserID,
	}
	if err := s.media.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *MediaService) Moderate(ctx context.Context, id uint, status models.ModerationStatus) (*models.Media, error) {
	if !status.Valid() {
		return nil, invalidf("invalid moderation status %q", status)
	}
	m, err := s.media.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	m.Status = status
	if err := s.media.Save(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *MediaService) Delete(ctx context.Context, id uint) error {
	return s.media.Delete(ctx, id)
}
