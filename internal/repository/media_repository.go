package repository

import (
	"context"

	"gorm.io/gorm"

	"teranga_match/internal/models"
)

type MediaRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Media, error)
	FindByRelated(ctx context.Context, relatedType models.RelatedType, relatedID uint) ([]models.Media, error)
	FindByStatus(ctx context.Context, status models.ModerationStatus) ([]models.Media, error)
	Create(ctx context.Context, media *models.Media) error
	Save(ctx context.Context, media *models.Media) error
	Delete(ctx context.Context, id uint) error
}

type mediaRepository struct {
	db *gorm.DB
}

func NewMediaRepository(db *gorm.DB) MediaRepository {
	return &mediaRepository{db: db}
}

func (r *mediaRepository) list(q *gorm.DB) ([]models.Media, error) {
	var items []models.Media
	if err := q.Order("id").Find(&items).Error; err != nil {
		return nil, translate(err)
	}
	return items, nil
}

func (r *mediaRepository) FindByID(ctx context.Context, id uint) (*models.Media, error) {
	var m models.Media
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, translate(err)
	}
	return &m, nil
}

func (r *mediaRepository) FindByRelated(ctx context.Context, relatedType models.RelatedType, relatedID uint) ([]models.Media, error) {
	return r.list(r.db.WithContext(ctx).Where("related_type = ? AND related_id = ?", relatedType, relatedID))
}

func (r *mediaRepository) FindByStatus(ctx context.Context, status models.ModerationStatus) ([]models.Media, error) {
	return r.list(r.db.WithContext(ctx).Where("status = ?", status))
}

func (r *mediaRepository) Create(ctx context.Context, media *models.Media) error {
	return translate(r.db.WithContext(ctx).Create(media).Error)
}

func (r *mediaRepository) Save(ctx context.Context, media *models.Media) error {
	return translate(r.db.WithContext(ctx).Save(media).Error)
}

func (r *mediaRepository) Delete(ctx context.Context, id uint) error {
	return affected(r.db.WithContext(ctx).Delete(&models.Media{}, id))
}
