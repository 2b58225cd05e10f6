package repository

import (
	"context"

	"gorm.io/gorm"

	"teranga_match/internal/models"
)

type ProfileRepository interface {
	FindByUserID(ctx context.Context, userID uint) (*models.Profile, error)
	Save(ctx context.Context, profile *models.Profile) error
	DeleteByUserID(ctx context.Context, userID uint) error
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) FindByUserID(ctx context.Context, userID uint) (*models.Profile, error) {
	var p models.Profile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&p).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

// Save inserts the profile when it has no id yet, updates it otherwise.
func (r *profileRepository) Save(ctx context.Context, profile *models.Profile) error {
	if profile.ID == 0 {
		return translate(r.db.WithContext(ctx).Create(profile).Error)
	}
	return translate(r.db.WithContext(ctx).Save(profile).Error)
}

func (r *profileRepository) DeleteByUserID(ctx context.Context, userID uint) error {
	return affected(r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.Profile{}))
}
