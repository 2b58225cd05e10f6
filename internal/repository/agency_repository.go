package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"teranga_match/internal/models"
)

type AgencyRepository interface {
	FindAll(ctx context.Context) ([]models.AgenceVoyage, error)
	FindByID(ctx context.Context, id uint) (*models.AgenceVoyage, error)
	FindByNom(ctx context.Context, nom string) (*models.AgenceVoyage, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, agency *models.AgenceVoyage) error
	Save(ctx context.Context, agency *models.AgenceVoyage) error
	Delete(ctx context.Context, id uint) error
}

type agencyRepository struct {
	db *gorm.DB
}

func NewAgencyRepository(db *gorm.DB) AgencyRepository {
	return &agencyRepository{db: db}
}

func (r *agencyRepository) FindAll(ctx context.Context) ([]models.AgenceVoyage, error) {
	var agencies []models.AgenceVoyage
	if err := r.db.WithContext(ctx).Order("nom").Find(&agencies).Error; err != nil {
		return nil, translate(err)
	}
	return agencies, nil
}

func (r *agencyRepository) FindByID(ctx context.Context, id uint) (*models.AgenceVoyage, error) {
	var a models.AgenceVoyage
	if err := r.db.WithContext(ctx).Preload("Guides").First(&a, id).Error; err != nil {
		return nil, translate(err)
	}
	return &a, nil
}

func (r *agencyRepository) FindByNom(ctx context.Context, nom string) (*models.AgenceVoyage, error) {
	var a models.AgenceVoyage
	if err := r.db.WithContext(ctx).Where("nom = ?", nom).First(&a).Error; err != nil {
		return nil, translate(err)
	}
	return &a, nil
}

func (r *agencyRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.AgenceVoyage{}).
		Where("LOWER(email) = LOWER(?)", email).
		Count(&n).Error
	if err != nil {
		return false, translate(err)
	}
	return n > 0, nil
}

func (r *agencyRepository) Create(ctx context.Context, agency *models.AgenceVoyage) error {
	return translate(r.db.WithContext(ctx).Omit(clause.Associations).Create(agency).Error)
}

func (r *agencyRepository) Save(ctx context.Context, agency *models.AgenceVoyage) error {
	return translate(r.db.WithContext(ctx).Omit(clause.Associations).Save(agency).Error)
}

// Delete detaches the agency's guides before removing it.
func (r *agencyRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&models.Guide{}).
			Where("agence_voyage_id = ?", id).
			Update("agence_voyage_id", nil).Error
		if err != nil {
			return translate(err)
		}
		return affected(tx.Delete(&models.AgenceVoyage{}, id))
	})
}
