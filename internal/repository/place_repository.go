package repository

import (
	"context"

	"gorm.io/gorm"

	"teranga_match/internal/models"
)

type PlaceRepository interface {
	FindAll(ctx context.Context) ([]models.Place, error)
	FindByID(ctx context.Context, id uint) (*models.Place, error)
	FindByType(ctx context.Context, t models.PlaceType) ([]models.Place, error)
	SearchByName(ctx context.Context, q string) ([]models.Place, error)
	SearchByAddress(ctx context.Context, q string) ([]models.Place, error)
	Create(ctx context.Context, place *models.Place) error
	Save(ctx context.Context, place *models.Place) error
	Delete(ctx context.Context, id uint) error
}

type placeRepository struct {
	db *gorm.DB
}

func NewPlaceRepository(db *gorm.DB) PlaceRepository {
	return &placeRepository{db: db}
}

func (r *placeRepository) list(q *gorm.DB) ([]models.Place, error) {
	var places []models.Place
	if err := q.Order("id").Find(&places).Error; err != nil {
		return nil, translate(err)
	}
	return places, nil
}

func (r *placeRepository) FindAll(ctx context.Context) ([]models.Place, error) {
	return r.list(r.db.WithContext(ctx))
}

func (r *placeRepository) FindByID(ctx context.Context, id uint) (*models.Place, error) {
	var p models.Place
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (r *placeRepository) FindByType(ctx context.Context, t models.PlaceType) ([]models.Place, error) {
	return r.list(r.db.WithContext(ctx).Where("type = ?", t))
}

func (r *placeRepository) SearchByName(ctx context.Context, q string) ([]models.Place, error) {
	return r.list(r.db.WithContext(ctx).Where("LOWER(name) LIKE ?"+likeEscape, containsFold(q)))
}

func (r *placeRepository) SearchByAddress(ctx context.Context, q string) ([]models.Place, error) {
	return r.list(r.db.WithContext(ctx).Where("LOWER(address) LIKE ?"+likeEscape, containsFold(q)))
}

func (r *placeRepository) Create(ctx context.Context, place *models.Place) error {
	return translate(r.db.WithContext(ctx).Create(place).Error)
}

func (r *placeRepository) Save(ctx context.Context, place *models.Place) error {
	return translate(r.db.WithContext(ctx).Save(place).Error)
}

// Delete removes the place and the reviews written about it.
func (r *placeRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("place_id = ?", id).Delete(&models.Review{}).Error; err != nil {
			return translate(err)
		}
		return affected(tx.Delete(&models.Place{}, id))
	})
}
