package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"teranga_match/internal/models"
)

type GuideRepository interface {
	FindAll(ctx context.Context) ([]models.Guide, error)
	FindByID(ctx context.Context, id uint) (*models.Guide, error)
	FindByAgency(ctx context.Context, agencyID uint) ([]models.Guide, error)
	FindVerified(ctx context.Context) ([]models.Guide, error)
	FindBySpecialty(ctx context.Context, specialty string) ([]models.Guide, error)
	ExistsByID(ctx context.Context, id uint) (bool, error)
	Create(ctx context.Context, guide *models.Guide) error
	Save(ctx context.Context, guide *models.Guide) error
	UpdateRating(ctx context.Context, id uint, rating float64) error
	Delete(ctx context.Context, id uint) error
}

type guideRepository struct {
	db *gorm.DB
}

func NewGuideRepository(db *gorm.DB) GuideRepository {
	return &guideRepository{db: db}
}

func (r *guideRepository) query(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Specialties").Preload("AgenceVoyage").Order("guides.id")
}

func (r *guideRepository) find(ctx context.Context, q *gorm.DB) ([]models.Guide, error) {
	var guides []models.Guide
	if err := q.Find(&guides).Error; err != nil {
		return nil, translate(err)
	}
	if err := r.attachUsers(ctx, guides); err != nil {
		return nil, err
	}
	return guides, nil
}

// attachUsers loads the users sharing the guides' ids.
func (r *guideRepository) attachUsers(ctx context.Context, guides []models.Guide) error {
	if len(guides) == 0 {
		return nil
	}
	ids := make([]uint, len(guides))
	for i, g := range guides {
		ids[i] = g.ID
	}
	var users []models.User
	if err := r.db.WithContext(ctx).Preload("Profile").Where("id IN ?", ids).Find(&users).Error; err != nil {
		return translate(err)
	}
	byID := make(map[uint]*models.User, len(users))
	for i := range users {
		byID[users[i].ID] = &users[i]
	}
	for i := range guides {
		guides[i].User = byID[guides[i].ID]
	}
	return nil
}

func (r *guideRepository) FindAll(ctx context.Context) ([]models.Guide, error) {
	return r.find(ctx, r.query(ctx))
}

func (r *guideRepository) FindByID(ctx context.Context, id uint) (*models.Guide, error) {
	guides, err := r.find(ctx, r.query(ctx).Where("guides.id = ?", id).Limit(1))
	if err != nil {
		return nil, err
	}
	if len(guides) == 0 {
		return nil, ErrNotFound
	}
	return &guides[0], nil
}

func (r *guideRepository) FindByAgency(ctx context.Context, agencyID uint) ([]models.Guide, error) {
	return r.find(ctx, r.query(ctx).Where("agence_voyage_id = ?", agencyID))
}

func (r *guideRepository) FindVerified(ctx context.Context) ([]models.Guide, error) {
	return r.find(ctx, r.query(ctx).Where("verified = ?", true))
}

// FindBySpecialty matches guides holding the specialty, ignoring case.
func (r *guideRepository) FindBySpecialty(ctx context.Context, specialty string) ([]models.Guide, error) {
	sub := r.db.Model(&models.GuideSpecialty{}).
		Select("guide_id").
		Where("LOWER(name) = ?", strings.ToLower(strings.TrimSpace(specialty)))
	return r.find(ctx, r.query(ctx).Where("guides.id IN (?)", sub))
}

func (r *guideRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.Guide{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, translate(err)
	}
	return n > 0, nil
}

func (r *guideRepository) Create(ctx context.Context, guide *models.Guide) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(guide).Error; err != nil {
			return translate(err)
		}
		return r.writeSpecialties(tx, guide)
	})
}

// Save updates the guide's columns and replaces its specialty collection.
func (r *guideRepository) Save(ctx context.Context, guide *models.Guide) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(guide).Error; err != nil {
			return translate(err)
		}
		if err := tx.Where("guide_id = ?", guide.ID).Delete(&models.GuideSpecialty{}).Error; err != nil {
			return translate(err)
		}
		return r.writeSpecialties(tx, guide)
	})
}

func (r *guideRepository) writeSpecialties(tx *gorm.DB, guide *models.Guide) error {
	if len(guide.Specialties) == 0 {
		return nil
	}
	for i := range guide.Specialties {
		guide.Specialties[i].ID = 0
		guide.Specialties[i].GuideID = guide.ID
	}
	return translate(tx.Create(&guide.Specialties).Error)
}

func (r *guideRepository) UpdateRating(ctx context.Context, id uint, rating float64) error {
	res := r.db.WithContext(ctx).Model(&models.Guide{}).Where("id = ?", id).Update("rating_avg", rating)
	return affected(res)
}

func (r *guideRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		n, err := deleteGuide(tx, id)
		if err != nil {
			return err
		}
		if n == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// deleteGuide removes the guide row with its specialties and the reviews
// written about it, returning how many guide rows went away.
func deleteGuide(tx *gorm.DB, id uint) (int64, error) {
	if err := tx.Where("guide_id = ?", id).Delete(&models.Review{}).Error; err != nil {
		return 0, translate(err)
	}
	if err := tx.Where("guide_id = ?", id).Delete(&models.GuideSpecialty{}).Error; err != nil {
		return 0, translate(err)
	}
	res := tx.Delete(&models.Guide{}, id)
	if res.Error != nil {
		return 0, translate(res.Error)
	}
	return res.RowsAffected, nil
}
