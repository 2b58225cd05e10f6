package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"teranga_match/internal/models"
)

type ReviewRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Review, error)
	FindByAuthor(ctx context.Context, authorID uint) ([]models.Review, error)
	FindByGuide(ctx context.Context, guideID uint) ([]models.Review, error)
	FindByPlace(ctx context.Context, placeID uint) ([]models.Review, error)
	FindByEvent(ctx context.Context, eventID uint) ([]models.Review, error)
	// AverageForGuide returns the mean rating and the number of reviews.
	AverageForGuide(ctx context.Context, guideID uint) (float64, int64, error)
	Create(ctx context.Context, review *models.Review) error
	Delete(ctx context.Context, id uint) error
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) list(q *gorm.DB) ([]models.Review, error) {
	var reviews []models.Review
	if err := q.Preload("Author.Profile").Order("created_at DESC, id DESC").Find(&reviews).Error; err != nil {
		return nil, translate(err)
	}
	return reviews, nil
}

func (r *reviewRepository) FindByID(ctx context.Context, id uint) (*models.Review, error) {
	var rv models.Review
	if err := r.db.WithContext(ctx).Preload("Author.Profile").First(&rv, id).Error; err != nil {
		return nil, translate(err)
	}
	return &rv, nil
}

func (r *reviewRepository) FindByAuthor(ctx context.Context, authorID uint) ([]models.Review, error) {
	return r.list(r.db.WithContext(ctx).Where("author_id = ?", authorID))
}

func (r *reviewRepository) FindByGuide(ctx context.Context, guideID uint) ([]models.Review, error) {
	return r.list(r.db.WithContext(ctx).Where("guide_id = ?", guideID))
}

func (r *reviewRepository) FindByPlace(ctx context.Context, placeID uint) ([]models.Review, error) {
	return r.list(r.db.WithContext(ctx).Where("place_id = ?", placeID))
}

func (r *reviewRepository) FindByEvent(ctx context.Context, eventID uint) ([]models.Review, error) {
	return r.list(r.db.WithContext(ctx).Where("event_id = ?", eventID))
}

func (r *reviewRepository) AverageForGuide(ctx context.Context, guideID uint) (float64, int64, error) {
	var row struct {
		Avg   float64
		Count int64
	}
	err := r.db.WithContext(ctx).Model(&models.Review{}).
		Select("COALESCE(AVG(rating), 0) AS avg, COUNT(*) AS count").
		Where("guide_id = ?", guideID).
		Scan(&row).Error
	if err != nil {
		return 0, 0, translate(err)
	}
	return row.Avg, row.Count, nil
}

func (r *reviewRepository) Create(ctx context.Context, review *models.Review) error {
	return translate(r.db.WithContext(ctx).Omit(clause.Associations).Create(review).Error)
}

func (r *reviewRepository) Delete(ctx context.Context, id uint) error {
	return affected(r.db.WithContext(ctx).Delete(&models.Review{}, id))
}
