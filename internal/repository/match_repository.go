package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"teranga_match/internal/models"
)

type MatchRepository interface {
	FindAll(ctx context.Context) ([]models.Match, error)
	FindByID(ctx context.Context, id uint) (*models.Match, error)
	// FindByUser returns matches where the user is on either side.
	FindByUser(ctx context.Context, userID uint) ([]models.Match, error)
	FindByStatus(ctx context.Context, status models.MatchStatus) ([]models.Match, error)
	Create(ctx context.Context, match *models.Match) error
	Save(ctx context.Context, match *models.Match) error
	Delete(ctx context.Context, id uint) error
}

type matchRepository struct {
	db *gorm.DB
}

func NewMatchRepository(db *gorm.DB) MatchRepository {
	return &matchRepository{db: db}
}

func (r *matchRepository) list(q *gorm.DB) ([]models.Match, error) {
	var matches []models.Match
	if err := q.Preload("User1").Preload("User2").Order("score DESC, id").Find(&matches).Error; err != nil {
		return nil, translate(err)
	}
	return matches, nil
}

func (r *matchRepository) FindAll(ctx context.Context) ([]models.Match, error) {
	return r.list(r.db.WithContext(ctx))
}

func (r *matchRepository) FindByID(ctx context.Context, id uint) (*models.Match, error) {
	var m models.Match
	if err := r.db.WithContext(ctx).Preload("User1").Preload("User2").First(&m, id).Error; err != nil {
		return nil, translate(err)
	}
	return &m, nil
}

func (r *matchRepository) FindByUser(ctx context.Context, userID uint) ([]models.Match, error) {
	return r.list(r.db.WithContext(ctx).Where("user1_id = ? OR user2_id = ?", userID, userID))
}

func (r *matchRepository) FindByStatus(ctx context.Context, status models.MatchStatus) ([]models.Match, error) {
	return r.list(r.db.WithContext(ctx).Where("status = ?", status))
}

func (r *matchRepository) Create(ctx context.Context, match *models.Match) error {
	return translate(r.db.WithContext(ctx).Omit(clause.Associations).Create(match).Error)
}

func (r *matchRepository) Save(ctx context.Context, match *models.Match) error {
	return translate(r.db.WithContext(ctx).Omit(clause.Associations).Save(match).Error)
}

func (r *matchRepository) Delete(ctx context.Context, id uint) error {
	return affected(r.db.WithContext(ctx).Delete(&models.Match{}, id))
}
