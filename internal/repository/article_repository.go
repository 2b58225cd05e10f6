package repository

import (
	"context"

	"gorm.io/gorm"

	"teranga_match/internal/models"
)

type ArticleRepository interface {
	FindAll(ctx context.Context) ([]models.Article, error)
	FindByID(ctx context.Context, id uint) (*models.Article, error)
	FindByCategory(ctx context.Context, category string) ([]models.Article, error)
	// Search matches the query against title or excerpt, ignoring case.
	Search(ctx context.Context, q string) ([]models.Article, error)
	Create(ctx context.Context, article *models.Article) error
	Save(ctx context.Context, article *models.Article) error
	Delete(ctx context.Context, id uint) error
}

type articleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

func (r *articleRepository) list(q *gorm.DB) ([]models.Article, error) {
	var articles []models.Article
	if err := q.Order("created_at DESC, id DESC").Find(&articles).Error; err != nil {
		return nil, translate(err)
	}
	return articles, nil
}

func (r *articleRepository) FindAll(ctx context.Context) ([]models.Article, error) {
	return r.list(r.db.WithContext(ctx))
}

func (r *articleRepository) FindByID(ctx context.Context, id uint) (*models.Article, error) {
	var a models.Article
	if err := r.db.WithContext(ctx).First(&a, id).Error; err != nil {
		return nil, translate(err)
	}
	return &a, nil
}

func (r *articleRepository) FindByCategory(ctx context.Context, category string) ([]models.Article, error) {
	return r.list(r.db.WithContext(ctx).Where("LOWER(category) = LOWER(?)", category))
}

func (r *articleRepository) Search(ctx context.Context, q string) ([]models.Article, error) {
	p := containsFold(q)
	return r.list(r.db.WithContext(ctx).
		Where("LOWER(title) LIKE ?"+likeEscape+" OR LOWER(excerpt) LIKE ?"+likeEscape, p, p))
}

func (r *articleRepository) Create(ctx context.Context, article *models.Article) error {
	return translate(r.db.WithContext(ctx).Create(article).Error)
}

func (r *articleRepository) Save(ctx context.Context, article *models.Article) error {
	return translate(r.db.WithContext(ctx).Save(article).Error)
}

func (r *articleRepository) Delete(ctx context.Context, id uint) error {
	return affected(r.db.WithContext(ctx).Delete(&models.Article{}, id))
}
