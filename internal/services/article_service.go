package services

import (
	"context"
	"strings"

	"teranga_match/internal/models"
	"teranga_match/internal/repository"
)

const defaultReadTime = "3 min"

type ArticleService struct {
	articles repository.ArticleRepository
}

func NewArticleService(articles repository.ArticleRepository) *ArticleService {
	return &ArticleService{articles: articles}
}

func (s *ArticleService) GetAll(ctx context.Context) ([]models.Article, error) {
	return s.articles.FindAll(ctx)
}

func (s *ArticleService) GetByID(ctx context.Context, id uint) (*models.Article, error) {
	return s.articles.FindByID(ctx, id)
}

func (s *ArticleService) Search(ctx context.Context, q string) ([]models.Article, error) {
	return s.articles.Search(ctx, q)
}

func (s *ArticleService) GetByCategory(ctx context.Context, category string) ([]models.Article, error) {
	return s.articles.FindByCategory(ctx, category)
}

// Create stores the article. ReadTime falls back to "3 min".
func (s *ArticleService) Create(ctx context.Context, in models.Article) (*models.Article, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, invalidf("title is required")
	}
	a := &models.Article{}
	copyArticle(a, in)
	a.Image = in.Image
	if a.ReadTime == "" {
		a.ReadTime = defaultReadTime
	}
	if err := s.articles.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// Update overwrites the text fields. ReadTime is kept when absent and the
// image is only replaced when a new one is given.
func (s *ArticleService) Update(ctx context.Context, id uint, in models.Article) (*models.Article, error) {
	a, err := s.articles.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Title) == "" {
		return nil, invalidf("title is required")
	}
	readTime := a.ReadTime
	copyArticle(a, in)
	if a.ReadTime == "" {
		a.ReadTime = readTime
	}
	if in.Image != nil {
		a.Image = in.Image
	}
	if err := s.articles.Save(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *ArticleService) Delete(ctx context.Context, id uint) error {
	return s.articles.Delete(ctx, id)
}

func copyArticle(dst *models.Article, src models.Article) {
	dst.Title = src.Title
	dst.Excerpt = src.Excerpt
	dst.Content = src.Content
	dst.Author = src.Author
	dst.Category = src.Category
	dst.ReadTime = src.ReadTime
	dst.Featured = src.Featured
}
