package article

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, a *Article) error
	FindBySlug(ctx context.Context, slug string) (*Article, error)
	List(ctx context.Context, category string) ([]Article, error)
	Count(ctx context.Context) (int64, error)
}

type gormRepository struct {
	db *gorm.DB
}

func NewGORMRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) Create(ctx context.Context, a *Article) error {
	if err := r.db.WithContext(ctx).Create(a).Error; err != nil {
		return fmt.Errorf("creating article: %w", err)
	}
	return nil
}

func (r *gormRepository) FindBySlug(ctx context.Context, slug string) (*Article, error) {
	var a Article
	err := r.db.WithContext(ctx).First(&a, "slug = ?", slug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, gorm.ErrRecordNotFound
		}
		return nil, fmt.Errorf("finding article by slug %q: %w", slug, err)
	}
	return &a, nil
}

func (r *gormRepository) List(ctx context.Context, category string) ([]Article, error) {
	query := r.db.WithContext(ctx).Model(&Article{})
	if category != "" {
		query = query.Where("category = ?", category)
	}

	var articles []Article
	if err := query.Order("created_at DESC").Find(&articles).Error; err != nil {
		return nil, fmt.Errorf("listing articles: %w", err)
	}
	return articles, nil
}

func (r *gormRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&Article{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("counting articles: %w", err)
	}
	return count, nil
}
