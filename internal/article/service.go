package article

import (
	"context"
	"errors"
	"strings"

	"github.com/gosimple/slug"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"petcare_backend/internal/common"
)

type Service interface {
	Create(ctx context.Context, req CreateArticleRequest) (*Article, error)
	GetBySlug(ctx context.Context, articleSlug string) (*Article, error)
	List(ctx context.Context, category string) ([]Article, error)
}

type ServiceImplementation struct {
	repo   Repository
	logger *zap.Logger
}

var _ Service = (*ServiceImplementation)(nil)

func NewService(repo Repository, logger *zap.Logger) *ServiceImplementation {
	return &ServiceImplementation{
		repo:   repo,
		logger: logger.Named("ArticleService"),
	}
}

func (s *ServiceImplementation) Create(ctx context.Context, req CreateArticleRequest) (*Article, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, common.NewValidationAPIError("Article title must not be empty.", nil)
	}

	a := &Article{
		Title:       title,
		Slug:        slug.Make(title),
		Description: req.Description,
		Category:    req.Category,
		Author:      req.Author,
		ReadTime:    req.ReadTime,
		Featured:    req.Featured,
	}

	if err := s.repo.Create(ctx, a); err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "duplicate") ||
			strings.Contains(strings.ToLower(err.Error()), "unique") {
			return nil, common.ErrConflict.WithDetails("An article with this title already exists.")
		}
		s.logger.Error("Failed to create article", zap.Error(err))
		return nil, common.ErrInternalServer
	}
	s.logger.Info("Created article", zap.String("slug", a.Slug))
	return a, nil
}

func (s *ServiceImplementation) GetBySlug(ctx context.Context, articleSlug string) (*Article, error) {
	a, err := s.repo.FindBySlug(ctx, articleSlug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound.WithDetails("Article not found.")
		}
		s.logger.Error("Failed to fetch article", zap.Error(err), zap.String("slug", articleSlug))
		return nil, common.ErrInternalServer
	}
	return a, nil
}

func (s *ServiceImplementation) List(ctx context.Context, category string) ([]Article, error) {
	articles, err := s.repo.List(ctx, category)
	if err != nil {
		s.logger.Error("Failed to list articles", zap.Error(err))
		return nil, common.ErrInternalServer
	}
	return articles, nil
}
