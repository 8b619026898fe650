package story

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"petcare_backend/internal/common"
	"petcare_backend/internal/shared"
)

type Service interface {
	Create(ctx context.Context, session shared.Session, req CreateStoryRequest) (*Story, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Story, error)
	List(ctx context.Context, petType string) ([]Story, error)
	IncrementEngagement(ctx context.Context, id uuid.UUID, field string) error
}

type ServiceImplementation struct {
	repo   Repository
	logger *zap.Logger
}

var _ Service = (*ServiceImplementation)(nil)

func NewService(repo Repository, logger *zap.Logger) *ServiceImplementation {
	return &ServiceImplementation{
		repo:   repo,
		logger: logger.Named("StoryService"),
	}
}

func (s *ServiceImplementation) Create(ctx context.Context, session shared.Session, req CreateStoryRequest) (*Story, error) {
	if strings.TrimSpace(req.Story) == "" {
		return nil, common.NewValidationAPIError("Story text must not be empty.", nil)
	}

	authorID := session.UserID
	story := &Story{
		Title:        strings.TrimSpace(req.Title),
		Story:        strings.TrimSpace(req.Story),
		PetName:      req.PetName,
		PetType:      req.PetType,
		AdopterName:  req.AdopterName,
		AdoptionDate: req.AdoptionDate,
		ImageURL:     req.ImageURL,
		AuthorID:     &authorID,
	}

	if err := s.repo.Create(ctx, story); err != nil {
		s.logger.Error("Failed to create story", zap.Error(err))
		return nil, common.ErrInternalServer
	}
	s.logger.Info("Created success story", zap.String("storyID", story.ID.String()))
	return story, nil
}

func (s *ServiceImplementation) GetByID(ctx context.Context, id uuid.UUID) (*Story, error) {
	story, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound.WithDetails("Story not found.")
		}
		s.logger.Error("Failed to fetch story", zap.Error(err), zap.String("storyID", id.String()))
		return nil, common.ErrInternalServer
	}
	return story, nil
}

func (s *ServiceImplementation) List(ctx context.Context, petType string) ([]Story, error) {
	stories, err := s.repo.List(ctx, petType)
	if err != nil {
		s.logger.Error("Failed to list stories", zap.Error(err))
		return nil, common.ErrInternalServer
	}
	return stories, nil
}

// IncrementEngagement bumps one of the whitelisted counters by one.
func (s *ServiceImplementation) IncrementEngagement(ctx context.Context, id uuid.UUID, field string) error {
	if !IsValidEngagementField(field) {
		return common.NewValidationAPIError("Engagement field must be one of likes, comments or shares.", nil)
	}

	if err := s.repo.IncrementField(ctx, id, field); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return common.ErrNotFound.WithDetails("Story not found.")
		}
		s.logger.Error("Failed to increment story engagement",
			zap.Error(err), zap.String("storyID", id.String()), zap.String("field", field))
		return common.ErrInternalServer
	}
	return nil
}
