package shelter

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
	Create(ctx context.Context, session shared.Session, req CreateShelterRequest) (*Shelter, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Shelter, error)
	List(ctx context.Context, city string) ([]Shelter, error)
}

type ServiceImplementation struct {
	repo   Repository
	logger *zap.Logger
}

var _ Service = (*ServiceImplementation)(nil)

func NewService(repo Repository, logger *zap.Logger) *ServiceImplementation {
	return &ServiceImplementation{
		repo:   repo,
		logger: logger.Named("ShelterService"),
	}
}

func (s *ServiceImplementation) Create(ctx context.Context, session shared.Session, req CreateShelterRequest) (*Shelter, error) {
	if session.Role != common.RoleShelter {
		return nil, common.ErrForbidden.WithDetails("Only shelter accounts can create directory entries.")
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, common.NewValidationAPIError("Shelter name must not be empty.", nil)
	}

	entry := &Shelter{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Address:     req.Address,
		City:        req.City,
		Phone:       req.Phone,
		Email:       req.Email,
		Website:     req.Website,
		ImageURL:    req.ImageURL,
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		s.logger.Error("Failed to create shelter", zap.Error(err))
		return nil, common.ErrInternalServer
	}
	s.logger.Info("Created shelter entry", zap.String("shelterID", entry.ID.String()))
	return entry, nil
}

func (s *ServiceImplementation) GetByID(ctx context.Context, id uuid.UUID) (*Shelter, error) {
	entry, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound.WithDetails("Shelter not found.")
		}
		s.logger.Error("Failed to fetch shelter", zap.Error(err), zap.String("shelterID", id.String()))
		return nil, common.ErrInternalServer
	}
	return entry, nil
}

func (s *ServiceImplementation) List(ctx context.Context, city string) ([]Shelter, error) {
	shelters, err := s.repo.List(ctx, city)
	if err != nil {
		s.logger.Error("Failed to list shelters", zap.Error(err))
		return nil, common.ErrInternalServer
	}
	return shelters, nil
}
