package pet

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

// Service exposes pet listing operations. Write operations enforce shelter
// role and ownership here rather than in route middleware.
type Service interface {
	Create(ctx context.Context, session shared.Session, req CreatePetRequest) (*Pet, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Pet, error)
	List(ctx context.Context, filters ListFilters) ([]Pet, error)
	Update(ctx context.Context, session shared.Session, id uuid.UUID, req UpdatePetRequest) (*Pet, error)
	Delete(ctx context.Context, session shared.Session, id uuid.UUID) error
	MarkUnavailable(ctx context.Context, id uuid.UUID) error
}

type ServiceImplementation struct {
	repo        Repository
	userService shared.Service
	logger      *zap.Logger
}

var _ Service = (*ServiceImplementation)(nil)

func NewService(repo Repository, userService shared.Service, logger *zap.Logger) *ServiceImplementation {
	return &ServiceImplementation{
		repo:        repo,
		userService: userService,
		logger:      logger.Named("PetService"),
	}
}

func (s *ServiceImplementation) Create(ctx context.Context, session shared.Session, req CreatePetRequest) (*Pet, error) {
	if session.Role != common.RoleShelter {
		return nil, common.ErrForbidden.WithDetails("Only shelter accounts can create pet listings.")
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, common.NewValidationAPIError("Pet name must not be empty.", nil)
	}
	if !IsValidType(req.Type) {
		return nil, common.NewValidationAPIError("Unknown pet type.", nil)
	}

	owner, err := s.userService.GetUserByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}

	p := &Pet{
		Name:           strings.TrimSpace(req.Name),
		Type:           req.Type,
		Breed:          req.Breed,
		Age:            req.Age,
		Gender:         req.Gender,
		Size:           req.Size,
		Description:    req.Description,
		MedicalHistory: req.MedicalHistory,
		Vaccinated:     req.Vaccinated,
		SpayedNeutered: req.SpayedNeutered,
		ImageURL:       req.ImageURL,
		City:           req.City,
		Status:         StatusAvailable,
		OwnerID:        owner.ID,
		OwnerName:      ownerDisplayName(owner),
		OwnerEmail:     owner.Email,
		OwnerPhone:     owner.Phone,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		s.logger.Error("Failed to create pet listing", zap.Error(err), zap.String("ownerID", owner.ID.String()))
		return nil, common.ErrInternalServer
	}

	s.logger.Info("Created pet listing", zap.String("petID", p.ID.String()), zap.String("ownerID", owner.ID.String()))
	return p, nil
}

func (s *ServiceImplementation) GetByID(ctx context.Context, id uuid.UUID) (*Pet, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound.WithDetails("Pet not found.")
		}
		s.logger.Error("Failed to fetch pet", zap.Error(err), zap.String("petID", id.String()))
		return nil, common.ErrInternalServer
	}
	return p, nil
}

func (s *ServiceImplementation) List(ctx context.Context, filters ListFilters) ([]Pet, error) {
	if filters.Type != "" && !IsValidType(filters.Type) {
		return nil, common.NewValidationAPIError("Unknown pet type filter.", nil)
	}
	if filters.Status != "" && !IsValidStatus(filters.Status) {
		return nil, common.NewValidationAPIError("Unknown pet status filter.", nil)
	}

	pets, err := s.repo.List(ctx, filters)
	if err != nil {
		s.logger.Error("Failed to list pets", zap.Error(err))
		return nil, common.ErrInternalServer
	}
	return pets, nil
}

func (s *ServiceImplementation) Update(ctx context.Context, session shared.Session, id uuid.UUID, req UpdatePetRequest) (*Pet, error) {
	p, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.OwnerID != session.UserID {
		return nil, common.ErrForbidden.WithDetails("Only the listing owner can modify this pet.")
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, common.NewValidationAPIError("Pet name must not be empty.", nil)
		}
		p.Name = strings.TrimSpace(*req.Name)
	}
	if req.Type != nil {
		p.Type = *req.Type
	}
	if req.Breed != nil {
		p.Breed = req.Breed
	}
	if req.Age != nil {
		p.Age = req.Age
	}
	if req.Gender != nil {
		p.Gender = req.Gender
	}
	if req.Size != nil {
		p.Size = req.Size
	}
	if req.Description != nil {
		p.Description = req.Description
	}
	if req.MedicalHistory != nil {
		p.MedicalHistory = req.MedicalHistory
	}
	if req.Vaccinated != nil {
		p.Vaccinated = *req.Vaccinated
	}
	if req.SpayedNeutered != nil {
		p.SpayedNeutered = *req.SpayedNeutered
	}
	if req.ImageURL != nil {
		p.ImageURL = req.ImageURL
	}
	if req.City != nil {
		p.City = req.City
	}
	if req.Status != nil {
		p.Status = *req.Status
	}

	if err := s.repo.Update(ctx, p); err != nil {
		s.logger.Error("Failed to update pet listing", zap.Error(err), zap.String("petID", id.String()))
		return nil, common.ErrInternalServer
	}
	return p, nil
}

func (s *ServiceImplementation) Delete(ctx context.Context, session shared.Session, id uuid.UUID) error {
	p, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p.OwnerID != session.UserID {
		return common.ErrForbidden.WithDetails("Only the listing owner can delete this pet.")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return common.ErrNotFound.WithDetails("Pet not found.")
		}
		s.logger.Error("Failed to delete pet listing", zap.Error(err), zap.String("petID", id.String()))
		return common.ErrInternalServer
	}

	s.logger.Info("Deleted pet listing", zap.String("petID", id.String()))
	return nil
}

// MarkUnavailable flips a pet to unavailable, used when an adoption request
// for it is approved. Missing pets are not an error here.
func (s *ServiceImplementation) MarkUnavailable(ctx context.Context, id uuid.UUID) error {
	err := s.repo.UpdateStatus(ctx, id, StatusUnavailable)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

func ownerDisplayName(u *shared.User) *string {
	var parts []string
	if u.FirstName != nil && *u.FirstName != "" {
		parts = append(parts, *u.FirstName)
	}
	if u.LastName != nil && *u.LastName != "" {
		parts = append(parts, *u.LastName)
	}
	if len(parts) == 0 {
		return nil
	}
	name := strings.Join(parts, " ")
	return &name
}
