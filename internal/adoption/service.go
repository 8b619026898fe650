package adoption

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"petcare_backend/internal/common"
	"petcare_backend/internal/pet"
	"petcare_backend/internal/shared"
)

// PetService is the slice of the pet service the workflow needs.
type PetService interface {
	GetByID(ctx context.Context, id uuid.UUID) (*pet.Pet, error)
	MarkUnavailable(ctx context.Context, id uuid.UUID) error
}

// Service is the adoption request workflow. All mutations take an explicit
// session; authorization is decided here, not in route middleware.
type Service interface {
	Submit(ctx context.Context, session shared.Session, req SubmitRequest) (*Request, error)
	Approve(ctx context.Context, session shared.Session, id uuid.UUID) (*Request, error)
	Reject(ctx context.Context, session shared.Session, id uuid.UUID) (*Request, error)
	ListForUser(ctx context.Context, userID uuid.UUID, role string) ([]Request, error)
	RejectOrphaned(ctx context.Context) (int, error)
}

type ServiceImplementation struct {
	repo        Repository
	petService  PetService
	userService shared.Service
	logger      *zap.Logger
}

var _ Service = (*ServiceImplementation)(nil)

func NewService(repo Repository, petService PetService, userService shared.Service, logger *zap.Logger) *ServiceImplementation {
	return &ServiceImplementation{
		repo:        repo,
		petService:  petService,
		userService: userService,
		logger:      logger.Named("AdoptionService"),
	}
}

// Submit creates a pending request with pet, adopter and owner details
// snapshotted at this moment. The owner learns about it by reading their
// request list; nothing is pushed.
func (s *ServiceImplementation) Submit(ctx context.Context, session shared.Session, req SubmitRequest) (*Request, error) {
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return nil, common.NewValidationAPIError("Message must not be empty.", nil)
	}

	p, err := s.petService.GetByID(ctx, req.PetID)
	if err != nil {
		return nil, err
	}

	if session.Role != common.RoleAdopter {
		return nil, common.ErrForbidden.WithDetails("Only adopter accounts can submit adoption requests.")
	}
	if p.OwnerID == session.UserID {
		return nil, common.ErrForbidden.WithDetails("You cannot adopt your own pet.")
	}

	if _, err := s.repo.FindPendingByAdopterAndPet(ctx, session.UserID, req.PetID); err == nil {
		return nil, common.ErrConflict.WithDetails("You already have a pending request for this pet.")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("Failed to check for existing pending request", zap.Error(err))
		return nil, common.ErrInternalServer
	}

	adopter, err := s.userService.GetUserByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}

	request := &Request{
		PetID:        p.ID,
		PetName:      p.Name,
		PetType:      p.Type,
		PetImageURL:  p.ImageURL,
		AdopterID:    adopter.ID,
		AdopterName:  displayName(adopter),
		AdopterEmail: adopter.Email,
		AdopterPhone: adopter.Phone,
		OwnerID:      p.OwnerID,
		OwnerName:    p.OwnerName,
		OwnerEmail:   p.OwnerEmail,
		Message:      message,
		Status:       StatusPending,
	}

	if err := s.repo.Create(ctx, request); err != nil {
		s.logger.Error("Failed to create adoption request", zap.Error(err),
			zap.String("petID", p.ID.String()), zap.String("adopterID", adopter.ID.String()))
		return nil, common.ErrInternalServer
	}

	s.logger.Info("Adoption request submitted",
		zap.String("requestID", request.ID.String()),
		zap.String("petID", p.ID.String()),
		zap.String("adopterID", adopter.ID.String()))
	return request, nil
}

// Approve transitions a pending request to approved and then, best effort,
// takes the pet off the market and rejects the remaining pending requests
// for it. The request transition is the authoritative write; the follow-ups
// are logged on failure and never roll it back.
func (s *ServiceImplementation) Approve(ctx context.Context, session shared.Session, id uuid.UUID) (*Request, error) {
	request, err := s.decide(ctx, session, id, StatusApproved)
	if err != nil {
		return nil, err
	}

	if err := s.petService.MarkUnavailable(ctx, request.PetID); err != nil {
		s.logger.Warn("Failed to mark pet unavailable after approval",
			zap.Error(err), zap.String("petID", request.PetID.String()))
	}

	siblings, err := s.repo.FindPendingByPetExcluding(ctx, request.PetID, request.ID)
	if err != nil {
		s.logger.Warn("Failed to list sibling pending requests after approval",
			zap.Error(err), zap.String("petID", request.PetID.String()))
		return request, nil
	}
	for _, sibling := range siblings {
		if err := s.repo.UpdateStatusIfPending(ctx, sibling.ID, StatusRejected); err != nil {
			s.logger.Warn("Failed to auto-reject sibling request",
				zap.Error(err), zap.String("requestID", sibling.ID.String()))
		}
	}

	return request, nil
}

// Reject transitions a pending request to rejected.
func (s *ServiceImplementation) Reject(ctx context.Context, session shared.Session, id uuid.UUID) (*Request, error) {
	return s.decide(ctx, session, id, StatusRejected)
}

func (s *ServiceImplementation) decide(ctx context.Context, session shared.Session, id uuid.UUID, status string) (*Request, error) {
	request, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound.WithDetails("Adoption request not found.")
		}
		s.logger.Error("Failed to load adoption request", zap.Error(err), zap.String("requestID", id.String()))
		return nil, common.ErrInternalServer
	}

	if request.OwnerID != session.UserID {
		return nil, common.ErrForbidden.WithDetails("Only the pet's owner can decide this request.")
	}
	if request.Status != StatusPending {
		return nil, common.ErrConflict.WithDetails("This request has already been decided.")
	}

	if err := s.repo.UpdateStatusIfPending(ctx, id, status); err != nil {
		switch {
		case errors.Is(err, ErrNotPending):
			// Lost the race to a concurrent decision.
			return nil, common.ErrConflict.WithDetails("This request has already been decided.")
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, common.ErrNotFound.WithDetails("Adoption request not found.")
		default:
			s.logger.Error("Failed to update adoption request status", zap.Error(err), zap.String("requestID", id.String()))
			return nil, common.ErrInternalServer
		}
	}

	request.Status = status
	s.logger.Info("Adoption request decided",
		zap.String("requestID", id.String()),
		zap.String("status", status),
		zap.String("ownerID", session.UserID.String()))
	return request, nil
}

// ListForUser returns the requests visible to a user: the ones they submitted
// when acting as an adopter, the ones targeting their pets when acting as a
// shelter. Newest first.
func (s *ServiceImplementation) ListForUser(ctx context.Context, userID uuid.UUID, role string) ([]Request, error) {
	var (
		requests []Request
		err      error
	)
	switch role {
	case common.RoleAdopter:
		requests, err = s.repo.FindByAdopterID(ctx, userID)
	case common.RoleShelter:
		requests, err = s.repo.FindByOwnerID(ctx, userID)
	default:
		return []Request{}, nil
	}
	if err != nil {
		s.logger.Error("Failed to list adoption requests", zap.Error(err), zap.String("userID", userID.String()))
		return nil, common.ErrInternalServer
	}
	return requests, nil
}

// RejectOrphaned closes pending requests whose pet has been deleted, so the
// adopter's feed eventually resolves. Invoked by the background sweeper.
func (s *ServiceImplementation) RejectOrphaned(ctx context.Context) (int, error) {
	pending, err := s.repo.FindAllPending(ctx)
	if err != nil {
		return 0, err
	}

	swept := 0
	for _, request := range pending {
		_, err := s.petService.GetByID(ctx, request.PetID)
		if err == nil {
			continue
		}
		if !errors.Is(err, common.ErrNotFound) {
			s.logger.Warn("Sweeper could not resolve pet for pending request",
				zap.Error(err), zap.String("requestID", request.ID.String()))
			continue
		}
		if err := s.repo.UpdateStatusIfPending(ctx, request.ID, StatusRejected); err != nil {
			s.logger.Warn("Sweeper failed to reject orphaned request",
				zap.Error(err), zap.String("requestID", request.ID.String()))
			continue
		}
		swept++
	}

	if swept > 0 {
		s.logger.Info("Rejected orphaned adoption requests", zap.Int("count", swept))
	}
	return swept, nil
}

func displayName(u *shared.User) *string {
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
