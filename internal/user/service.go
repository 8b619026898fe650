package user

import (
	"context"
	"errors"
	"strings"
	"time"

	firebaseauth "firebase.google.com/go/v4/auth"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"petcare_backend/internal/common"
	"petcare_backend/internal/shared"
)

// Service exposes user account operations.
type Service interface {
	shared.Service
	UpdateProfile(ctx context.Context, session shared.Session, req UpdateProfileRequest) (*shared.User, error)
	ChooseRole(ctx context.Context, session shared.Session, role string) (*shared.User, error)
}

type ServiceImplementation struct {
	repo   Repository
	logger *zap.Logger
}

var _ Service = (*ServiceImplementation)(nil)

func NewService(repo Repository, logger *zap.Logger) *ServiceImplementation {
	return &ServiceImplementation{
		repo:   repo,
		logger: logger.Named("UserService"),
	}
}

func (s *ServiceImplementation) GetUserByID(ctx context.Context, id uuid.UUID) (*shared.User, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound.WithDetails("User not found.")
		}
		s.logger.Error("Failed to fetch user by ID", zap.Error(err), zap.String("userID", id.String()))
		return nil, common.ErrInternalServer
	}
	return u.ToSharedUser(), nil
}

func (s *ServiceImplementation) GetUserByFirebaseUID(ctx context.Context, firebaseUID string) (*shared.User, error) {
	u, err := s.repo.FindByFirebaseUID(ctx, firebaseUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound.WithDetails("User not found.")
		}
		s.logger.Error("Failed to fetch user by Firebase UID", zap.Error(err))
		return nil, common.ErrInternalServer
	}
	return u.ToSharedUser(), nil
}

// GetOrCreateUserFromFirebaseClaims resolves the local record for a verified
// Firebase token, creating it on first login. The second return value reports
// whether a new record was created.
func (s *ServiceImplementation) GetOrCreateUserFromFirebaseClaims(ctx context.Context, token *firebaseauth.Token) (*shared.User, bool, error) {
	existing, err := s.repo.FindByFirebaseUID(ctx, token.UID)
	if err == nil {
		now := time.Now().UTC()
		existing.LastLoginAt = &now
		applyClaims(existing, token)
		if updateErr := s.repo.Update(ctx, existing); updateErr != nil {
			// Login-time bookkeeping only; the request proceeds regardless.
			s.logger.Warn("Failed to refresh user on sign-in", zap.Error(updateErr), zap.String("userID", existing.ID.String()))
		}
		return existing.ToSharedUser(), false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("Failed to look up user by Firebase UID", zap.Error(err))
		return nil, false, common.ErrInternalServer
	}

	now := time.Now().UTC()
	newUser := &User{
		FirebaseUID: token.UID,
		LastLoginAt: &now,
	}
	applyClaims(newUser, token)

	if err := s.repo.Create(ctx, newUser); err != nil {
		s.logger.Error("Failed to create user from Firebase claims", zap.Error(err), zap.String("firebaseUID", token.UID))
		return nil, false, common.ErrInternalServer
	}

	s.logger.Info("Created new user from Firebase claims",
		zap.String("userID", newUser.ID.String()),
		zap.String("firebaseUID", token.UID))
	return newUser.ToSharedUser(), true, nil
}

// applyClaims copies the standard identity claims onto the local record.
// Empty or absent claims never clear existing values.
func applyClaims(u *User, token *firebaseauth.Token) {
	if email, ok := token.Claims["email"].(string); ok && email != "" {
		u.Email = &email
	}
	if name, ok := token.Claims["name"].(string); ok && name != "" && u.FirstName == nil {
		first, last := splitDisplayName(name)
		u.FirstName = &first
		if last != "" && u.LastName == nil {
			u.LastName = &last
		}
	}
	if picture, ok := token.Claims["picture"].(string); ok && picture != "" && u.ProfilePictureURL == nil {
		u.ProfilePictureURL = &picture
	}
}

// splitDisplayName divides a display name into first and last parts at the
// first space. A single-word name yields an empty last name.
func splitDisplayName(name string) (string, string) {
	first, last, found := strings.Cut(strings.TrimSpace(name), " ")
	if !found {
		return first, ""
	}
	return first, strings.TrimSpace(last)
}

func (s *ServiceImplementation) UpdateProfile(ctx context.Context, session shared.Session, req UpdateProfileRequest) (*shared.User, error) {
	u, err := s.repo.FindByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound.WithDetails("User not found.")
		}
		s.logger.Error("Failed to load user for profile update", zap.Error(err))
		return nil, common.ErrInternalServer
	}

	if req.FirstName != nil {
		u.FirstName = req.FirstName
	}
	if req.LastName != nil {
		u.LastName = req.LastName
	}
	if req.Phone != nil {
		u.Phone = req.Phone
	}
	if req.ProfilePictureURL != nil {
		u.ProfilePictureURL = req.ProfilePictureURL
	}

	if err := s.repo.Update(ctx, u); err != nil {
		s.logger.Error("Failed to update user profile", zap.Error(err), zap.String("userID", u.ID.String()))
		return nil, common.ErrInternalServer
	}
	return u.ToSharedUser(), nil
}

// ChooseRole sets the account role exactly once. A second attempt conflicts
// even when the requested role matches the current one.
func (s *ServiceImplementation) ChooseRole(ctx context.Context, session shared.Session, role string) (*shared.User, error) {
	if !common.IsValidRole(role) {
		return nil, common.NewValidationAPIError("Role must be either 'adopter' or 'shelter'.", nil)
	}

	u, err := s.repo.FindByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound.WithDetails("User not found.")
		}
		s.logger.Error("Failed to load user for role selection", zap.Error(err))
		return nil, common.ErrInternalServer
	}

	if u.Role != nil && *u.Role != "" {
		return nil, common.ErrConflict.WithDetails("Role has already been chosen and cannot be changed.")
	}

	u.Role = &role
	if err := s.repo.Update(ctx, u); err != nil {
		s.logger.Error("Failed to set user role", zap.Error(err), zap.String("userID", u.ID.String()))
		return nil, common.ErrInternalServer
	}

	s.logger.Info("User chose role", zap.String("userID", u.ID.String()), zap.String("role", role))
	return u.ToSharedUser(), nil
}
