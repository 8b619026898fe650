package newsletter

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"petcare_backend/internal/common"
)

type Service interface {
	Subscribe(ctx context.Context, email string) (*Subscription, error)
}

type ServiceImplementation struct {
	repo   Repository
	logger *zap.Logger
}

var _ Service = (*ServiceImplementation)(nil)

func NewService(repo Repository, logger *zap.Logger) *ServiceImplementation {
	return &ServiceImplementation{
		repo:   repo,
		logger: logger.Named("NewsletterService"),
	}
}

// Subscribe registers an email address. Addresses are normalized to lower
// case; a duplicate signup conflicts.
func (s *ServiceImplementation) Subscribe(ctx context.Context, email string) (*Subscription, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))
	if normalized == "" {
		return nil, common.NewValidationAPIError("Email must not be empty.", nil)
	}

	if _, err := s.repo.FindByEmail(ctx, normalized); err == nil {
		return nil, common.ErrConflict.WithDetails("This email is already subscribed.")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("Failed to check existing subscription", zap.Error(err))
		return nil, common.ErrInternalServer
	}

	sub := &Subscription{Email: normalized}
	if err := s.repo.Create(ctx, sub); err != nil {
		s.logger.Error("Failed to create newsletter subscription", zap.Error(err))
		return nil, common.ErrInternalServer
	}

	s.logger.Info("Newsletter subscription created", zap.String("subscriptionID", sub.ID.String()))
	return sub, nil
}
