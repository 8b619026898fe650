package newsletter

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, s *Subscription) error
	FindByEmail(ctx context.Context, email string) (*Subscription, error)
}

type gormRepository struct {
	db *gorm.DB
}

func NewGORMRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) Create(ctx context.Context, s *Subscription) error {
	if err := r.db.WithContext(ctx).Create(s).Error; err != nil {
		return fmt.Errorf("creating newsletter subscription: %w", err)
	}
	return nil
}

func (r *gormRepository) FindByEmail(ctx context.Context, email string) (*Subscription, error) {
	var s Subscription
	err := r.db.WithContext(ctx).First(&s, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, gorm.ErrRecordNotFound
		}
		return nil, fmt.Errorf("finding subscription by email: %w", err)
	}
	return &s, nil
}
