package shelter

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, s *Shelter) error
	FindByID(ctx context.Context, id uuid.UUID) (*Shelter, error)
	List(ctx context.Context, city string) ([]Shelter, error)
}

type gormRepository struct {
	db *gorm.DB
}

func NewGORMRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) Create(ctx context.Context, s *Shelter) error {
	if err := r.db.WithContext(ctx).Create(s).Error; err != nil {
		return fmt.Errorf("creating shelter: %w", err)
	}
	return nil
}

func (r *gormRepository) FindByID(ctx context.Context, id uuid.UUID) (*Shelter, error) {
	var s Shelter
	err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, gorm.ErrRecordNotFound
		}
		return nil, fmt.Errorf("finding shelter %s: %w", id, err)
	}
	return &s, nil
}

func (r *gormRepository) List(ctx context.Context, city string) ([]Shelter, error) {
	query := r.db.WithContext(ctx).Model(&Shelter{})
	if city != "" {
		query = query.Where("city = ?", city)
	}

	var shelters []Shelter
	if err := query.Order("created_at DESC").Find(&shelters).Error; err != nil {
		return nil, fmt.Errorf("listing shelters: %w", err)
	}
	return shelters, nil
}
