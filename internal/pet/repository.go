package pet

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository defines persistence operations for pet listings.
type Repository interface {
	Create(ctx context.Context, p *Pet) error
	FindByID(ctx context.Context, id uuid.UUID) (*Pet, error)
	List(ctx context.Context, filters ListFilters) ([]Pet, error)
	Update(ctx context.Context, p *Pet) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type gormRepository struct {
	db *gorm.DB
}

func NewGORMRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) Create(ctx context.Context, p *Pet) error {
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return fmt.Errorf("creating pet: %w", err)
	}
	return nil
}

func (r *gormRepository) FindByID(ctx context.Context, id uuid.UUID) (*Pet, error) {
	var p Pet
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, gorm.ErrRecordNotFound
		}
		return nil, fmt.Errorf("finding pet %s: %w", id, err)
	}
	return &p, nil
}

// List returns pets newest first. Filters are equality matches only.
func (r *gormRepository) List(ctx context.Context, filters ListFilters) ([]Pet, error) {
	query := r.db.WithContext(ctx).Model(&Pet{})
	if filters.Type != "" {
		query = query.Where("type = ?", filters.Type)
	}
	if filters.Status != "" {
		query = query.Where("status = ?", filters.Status)
	}
	if filters.OwnerID != uuid.Nil {
		query = query.Where("owner_id = ?", filters.OwnerID)
	}

	var pets []Pet
	if err := query.Order("created_at DESC").Find(&pets).Error; err != nil {
		return nil, fmt.Errorf("listing pets: %w", err)
	}
	return pets, nil
}

func (r *gormRepository) Update(ctx context.Context, p *Pet) error {
	if err := r.db.WithContext(ctx).Save(p).Error; err != nil {
		return fmt.Errorf("updating pet %s: %w", p.ID, err)
	}
	return nil
}

func (r *gormRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	result := r.db.WithContext(ctx).Model(&Pet{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return fmt.Errorf("updating pet %s status: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *gormRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&Pet{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("deleting pet %s: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
