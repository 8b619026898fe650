package story

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository defines persistence operations for success stories.
type Repository interface {
	Create(ctx context.Context, s *Story) error
	FindByID(ctx context.Context, id uuid.UUID) (*Story, error)
	List(ctx context.Context, petType string) ([]Story, error)
	// IncrementField applies a single atomic SQL increment to one counter.
	IncrementField(ctx context.Context, id uuid.UUID, field string) error
	Count(ctx context.Context) (int64, error)
}

type gormRepository struct {
	db *gorm.DB
}

func NewGORMRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) Create(ctx context.Context, s *Story) error {
	if err := r.db.WithContext(ctx).Create(s).Error; err != nil {
		return fmt.Errorf("creating story: %w", err)
	}
	return nil
}

func (r *gormRepository) FindByID(ctx context.Context, id uuid.UUID) (*Story, error) {
	var s Story
	err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, gorm.ErrRecordNotFound
		}
		return nil, fmt.Errorf("finding story %s: %w", id, err)
	}
	return &s, nil
}

func (r *gormRepository) List(ctx context.Context, petType string) ([]Story, error) {
	query := r.db.WithContext(ctx).Model(&Story{})
	if petType != "" {
		query = query.Where("pet_type = ?", petType)
	}

	var stories []Story
	if err := query.Order("created_at DESC").Find(&stories).Error; err != nil {
		return nil, fmt.Errorf("listing stories: %w", err)
	}
	return stories, nil
}

// IncrementField must only be called with a whitelisted column name; the
// service validates before calling.
func (r *gormRepository) IncrementField(ctx context.Context, id uuid.UUID, field string) error {
	result := r.db.WithContext(ctx).Model(&Story{}).
		Where("id = ?", id).
		UpdateColumn(field, gorm.Expr(field+" + 1"))
	if result.Error != nil {
		return fmt.Errorf("incrementing story %s %s: %w", id, field, result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *gormRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&Story{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("counting stories: %w", err)
	}
	return count, nil
}
