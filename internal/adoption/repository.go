package adoption

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrNotPending is returned by UpdateStatusIfPending when the row exists but
// has already left the pending state.
var ErrNotPending = errors.New("adoption request is not pending")

// Repository defines persistence operations for adoption requests.
type Repository interface {
	Create(ctx context.Context, r *Request) error
	FindByID(ctx context.Context, id uuid.UUID) (*Request, error)
	FindByAdopterID(ctx context.Context, adopterID uuid.UUID) ([]Request, error)
	FindByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]Request, error)
	// UpdateStatusIfPending transitions a request out of pending in a single
	// conditional write. It reports ErrNotPending when the row has already
	// been decided and gorm.ErrRecordNotFound when it does not exist.
	UpdateStatusIfPending(ctx context.Context, id uuid.UUID, status string) error
	FindPendingByAdopterAndPet(ctx context.Context, adopterID, petID uuid.UUID) (*Request, error)
	FindPendingByPetExcluding(ctx context.Context, petID, excludeID uuid.UUID) ([]Request, error)
	FindAllPending(ctx context.Context) ([]Request, error)
}

type gormRepository struct {
	db *gorm.DB
}

func NewGORMRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) Create(ctx context.Context, req *Request) error {
	if err := r.db.WithContext(ctx).Create(req).Error; err != nil {
		return fmt.Errorf("creating adoption request: %w", err)
	}
	return nil
}

func (r *gormRepository) FindByID(ctx context.Context, id uuid.UUID) (*Request, error) {
	var req Request
	err := r.db.WithContext(ctx).First(&req, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, gorm.ErrRecordNotFound
		}
		return nil, fmt.Errorf("finding adoption request %s: %w", id, err)
	}
	return &req, nil
}

func (r *gormRepository) FindByAdopterID(ctx context.Context, adopterID uuid.UUID) ([]Request, error) {
	var requests []Request
	err := r.db.WithContext(ctx).
		Where("adopter_id = ?", adopterID).
		Order("created_at DESC").
		Find(&requests).Error
	if err != nil {
		return nil, fmt.Errorf("listing adoption requests for adopter %s: %w", adopterID, err)
	}
	return requests, nil
}

func (r *gormRepository) FindByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]Request, error) {
	var requests []Request
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&requests).Error
	if err != nil {
		return nil, fmt.Errorf("listing adoption requests for owner %s: %w", ownerID, err)
	}
	return requests, nil
}

// UpdateStatusIfPending relies on the WHERE clause for the pending guard, so
// two concurrent deciders resolve to first-writer-wins without a transaction.
func (r *gormRepository) UpdateStatusIfPending(ctx context.Context, id uuid.UUID, status string) error {
	result := r.db.WithContext(ctx).Model(&Request{}).
		Where("id = ? AND status = ?", id, StatusPending).
		Update("status", status)
	if result.Error != nil {
		return fmt.Errorf("updating adoption request %s status: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&Request{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return fmt.Errorf("checking adoption request %s: %w", id, err)
		}
		if count == 0 {
			return gorm.ErrRecordNotFound
		}
		return ErrNotPending
	}
	return nil
}

func (r *gormRepository) FindPendingByAdopterAndPet(ctx context.Context, adopterID, petID uuid.UUID) (*Request, error) {
	var req Request
	err := r.db.WithContext(ctx).
		Where("adopter_id = ? AND pet_id = ? AND status = ?", adopterID, petID, StatusPending).
		First(&req).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, gorm.ErrRecordNotFound
		}
		return nil, fmt.Errorf("finding pending request for adopter %s and pet %s: %w", adopterID, petID, err)
	}
	return &req, nil
}

func (r *gormRepository) FindPendingByPetExcluding(ctx context.Context, petID, excludeID uuid.UUID) ([]Request, error) {
	var requests []Request
	err := r.db.WithContext(ctx).
		Where("pet_id = ? AND status = ? AND id <> ?", petID, StatusPending, excludeID).
		Find(&requests).Error
	if err != nil {
		return nil, fmt.Errorf("listing pending requests for pet %s: %w", petID, err)
	}
	return requests, nil
}

func (r *gormRepository) FindAllPending(ctx context.Context) ([]Request, error) {
	var requests []Request
	err := r.db.WithContext(ctx).
		Where("status = ?", StatusPending).
		Find(&requests).Error
	if err != nil {
		return nil, fmt.Errorf("listing pending adoption requests: %w", err)
	}
	return requests, nil
}
