// File: internal/common/model.go
package common

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BaseModel defines common fields for GORM models.
type BaseModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt time.Time `gorm:"column:created_at;not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null" json:"updated_at"`
}

// BeforeCreate assigns the primary key so inserts work the same on Postgres
// and the in-memory test database.
func (b *BaseModel) BeforeCreate(_ *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// User roles. A user has no role until they explicitly choose one after the
// first sign-in; the choice is permanent.
const (
	RoleAdopter = "adopter"
	RoleShelter = "shelter"
)

// IsValidRole reports whether s is one of the assignable user roles.
func IsValidRole(s string) bool {
	return s == RoleAdopter || s == RoleShelter
}
