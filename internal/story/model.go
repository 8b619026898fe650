package story

import (
	"time"

	"github.com/google/uuid"

	"petcare_backend/internal/common"
)

// Engagement fields that may be incremented.
const (
	FieldLikes    = "likes"
	FieldComments = "comments"
	FieldShares   = "shares"
)

// Story is an adoption success story. Engagement counters are updated with
// single-field atomic increments, never read-modify-write.
type Story struct {
	common.BaseModel
	Title        string     `gorm:"type:varchar(200);not null" json:"title"`
	Story        string     `gorm:"type:text;not null" json:"story"`
	PetName      string     `gorm:"type:varchar(100);not null" json:"pet_name"`
	PetType      string     `gorm:"type:varchar(20);not null;index" json:"pet_type"`
	AdopterName  string     `gorm:"type:varchar(200);not null" json:"adopter_name"`
	AdoptionDate *time.Time `json:"adoption_date,omitempty"`
	ImageURL     *string    `gorm:"type:text" json:"image_url,omitempty"`
	AuthorID     *uuid.UUID `gorm:"type:uuid" json:"author_id,omitempty"`
	Likes        int        `gorm:"not null;default:0" json:"likes"`
	Comments     int        `gorm:"not null;default:0" json:"comments"`
	Shares       int        `gorm:"not null;default:0" json:"shares"`
}

func (Story) TableName() string {
	return "stories"
}

func IsValidEngagementField(field string) bool {
	switch field {
	case FieldLikes, FieldComments, FieldShares:
		return true
	}
	return false
}

// CreateStoryRequest carries the fields for a new success story.
type CreateStoryRequest struct {
	Title        string     `json:"title" binding:"required,max=200"`
	Story        string     `json:"story" binding:"required"`
	PetName      string     `json:"pet_name" binding:"required,max=100"`
	PetType      string     `json:"pet_type" binding:"required,oneof=Dog Cat Bird Rabbit Other"`
	AdopterName  string     `json:"adopter_name" binding:"required,max=200"`
	AdoptionDate *time.Time `json:"adoption_date"`
	ImageURL     *string    `json:"image_url" binding:"omitempty,url"`
}

// EngagementRequest names the counter to bump.
type EngagementRequest struct {
	Field string `json:"field" binding:"required,oneof=likes comments shares"`
}
