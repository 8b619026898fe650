package shelter

import "petcare_backend/internal/common"

// Shelter is a public directory entry for a rescue organization.
type Shelter struct {
	common.BaseModel
	Name        string  `gorm:"type:varchar(200);not null" json:"name"`
	Description *string `gorm:"type:text" json:"description,omitempty"`
	Address     *string `gorm:"type:varchar(255)" json:"address,omitempty"`
	City        *string `gorm:"type:varchar(100);index" json:"city,omitempty"`
	Phone       *string `gorm:"type:varchar(30)" json:"phone,omitempty"`
	Email       *string `gorm:"type:varchar(255)" json:"email,omitempty"`
	Website     *string `gorm:"type:text" json:"website,omitempty"`
	ImageURL    *string `gorm:"type:text" json:"image_url,omitempty"`
	Rating      float64 `gorm:"not null;default:0" json:"rating"`
	Reviews     int     `gorm:"not null;default:0" json:"reviews"`
}

func (Shelter) TableName() string {
	return "shelters"
}

// CreateShelterRequest carries the fields for a new directory entry.
type CreateShelterRequest struct {
	Name        string  `json:"name" binding:"required,max=200"`
	Description *string `json:"description"`
	Address     *string `json:"address" binding:"omitempty,max=255"`
	City        *string `json:"city" binding:"omitempty,max=100"`
	Phone       *string `json:"phone" binding:"omitempty,max=30"`
	Email       *string `json:"email" binding:"omitempty,email"`
	Website     *string `json:"website" binding:"omitempty,url"`
	ImageURL    *string `json:"image_url" binding:"omitempty,url"`
}
