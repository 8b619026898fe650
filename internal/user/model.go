package user

import (
	"time"

	"petcare_backend/internal/common"
	"petcare_backend/internal/shared"
)

// User is the local account record backing a Firebase identity. Role is nil
// until the user picks one; once set it never changes.
type User struct {
	common.BaseModel
	FirebaseUID       string     `gorm:"type:varchar(128);uniqueIndex;not null" json:"firebase_uid"`
	Email             *string    `gorm:"type:varchar(255);uniqueIndex" json:"email,omitempty"`
	FirstName         *string    `gorm:"type:varchar(100)" json:"first_name,omitempty"`
	LastName          *string    `gorm:"type:varchar(100)" json:"last_name,omitempty"`
	Phone             *string    `gorm:"type:varchar(30)" json:"phone,omitempty"`
	ProfilePictureURL *string    `gorm:"type:text" json:"profile_picture_url,omitempty"`
	Role              *string    `gorm:"type:varchar(20)" json:"role,omitempty"`
	LastLoginAt       *time.Time `json:"last_login_at,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// ToSharedUser converts the GORM model to the transport-neutral shared type.
func (u *User) ToSharedUser() *shared.User {
	if u == nil {
		return nil
	}
	return &shared.User{
		ID:                u.ID,
		FirebaseUID:       u.FirebaseUID,
		Email:             u.Email,
		FirstName:         u.FirstName,
		LastName:          u.LastName,
		Phone:             u.Phone,
		ProfilePictureURL: u.ProfilePictureURL,
		Role:              u.Role,
		CreatedAt:         u.CreatedAt,
		UpdatedAt:         u.UpdatedAt,
		LastLoginAt:       u.LastLoginAt,
	}
}

// UserResponse is the API shape for a user profile.
type UserResponse struct {
	ID                string     `json:"id"`
	Email             *string    `json:"email,omitempty"`
	FirstName         *string    `json:"first_name,omitempty"`
	LastName          *string    `json:"last_name,omitempty"`
	Phone             *string    `json:"phone,omitempty"`
	ProfilePictureURL *string    `json:"profile_picture_url,omitempty"`
	Role              *string    `json:"role,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	LastLoginAt       *time.Time `json:"last_login_at,omitempty"`
}

func ToUserResponse(u *shared.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:                u.ID.String(),
		Email:             u.Email,
		FirstName:         u.FirstName,
		LastName:          u.LastName,
		Phone:             u.Phone,
		ProfilePictureURL: u.ProfilePictureURL,
		Role:              u.Role,
		CreatedAt:         u.CreatedAt,
		LastLoginAt:       u.LastLoginAt,
	}
}

// UpdateProfileRequest carries the editable profile fields.
type UpdateProfileRequest struct {
	FirstName         *string `json:"first_name" binding:"omitempty,max=100"`
	LastName          *string `json:"last_name" binding:"omitempty,max=100"`
	Phone             *string `json:"phone" binding:"omitempty,max=30"`
	ProfilePictureURL *string `json:"profile_picture_url" binding:"omitempty,url"`
}

// ChooseRoleRequest sets the account role. Allowed once per account.
type ChooseRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=adopter shelter"`
}
