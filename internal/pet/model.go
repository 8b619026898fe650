package pet

import (
	"time"

	"github.com/google/uuid"

	"petcare_backend/internal/common"
)

// Pet type and status values.
const (
	TypeDog    = "Dog"
	TypeCat    = "Cat"
	TypeBird   = "Bird"
	TypeRabbit = "Rabbit"
	TypeOther  = "Other"

	StatusAvailable   = "available"
	StatusUnavailable = "unavailable"
)

// Pet is a listing created by a shelter account. Owner contact fields are
// snapshotted so listings render without a join.
type Pet struct {
	common.BaseModel
	Name            string  `gorm:"type:varchar(100);not null" json:"name"`
	Type            string  `gorm:"type:varchar(20);not null;index" json:"type"`
	Breed           *string `gorm:"type:varchar(100)" json:"breed,omitempty"`
	Age             *string `gorm:"type:varchar(50)" json:"age,omitempty"`
	Gender          *string `gorm:"type:varchar(20)" json:"gender,omitempty"`
	Size            *string `gorm:"type:varchar(20)" json:"size,omitempty"`
	Description     *string `gorm:"type:text" json:"description,omitempty"`
	MedicalHistory  *string `gorm:"type:text" json:"medical_history,omitempty"`
	Vaccinated      bool    `gorm:"default:false" json:"vaccinated"`
	SpayedNeutered  bool    `gorm:"default:false" json:"spayed_neutered"`
	ImageURL        *string `gorm:"type:text" json:"image_url,omitempty"`
	City            *string `gorm:"type:varchar(100);index" json:"city,omitempty"`
	Status          string  `gorm:"type:varchar(20);not null;default:'available';index" json:"status"`
	OwnerID         uuid.UUID `gorm:"type:uuid;not null;index" json:"owner_id"`
	OwnerName       *string   `gorm:"type:varchar(200)" json:"owner_name,omitempty"`
	OwnerEmail      *string   `gorm:"type:varchar(255)" json:"owner_email,omitempty"`
	OwnerPhone      *string   `gorm:"type:varchar(30)" json:"owner_phone,omitempty"`
}

func (Pet) TableName() string {
	return "pets"
}

func IsValidType(t string) bool {
	switch t {
	case TypeDog, TypeCat, TypeBird, TypeRabbit, TypeOther:
		return true
	}
	return false
}

func IsValidStatus(s string) bool {
	return s == StatusAvailable || s == StatusUnavailable
}

// CreatePetRequest carries the fields a shelter supplies for a new listing.
type CreatePetRequest struct {
	Name           string  `json:"name" binding:"required,max=100"`
	Type           string  `json:"type" binding:"required,oneof=Dog Cat Bird Rabbit Other"`
	Breed          *string `json:"breed" binding:"omitempty,max=100"`
	Age            *string `json:"age" binding:"omitempty,max=50"`
	Gender         *string `json:"gender" binding:"omitempty,max=20"`
	Size           *string `json:"size" binding:"omitempty,max=20"`
	Description    *string `json:"description"`
	MedicalHistory *string `json:"medical_history"`
	Vaccinated     bool    `json:"vaccinated"`
	SpayedNeutered bool    `json:"spayed_neutered"`
	ImageURL       *string `json:"image_url" binding:"omitempty,url"`
	City           *string `json:"city" binding:"omitempty,max=100"`
}

// UpdatePetRequest carries partial updates to an existing listing.
type UpdatePetRequest struct {
	Name           *string `json:"name" binding:"omitempty,max=100"`
	Type           *string `json:"type" binding:"omitempty,oneof=Dog Cat Bird Rabbit Other"`
	Breed          *string `json:"breed" binding:"omitempty,max=100"`
	Age            *string `json:"age" binding:"omitempty,max=50"`
	Gender         *string `json:"gender" binding:"omitempty,max=20"`
	Size           *string `json:"size" binding:"omitempty,max=20"`
	Description    *string `json:"description"`
	MedicalHistory *string `json:"medical_history"`
	Vaccinated     *bool   `json:"vaccinated"`
	SpayedNeutered *bool   `json:"spayed_neutered"`
	ImageURL       *string `json:"image_url" binding:"omitempty,url"`
	City           *string `json:"city" binding:"omitempty,max=100"`
	Status         *string `json:"status" binding:"omitempty,oneof=available unavailable"`
}

// ListFilters narrows listing queries. Zero values mean no filter.
type ListFilters struct {
	Type    string
	Status  string
	OwnerID uuid.UUID
}

// PetResponse is the API shape for a listing.
type PetResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Type           string    `json:"type"`
	Breed          *string   `json:"breed,omitempty"`
	Age            *string   `json:"age,omitempty"`
	Gender         *string   `json:"gender,omitempty"`
	Size           *string   `json:"size,omitempty"`
	Description    *string   `json:"description,omitempty"`
	MedicalHistory *string   `json:"medical_history,omitempty"`
	Vaccinated     bool      `json:"vaccinated"`
	SpayedNeutered bool      `json:"spayed_neutered"`
	ImageURL       *string   `json:"image_url,omitempty"`
	City           *string   `json:"city,omitempty"`
	Status         string    `json:"status"`
	OwnerID        string    `json:"owner_id"`
	OwnerName      *string   `json:"owner_name,omitempty"`
	OwnerEmail     *string   `json:"owner_email,omitempty"`
	OwnerPhone     *string   `json:"owner_phone,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func ToPetResponse(p *Pet) *PetResponse {
	if p == nil {
		return nil
	}
	return &PetResponse{
		ID:             p.ID.String(),
		Name:           p.Name,
		Type:           p.Type,
		Breed:          p.Breed,
		Age:            p.Age,
		Gender:         p.Gender,
		Size:           p.Size,
		Description:    p.Description,
		MedicalHistory: p.MedicalHistory,
		Vaccinated:     p.Vaccinated,
		SpayedNeutered: p.SpayedNeutered,
		ImageURL:       p.ImageURL,
		City:           p.City,
		Status:         p.Status,
		OwnerID:        p.OwnerID.String(),
		OwnerName:      p.OwnerName,
		OwnerEmail:     p.OwnerEmail,
		OwnerPhone:     p.OwnerPhone,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func ToPetResponses(pets []Pet) []*PetResponse {
	out := make([]*PetResponse, 0, len(pets))
	for i := range pets {
		out = append(out, ToPetResponse(&pets[i]))
	}
	return out
}
