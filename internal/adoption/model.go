package adoption

import (
	"time"

	"github.com/google/uuid"

	"petcare_backend/internal/common"
)

// Request statuses. Pending is the only non-terminal state.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Request is an adoption request. Pet, adopter and owner details are
// snapshotted at submission time and never re-joined, so the row renders
// correctly even after the pet or either account changes.
type Request struct {
	common.BaseModel
	PetID       uuid.UUID `gorm:"type:uuid;not null;index" json:"pet_id"`
	PetName     string    `gorm:"type:varchar(100);not null" json:"pet_name"`
	PetType     string    `gorm:"type:varchar(20);not null" json:"pet_type"`
	PetImageURL *string   `gorm:"type:text" json:"pet_image_url,omitempty"`

	AdopterID    uuid.UUID `gorm:"type:uuid;not null;index" json:"adopter_id"`
	AdopterName  *string   `gorm:"type:varchar(200)" json:"adopter_name,omitempty"`
	AdopterEmail *string   `gorm:"type:varchar(255)" json:"adopter_email,omitempty"`
	AdopterPhone *string   `gorm:"type:varchar(30)" json:"adopter_phone,omitempty"`

	OwnerID    uuid.UUID `gorm:"type:uuid;not null;index" json:"owner_id"`
	OwnerName  *string   `gorm:"type:varchar(200)" json:"owner_name,omitempty"`
	OwnerEmail *string   `gorm:"type:varchar(255)" json:"owner_email,omitempty"`

	Message string `gorm:"type:text;not null" json:"message"`
	Status  string `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
}

func (Request) TableName() string {
	return "adoption_requests"
}

// SubmitRequest is the payload for creating an adoption request.
type SubmitRequest struct {
	PetID   uuid.UUID `json:"pet_id" binding:"required"`
	Message string    `json:"message" binding:"required"`
}

// RequestResponse is the API shape for an adoption request.
type RequestResponse struct {
	ID           string    `json:"id"`
	PetID        string    `json:"pet_id"`
	PetName      string    `json:"pet_name"`
	PetType      string    `json:"pet_type"`
	PetImageURL  *string   `json:"pet_image_url,omitempty"`
	AdopterID    string    `json:"adopter_id"`
	AdopterName  *string   `json:"adopter_name,omitempty"`
	AdopterEmail *string   `json:"adopter_email,omitempty"`
	AdopterPhone *string   `json:"adopter_phone,omitempty"`
	OwnerID      string    `json:"owner_id"`
	OwnerName    *string   `json:"owner_name,omitempty"`
	OwnerEmail   *string   `json:"owner_email,omitempty"`
	Message      string    `json:"message"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func ToRequestResponse(r *Request) *RequestResponse {
	if r == nil {
		return nil
	}
	return &RequestResponse{
		ID:           r.ID.String(),
		PetID:        r.PetID.String(),
		PetName:      r.PetName,
		PetType:      r.PetType,
		PetImageURL:  r.PetImageURL,
		AdopterID:    r.AdopterID.String(),
		AdopterName:  r.AdopterName,
		AdopterEmail: r.AdopterEmail,
		AdopterPhone: r.AdopterPhone,
		OwnerID:      r.OwnerID.String(),
		OwnerName:    r.OwnerName,
		OwnerEmail:   r.OwnerEmail,
		Message:      r.Message,
		Status:       r.Status,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func ToRequestResponses(requests []Request) []*RequestResponse {
	out := make([]*RequestResponse, 0, len(requests))
	for i := range requests {
		out = append(out, ToRequestResponse(&requests[i]))
	}
	return out
}
