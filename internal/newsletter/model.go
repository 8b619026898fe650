package newsletter

import "petcare_backend/internal/common"

// Subscription is a newsletter signup. Email is unique; subscribing twice
// conflicts.
type Subscription struct {
	common.BaseModel
	Email string `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
}

func (Subscription) TableName() string {
	return "newsletter_subscriptions"
}

// SubscribeRequest carries the signup email.
type SubscribeRequest struct {
	Email string `json:"email" binding:"required,email"`
}
