package notification

import "time"

// Notification kinds.
const (
	KindRequestStatus = "request-status"
	KindNewRequest    = "new-request"
)

// Notification is a synthesized feed entry. Nothing here is persisted; each
// entry is derived from an adoption request on every read.
type Notification struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	PetName   string    `json:"pet_name"`
	Status    string    `json:"status"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// Feed is the per-user notification view.
type Feed struct {
	Notifications []Notification `json:"notifications"`
	UnreadCount   int            `json:"unread_count"`
}
