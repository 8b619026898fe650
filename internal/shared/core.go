package shared

import (
	"context"
	"time"

	firebaseauth "firebase.google.com/go/v4/auth"
	"github.com/google/uuid"
)

// User represents a user as seen outside the user package.
type User struct {
	ID                uuid.UUID
	FirebaseUID       string
	Email             *string
	FirstName         *string
	LastName          *string
	Phone             *string
	ProfilePictureURL *string
	// Role is nil until the user has chosen adopter or shelter.
	Role        *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	LastLoginAt *time.Time
}

// RoleOrEmpty returns the role string, or "" when no role has been chosen.
func (u *User) RoleOrEmpty() string {
	if u.Role == nil {
		return ""
	}
	return *u.Role
}

// Session identifies the authenticated actor of a request. It is passed
// explicitly into service calls so authorization checks stay testable in
// isolation, instead of reading ambient per-request state.
type Session struct {
	UserID uuid.UUID
	Role   string // "" when the user has not chosen a role yet
}

// Service defines the user operations needed outside the user package
// (primarily by the auth middleware for just-in-time provisioning).
type Service interface {
	GetUserByID(ctx context.Context, id uuid.UUID) (*User, error)
	GetUserByFirebaseUID(ctx context.Context, firebaseUID string) (*User, error)
	GetOrCreateUserFromFirebaseClaims(ctx context.Context, firebaseToken *firebaseauth.Token) (usr *User, wasCreated bool, err error)
}
