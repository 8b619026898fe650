package common

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Context keys set by the authentication middleware.
const (
	ContextUserIDKey      = "userID"
	ContextUserRoleKey    = "userRole"
	ContextFirebaseUIDKey = "firebaseUID"
)

// GetUserIDFromContext retrieves the authenticated user's ID from the Gin
// context. The second return value reports whether a valid ID was present.
func GetUserIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	val, exists := c.Get(ContextUserIDKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := val.(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// GetUserRoleFromContext retrieves the authenticated user's role, if chosen.
func GetUserRoleFromContext(c *gin.Context) (string, bool) {
	val, exists := c.Get(ContextUserRoleKey)
	if !exists {
		return "", false
	}
	role, ok := val.(string)
	if !ok || role == "" {
		return "", false
	}
	return role, true
}

// GetFirebaseUIDFromContext retrieves the verified Firebase UID.
func GetFirebaseUIDFromContext(c *gin.Context) (string, bool) {
	val, exists := c.Get(ContextFirebaseUIDKey)
	if !exists {
		return "", false
	}
	uid, ok := val.(string)
	if !ok || uid == "" {
		return "", false
	}
	return uid, true
}
