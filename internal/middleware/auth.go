package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"petcare_backend/internal/common"
	"petcare_backend/internal/firebase"
	"petcare_backend/internal/shared"
)

// AuthMiddleware verifies Firebase ID tokens and provisions a local user
// record on first sight of a new Firebase UID.
type AuthMiddleware struct {
	firebaseService *firebase.Service
	userService     shared.Service
	logger          *zap.Logger
}

func NewAuthMiddleware(fbService *firebase.Service, userService shared.Service, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		firebaseService: fbService,
		userService:     userService,
		logger:          logger.Named("AuthMiddleware"),
	}
}

// RequireAuth rejects requests without a valid Bearer token. On success it
// stores the local user ID, role and Firebase UID in the request context.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			common.RespondWithError(c, common.ErrUnauthorized.WithDetails("Authorization header is required."))
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			common.RespondWithError(c, common.ErrUnauthorized.WithDetails("Authorization header format must be Bearer {token}."))
			c.Abort()
			return
		}

		token, err := m.firebaseService.VerifyIDToken(c.Request.Context(), parts[1])
		if err != nil {
			m.logger.Warn("Token verification failed", zap.Error(err))
			common.RespondWithError(c, common.ErrUnauthorized.WithDetails("Invalid or expired token."))
			c.Abort()
			return
		}

		user, isNew, err := m.userService.GetOrCreateUserFromFirebaseClaims(c.Request.Context(), token)
		if err != nil {
			m.logger.Error("Failed to provision user from Firebase claims", zap.Error(err), zap.String("firebaseUID", token.UID))
			common.RespondWithError(c, common.ErrInternalServer.WithDetails("Failed to resolve user account."))
			c.Abort()
			return
		}
		if isNew {
			m.logger.Info("Provisioned new user from Firebase token",
				zap.String("userID", user.ID.String()),
				zap.String("firebaseUID", user.FirebaseUID))
		}

		c.Set(common.ContextUserIDKey, user.ID)
		c.Set(common.ContextFirebaseUIDKey, user.FirebaseUID)
		if user.Role != nil && *user.Role != "" {
			c.Set(common.ContextUserRoleKey, *user.Role)
		}

		c.Next()
	}
}
