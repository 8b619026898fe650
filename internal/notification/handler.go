package notification

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"petcare_backend/internal/common"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger *zap.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger.Named("NotificationHandler"),
	}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, auth gin.HandlerFunc) {
	rg.GET("/notifications", auth, h.GetFeed)
}

func (h *Handler) GetFeed(c *gin.Context) {
	userID, ok := common.GetUserIDFromContext(c)
	if !ok {
		common.RespondWithError(c, common.ErrUnauthorized)
		return
	}
	role, _ := common.GetUserRoleFromContext(c)

	feed := h.service.GetFeedForUser(c.Request.Context(), userID, role)
	common.RespondOK(c, feed)
}
