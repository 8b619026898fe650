package user

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"petcare_backend/internal/common"
	"petcare_backend/internal/shared"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger *zap.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger.Named("UserHandler"),
	}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, auth gin.HandlerFunc) {
	users := rg.Group("/users")
	users.Use(auth)
	{
		users.GET("/me", h.GetMe)
		users.PATCH("/me", h.UpdateMe)
		users.POST("/me/role", h.ChooseRole)
	}
}

func (h *Handler) session(c *gin.Context) (shared.Session, bool) {
	userID, ok := common.GetUserIDFromContext(c)
	if !ok {
		common.RespondWithError(c, common.ErrUnauthorized)
		return shared.Session{}, false
	}
	role, _ := common.GetUserRoleFromContext(c)
	return shared.Session{UserID: userID, Role: role}, true
}

func (h *Handler) GetMe(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}
	u, err := h.service.GetUserByID(c.Request.Context(), session.UserID)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, ToUserResponse(u))
}

func (h *Handler) UpdateMe(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondWithError(c, common.NewValidationAPIError("Invalid profile payload.", common.FormatValidationErrors(err)))
		return
	}

	u, err := h.service.UpdateProfile(c.Request.Context(), session, req)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, ToUserResponse(u))
}

func (h *Handler) ChooseRole(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	var req ChooseRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondWithError(c, common.NewValidationAPIError("Invalid role payload.", common.FormatValidationErrors(err)))
		return
	}

	u, err := h.service.ChooseRole(c.Request.Context(), session, req.Role)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, ToUserResponse(u))
}
