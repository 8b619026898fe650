package shelter

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
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
		logger:  logger.Named("ShelterHandler"),
	}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, auth gin.HandlerFunc) {
	shelters := rg.Group("/shelters")
	{
		shelters.GET("", h.List)
		shelters.GET("/:id", h.GetByID)
		shelters.POST("", auth, h.Create)
	}
}

func (h *Handler) Create(c *gin.Context) {
	userID, ok := common.GetUserIDFromContext(c)
	if !ok {
		common.RespondWithError(c, common.ErrUnauthorized)
		return
	}
	role, _ := common.GetUserRoleFromContext(c)

	var req CreateShelterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondWithError(c, common.NewValidationAPIError("Invalid shelter payload.", common.FormatValidationErrors(err)))
		return
	}

	entry, err := h.service.Create(c.Request.Context(), shared.Session{UserID: userID, Role: role}, req)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondCreated(c, entry)
}

func (h *Handler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		common.RespondWithError(c, common.ErrBadRequest.WithDetails("Invalid shelter ID format."))
		return
	}

	entry, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, entry)
}

func (h *Handler) List(c *gin.Context) {
	shelters, err := h.service.List(c.Request.Context(), c.Query("city"))
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, shelters)
}
