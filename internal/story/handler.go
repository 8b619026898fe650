package story

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
		logger:  logger.Named("StoryHandler"),
	}
}

// RegisterRoutes wires the story endpoints. Reads and engagement are public;
// creating a story requires authentication.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, auth gin.HandlerFunc) {
	stories := rg.Group("/stories")
	{
		stories.GET("", h.List)
		stories.GET("/:id", h.GetByID)
		stories.POST("", auth, h.Create)
		stories.POST("/:id/engagement", h.Engage)
	}
}

func (h *Handler) Create(c *gin.Context) {
	userID, ok := common.GetUserIDFromContext(c)
	if !ok {
		common.RespondWithError(c, common.ErrUnauthorized)
		return
	}
	role, _ := common.GetUserRoleFromContext(c)

	var req CreateStoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondWithError(c, common.NewValidationAPIError("Invalid story payload.", common.FormatValidationErrors(err)))
		return
	}

	story, err := h.service.Create(c.Request.Context(), shared.Session{UserID: userID, Role: role}, req)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondCreated(c, story)
}

func (h *Handler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		common.RespondWithError(c, common.ErrBadRequest.WithDetails("Invalid story ID format."))
		return
	}

	story, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, story)
}

func (h *Handler) List(c *gin.Context) {
	stories, err := h.service.List(c.Request.Context(), c.Query("pet_type"))
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, stories)
}

func (h *Handler) Engage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		common.RespondWithError(c, common.ErrBadRequest.WithDetails("Invalid story ID format."))
		return
	}

	var req EngagementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondWithError(c, common.NewValidationAPIError("Invalid engagement payload.", common.FormatValidationErrors(err)))
		return
	}

	if err := h.service.IncrementEngagement(c.Request.Context(), id, req.Field); err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondNoContent(c)
}
