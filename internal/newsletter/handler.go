package newsletter

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
		logger:  logger.Named("NewsletterHandler"),
	}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/newsletter", h.Subscribe)
}

func (h *Handler) Subscribe(c *gin.Context) {
	var req SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondWithError(c, common.NewValidationAPIError("A valid email is required.", common.FormatValidationErrors(err)))
		return
	}

	sub, err := h.service.Subscribe(c.Request.Context(), req.Email)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondCreated(c, sub)
}
