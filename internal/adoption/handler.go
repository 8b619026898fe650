package adoption

import (
	"context"

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
		logger:  logger.Named("AdoptionHandler"),
	}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, auth gin.HandlerFunc) {
	requests := rg.Group("/adoption-requests")
	requests.Use(auth)
	{
		requests.POST("", h.Submit)
		requests.GET("", h.List)
		requests.POST("/:id/approve", h.Approve)
		requests.POST("/:id/reject", h.Reject)
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

func (h *Handler) Submit(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondWithError(c, common.NewValidationAPIError("Invalid adoption request payload.", common.FormatValidationErrors(err)))
		return
	}

	request, err := h.service.Submit(c.Request.Context(), session, req)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondCreated(c, ToRequestResponse(request))
}

func (h *Handler) List(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	requests, err := h.service.ListForUser(c.Request.Context(), session.UserID, session.Role)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, ToRequestResponses(requests))
}

func (h *Handler) Approve(c *gin.Context) {
	h.decide(c, h.service.Approve)
}

func (h *Handler) Reject(c *gin.Context) {
	h.decide(c, h.service.Reject)
}

func (h *Handler) decide(c *gin.Context, decideFn func(ctx context.Context, session shared.Session, id uuid.UUID) (*Request, error)) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		common.RespondWithError(c, common.ErrBadRequest.WithDetails("Invalid adoption request ID format."))
		return
	}

	request, err := decideFn(c.Request.Context(), session, id)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, ToRequestResponse(request))
}
