package pet

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
		logger:  logger.Named("PetHandler"),
	}
}

// RegisterRoutes wires the pet endpoints. Reads are public; writes require
// authentication.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, auth gin.HandlerFunc) {
	pets := rg.Group("/pets")
	{
		pets.GET("", h.List)
		pets.GET("/:id", h.GetByID)
		pets.POST("", auth, h.Create)
		pets.PATCH("/:id", auth, h.Update)
		pets.DELETE("/:id", auth, h.Delete)
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

func (h *Handler) Create(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	var req CreatePetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondWithError(c, common.NewValidationAPIError("Invalid pet payload.", common.FormatValidationErrors(err)))
		return
	}

	p, err := h.service.Create(c.Request.Context(), session, req)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondCreated(c, ToPetResponse(p))
}

func (h *Handler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		common.RespondWithError(c, common.ErrBadRequest.WithDetails("Invalid pet ID format."))
		return
	}

	p, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, ToPetResponse(p))
}

func (h *Handler) List(c *gin.Context) {
	filters := ListFilters{
		Type:   c.Query("type"),
		Status: c.Query("status"),
	}
	if ownerID := c.Query("owner_id"); ownerID != "" {
		id, err := uuid.Parse(ownerID)
		if err != nil {
			common.RespondWithError(c, common.ErrBadRequest.WithDetails("Invalid owner_id format."))
			return
		}
		filters.OwnerID = id
	}

	pets, err := h.service.List(c.Request.Context(), filters)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, ToPetResponses(pets))
}

func (h *Handler) Update(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		common.RespondWithError(c, common.ErrBadRequest.WithDetails("Invalid pet ID format."))
		return
	}

	var req UpdatePetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondWithError(c, common.NewValidationAPIError("Invalid pet payload.", common.FormatValidationErrors(err)))
		return
	}

	p, err := h.service.Update(c.Request.Context(), session, id, req)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, ToPetResponse(p))
}

func (h *Handler) Delete(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		common.RespondWithError(c, common.ErrBadRequest.WithDetails("Invalid pet ID format."))
		return
	}

	if err := h.service.Delete(c.Request.Context(), session, id); err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondNoContent(c)
}
