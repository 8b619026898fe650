package article

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
		logger:  logger.Named("ArticleHandler"),
	}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, auth gin.HandlerFunc) {
	articles := rg.Group("/articles")
	{
		articles.GET("", h.List)
		articles.GET("/:slug", h.GetBySlug)
		articles.POST("", auth, h.Create)
	}
}

func (h *Handler) Create(c *gin.Context) {
	if _, ok := common.GetUserIDFromContext(c); !ok {
		common.RespondWithError(c, common.ErrUnauthorized)
		return
	}

	var req CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondWithError(c, common.NewValidationAPIError("Invalid article payload.", common.FormatValidationErrors(err)))
		return
	}

	a, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondCreated(c, a)
}

func (h *Handler) GetBySlug(c *gin.Context) {
	a, err := h.service.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, a)
}

func (h *Handler) List(c *gin.Context) {
	articles, err := h.service.List(c.Request.Context(), c.Query("category"))
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, articles)
}
