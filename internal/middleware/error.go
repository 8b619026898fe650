package middleware

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"petcare_backend/internal/common"
)

// ErrorHandlerMiddleware converts errors attached to the Gin context into the
// standard JSON error envelope. Handlers that call common.RespondWithError
// directly bypass this; it exists as a safety net for c.Error usage.
func ErrorHandlerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	log := logger.Named("ErrorHandler")
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		if _, ok := common.IsAPIError(err); !ok {
			log.Error("Unhandled error in request",
				zap.String("path", c.Request.URL.Path),
				zap.Error(err))
		}
		common.RespondWithError(c, err)
	}
}
