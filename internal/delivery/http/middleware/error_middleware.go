package middleware

import (
	"errors"
	"net/http"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Check if there are errors appended to the context
		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				if appErr.Err != nil {
					logger.Log.Error("Request failed", "status", appErr.Code, "path", c.FullPath(), "error", appErr.Err)
				}
				response.Error(c, appErr.Code, appErr.Message, nil)
			} else {
				// Never expose internal error details to clients. Log the
				// actual error server-side and send a generic message.
				logger.Log.Error("Internal server error", "path", c.FullPath(), "error", err)
				response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
			}
		}
	}
}
