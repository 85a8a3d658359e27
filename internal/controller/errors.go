package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/StrangeNoob/book-management-api/internal/entity"
	"github.com/StrangeNoob/book-management-api/pkg/logger"
)

const (
	msgNotFound       = "Book not found"
	msgRouteNotFound  = "Route not found"
	msgInternal       = "Internal server error"
	msgStoreUnhealthy = "Store unavailable"
)

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func convertErr(err error) (int, string) {
	switch {
	case errors.Is(err, entity.ErrValidation):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, entity.ErrBookNotFound):
		return http.StatusNotFound, msgNotFound
	default:
		return http.StatusInternalServerError, msgInternal
	}
}

func abortWithError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, errorResponse{Code: status, Message: message})
}

// ErrorHandler answers the last error a handler attached to the context.
func ErrorHandler(l *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		status, message := convertErr(err)
		if status == http.StatusInternalServerError {
			logger.CheckError(err, l, "Request failed",
				zap.String("method", c.Request.Method),
				zap.String("path", c.FullPath()),
				zap.String("request_id", c.GetString(requestIDKey)),
				zap.Error(err))
		}

		abortWithError(c, status, message)
	}
}

// NoRoute answers unknown routes with the common error body.
func NoRoute(c *gin.Context) {
	abortWithError(c, http.StatusNotFound, msgRouteNotFound)
}

// Recovery turns a panic into a 500 with the common error body.
func Recovery(l *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.MakeWarn(l, "Recovered from panic",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Any("panic", recovered))
		abortWithError(c, http.StatusInternalServerError, msgInternal)
	})
}
