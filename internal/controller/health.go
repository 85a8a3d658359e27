package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/StrangeNoob/book-management-api/pkg/logger"
)

func (i *implementation) Health(c *gin.Context) {
	err := i.booksUseCase.Ping(c.Request.Context())
	if logger.CheckError(err, i.logger, "Store ping failed", zap.Error(err)) {
		abortWithError(c, http.StatusServiceUnavailable, msgStoreUnhealthy)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
