package app

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/StrangeNoob/book-management-api/internal/controller"
)

type booksHandlers interface {
	CreateBook(c *gin.Context)
	ListBooks(c *gin.Context)
	GetBook(c *gin.Context)
	UpdateBook(c *gin.Context)
	DeleteBook(c *gin.Context)
	Health(c *gin.Context)
}

// NewRouter binds the book routes. Middleware runs in the order
// recovery, request id, tracing, request log, error translation.
func NewRouter(logger *zap.Logger, handlers booksHandlers) *gin.Engine {
	router := gin.New()
	router.Use(
		controller.Recovery(logger),
		controller.RequestID(),
		controller.Tracing(),
		controller.Logger(logger),
		controller.ErrorHandler(logger),
	)
	router.NoRoute(controller.NoRoute)

	router.GET("/health", handlers.Health)

	books := router.Group("/books")
	books.POST("", handlers.CreateBook)
	books.GET("", handlers.ListBooks)
	books.GET("/:bookId", handlers.GetBook)
	books.PUT("/:bookId", handlers.UpdateBook)
	books.DELETE("/:bookId", handlers.DeleteBook)

	return router
}
