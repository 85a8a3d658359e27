package controller

import (
	"context"

	"go.uber.org/zap"

	"github.com/StrangeNoob/book-management-api/internal/entity"
)

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks

type BooksUseCase interface {
	CreateBook(ctx context.Context, draft entity.BookDraft) (entity.Book, error)
	ListBooks(ctx context.Context) ([]entity.Book, error)
	GetBook(ctx context.Context, id string) (entity.Book, error)
	UpdateBook(ctx context.Context, id string, patch entity.BookPatch) (entity.Book, error)
	DeleteBook(ctx context.Context, id string) (entity.Book, error)
	Ping(ctx context.Context) error
}

type implementation struct {
	logger       *zap.Logger
	booksUseCase BooksUseCase
}

func New(
	logger *zap.Logger,
	booksUseCase BooksUseCase,
) *implementation {
	return &implementation{
		logger:       logger,
		booksUseCase: booksUseCase,
	}
}
