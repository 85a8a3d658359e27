package library

import (
	"context"

	"github.com/StrangeNoob/book-management-api/internal/entity"
)

type BooksUseCase interface {
	CreateBook(ctx context.Context, draft entity.BookDraft) (entity.Book, error)
	ListBooks(ctx context.Context) ([]entity.Book, error)
	GetBook(ctx context.Context, id string) (entity.Book, error)
	UpdateBook(ctx context.Context, id string, patch entity.BookPatch) (entity.Book, error)
	DeleteBook(ctx context.Context, id string) (entity.Book, error)
	Ping(ctx context.Context) error
}
