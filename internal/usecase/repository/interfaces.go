package repository

import (
	"context"

	"github.com/StrangeNoob/book-management-api/internal/entity"
)

type (
	// BooksRepository is the document store contract. Lookups and mutations of
	// a missing id return entity.ErrBookNotFound.
	BooksRepository interface {
		CreateBook(ctx context.Context, draft entity.BookDraft) (entity.Book, error)
		GetBook(ctx context.Context, id string) (entity.Book, error)
		ListBooks(ctx context.Context) ([]entity.Book, error)
		UpdateBook(ctx context.Context, id string, patch entity.BookPatch) (entity.Book, error)
		DeleteBook(ctx context.Context, id string) (entity.Book, error)
		Ping(ctx context.Context) error
	}

	Transactor interface {
		WithTx(ctx context.Context, function func(ctx context.Context) error) error
	}
)
