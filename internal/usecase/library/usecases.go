package library

import (
	"context"

	"go.uber.org/zap"

	"github.com/StrangeNoob/book-management-api/internal/entity"
)

//go:generate mockgen -source=usecases.go -destination=mocks/usecases_mock.go -package=mocks

type (
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

var _ BooksUseCase = (*libraryImpl)(nil)

type libraryImpl struct {
	logger          *zap.Logger
	booksRepository BooksRepository
	transactor      Transactor
}

func New(
	logger *zap.Logger,
	booksRepository BooksRepository,
	transactor Transactor,
) *libraryImpl {
	return &libraryImpl{
		logger:          logger,
		booksRepository: booksRepository,
		transactor:      transactor,
	}
}
