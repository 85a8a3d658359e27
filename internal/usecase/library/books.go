package library

import (
	"context"

	"github.com/samber/lo"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/StrangeNoob/book-management-api/internal/entity"
	"github.com/StrangeNoob/book-management-api/internal/log"
)

func (l *libraryImpl) CreateBook(ctx context.Context, draft entity.BookDraft) (entity.Book, error) {
	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()
	log.InfoCreateBook(l.logger, "Start of create book", traceID, draft.Title, draft.Author)

	book, err := l.booksRepository.CreateBook(ctx, draft)
	if log.ErrorCreateBook(l.logger, err, "Failed create book", traceID, draft.Title, draft.Author) {
		span.RecordError(err)
		return entity.Book{}, err
	}

	span.SetAttributes(attribute.String("book_id", book.ID))
	log.InfoCreateBook(l.logger, "Created the book", traceID, book.Title, book.Author, book.ID)
	return book, nil
}

func (l *libraryImpl) ListBooks(ctx context.Context) ([]entity.Book, error) {
	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()
	log.InfoListBooks(l.logger, "Start of list books", traceID)

	books, err := l.booksRepository.ListBooks(ctx)
	if log.ErrorListBooks(l.logger, err, "Failed list books", traceID) {
		span.RecordError(err)
		return nil, err
	}

	if books == nil {
		books = []entity.Book{}
	}

	span.SetAttributes(attribute.Int("books_count", len(books)))
	log.InfoListBooks(l.logger, "Listed the books", traceID, len(books))
	return books, nil
}

func (l *libraryImpl) GetBook(ctx context.Context, id string) (entity.Book, error) {
	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()
	span.SetAttributes(attribute.String("book_id", id))
	log.InfoGetBook(l.logger, "Start of get book", traceID, id)

	book, err := l.booksRepository.GetBook(ctx, id)
	if log.ErrorGetBook(l.logger, err, "Failed get book", traceID, id) {
		span.RecordError(err)
		return entity.Book{}, err
	}

	log.InfoGetBook(l.logger, "Got the book", traceID, id)
	return book, nil
}

// UpdateBook checks that the book exists and applies the patch in one
// transaction. An empty patch returns the stored book as is.
func (l *libraryImpl) UpdateBook(ctx context.Context, id string, patch entity.BookPatch) (entity.Book, error) {
	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()
	fields := patchedFields(patch)
	span.SetAttributes(attribute.String("book_id", id), attribute.StringSlice("updated_fields", fields))
	log.InfoUpdateBook(l.logger, "Start of update book", traceID, id, fields)

	var book entity.Book
	err := l.transactor.WithTx(ctx, func(ctx context.Context) error {
		current, txErr := l.booksRepository.GetBook(ctx, id)
		if txErr != nil {
			return txErr
		}

		if patch.IsEmpty() {
			book = current
			return nil
		}

		book, txErr = l.booksRepository.UpdateBook(ctx, id, patch)
		return txErr
	})

	if log.ErrorUpdateBook(l.logger, err, "Failed update book", traceID, id, fields) {
		span.RecordError(err)
		return entity.Book{}, err
	}

	log.InfoUpdateBook(l.logger, "Updated the book", traceID, id, fields)
	return book, nil
}

// DeleteBook removes the book and returns its last stored state.
func (l *libraryImpl) DeleteBook(ctx context.Context, id string) (entity.Book, error) {
	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()
	span.SetAttributes(attribute.String("book_id", id))
	log.InfoDeleteBook(l.logger, "Start of delete book", traceID, id)

	var book entity.Book
	err := l.transactor.WithTx(ctx, func(ctx context.Context) error {
		if _, txErr := l.booksRepository.GetBook(ctx, id); txErr != nil {
			return txErr
		}

		var txErr error
		book, txErr = l.booksRepository.DeleteBook(ctx, id)
		return txErr
	})

	if log.ErrorDeleteBook(l.logger, err, "Failed delete book", traceID, id) {
		span.RecordError(err)
		return entity.Book{}, err
	}

	log.InfoDeleteBook(l.logger, "Deleted the book", traceID, id)
	return book, nil
}

func (l *libraryImpl) Ping(ctx context.Context) error {
	return l.booksRepository.Ping(ctx)
}

func patchedFields(patch entity.BookPatch) []string {
	return lo.Compact([]string{
		lo.Ternary(patch.Title != nil, "title", ""),
		lo.Ternary(patch.Author != nil, "author", ""),
		lo.Ternary(patch.Summary != nil, "summary", ""),
	})
}
