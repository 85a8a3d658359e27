package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/StrangeNoob/book-management-api/internal/entity"
	"github.com/StrangeNoob/book-management-api/pkg/logger"
)

type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

type DataBase interface {
	querier
	Ping(ctx context.Context) error
}

var _ BooksRepository = (*postgresRepository)(nil)

type postgresRepository struct {
	logger *zap.Logger
	db     DataBase
}

func NewPostgres(logger *zap.Logger, db DataBase) *postgresRepository {
	return &postgresRepository{
		logger: logger,
		db:     db,
	}
}

// conn prefers the transaction injected by the transactor.
func (p *postgresRepository) conn(ctx context.Context) (querier, bool) {
	if tx, err := extractTx(ctx); err == nil {
		return tx, true
	}
	return p.db, false
}

func (p *postgresRepository) CreateBook(ctx context.Context, draft entity.BookDraft) (entity.Book, error) {
	const query = `
INSERT INTO books (title, author, summary)
VALUES ($1, $2, $3)
RETURNING id, title, author, summary, created_at, updated_at
`
	q, _ := p.conn(ctx)
	book, err := scanBook(q.QueryRow(ctx, query, draft.Title, draft.Author, draft.Summary))

	if err != nil {
		return entity.Book{}, err
	}

	return book, nil
}

func (p *postgresRepository) GetBook(ctx context.Context, id string) (entity.Book, error) {
	const (
		query = `
SELECT id, title, author, summary, created_at, updated_at
FROM books
WHERE id = $1
`
		queryForUpdate = query + `FOR UPDATE`
	)

	q, inTx := p.conn(ctx)
	sql := query
	if inTx {
		sql = queryForUpdate
	}

	book, err := scanBook(q.QueryRow(ctx, sql, id))

	if err != nil {
		return entity.Book{}, err
	}

	return book, nil
}

func (p *postgresRepository) ListBooks(ctx context.Context) ([]entity.Book, error) {
	const query = `
SELECT id, title, author, summary, created_at, updated_at
FROM books
ORDER BY seq
`
	q, _ := p.conn(ctx)
	rows, err := q.Query(ctx, query)

	if err != nil {
		return nil, err
	}
	defer rows.Close()

	books := make([]entity.Book, 0)
	for rows.Next() {
		book, err := scanBook(rows)
		if err != nil {
			return nil, err
		}
		books = append(books, book)
	}

	if err = rows.Err(); logger.CheckError(err, p.logger, "can not read books rows",
		zap.Int("books_read", len(books)), zap.Error(err)) {
		return nil, err
	}

	return books, nil
}

func (p *postgresRepository) UpdateBook(ctx context.Context, id string, patch entity.BookPatch) (entity.Book, error) {
	const query = `
UPDATE books
SET title = COALESCE($2, title),
    author = COALESCE($3, author),
    summary = COALESCE($4, summary),
    updated_at = now()
WHERE id = $1
RETURNING id, title, author, summary, created_at, updated_at
`
	q, _ := p.conn(ctx)
	book, err := scanBook(q.QueryRow(ctx, query, id, patch.Title, patch.Author, patch.Summary))

	if err != nil {
		return entity.Book{}, err
	}

	return book, nil
}

func (p *postgresRepository) DeleteBook(ctx context.Context, id string) (entity.Book, error) {
	const query = `
DELETE FROM books
WHERE id = $1
RETURNING id, title, author, summary, created_at, updated_at
`
	q, _ := p.conn(ctx)
	book, err := scanBook(q.QueryRow(ctx, query, id))

	if err != nil {
		return entity.Book{}, err
	}

	return book, nil
}

func (p *postgresRepository) Ping(ctx context.Context) error {
	return p.db.Ping(ctx)
}

func scanBook(row pgx.Row) (entity.Book, error) {
	var book entity.Book
	err := row.Scan(&book.ID, &book.Title, &book.Author, &book.Summary, &book.CreatedAt, &book.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return entity.Book{}, entity.ErrBookNotFound
	}

	if err != nil {
		return entity.Book{}, err
	}

	book.CreatedAt = book.CreatedAt.UTC()
	book.UpdatedAt = book.UpdatedAt.UTC()
	return book, nil
}
