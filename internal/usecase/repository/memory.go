package repository

import (
	"context"
	"sync"
	"time"

	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/StrangeNoob/book-management-api/internal/entity"
)

var _ BooksRepository = (*memoryRepository)(nil)

// memoryRepository keeps books in process memory. Ids are ObjectIDs so the
// rest of the service can not tell it apart from the mongo store.
type memoryRepository struct {
	mx    sync.RWMutex
	order []string
	books map[string]entity.Book
	now   func() time.Time
}

func NewMemory() *memoryRepository {
	return &memoryRepository{
		books: make(map[string]entity.Book),
		now:   mongoNow,
	}
}

func (m *memoryRepository) CreateBook(_ context.Context, draft entity.BookDraft) (entity.Book, error) {
	m.mx.Lock()
	defer m.mx.Unlock()

	now := m.now()
	book := entity.Book{
		ID:        primitive.NewObjectID().Hex(),
		Title:     draft.Title,
		Author:    draft.Author,
		Summary:   draft.Summary,
		CreatedAt: now,
		UpdatedAt: now,
	}

	m.books[book.ID] = book
	m.order = append(m.order, book.ID)

	return book, nil
}

func (m *memoryRepository) GetBook(_ context.Context, id string) (entity.Book, error) {
	m.mx.RLock()
	defer m.mx.RUnlock()

	book, ok := m.books[id]
	if !ok {
		return entity.Book{}, entity.ErrBookNotFound
	}
	return book, nil
}

func (m *memoryRepository) ListBooks(_ context.Context) ([]entity.Book, error) {
	m.mx.RLock()
	defer m.mx.RUnlock()

	return lo.Map(m.order, func(id string, _ int) entity.Book {
		return m.books[id]
	}), nil
}

func (m *memoryRepository) UpdateBook(_ context.Context, id string, patch entity.BookPatch) (entity.Book, error) {
	m.mx.Lock()
	defer m.mx.Unlock()

	book, ok := m.books[id]
	if !ok {
		return entity.Book{}, entity.ErrBookNotFound
	}

	book = patch.Apply(book)
	book.UpdatedAt = m.now()
	m.books[id] = book

	return book, nil
}

func (m *memoryRepository) DeleteBook(_ context.Context, id string) (entity.Book, error) {
	m.mx.Lock()
	defer m.mx.Unlock()

	book, ok := m.books[id]
	if !ok {
		return entity.Book{}, entity.ErrBookNotFound
	}

	delete(m.books, id)
	m.order = lo.Without(m.order, id)

	return book, nil
}

func (m *memoryRepository) Ping(context.Context) error {
	return nil
}
