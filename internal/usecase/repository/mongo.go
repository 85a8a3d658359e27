package repository

import (
	"context"
	"errors"
	"time"

	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	"github.com/StrangeNoob/book-management-api/internal/entity"
	"github.com/StrangeNoob/book-management-api/pkg/logger"
)

const BooksCollection = "books"

type bookDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Title     string             `bson:"title"`
	Author    string             `bson:"author"`
	Summary   string             `bson:"summary"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

func (d bookDocument) toEntity() entity.Book {
	return entity.Book{
		ID:        d.ID.Hex(),
		Title:     d.Title,
		Author:    d.Author,
		Summary:   d.Summary,
		CreatedAt: d.CreatedAt.UTC(),
		UpdatedAt: d.UpdatedAt.UTC(),
	}
}

var _ BooksRepository = (*mongoRepository)(nil)

type mongoRepository struct {
	logger     *zap.Logger
	collection *mongo.Collection
	now        func() time.Time
}

func NewMongo(logger *zap.Logger, collection *mongo.Collection) *mongoRepository {
	return &mongoRepository{
		logger:     logger,
		collection: collection,
		now:        mongoNow,
	}
}

// BSON dates keep millisecond precision only.
func mongoNow() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

func (m *mongoRepository) CreateBook(ctx context.Context, draft entity.BookDraft) (entity.Book, error) {
	now := m.now()
	doc := bookDocument{
		Title:     draft.Title,
		Author:    draft.Author,
		Summary:   draft.Summary,
		CreatedAt: now,
		UpdatedAt: now,
	}

	result, err := m.collection.InsertOne(ctx, doc)
	if err != nil {
		return entity.Book{}, err
	}

	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return entity.Book{}, errors.New("store returned a non ObjectID identifier")
	}
	doc.ID = id

	return doc.toEntity(), nil
}

func (m *mongoRepository) GetBook(ctx context.Context, id string) (entity.Book, error) {
	filter, err := byID(id)
	if err != nil {
		return entity.Book{}, err
	}

	var doc bookDocument
	if err = m.collection.FindOne(ctx, filter).Decode(&doc); err != nil {
		return entity.Book{}, notFound(err)
	}

	return doc.toEntity(), nil
}

func (m *mongoRepository) ListBooks(ctx context.Context) ([]entity.Book, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})

	cursor, err := m.collection.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		err := cursor.Close(ctx)
		logger.CheckError(err, m.logger, "can not close books cursor", zap.Error(err))
	}()

	docs := make([]bookDocument, 0)
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	return lo.Map(docs, func(d bookDocument, _ int) entity.Book {
		return d.toEntity()
	}), nil
}

func (m *mongoRepository) UpdateBook(ctx context.Context, id string, patch entity.BookPatch) (entity.Book, error) {
	filter, err := byID(id)
	if err != nil {
		return entity.Book{}, err
	}

	set := bson.M{"updatedAt": m.now()}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Author != nil {
		set["author"] = *patch.Author
	}
	if patch.Summary != nil {
		set["summary"] = *patch.Summary
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc bookDocument
	err = m.collection.FindOneAndUpdate(ctx, filter, bson.M{"$set": set}, opts).Decode(&doc)
	if err != nil {
		return entity.Book{}, notFound(err)
	}

	return doc.toEntity(), nil
}

func (m *mongoRepository) DeleteBook(ctx context.Context, id string) (entity.Book, error) {
	filter, err := byID(id)
	if err != nil {
		return entity.Book{}, err
	}

	var doc bookDocument
	if err = m.collection.FindOneAndDelete(ctx, filter).Decode(&doc); err != nil {
		return entity.Book{}, notFound(err)
	}

	return doc.toEntity(), nil
}

func (m *mongoRepository) Ping(ctx context.Context) error {
	return m.collection.Database().Client().Ping(ctx, readpref.Primary())
}

// An id that can not be an ObjectID can not exist in the collection.
func byID(id string) (bson.M, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, entity.ErrBookNotFound
	}
	return bson.M{"_id": oid}, nil
}

func notFound(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return entity.ErrBookNotFound
	}
	return err
}
