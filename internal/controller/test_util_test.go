package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/StrangeNoob/book-management-api/internal/controller/mocks"
	"github.com/StrangeNoob/book-management-api/internal/entity"
)

var errInternal = errors.New("internal error")

const testID = "65a1f0c2e4b0a1b2c3d4e5f6"

var testBook = entity.Book{
	ID:        testID,
	Title:     "The Great Gatsby",
	Author:    "F. Scott Fitzgerald",
	Summary:   "A novel about the decadence of the Jazz Age",
	CreatedAt: time.Date(2024, time.January, 12, 10, 30, 0, 0, time.UTC),
	UpdatedAt: time.Date(2024, time.January, 12, 10, 30, 0, 0, time.UTC),
}

func init() {
	gin.SetMode(gin.TestMode)
}

func InitBooksTest(t *testing.T) (*mocks.MockBooksUseCase, *gin.Engine) {
	t.Helper()
	ctrl := gomock.NewController(t)
	booksUseCase := mocks.NewMockBooksUseCase(ctrl)
	logger, err := zap.NewProduction()
	if err != nil {
		t.Fatal("assertion error: " + err.Error())
	}
	service := New(logger, booksUseCase)

	engine := gin.New()
	engine.Use(Recovery(logger), RequestID(), ErrorHandler(logger))
	engine.NoRoute(NoRoute)
	engine.GET("/health", service.Health)
	engine.POST("/books", service.CreateBook)
	engine.GET("/books", service.ListBooks)
	engine.GET("/books/:bookId", service.GetBook)
	engine.PUT("/books/:bookId", service.UpdateBook)
	engine.DELETE("/books/:bookId", service.DeleteBook)

	return booksUseCase, engine
}

func doRequest(engine http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func requireErrorBody(t *testing.T, rec *httptest.ResponseRecorder, code int, message string) {
	t.Helper()
	require.Equal(t, code, rec.Code)

	var body errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, errorResponse{Code: code, Message: message}, body)
}

func requireBookBody(t *testing.T, rec *httptest.ResponseRecorder, code int, book entity.Book) {
	t.Helper()
	require.Equal(t, code, rec.Code)

	var body entity.Book
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, book, body)
}
