package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/StrangeNoob/book-management-api/internal/log"
	"github.com/StrangeNoob/book-management-api/internal/validator"
)

var CreateBookDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
	Name:    "books_create_book_duration_ms",
	Help:    "Duration of CreateBook in ms",
	Buckets: prometheus.DefBuckets,
})

func init() {
	prometheus.MustRegister(CreateBookDuration)
}

func (i *implementation) CreateBook(c *gin.Context) {
	start := time.Now()

	defer func() {
		CreateBookDuration.Observe(float64(time.Since(start).Milliseconds()))
	}()

	ctx := c.Request.Context()
	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()

	var req createBookRequest
	if err := bindBody(c, &req); log.ErrorCreateBook(i.logger, err, "Got invalid request", traceID, req.Title, req.Author) {
		span.RecordError(err)
		_ = c.Error(err)
		return
	}

	draft := req.draft()
	if err := validator.ValidateCreate(&draft); log.ErrorCreateBook(i.logger, err, "Got invalid request", traceID, draft.Title, draft.Author) {
		span.SetAttributes(attribute.String("book_title", draft.Title))
		span.RecordError(err)
		_ = c.Error(err)
		return
	}

	book, err := i.booksUseCase.CreateBook(ctx, draft)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, book)
}
