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

const paramBookID = "bookId"

var GetBookDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
	Name:    "books_get_book_duration_ms",
	Help:    "Duration of GetBook in ms",
	Buckets: prometheus.DefBuckets,
})

func init() {
	prometheus.MustRegister(GetBookDuration)
}

func (i *implementation) GetBook(c *gin.Context) {
	start := time.Now()

	defer func() {
		GetBookDuration.Observe(float64(time.Since(start).Milliseconds()))
	}()

	ctx := c.Request.Context()
	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()

	id := c.Param(paramBookID)
	if err := validator.ValidateID(&id); log.ErrorGetBook(i.logger, err, "Got invalid request", traceID, id) {
		span.SetAttributes(attribute.String("book_id", id))
		span.RecordError(err)
		_ = c.Error(err)
		return
	}

	book, err := i.booksUseCase.GetBook(ctx, id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, book)
}
