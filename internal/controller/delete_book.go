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

var DeleteBookDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
	Name:    "books_delete_book_duration_ms",
	Help:    "Duration of DeleteBook in ms",
	Buckets: prometheus.DefBuckets,
})

func init() {
	prometheus.MustRegister(DeleteBookDuration)
}

func (i *implementation) DeleteBook(c *gin.Context) {
	start := time.Now()

	defer func() {
		DeleteBookDuration.Observe(float64(time.Since(start).Milliseconds()))
	}()

	ctx := c.Request.Context()
	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()

	id := c.Param(paramBookID)
	if err := validator.ValidateID(&id); log.ErrorDeleteBook(i.logger, err, "Got invalid request", traceID, id) {
		span.SetAttributes(attribute.String("book_id", id))
		span.RecordError(err)
		_ = c.Error(err)
		return
	}

	if _, err := i.booksUseCase.DeleteBook(ctx, id); err != nil {
		_ = c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}
