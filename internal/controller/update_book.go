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

var UpdateBookDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
	Name:    "books_update_book_duration_ms",
	Help:    "Duration of UpdateBook in ms",
	Buckets: prometheus.DefBuckets,
})

func init() {
	prometheus.MustRegister(UpdateBookDuration)
}

func (i *implementation) UpdateBook(c *gin.Context) {
	start := time.Now()

	defer func() {
		UpdateBookDuration.Observe(float64(time.Since(start).Milliseconds()))
	}()

	ctx := c.Request.Context()
	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()

	id := c.Param(paramBookID)
	if err := validator.ValidateID(&id); log.ErrorUpdateBook(i.logger, err, "Got invalid request", traceID, id, nil) {
		span.SetAttributes(attribute.String("book_id", id))
		span.RecordError(err)
		_ = c.Error(err)
		return
	}

	var req updateBookRequest
	if err := bindBody(c, &req); log.ErrorUpdateBook(i.logger, err, "Got invalid request", traceID, id, nil) {
		span.RecordError(err)
		_ = c.Error(err)
		return
	}

	patch := req.patch()
	if err := validator.ValidateUpdate(&patch); log.ErrorUpdateBook(i.logger, err, "Got invalid request", traceID, id, nil) {
		span.RecordError(err)
		_ = c.Error(err)
		return
	}

	book, err := i.booksUseCase.UpdateBook(ctx, id, patch)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, book)
}
