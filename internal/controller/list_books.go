package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

var ListBooksDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
	Name:    "books_list_books_duration_ms",
	Help:    "Duration of ListBooks in ms",
	Buckets: prometheus.DefBuckets,
})

func init() {
	prometheus.MustRegister(ListBooksDuration)
}

func (i *implementation) ListBooks(c *gin.Context) {
	start := time.Now()

	defer func() {
		ListBooksDuration.Observe(float64(time.Since(start).Milliseconds()))
	}()

	books, err := i.booksUseCase.ListBooks(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, books)
}
