package repository

import (
	"context"
	"errors"
	"time"

	"github.com/pashagolub/pgxmock/v4"
)

type txLayer uint

const (
	none txLayer = iota
	extract
)

type errLayer uint

const (
	null errLayer = iota
	db
	scan
	f
	beginTx
	commitTx
	rollBackTx
)

var errInternal = errors.New("internal error")

var bookColumns = []string{"id", "title", "author", "summary", "created_at", "updated_at"}

var testTime = time.Date(2024, time.January, 12, 10, 30, 0, 0, time.UTC)

func insertTxInMock(ctx context.Context, mock pgxmock.PgxPoolIface) context.Context {
	mock.ExpectBegin()
	tx, _ := mock.Begin(ctx)
	ctx = context.WithValue(ctx, txInjector{}, tx)
	return ctx
}
