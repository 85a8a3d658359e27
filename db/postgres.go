package db

import (
	"context"
	"embed"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

const migrationsDir = "migrations"

type PostgresOptions struct {
	Host     string
	Port     string
	DB       string
	User     string
	Password string
	MaxConn  int
	Timeout  time.Duration
}

// URL renders the options as a libpq connection URL.
func (o PostgresOptions) URL() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(o.User, o.Password),
		Host:   net.JoinHostPort(o.Host, o.Port),
		Path:   "/" + o.DB,
	}

	q := url.Values{}
	q.Set("sslmode", "disable")
	if o.MaxConn > 0 {
		q.Set("pool_max_conns", strconv.Itoa(o.MaxConn))
	}
	u.RawQuery = q.Encode()

	return u.String()
}

// NewPostgresPool opens a pool whose connects and statements are bounded by
// opts.Timeout.
func NewPostgresPool(ctx context.Context, opts PostgresOptions) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(opts.URL())
	if err != nil {
		return nil, fmt.Errorf("can not parse postgres config: %w", err)
	}

	if opts.Timeout > 0 {
		poolCfg.ConnConfig.ConnectTimeout = opts.Timeout
		poolCfg.ConnConfig.RuntimeParams["statement_timeout"] = strconv.FormatInt(opts.Timeout.Milliseconds(), 10)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("can not create pgxpool: %w", err)
	}

	if err = pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("can not reach postgres: %w", err)
	}

	return pool, nil
}

// SetupPostgres applies the embedded goose migrations.
func SetupPostgres(pool *pgxpool.Pool, logger *zap.Logger) error {
	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(gooseLogger{logger.Sugar()})

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("can not set goose dialect: %w", err)
	}

	db := stdlib.OpenDBFromPool(pool)
	defer func() {
		_ = db.Close()
	}()

	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("can not apply migrations: %w", err)
	}

	logger.Info("postgres migrations applied")
	return nil
}

type gooseLogger struct {
	*zap.SugaredLogger
}

func (l gooseLogger) Printf(format string, v ...any) {
	l.Infof(format, v...)
}
