package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/StrangeNoob/book-management-api/config"
	"github.com/StrangeNoob/book-management-api/db"
	"github.com/StrangeNoob/book-management-api/internal/controller"
	"github.com/StrangeNoob/book-management-api/internal/usecase/library"
	"github.com/StrangeNoob/book-management-api/internal/usecase/repository"
	applog "github.com/StrangeNoob/book-management-api/pkg/logger"
)

const (
	shutDownSeconds          = 3
	readHeaderTimeoutSeconds = 5
	readTimeoutSeconds       = 10
	writeTimeoutSeconds      = 10
	idleTimeoutSeconds       = 60
)

func Run(logger *zap.Logger, cfg *config.Config) {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if cfg.App.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	shutdownTracing, err := initTracing(cfg.Observability.JaegerURL)
	if err != nil {
		logger.Error("can not init tracing", zap.Error(err))
		return
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutDownSeconds*time.Second)
		defer cancel()
		err := shutdownTracing(shutdownCtx)
		applog.CheckError(err, logger, "can not flush traces", zap.Error(err))
	}()

	repo, transactor, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		logger.Error("can not open store", zap.String("driver", cfg.Storage.Driver), zap.Error(err))
		return
	}
	defer closeStore()

	useCases := library.New(applog.Enabled(logger, cfg.Log.LogUseCase), repo, transactor)
	ctrl := controller.New(applog.Enabled(logger, cfg.Log.LogController), useCases)
	router := NewRouter(applog.Enabled(logger, cfg.Log.LogController), ctrl)

	servers := []*http.Server{newServer(":"+cfg.HTTP.Port, router)}
	if cfg.Observability.MetricsPort != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		servers = append(servers, newServer(":"+cfg.Observability.MetricsPort, mux))
	}

	for _, server := range servers {
		go serve(server, logger, cancel)
	}

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutDownSeconds*time.Second)
	defer shutdownCancel()

	for _, server := range servers {
		err := server.Shutdown(shutdownCtx)
		applog.CheckError(err, logger, "can not shut down server", zap.String("addr", server.Addr), zap.Error(err))
	}
}

func newServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeoutSeconds * time.Second,
		ReadTimeout:       readTimeoutSeconds * time.Second,
		WriteTimeout:      writeTimeoutSeconds * time.Second,
		IdleTimeout:       idleTimeoutSeconds * time.Second,
	}
}

func serve(server *http.Server, logger *zap.Logger, stop context.CancelFunc) {
	logger.Info("server listening", zap.String("addr", server.Addr))

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server listen error", zap.String("addr", server.Addr), zap.Error(err))
		stop()
	}
}

// openStore connects the configured driver and returns its repository with a
// matching transactor. The returned func releases the connection.
func openStore(
	ctx context.Context,
	cfg *config.Config,
	logger *zap.Logger,
) (library.BooksRepository, library.Transactor, func(), error) {
	logRepo := applog.Enabled(logger, cfg.Log.LogDBRepo)

	switch cfg.Storage.Driver {
	case config.DriverMongo:
		client, err := db.ConnectMongo(ctx, db.MongoOptions{
			URL:      cfg.Mongo.URL,
			Database: cfg.Mongo.Database,
			Timeout:  cfg.Storage.Timeout,
		})
		if err != nil {
			return nil, nil, nil, err
		}

		collection := client.Database(cfg.Mongo.Database).Collection(repository.BooksCollection)
		closeStore := func() {
			err := client.Disconnect(context.Background())
			applog.CheckError(err, logger, "can not disconnect from mongo", zap.Error(err))
		}
		return repository.NewMongo(logRepo, collection), repository.NewNopTransactor(), closeStore, nil

	case config.DriverPostgres:
		pool, err := db.NewPostgresPool(ctx, db.PostgresOptions{
			Host:     cfg.PG.Host,
			Port:     cfg.PG.Port,
			DB:       cfg.PG.DB,
			User:     cfg.PG.User,
			Password: cfg.PG.Password,
			MaxConn:  cfg.PG.MaxConn,
			Timeout:  cfg.Storage.Timeout,
		})
		if err != nil {
			return nil, nil, nil, err
		}

		if err = db.SetupPostgres(pool, logger); err != nil {
			pool.Close()
			return nil, nil, nil, err
		}

		transactor := repository.NewTransactor(applog.Enabled(logger, cfg.Log.LogTransactor), pool)
		return repository.NewPostgres(logRepo, pool), transactor, pool.Close, nil

	case config.DriverMemory:
		logger.Warn("using the in-memory store, books are lost on restart")
		return repository.NewMemory(), repository.NewNopTransactor(), func() {}, nil

	default:
		return nil, nil, nil, fmt.Errorf("%w: %q", config.ErrUnknownDriver, cfg.Storage.Driver)
	}
}
