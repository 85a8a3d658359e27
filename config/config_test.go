package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewConfigDefaults(t *testing.T) {
	t.Setenv("MONGODB_URL", "mongodb://localhost:27017")

	cfg, err := NewConfig()
	require.NoError(t, err)
	require.Equal(t, EnvDevelopment, cfg.App.Env)
	require.Equal(t, "8080", cfg.HTTP.Port)
	require.Equal(t, DriverMongo, cfg.Storage.Driver)
	require.Equal(t, 5*time.Second, cfg.Storage.Timeout)
	require.Equal(t, "books", cfg.Mongo.Database)
	require.Equal(t, "5432", cfg.PG.Port)
	require.Equal(t, 10, cfg.PG.MaxConn)
	require.Equal(t, "info", cfg.Log.Level)
	require.True(t, cfg.Log.LogController)
	require.True(t, cfg.Log.LogUseCase)
	require.True(t, cfg.Log.LogDBRepo)
	require.True(t, cfg.Log.LogTransactor)
	require.Empty(t, cfg.Observability.MetricsPort)
	require.Empty(t, cfg.Observability.JaegerURL)
}

func TestNewConfigFromEnv(t *testing.T) {
	t.Setenv("APP_ENV", EnvProduction)
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("STORAGE_DRIVER", DriverPostgres)
	t.Setenv("STORE_TIMEOUT_MS", "250")
	t.Setenv("POSTGRES_HOST", "db")
	t.Setenv("POSTGRES_DB", "books")
	t.Setenv("POSTGRES_USER", "books")
	t.Setenv("POSTGRES_PASSWORD", "secret")
	t.Setenv("POSTGRES_MAX_CONN", "4")
	t.Setenv("LOG_CONTROLLER_ENABLED", "false")
	t.Setenv("METRICS_PORT", "9100")

	cfg, err := NewConfig()
	require.NoError(t, err)
	require.Equal(t, EnvProduction, cfg.App.Env)
	require.Equal(t, "9000", cfg.HTTP.Port)
	require.Equal(t, DriverPostgres, cfg.Storage.Driver)
	require.Equal(t, 250*time.Millisecond, cfg.Storage.Timeout)
	require.Equal(t, "db", cfg.PG.Host)
	require.Equal(t, 4, cfg.PG.MaxConn)
	require.False(t, cfg.Log.LogController)
	require.Equal(t, "9100", cfg.Observability.MetricsPort)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	valid := func() *Config {
		cfg := &Config{}
		cfg.App.Env = EnvDevelopment
		cfg.HTTP.Port = "8080"
		cfg.Storage.Driver = DriverMemory
		return cfg
	}

	tests := []struct {
		name       string
		mutate     func(cfg *Config)
		errRequire error
	}{
		{name: "memory needs nothing",
			mutate: func(*Config) {}},
		{name: "unknown driver",
			mutate:     func(cfg *Config) { cfg.Storage.Driver = "redis" },
			errRequire: ErrUnknownDriver},
		{name: "unknown environment",
			mutate:     func(cfg *Config) { cfg.App.Env = "staging" },
			errRequire: ErrUnknownEnv},
		{name: "missing http port",
			mutate:     func(cfg *Config) { cfg.HTTP.Port = "" },
			errRequire: ErrMissingSetting},
		{name: "mongo without url",
			mutate:     func(cfg *Config) { cfg.Storage.Driver = DriverMongo; cfg.Mongo.Database = "books" },
			errRequire: ErrMissingSetting},
		{name: "mongo with url",
			mutate: func(cfg *Config) {
				cfg.Storage.Driver = DriverMongo
				cfg.Mongo.URL = "mongodb://localhost"
				cfg.Mongo.Database = "books"
			}},
		{name: "postgres without host",
			mutate: func(cfg *Config) {
				cfg.Storage.Driver = DriverPostgres
				cfg.PG.Port, cfg.PG.DB, cfg.PG.User = "5432", "books", "books"
			},
			errRequire: ErrMissingSetting},
		{name: "postgres complete",
			mutate: func(cfg *Config) {
				cfg.Storage.Driver = DriverPostgres
				cfg.PG.Host, cfg.PG.Port, cfg.PG.DB, cfg.PG.User = "db", "5432", "books", "books"
			}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			cfg := valid()
			test.mutate(cfg)
			require.ErrorIs(t, cfg.Validate(), test.errRequire)
		})
	}
}
