package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"

	EnvDevelopment = "development"
	EnvProduction  = "production"
)

const (
	defaultAppEnv         = EnvDevelopment
	defaultHTTPPort       = "8080"
	defaultDriver         = DriverMongo
	defaultStoreTimeoutMS = 5000
	defaultMongoDatabase  = "books"
	defaultPostgresPort   = "5432"
	defaultMaxConn        = 10
	defaultLogLevel       = "info"
	defaultLogValue       = true
)

var (
	ErrUnknownDriver  = errors.New("unknown storage driver")
	ErrUnknownEnv     = errors.New("unknown application environment")
	ErrMissingSetting = errors.New("missing setting")
)

type (
	Config struct {
		App struct {
			Env string `env:"APP_ENV"`
		}

		HTTP struct {
			Port string `env:"HTTP_PORT"`
		}

		Storage struct {
			Driver  string        `env:"STORAGE_DRIVER"`
			Timeout time.Duration `env:"STORE_TIMEOUT_MS"`
		}

		Mongo struct {
			URL      string `env:"MONGODB_URL"`
			Database string `env:"MONGODB_DATABASE"`
		}

		PG struct {
			Host     string `env:"POSTGRES_HOST"`
			Port     string `env:"POSTGRES_PORT"`
			DB       string `env:"POSTGRES_DB"`
			User     string `env:"POSTGRES_USER"`
			Password string `env:"POSTGRES_PASSWORD"`
			MaxConn  int    `env:"POSTGRES_MAX_CONN"`
		}

		Log struct {
			Level         string `env:"LOG_LEVEL"`
			File          string `env:"LOG_FILE"`
			LogController bool   `env:"LOG_CONTROLLER_ENABLED"`
			LogTransactor bool   `env:"LOG_TRANSACTOR_ENABLED"`
			LogUseCase    bool   `env:"LOG_USECASE_ENABLED"`
			LogDBRepo     bool   `env:"LOG_DB_REPO_ENABLED"`
		}

		Observability struct {
			MetricsPort string `env:"METRICS_PORT"`
			JaegerURL   string `env:"JAEGER_URL"`
		}
	}
)

func NewConfig() (*Config, error) {
	cfg := &Config{}

	var err error
	v := viper.New()

	if cfg.App.Env, err = parseEnvString(v, "app_env", "APP_ENV", defaultAppEnv); err != nil {
		return nil, err
	}

	if cfg.HTTP.Port, err = parseEnvString(v, "http_port", "HTTP_PORT", defaultHTTPPort); err != nil {
		return nil, err
	}

	if cfg.Storage.Driver, err = parseEnvString(v, "storage_driver", "STORAGE_DRIVER", defaultDriver); err != nil {
		return nil, err
	}

	if cfg.Storage.Timeout, err = parseEnvMilliseconds(v, "store_timeout", "STORE_TIMEOUT_MS", defaultStoreTimeoutMS); err != nil {
		return nil, err
	}

	if cfg.Mongo.URL, err = parseEnvString(v, "mongo_url", "MONGODB_URL"); err != nil {
		return nil, err
	}

	if cfg.Mongo.Database, err = parseEnvString(v, "mongo_database", "MONGODB_DATABASE", defaultMongoDatabase); err != nil {
		return nil, err
	}

	if cfg.PG.Host, err = parseEnvString(v, "db_host", "POSTGRES_HOST"); err != nil {
		return nil, err
	}

	if cfg.PG.Port, err = parseEnvString(v, "db_port", "POSTGRES_PORT", defaultPostgresPort); err != nil {
		return nil, err
	}

	if cfg.PG.DB, err = parseEnvString(v, "db_name", "POSTGRES_DB"); err != nil {
		return nil, err
	}

	if cfg.PG.User, err = parseEnvString(v, "db_user", "POSTGRES_USER"); err != nil {
		return nil, err
	}

	if cfg.PG.Password, err = parseEnvString(v, "db_password", "POSTGRES_PASSWORD"); err != nil {
		return nil, err
	}

	if cfg.PG.MaxConn, err = parseEnvInt(v, "db_MaxCon", "POSTGRES_MAX_CONN", defaultMaxConn); err != nil {
		return nil, err
	}

	if cfg.Log.Level, err = parseEnvString(v, "log_level", "LOG_LEVEL", defaultLogLevel); err != nil {
		return nil, err
	}

	if cfg.Log.File, err = parseEnvString(v, "log_file", "LOG_FILE"); err != nil {
		return nil, err
	}

	if cfg.Log.LogController, err = parseEnvBool(v, "log_controller", "LOG_CONTROLLER_ENABLED", defaultLogValue); err != nil {
		return nil, err
	}

	if cfg.Log.LogTransactor, err = parseEnvBool(v, "log_transactor", "LOG_TRANSACTOR_ENABLED", defaultLogValue); err != nil {
		return nil, err
	}

	if cfg.Log.LogUseCase, err = parseEnvBool(v, "log_usecase", "LOG_USECASE_ENABLED", defaultLogValue); err != nil {
		return nil, err
	}

	if cfg.Log.LogDBRepo, err = parseEnvBool(v, "log_db", "LOG_DB_REPO_ENABLED", defaultLogValue); err != nil {
		return nil, err
	}

	if cfg.Observability.MetricsPort, err = parseEnvString(v, "metrics_port", "METRICS_PORT"); err != nil {
		return nil, err
	}

	if cfg.Observability.JaegerURL, err = parseEnvString(v, "jaeger_url", "JAEGER_URL"); err != nil {
		return nil, err
	}

	return cfg, cfg.Validate()
}

// Validate checks the environment name, the storage driver and the
// connection settings that driver needs.
func (c *Config) Validate() error {
	switch c.App.Env {
	case EnvDevelopment, EnvProduction:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownEnv, c.App.Env)
	}

	if c.HTTP.Port == "" {
		return fmt.Errorf("%w: HTTP_PORT", ErrMissingSetting)
	}

	switch c.Storage.Driver {
	case DriverMongo:
		if c.Mongo.URL == "" {
			return fmt.Errorf("%w: MONGODB_URL", ErrMissingSetting)
		}
		if c.Mongo.Database == "" {
			return fmt.Errorf("%w: MONGODB_DATABASE", ErrMissingSetting)
		}
	case DriverPostgres:
		required := []struct{ name, value string }{
			{"POSTGRES_HOST", c.PG.Host},
			{"POSTGRES_PORT", c.PG.Port},
			{"POSTGRES_DB", c.PG.DB},
			{"POSTGRES_USER", c.PG.User},
		}
		for _, r := range required {
			if r.value == "" {
				return fmt.Errorf("%w: %s", ErrMissingSetting, r.name)
			}
		}
	case DriverMemory:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDriver, c.Storage.Driver)
	}

	return nil
}

func parseEnvMilliseconds(v *viper.Viper, key, envVar string, defaultValue ...int) (time.Duration, error) {
	ms, err := parseEnvInt(v, key, envVar, defaultValue...)
	if err != nil {
		return time.Duration(0), err
	}

	return time.Duration(ms) * time.Millisecond, nil
}

func parseEnvBool(v *viper.Viper, key, envVar string, defaultValue ...bool) (bool, error) {
	err := v.BindEnv(key, envVar)
	if err != nil {
		if len(defaultValue) > 0 {
			return defaultValue[0], err
		}
		return false, err
	}
	if len(defaultValue) > 0 {
		v.SetDefault(key, defaultValue[0])
	}
	return v.GetBool(key), nil
}

func parseEnvInt(v *viper.Viper, key, envVar string, defaultValue ...int) (int, error) {
	err := v.BindEnv(key, envVar)
	if err != nil {
		if len(defaultValue) > 0 {
			return defaultValue[0], err
		}
		return 0, err
	}
	if len(defaultValue) > 0 {
		v.SetDefault(key, defaultValue[0])
	}
	return v.GetInt(key), nil
}

func parseEnvString(v *viper.Viper, key, envVar string, defaultValue ...string) (string, error) {
	err := v.BindEnv(key, envVar)
	if err != nil {
		if len(defaultValue) > 0 {
			return defaultValue[0], err
		}
		return "", err
	}
	if len(defaultValue) > 0 {
		v.SetDefault(key, defaultValue[0])
	}
	return v.GetString(key), nil
}
