package main

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/StrangeNoob/book-management-api/config"
	"github.com/StrangeNoob/book-management-api/internal/app"
	"github.com/StrangeNoob/book-management-api/pkg/logger"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("can not load .env file: %s", err)
	}

	cfg, err := config.NewConfig()

	if err != nil {
		log.Fatalf("can not get application config: %s", err)
	}

	l, err := logger.New(logger.Options{
		Level: cfg.Log.Level,
		File:  cfg.Log.File,
	})

	if err != nil {
		log.Fatalf("can not initialize logger: %s", err)
	}
	defer func() {
		_ = l.Sync()
	}()

	app.Run(l, cfg)
}
