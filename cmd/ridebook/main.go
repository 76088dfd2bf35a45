package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/piresc/ridebook/internal/pkg/config"
	"github.com/piresc/ridebook/internal/pkg/database"
	"github.com/piresc/ridebook/internal/pkg/logger"
	"github.com/piresc/ridebook/internal/pkg/models"
	"github.com/piresc/ridebook/internal/pkg/retry"
	"github.com/piresc/ridebook/internal/pkg/server"
	"github.com/sirupsen/logrus"
)

func main() {
	configPath := "config/ridebook.env"
	configs := config.InitConfig(configPath)

	baseLogger := logger.NewLogger(configs.Logger)
	log := logger.WithService(baseLogger, configs.App)
	log.Info("Starting application")

	store, err := connectDocumentStore(configs, log)
	if err != nil {
		log.WithError(err).WithField("driver", configs.DocStore.Driver).Fatal("Failed to connect to document store")
	}
	log.WithField("driver", configs.DocStore.Driver).Info("Document store connected")

	e := newRouter(configs, log, store)

	addr := fmt.Sprintf("%s:%d", configs.Server.Host, configs.Server.Port)
	gs := server.NewGracefulServer(e, log, addr, time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	gs.OnShutdown(store.Close)

	if err := gs.Start(); err != nil {
		log.WithError(err).Fatal("Server stopped with error")
	}
}

// connectDocumentStore retries the initial connection so the service can
// start alongside its database container
func connectDocumentStore(configs *models.Config, log logrus.FieldLogger) (database.DocumentStore, error) {
	retryCfg := retry.DefaultConfig()
	retryCfg.MaxRetries = configs.DocStore.ConnectRetries
	retryCfg.IsRetryable = func(err error) bool {
		return !errors.Is(err, database.ErrUnsupportedDriver)
	}

	attemptTimeout := time.Duration(configs.Mongo.Timeout) * time.Second
	if attemptTimeout <= 0 {
		attemptTimeout = 10 * time.Second
	}

	var store database.DocumentStore
	err := retry.New(retryCfg, log).Execute(context.Background(), "connect_document_store", func(ctx context.Context) error {
		attemptCtx, cancel := context.WithTimeout(ctx, attemptTimeout)
		defer cancel()

		s, err := database.NewDocumentStore(attemptCtx, configs)
		if err != nil {
			return err
		}
		store = s
		return nil
	})
	return store, err
}
