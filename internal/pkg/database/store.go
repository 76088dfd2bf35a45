package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/piresc/ridebook/internal/pkg/models"
)

// Supported document store drivers
const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
)

// ErrUnsupportedDriver is returned for an unknown DOCSTORE_DRIVER value
var ErrUnsupportedDriver = errors.New("unsupported document store driver")

// DocumentStore is the external persistence collaborator. Records are
// schema-free; the store assigns each one an identifier on insert.
//
//go:generate mockgen -destination=mocks/mock_store.go -package=mocks github.com/piresc/ridebook/internal/pkg/database DocumentStore
type DocumentStore interface {
	Insert(ctx context.Context, collection string, record interface{}) (string, error)
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// NewDocumentStore connects to the store selected by cfg.DocStore.Driver
func NewDocumentStore(ctx context.Context, cfg *models.Config) (DocumentStore, error) {
	switch cfg.DocStore.Driver {
	case DriverMongo, "":
		client, err := NewMongoClient(ctx, cfg.Mongo)
		if err != nil {
			return nil, err
		}
		return client, nil
	case DriverPostgres:
		client, err := NewPostgresClient(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}
		if err := client.EnsureSchema(ctx); err != nil {
			_ = client.Close(ctx)
			return nil, err
		}
		return client, nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnsupportedDriver, cfg.DocStore.Driver)
	}
}
