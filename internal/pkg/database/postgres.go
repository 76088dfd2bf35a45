package database

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v4/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/ridebook/internal/pkg/models"
)

const createDocumentsTable = `
	CREATE TABLE IF NOT EXISTS documents (
		id         UUID PRIMARY KEY,
		collection TEXT NOT NULL,
		body       JSONB NOT NULL,
		created_at TIMESTAMPTZ NOT NULL
	)
`

const insertDocument = `
	INSERT INTO documents (id, collection, body, created_at)
	VALUES ($1, $2, $3, $4)
`

// PostgresClient is a DocumentStore that keeps every collection in one JSONB table
type PostgresClient struct {
	db *sqlx.DB
}

// NewPostgresClient creates a new PostgreSQL client over the pgx driver
func NewPostgresClient(ctx context.Context, config models.DatabaseConfig) (*PostgresClient, error) {
	connString := postgresDSN(config)

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	db, err := sqlx.ConnectContext(ctx, "pgx", connString)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	if config.MaxConns > 0 {
		db.SetMaxOpenConns(config.MaxConns)
	}
	if config.IdleConns > 0 {
		db.SetMaxIdleConns(config.IdleConns)
	}
	db.SetConnMaxLifetime(1 * time.Hour)

	return &PostgresClient{db: db}, nil
}

// postgresDSN builds the connection URL; credentials are escaped
func postgresDSN(config models.DatabaseConfig) string {
	dsn := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(config.Username, config.Password),
		Host:   net.JoinHostPort(config.Host, strconv.Itoa(config.Port)),
		Path:   "/" + config.Database,
	}
	if config.SSLMode != "" {
		dsn.RawQuery = url.Values{"sslmode": {config.SSLMode}}.Encode()
	}
	return dsn.String()
}

// EnsureSchema creates the documents table when it does not exist
func (p *PostgresClient) EnsureSchema(ctx context.Context) error {
	if _, err := p.db.ExecContext(ctx, createDocumentsTable); err != nil {
		return fmt.Errorf("failed to create documents table: %w", err)
	}
	return nil
}

// Insert stores record as JSON under collection and returns a new UUID
func (p *PostgresClient) Insert(ctx context.Context, collection string, record interface{}) (string, error) {
	body, err := json.Marshal(record)
	if err != nil {
		return "", fmt.Errorf("failed to encode document: %w", err)
	}

	id := uuid.NewString()
	_, err = p.db.ExecContext(ctx, insertDocument, id, collection, string(body), time.Now().UTC())
	if err != nil {
		return "", fmt.Errorf("failed to insert into %s: %w", collection, err)
	}

	return id, nil
}

// Ping verifies the connection
func (p *PostgresClient) Ping(ctx context.Context) error {
	return p.db.PingContext(ctx)
}

// Close closes the database connection pool
func (p *PostgresClient) Close(_ context.Context) error {
	return p.db.Close()
}
