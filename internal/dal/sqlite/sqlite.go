package sqlite

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
	"github.com/spf13/viper"
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// Client represents a SQLite client over a single database file.
type Client struct {
	db *sqlx.DB
}

// DB returns the underlying database connection.
func (c *Client) DB() *sqlx.DB {
	return c.db
}

// Close closes the database connection for graceful shutdown.
func (c *Client) Close() error {
	return c.db.Close()
}

// MustNewClient creates a new SQLite client at the configured path.
// ORDER_SQLITE_PATH overrides sqlite.path from the config file, so
// there is exactly one place deciding where the database lives.
func MustNewClient() *Client {
	path := os.Getenv("ORDER_SQLITE_PATH")
	if path == "" {
		path = viper.GetString("sqlite.path")
	}

	client, err := NewClient(path)
	if err != nil {
		panic(err)
	}

	return client
}

// NewClient opens the database file at path, creating its directory
// if needed, and applies the embedded migrations.
func NewClient(path string) (*Client, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sqlx.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	// SQLite serializes writers; a single connection avoids busy errors.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping sqlite database: %w", err)
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return nil, err
	}

	if err := goose.Up(db.DB, "migrations"); err != nil &&
		!errors.Is(err, goose.ErrNoNextVersion) {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &Client{
		db: db,
	}, nil
}
