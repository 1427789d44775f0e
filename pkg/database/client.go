// Package database provides the embedded SQLite client backing the render-job
// store. The schema is created through Ent's auto-migration at startup.
package database

import (
	"context"
	stdsql "database/sql"
	"fmt"
	"os"
	"path/filepath"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	_ "github.com/mattn/go-sqlite3" // Register sqlite3 driver for database/sql

	"github.com/saramhq/aegis/ent"
	"github.com/saramhq/aegis/pkg/config"
)

// Client wraps the Ent client and provides access to the underlying database.
type Client struct {
	*ent.Client
	db *stdsql.DB
}

// DB returns the underlying database connection for health checks.
func (c *Client) DB() *stdsql.DB {
	return c.db
}

// NewClientFromEnt wraps an existing Ent client (useful for testing).
func NewClientFromEnt(entClient *ent.Client, db *stdsql.DB) *Client {
	return &Client{
		Client: entClient,
		db:     db,
	}
}

// NewClient opens the database file and runs schema migration. Foreign keys
// and WAL journalling are enabled; a single writer connection avoids
// SQLITE_BUSY under concurrent job updates.
func NewClient(ctx context.Context, cfg config.DatabaseConfig) (*Client, error) {
	dsn := cfg.Path
	if dsn != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
		dsn = "file:" + cfg.Path + "?_fk=1&_journal_mode=WAL&_busy_timeout=5000"
	} else {
		dsn = "file::memory:?mode=memory&cache=shared&_fk=1"
	}

	db, err := stdsql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	drv := entsql.OpenDB(dialect.SQLite, db)
	entClient := ent.NewClient(ent.Driver(drv))

	if err := entClient.Schema.Create(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("run schema migration: %w", err)
	}

	return &Client{Client: entClient, db: db}, nil
}

// Close closes the Ent client and the underlying connection.
func (c *Client) Close() error {
	return c.Client.Close()
}
