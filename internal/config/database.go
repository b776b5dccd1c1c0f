package config

import (
	"context"
	"log/slog"

	"github.com/meur/homepage/internal/storage"
	"github.com/urfave/cli/v3"
)

// Database holds storage configuration
type Database struct {
	Path string
}

// Flags returns CLI flags for Database configuration
func (d *Database) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "db",
			Usage:       "Path to SQLite database",
			Category:    "Database",
			Value:       "homepage.db",
			Sources:     cli.EnvVars("HOMEPAGE_DB"),
			Destination: &d.Path,
		},
	}
}

// Configure opens the store and applies migrations
func (d *Database) Configure(ctx context.Context) (*storage.Store, error) {
	return storage.New(ctx, d.Path)
}

// LogValue returns structured log value
func (d Database) LogValue() slog.Value {
	return slog.GroupValue(slog.String("path", d.Path))
}
