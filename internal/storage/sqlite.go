package storage

import (
	"context"
	"database/sql"

	"github.com/m-mizutani/goerr/v2"
	_ "github.com/mattn/go-sqlite3"
)

// Store handles all database operations
type Store struct {
	db *sql.DB
}

// New creates a new Store with SQLite
func New(ctx context.Context, dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open database", goerr.V("path", dbPath))
	}

	store := &Store{db: db}
	if err := store.migrate(ctx); err != nil {
		db.Close()
		return nil, goerr.Wrap(err, "failed to run migrations", goerr.V("path", dbPath))
	}

	return store, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// Ping checks the database connection
func (s *Store) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return goerr.Wrap(err, "database ping failed")
	}
	return nil
}

// migrate runs database migrations
func (s *Store) migrate(ctx context.Context) error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS managers (
			id INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS seasons (
			year INTEGER PRIMARY KEY,
			divisions INTEGER NOT NULL DEFAULT 1,
			regular_season_weeks INTEGER NOT NULL,
			playoff_team_count INTEGER NOT NULL,
			champ INTEGER REFERENCES managers(id),
			toilet_bowl_champ INTEGER REFERENCES managers(id),
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS teams (
			year INTEGER NOT NULL REFERENCES seasons(year),
			manager INTEGER NOT NULL REFERENCES managers(id),
			team_name TEXT NOT NULL,
			division INTEGER NOT NULL DEFAULT 1,
			made_playoffs INTEGER NOT NULL DEFAULT 0,
			transactions INTEGER,
			trades INTEGER,
			logo TEXT,
			playoff_seed INTEGER,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (year, manager)
		)`,
		`CREATE TABLE IF NOT EXISTS games (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			year INTEGER NOT NULL REFERENCES seasons(year),
			week INTEGER NOT NULL,
			home_team INTEGER NOT NULL REFERENCES managers(id),
			away_team INTEGER REFERENCES managers(id),
			home_score REAL,
			away_score REAL,
			is_playoffs INTEGER NOT NULL DEFAULT 0,
			home_seed INTEGER,
			away_seed INTEGER,
			is_winners_bracket INTEGER NOT NULL DEFAULT 0,
			is_toilet_bowl INTEGER NOT NULL DEFAULT 0,
			is_bye_week INTEGER NOT NULL DEFAULT 0,
			winning_team INTEGER REFERENCES managers(id),
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_games_year_week ON games(year, week)`,
		`CREATE INDEX IF NOT EXISTS idx_games_home ON games(home_team)`,
		`CREATE INDEX IF NOT EXISTS idx_games_away ON games(away_team)`,
		`CREATE TABLE IF NOT EXISTS high_points (
			year INTEGER NOT NULL REFERENCES seasons(year),
			week INTEGER NOT NULL,
			high_point_manager INTEGER REFERENCES managers(id),
			low_point_manager INTEGER REFERENCES managers(id),
			high_point REAL,
			low_point REAL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (year, week)
		)`,
		`CREATE TABLE IF NOT EXISTS albums_of_the_year (
			id INTEGER PRIMARY KEY,
			year INTEGER NOT NULL,
			rank INTEGER NOT NULL,
			artist TEXT NOT NULL,
			album TEXT NOT NULL,
			album_art_url TEXT NOT NULL DEFAULT '',
			spotify_link TEXT NOT NULL DEFAULT '',
			apple_link TEXT NOT NULL DEFAULT '',
			vinyl_link TEXT,
			blurb TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			UNIQUE (year, rank)
		)`,
		`CREATE TABLE IF NOT EXISTS top_100_albums (
			id INTEGER PRIMARY KEY,
			rank INTEGER NOT NULL,
			album TEXT NOT NULL,
			artist TEXT NOT NULL,
			release_date TEXT NOT NULL DEFAULT '',
			spotify_url TEXT,
			apple_music_url TEXT,
			artwork_url TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS music_history (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			artist TEXT NOT NULL,
			type TEXT NOT NULL,
			album_art_url TEXT NOT NULL DEFAULT '',
			apple_music_url TEXT,
			spotify_url TEXT,
			created_at DATETIME NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_music_history_created ON music_history(created_at)`,
	}

	for _, m := range migrations {
		if _, err := s.db.ExecContext(ctx, m); err != nil {
			return goerr.Wrap(err, "migration failed")
		}
	}

	return nil
}

// --- Nullable helpers ---

func nullInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}

func intPtr(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	i := int(v.Int64)
	return &i
}

func nullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}

func floatPtr(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}

func nullString(v *string) sql.NullString {
	if v == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *v, Valid: true}
}

func stringPtr(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}
