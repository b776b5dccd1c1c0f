package storage

import (
	"context"
	"database/sql"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
	"github.com/meur/homepage/internal/models"
	"gopkg.in/yaml.v3"
)

// Dataset is the content of a seed file
type Dataset struct {
	Managers        []models.Manager     `yaml:"managers"`
	Seasons         []models.Season      `yaml:"seasons"`
	Teams           []models.Team        `yaml:"teams"`
	Games           []models.Game        `yaml:"games"`
	HighPoints      []models.HighPoint   `yaml:"high_points"`
	AlbumsOfTheYear []models.Album       `yaml:"albums_of_the_year"`
	Top100Albums    []models.Top100Album `yaml:"top_100_albums"`
	MusicHistory    []models.Listen      `yaml:"music_history"`
}

// LoadDataset reads a YAML seed file
func LoadDataset(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read seed file", goerr.V("path", path))
	}

	var ds Dataset
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return nil, goerr.Wrap(err, "failed to parse seed file", goerr.V("path", path))
	}
	return &ds, nil
}

// Seed writes a dataset in a single transaction. Rows with the same key are
// replaced; games are replaced per year.
func (s *Store) Seed(ctx context.Context, ds *Dataset) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return goerr.Wrap(err, "failed to begin seed transaction")
	}
	defer tx.Rollback()

	steps := []struct {
		name string
		fn   func(context.Context, *sql.Tx, *Dataset) error
	}{
		{"managers", seedManagers},
		{"seasons", seedSeasons},
		{"teams", seedTeams},
		{"games", seedGames},
		{"high_points", seedHighPoints},
		{"albums_of_the_year", seedAlbums},
		{"top_100_albums", seedTop100},
		{"music_history", seedListens},
	}
	for _, step := range steps {
		if err := step.fn(ctx, tx, ds); err != nil {
			return goerr.Wrap(err, "seed step failed", goerr.V("table", step.name))
		}
	}

	if err := tx.Commit(); err != nil {
		return goerr.Wrap(err, "failed to commit seed transaction")
	}
	return nil
}

// execEach prepares query once and runs it for n rows
func execEach(ctx context.Context, tx *sql.Tx, query string, n int, args func(i int) []any) error {
	if n == 0 {
		return nil
	}
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return goerr.Wrap(err, "failed to prepare statement")
	}
	defer stmt.Close()

	for i := 0; i < n; i++ {
		if _, err := stmt.ExecContext(ctx, args(i)...); err != nil {
			return goerr.Wrap(err, "failed to insert row", goerr.V("index", i))
		}
	}
	return nil
}

func seedManagers(ctx context.Context, tx *sql.Tx, ds *Dataset) error {
	return execEach(ctx, tx, `INSERT OR REPLACE INTO managers (id, name) VALUES (?, ?)`,
		len(ds.Managers), func(i int) []any {
			m := ds.Managers[i]
			return []any{m.ID, m.Name}
		})
}

func seedSeasons(ctx context.Context, tx *sql.Tx, ds *Dataset) error {
	return execEach(ctx, tx, `
		INSERT OR REPLACE INTO seasons (year, divisions, regular_season_weeks, playoff_team_count, champ, toilet_bowl_champ)
		VALUES (?, ?, ?, ?, ?, ?)`,
		len(ds.Seasons), func(i int) []any {
			season := ds.Seasons[i]
			return []any{season.Year, season.Divisions, season.RegularSeasonWeeks,
				season.PlayoffTeamCount, nullInt(season.Champ), nullInt(season.ToiletBowlChamp)}
		})
}

func seedTeams(ctx context.Context, tx *sql.Tx, ds *Dataset) error {
	return execEach(ctx, tx, `
		INSERT OR REPLACE INTO teams (year, manager, team_name, division, made_playoffs, transactions, trades, logo, playoff_seed)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		len(ds.Teams), func(i int) []any {
			t := ds.Teams[i]
			return []any{t.Year, t.Manager, t.TeamName, t.Division, t.MadePlayoffs,
				t.Transactions, t.Trades, nullString(t.Logo), nullInt(t.PlayoffSeed)}
		})
}

func seedGames(ctx context.Context, tx *sql.Tx, ds *Dataset) error {
	years := map[int]bool{}
	for _, g := range ds.Games {
		years[g.Year] = true
	}
	for year := range years {
		if _, err := tx.ExecContext(ctx, `DELETE FROM games WHERE year = ?`, year); err != nil {
			return goerr.Wrap(err, "failed to clear games", goerr.V("year", year))
		}
	}

	return execEach(ctx, tx, `
		INSERT INTO games (year, week, home_team, away_team, home_score, away_score, is_playoffs,
			home_seed, away_seed, is_winners_bracket, is_toilet_bowl, is_bye_week, winning_team)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		len(ds.Games), func(i int) []any {
			g := ds.Games[i]
			return []any{g.Year, g.Week, g.HomeTeam, nullInt(g.AwayTeam), nullFloat(g.HomeScore),
				nullFloat(g.AwayScore), g.IsPlayoffs, nullInt(g.HomeSeed), nullInt(g.AwaySeed),
				g.IsWinnersBracket, g.IsToiletBowl, g.IsByeWeek, nullInt(g.WinningTeam)}
		})
}

func seedHighPoints(ctx context.Context, tx *sql.Tx, ds *Dataset) error {
	return execEach(ctx, tx, `
		INSERT OR REPLACE INTO high_points (year, week, high_point_manager, low_point_manager, high_point, low_point)
		VALUES (?, ?, ?, ?, ?, ?)`,
		len(ds.HighPoints), func(i int) []any {
			hp := ds.HighPoints[i]
			return []any{hp.Year, hp.Week, nullInt(hp.HighPointManager), nullInt(hp.LowPointManager),
				nullFloat(hp.HighPoint), nullFloat(hp.LowPoint)}
		})
}

func seedAlbums(ctx context.Context, tx *sql.Tx, ds *Dataset) error {
	return execEach(ctx, tx, `
		INSERT OR REPLACE INTO albums_of_the_year (year, rank, artist, album, album_art_url, spotify_link, apple_link, vinyl_link, blurb)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		len(ds.AlbumsOfTheYear), func(i int) []any {
			a := ds.AlbumsOfTheYear[i]
			return []any{a.Year, a.Rank, a.Artist, a.Album, a.AlbumArtURL, a.SpotifyLink,
				a.AppleLink, nullString(a.VinylLink), nullString(a.Blurb)}
		})
}

func seedTop100(ctx context.Context, tx *sql.Tx, ds *Dataset) error {
	if len(ds.Top100Albums) > 0 {
		if _, err := tx.ExecContext(ctx, `DELETE FROM top_100_albums`); err != nil {
			return goerr.Wrap(err, "failed to clear top 100 albums")
		}
	}
	return execEach(ctx, tx, `
		INSERT INTO top_100_albums (rank, album, artist, release_date, spotify_url, apple_music_url, artwork_url)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		len(ds.Top100Albums), func(i int) []any {
			a := ds.Top100Albums[i]
			return []any{a.Rank, a.Album, a.Artist, a.ReleaseDate, nullString(a.SpotifyURL),
				nullString(a.AppleMusicURL), a.ArtworkURL}
		})
}

func seedListens(ctx context.Context, tx *sql.Tx, ds *Dataset) error {
	now := time.Now().UTC()
	return execEach(ctx, tx, `
		INSERT OR REPLACE INTO music_history (id, title, artist, type, album_art_url, apple_music_url, spotify_url, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		len(ds.MusicHistory), func(i int) []any {
			l := ds.MusicHistory[i]
			if l.ID == "" {
				l.ID = uuid.NewString()
			}
			if l.Type == "" {
				l.Type = models.ListenSong
			}
			if l.CreatedAt.IsZero() {
				l.CreatedAt = now
			}
			// stored as text, so keep a single zone for ordering
			l.CreatedAt = l.CreatedAt.UTC()
			return []any{l.ID, l.Title, l.Artist, string(l.Type), l.AlbumArtURL,
				nullString(l.AppleMusicURL), nullString(l.SpotifyURL), l.CreatedAt}
		})
}
