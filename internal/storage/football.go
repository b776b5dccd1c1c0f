package storage

import (
	"context"
	"database/sql"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/meur/homepage/internal/models"
)

// --- Managers ---

// GetManagers returns all managers
func (s *Store) GetManagers(ctx context.Context) ([]models.Manager, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, created_at FROM managers ORDER BY id
	`)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query managers")
	}
	defer rows.Close()

	var managers []models.Manager
	for rows.Next() {
		var m models.Manager
		if err := rows.Scan(&m.ID, &m.Name, &m.CreatedAt); err != nil {
			return nil, goerr.Wrap(err, "failed to scan manager")
		}
		managers = append(managers, m)
	}
	return managers, rows.Err()
}

// GetManager returns a manager by ID
func (s *Store) GetManager(ctx context.Context, id int) (*models.Manager, error) {
	var m models.Manager
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, created_at FROM managers WHERE id = ?
	`, id).Scan(&m.ID, &m.Name, &m.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query manager", goerr.V("id", id))
	}
	return &m, nil
}

// --- Seasons ---

const seasonColumns = `year, divisions, regular_season_weeks, playoff_team_count, champ, toilet_bowl_champ`

func scanSeason(row interface{ Scan(...any) error }) (models.Season, error) {
	var season models.Season
	var champ, toiletBowl sql.NullInt64
	err := row.Scan(&season.Year, &season.Divisions, &season.RegularSeasonWeeks,
		&season.PlayoffTeamCount, &champ, &toiletBowl)
	season.Champ = intPtr(champ)
	season.ToiletBowlChamp = intPtr(toiletBowl)
	return season, err
}

// GetSeasons returns all seasons, newest first
func (s *Store) GetSeasons(ctx context.Context) ([]models.Season, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+seasonColumns+` FROM seasons ORDER BY year DESC`)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query seasons")
	}
	defer rows.Close()

	var seasons []models.Season
	for rows.Next() {
		season, err := scanSeason(rows)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to scan season")
		}
		seasons = append(seasons, season)
	}
	return seasons, rows.Err()
}

// GetSeason returns a season by year
func (s *Store) GetSeason(ctx context.Context, year int) (*models.Season, error) {
	season, err := scanSeason(s.db.QueryRowContext(ctx,
		`SELECT `+seasonColumns+` FROM seasons WHERE year = ?`, year))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query season", goerr.V("year", year))
	}
	return &season, nil
}

// --- Teams ---

// GetTeams returns teams for a year, or for every year when year is 0
func (s *Store) GetTeams(ctx context.Context, year int) ([]models.Team, error) {
	query := `
		SELECT year, manager, team_name, division, made_playoffs, transactions, trades, logo, playoff_seed
		FROM teams`
	var args []any
	if year != 0 {
		query += ` WHERE year = ?`
		args = append(args, year)
	}
	query += ` ORDER BY year DESC, manager`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query teams", goerr.V("year", year))
	}
	defer rows.Close()

	var teams []models.Team
	for rows.Next() {
		var t models.Team
		var transactions, trades, seed sql.NullInt64
		var logo sql.NullString
		err := rows.Scan(&t.Year, &t.Manager, &t.TeamName, &t.Division, &t.MadePlayoffs,
			&transactions, &trades, &logo, &seed)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to scan team")
		}
		t.Transactions = int(transactions.Int64)
		t.Trades = int(trades.Int64)
		t.Logo = stringPtr(logo)
		t.PlayoffSeed = intPtr(seed)
		teams = append(teams, t)
	}
	return teams, rows.Err()
}

// --- Games ---

// GameFilter narrows a games query. Zero values match everything.
type GameFilter struct {
	Year int
	// Between restricts to games where both managers played each other
	Between []int
	// Manager restricts to games the manager played in
	Manager int
}

// GetGames returns games matching filter ordered by year and week
func (s *Store) GetGames(ctx context.Context, filter GameFilter) ([]models.Game, error) {
	var where []string
	var args []any

	if filter.Year != 0 {
		where = append(where, "year = ?")
		args = append(args, filter.Year)
	}
	if filter.Manager != 0 {
		where = append(where, "(home_team = ? OR away_team = ?)")
		args = append(args, filter.Manager, filter.Manager)
	}
	if len(filter.Between) == 2 {
		a, b := filter.Between[0], filter.Between[1]
		where = append(where, "((home_team = ? AND away_team = ?) OR (home_team = ? AND away_team = ?))")
		args = append(args, a, b, b, a)
	}

	query := `
		SELECT year, week, home_team, away_team, home_score, away_score, is_playoffs,
			home_seed, away_seed, is_winners_bracket, is_toilet_bowl, is_bye_week, winning_team
		FROM games`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY year, week, id"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query games", goerr.V("filter", filter))
	}
	defer rows.Close()

	var games []models.Game
	for rows.Next() {
		var g models.Game
		var away, homeSeed, awaySeed, winner sql.NullInt64
		var homeScore, awayScore sql.NullFloat64
		err := rows.Scan(&g.Year, &g.Week, &g.HomeTeam, &away, &homeScore, &awayScore,
			&g.IsPlayoffs, &homeSeed, &awaySeed, &g.IsWinnersBracket, &g.IsToiletBowl,
			&g.IsByeWeek, &winner)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to scan game")
		}
		g.AwayTeam = intPtr(away)
		g.HomeScore = floatPtr(homeScore)
		g.AwayScore = floatPtr(awayScore)
		g.HomeSeed = intPtr(homeSeed)
		g.AwaySeed = intPtr(awaySeed)
		g.WinningTeam = intPtr(winner)
		games = append(games, g)
	}
	return games, rows.Err()
}

// --- High points ---

// GetHighPoints returns weekly high/low scorers for a year, or every year when year is 0
func (s *Store) GetHighPoints(ctx context.Context, year int) ([]models.HighPoint, error) {
	query := `
		SELECT year, week, high_point_manager, low_point_manager, high_point, low_point
		FROM high_points`
	var args []any
	if year != 0 {
		query += ` WHERE year = ?`
		args = append(args, year)
	}
	query += ` ORDER BY year, week`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query high points", goerr.V("year", year))
	}
	defer rows.Close()

	var points []models.HighPoint
	for rows.Next() {
		var hp models.HighPoint
		var high, low sql.NullInt64
		var highPoint, lowPoint sql.NullFloat64
		if err := rows.Scan(&hp.Year, &hp.Week, &high, &low, &highPoint, &lowPoint); err != nil {
			return nil, goerr.Wrap(err, "failed to scan high point")
		}
		hp.HighPointManager = intPtr(high)
		hp.LowPointManager = intPtr(low)
		hp.HighPoint = floatPtr(highPoint)
		hp.LowPoint = floatPtr(lowPoint)
		points = append(points, hp)
	}
	return points, rows.Err()
}
