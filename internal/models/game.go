package models

import (
	"time"
)

// Manager is a league member
type Manager struct {
	ID        int       `json:"id" yaml:"id"`
	Name      string    `json:"name" yaml:"name"`
	CreatedAt time.Time `json:"created_at" yaml:"-"`
}

// Season holds the league settings for one year
type Season struct {
	Year               int  `json:"year" yaml:"year"`
	Divisions          int  `json:"divisions" yaml:"divisions"`
	RegularSeasonWeeks int  `json:"regular_season_weeks" yaml:"regular_season_weeks"`
	PlayoffTeamCount   int  `json:"playoff_team_count" yaml:"playoff_team_count"`
	Champ              *int `json:"champ,omitempty" yaml:"champ"`                         // manager ID
	ToiletBowlChamp    *int `json:"toilet_bowl_champ,omitempty" yaml:"toilet_bowl_champ"` // manager ID
}

// DefaultRegularSeasonWeeks is used when a season row is missing
const DefaultRegularSeasonWeeks = 13

// Team is a manager's entry for one season
type Team struct {
	Year         int     `json:"year" yaml:"year"`
	Manager      int     `json:"manager" yaml:"manager"`
	TeamName     string  `json:"team_name" yaml:"team_name"`
	Division     int     `json:"division" yaml:"division"`
	MadePlayoffs bool    `json:"made_playoffs" yaml:"made_playoffs"`
	Transactions int     `json:"transactions" yaml:"transactions"`
	Trades       int     `json:"trades" yaml:"trades"`
	Logo         *string `json:"logo,omitempty" yaml:"logo"`
	PlayoffSeed  *int    `json:"playoff_seed,omitempty" yaml:"playoff_seed"`
}

// Game is a single weekly matchup. Home and away hold manager IDs.
type Game struct {
	Year             int      `json:"year" yaml:"year"`
	Week             int      `json:"week" yaml:"week"`
	HomeTeam         int      `json:"home_team" yaml:"home_team"`
	AwayTeam         *int     `json:"away_team,omitempty" yaml:"away_team"`
	HomeScore        *float64 `json:"home_score,omitempty" yaml:"home_score"`
	AwayScore        *float64 `json:"away_score,omitempty" yaml:"away_score"`
	IsPlayoffs       bool     `json:"is_playoffs" yaml:"is_playoffs"`
	HomeSeed         *int     `json:"home_seed,omitempty" yaml:"home_seed"`
	AwaySeed         *int     `json:"away_seed,omitempty" yaml:"away_seed"`
	IsWinnersBracket bool     `json:"is_winners_bracket" yaml:"is_winners_bracket"`
	IsToiletBowl     bool     `json:"is_toilet_bowl" yaml:"is_toilet_bowl"`
	IsByeWeek        bool     `json:"is_bye_week" yaml:"is_bye_week"`
	WinningTeam      *int     `json:"winning_team,omitempty" yaml:"winning_team"`
}

// Played reports whether the game has two teams and both scores
func (g Game) Played() bool {
	return !g.IsByeWeek && g.AwayTeam != nil && g.HomeScore != nil && g.AwayScore != nil
}

// Involves reports whether manager played in the game
func (g Game) Involves(manager int) bool {
	return g.HomeTeam == manager || (g.AwayTeam != nil && *g.AwayTeam == manager)
}

// HighPoint records the weekly high and low scorers
type HighPoint struct {
	Year             int      `json:"year" yaml:"year"`
	Week             int      `json:"week" yaml:"week"`
	HighPointManager *int     `json:"high_point_manager,omitempty" yaml:"high_point_manager"`
	LowPointManager  *int     `json:"low_point_manager,omitempty" yaml:"low_point_manager"`
	HighPoint        *float64 `json:"high_point,omitempty" yaml:"high_point"`
	LowPoint         *float64 `json:"low_point,omitempty" yaml:"low_point"`
}
