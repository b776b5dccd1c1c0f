package models

// AllTimeStats is a manager's career line
type AllTimeStats struct {
	ManagerID          int     `json:"manager_id"`
	Name               string  `json:"name"`
	TotalGames         int     `json:"total_games"`
	TotalWins          int     `json:"total_wins"`
	PlayoffGames       int     `json:"playoff_games"`
	PlayoffWins        int     `json:"playoff_wins"`
	TotalPointsFor     float64 `json:"total_points_for"`
	TotalPointsAgainst float64 `json:"total_points_against"`
	HighPointWeeks     int     `json:"high_point_weeks"`
	LowPointWeeks      int     `json:"low_point_weeks"`
	Transactions       int     `json:"transactions"`
	Trades             int     `json:"trades"`
	Championships      int     `json:"championships"`
	PlayoffBerths      int     `json:"playoff_berths"`
	TotalSeasons       int     `json:"total_seasons"`
	IsActive           bool    `json:"is_active"`
}

// SeasonStats is a manager's line for one season
type SeasonStats struct {
	ManagerID          int     `json:"manager_id"`
	ManagerName        string  `json:"manager_name"`
	TeamName           string  `json:"team_name"`
	TotalGames         int     `json:"total_games"`
	TotalWins          int     `json:"total_wins"`
	PlayoffGames       int     `json:"playoff_games"`
	PlayoffWins        int     `json:"playoff_wins"`
	TotalPointsFor     float64 `json:"total_points_for"`
	TotalPointsAgainst float64 `json:"total_points_against"`
	HighPointWeeks     int     `json:"high_point_weeks"`
	LowPointWeeks      int     `json:"low_point_weeks"`
	Championships      int     `json:"championships"`
}

// ManagerSeason is one row of a manager's season history
type ManagerSeason struct {
	Year int `json:"year"`
	SeasonStats
}

// GameDetails is a matchup joined with team and manager names
type GameDetails struct {
	Year             int     `json:"year"`
	Week             int     `json:"week"`
	HomeScore        float64 `json:"home_score"`
	AwayScore        float64 `json:"away_score"`
	HomeManagerID    int     `json:"home_manager_id"`
	HomeManagerName  string  `json:"home_manager_name"`
	HomeTeam         string  `json:"home_team"`
	HomeLogo         string  `json:"home_logo"`
	HomeSeed         int     `json:"home_seed"`
	AwayManagerID    int     `json:"away_manager_id"`
	AwayManagerName  string  `json:"away_manager_name"`
	AwayTeam         string  `json:"away_team"`
	AwayLogo         string  `json:"away_logo"`
	AwaySeed         int     `json:"away_seed"`
	IsPlayoffs       bool    `json:"is_playoffs"`
	IsWinnersBracket bool    `json:"is_winners_bracket"`
	IsToiletBowl     bool    `json:"is_toilet_bowl"`
	IsByeWeek        bool    `json:"is_bye_week"`
	HighPoint        string  `json:"high_point"` // manager name
	LowPoint         string  `json:"low_point"`  // manager name
}

// HeadToHeadStats is one side of a rivalry. Game and weekly point numbers
// cover the meetings only; season numbers are career totals.
type HeadToHeadStats struct {
	ManagerID          int     `json:"manager_id"`
	Name               string  `json:"name"`
	TotalGames         int     `json:"total_games"`
	TotalWins          int     `json:"total_wins"`
	PlayoffGames       int     `json:"playoff_games"`
	PlayoffWins        int     `json:"playoff_wins"`
	TotalPointsFor     float64 `json:"total_points_for"`
	TotalPointsAgainst float64 `json:"total_points_against"`
	HighPointWeeks     int     `json:"high_point_weeks"`
	LowPointWeeks      int     `json:"low_point_weeks"`
	Transactions       int     `json:"transactions"`
	Trades             int     `json:"trades"`
	Championships      int     `json:"championships"`
	PlayoffBerths      int     `json:"playoff_berths"`
	TotalSeasons       int     `json:"total_seasons"`
	Record             string  `json:"record"`
	PlayoffRecord      string  `json:"playoff_record"`
	WinRate            string  `json:"win_rate"`
}

// OpponentRecord is a manager's record against a single opponent
type OpponentRecord struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	TotalGames int    `json:"total_games"`
	TotalWins  int    `json:"total_wins"`
	Record     string `json:"record"`
	WinRate    string `json:"win_rate"`
}

// YearOption is an entry in the season picker
type YearOption struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}
