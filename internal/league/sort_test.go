package league_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/meur/homepage/internal/league"
	"github.com/meur/homepage/internal/models"
)

func TestRecordAndWinRate(t *testing.T) {
	gt.Equal(t, league.Record(2, 3), "2-1")
	gt.Equal(t, league.Record(0, 0), "0-0")
	gt.Equal(t, league.WinRate(2, 3), "66.7%")
	gt.Equal(t, league.WinRate(1, 1), "100.0%")
	gt.Equal(t, league.WinRate(0, 0), "0%")
}

func TestSortAllTimeZeroGamesLast(t *testing.T) {
	stats := []models.AllTimeStats{
		{Name: "Rookie"},
		{Name: "Zed", TotalGames: 4, TotalWins: 2},
		{Name: "Amy", TotalGames: 2, TotalWins: 1},
		{Name: "Winless", TotalGames: 3},
	}
	league.SortAllTime(stats)
	gt.Equal(t, names(stats), []string{"Amy", "Zed", "Winless", "Rookie"})
}

func TestSortMatchups(t *testing.T) {
	games := []models.GameDetails{
		{Year: 2022, Week: 1},
		{Year: 2023, Week: 2},
		{Year: 2022, Week: 5},
		{Year: 2023, Week: 9},
	}
	league.SortMatchups(games)
	gt.Equal(t, games[0], models.GameDetails{Year: 2023, Week: 9})
	gt.Equal(t, games[1], models.GameDetails{Year: 2023, Week: 2})
	gt.Equal(t, games[2], models.GameDetails{Year: 2022, Week: 5})
	gt.Equal(t, games[3], models.GameDetails{Year: 2022, Week: 1})
}

func TestFilterActive(t *testing.T) {
	stats := []models.AllTimeStats{
		{Name: "Current", IsActive: true},
		{Name: "Retired"},
	}
	gt.A(t, league.FilterActive(stats, true)).Length(2)

	active := league.FilterActive(stats, false)
	gt.A(t, active).Length(1)
	gt.Equal(t, active[0].Name, "Current")
}

func TestSplitBrackets(t *testing.T) {
	games := []models.GameDetails{
		{HomeManagerName: "final", IsPlayoffs: true, IsWinnersBracket: true},
		{HomeManagerName: "bye", IsPlayoffs: true, IsWinnersBracket: true, IsByeWeek: true},
		{HomeManagerName: "toilet", IsPlayoffs: true, IsToiletBowl: true},
		{HomeManagerName: "consolation", IsPlayoffs: true},
	}
	winners, consolation := league.SplitBrackets(games)

	gt.A(t, winners).Length(1)
	gt.Equal(t, winners[0].HomeManagerName, "final")
	gt.A(t, consolation).Length(2)
	gt.Equal(t, consolation[0].HomeManagerName, "toilet")
	gt.Equal(t, consolation[1].HomeManagerName, "consolation")
}

func TestIsPlayoffWeek(t *testing.T) {
	gt.False(t, league.IsPlayoffWeek(nil, 13))
	gt.True(t, league.IsPlayoffWeek(nil, 14))

	season := &models.Season{RegularSeasonWeeks: 14}
	gt.False(t, league.IsPlayoffWeek(season, 14))
	gt.True(t, league.IsPlayoffWeek(season, 15))
}
