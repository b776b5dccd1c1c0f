package league

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/meur/homepage/internal/models"
)

// AllTimeKey is the season picker key for the all-time table
const AllTimeKey = "all_time"

// WinPct returns wins/games, or -1 when no games were played so those
// managers sort last
func WinPct(wins, games int) float64 {
	if games == 0 {
		return -1
	}
	return float64(wins) / float64(games)
}

// Record formats a W-L record
func Record(wins, games int) string {
	return fmt.Sprintf("%d-%d", wins, games-wins)
}

// WinRate formats a win percentage with one decimal
func WinRate(wins, games int) string {
	if games <= 0 {
		return "0%"
	}
	return fmt.Sprintf("%.1f%%", float64(wins)/float64(games)*100)
}

// SortAllTime orders by win percentage, then name
func SortAllTime(stats []models.AllTimeStats) {
	slices.SortStableFunc(stats, func(a, b models.AllTimeStats) int {
		if c := cmp.Compare(WinPct(b.TotalWins, b.TotalGames), WinPct(a.TotalWins, a.TotalGames)); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})
}

// SortSeason orders by wins, then points for, then name
func SortSeason(stats []models.SeasonStats) {
	slices.SortStableFunc(stats, func(a, b models.SeasonStats) int {
		if c := cmp.Compare(b.TotalWins, a.TotalWins); c != 0 {
			return c
		}
		if c := cmp.Compare(b.TotalPointsFor, a.TotalPointsFor); c != 0 {
			return c
		}
		return cmp.Compare(a.ManagerName, b.ManagerName)
	})
}

// SortMatchups orders newest year first, then newest week
func SortMatchups(games []models.GameDetails) {
	slices.SortStableFunc(games, func(a, b models.GameDetails) int {
		if a.Year == b.Year {
			return cmp.Compare(b.Week, a.Week)
		}
		return cmp.Compare(b.Year, a.Year)
	})
}

// SortOpponents orders by games played, then name
func SortOpponents(opponents []models.OpponentRecord) {
	slices.SortStableFunc(opponents, func(a, b models.OpponentRecord) int {
		if c := cmp.Compare(b.TotalGames, a.TotalGames); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})
}

// FilterActive drops managers without a team in the latest season unless
// showAll is set
func FilterActive(stats []models.AllTimeStats, showAll bool) []models.AllTimeStats {
	if showAll {
		return stats
	}
	result := make([]models.AllTimeStats, 0, len(stats))
	for _, st := range stats {
		if st.IsActive {
			result = append(result, st)
		}
	}
	return result
}

// SplitBrackets separates winners bracket games from consolation games.
// Bye weeks belong to neither.
func SplitBrackets(games []models.GameDetails) (winners, consolation []models.GameDetails) {
	winners = []models.GameDetails{}
	consolation = []models.GameDetails{}
	for _, g := range games {
		if g.IsByeWeek {
			continue
		}
		if g.IsPlayoffs && g.IsWinnersBracket {
			winners = append(winners, g)
		} else {
			consolation = append(consolation, g)
		}
	}
	return winners, consolation
}

// IsPlayoffWeek reports whether week is past the regular season
func IsPlayoffWeek(season *models.Season, week int) bool {
	regular := models.DefaultRegularSeasonWeeks
	if season != nil && season.RegularSeasonWeeks > 0 {
		regular = season.RegularSeasonWeeks
	}
	return week > regular
}
