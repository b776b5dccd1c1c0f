package league

import (
	"cmp"
	"slices"
	"strconv"

	"github.com/meur/homepage/internal/models"
)

// AllTime returns career stats for every manager who played, best win
// percentage first
func (lg *League) AllTime() []models.AllTimeStats {
	lines := lg.tally(func(models.Game) bool { return true })
	lg.countPoints(lines, func(models.HighPoint) bool { return true })

	careers := lg.careers()

	result := make([]models.AllTimeStats, 0, len(lg.Managers))
	for _, m := range lg.Managers {
		l, c := lines[m.ID], careers[m.ID]
		if l == nil && c == nil {
			continue
		}
		st := models.AllTimeStats{ManagerID: m.ID, Name: m.Name}
		if l != nil {
			st.TotalGames = l.games
			st.TotalWins = l.wins
			st.PlayoffGames = l.playoffGames
			st.PlayoffWins = l.playoffWins
			st.TotalPointsFor = l.pointsFor
			st.TotalPointsAgainst = l.against
			st.HighPointWeeks = l.highWeeks
			st.LowPointWeeks = l.lowWeeks
		}
		if c != nil {
			st.Transactions = c.transactions
			st.Trades = c.trades
			st.PlayoffBerths = c.berths
			st.Championships = c.titles
			st.TotalSeasons = c.seasons
			st.IsActive = c.active
		}
		result = append(result, st)
	}

	SortAllTime(result)
	return result
}

// SeasonDetails returns per-manager stats for one season, most wins first
func (lg *League) SeasonDetails(year int) []models.SeasonStats {
	result := lg.seasonStats(year)
	SortSeason(result)
	return result
}

func (lg *League) seasonStats(year int) []models.SeasonStats {
	lines := lg.tally(func(g models.Game) bool { return g.Year == year })
	lg.countPoints(lines, func(hp models.HighPoint) bool { return hp.Year == year })

	names := lg.managerNames()
	season := lg.season(year)

	var result []models.SeasonStats
	for _, t := range lg.Teams {
		if t.Year != year {
			continue
		}
		st := models.SeasonStats{
			ManagerID:   t.Manager,
			ManagerName: names[t.Manager],
			TeamName:    t.TeamName,
		}
		if l := lines[t.Manager]; l != nil {
			st.TotalGames = l.games
			st.TotalWins = l.wins
			st.PlayoffGames = l.playoffGames
			st.PlayoffWins = l.playoffWins
			st.TotalPointsFor = l.pointsFor
			st.TotalPointsAgainst = l.against
			st.HighPointWeeks = l.highWeeks
			st.LowPointWeeks = l.lowWeeks
		}
		if season != nil && season.Champ != nil && *season.Champ == t.Manager {
			st.Championships = 1
		}
		result = append(result, st)
	}
	return result
}

// ManagerSeasons returns a manager's season history, newest first
func (lg *League) ManagerSeasons(id int) []models.ManagerSeason {
	var result []models.ManagerSeason
	for _, t := range lg.Teams {
		if t.Manager != id {
			continue
		}
		for _, st := range lg.seasonStats(t.Year) {
			if st.ManagerID == id {
				result = append(result, models.ManagerSeason{Year: t.Year, SeasonStats: st})
				break
			}
		}
	}
	slices.SortStableFunc(result, func(a, b models.ManagerSeason) int {
		return cmp.Compare(b.Year, a.Year)
	})
	return result
}

// Opponents returns a manager's record against everyone they have played,
// most frequent opponent first
func (lg *League) Opponents(id int) []models.OpponentRecord {
	names := lg.managerNames()
	byOpponent := map[int]*models.OpponentRecord{}
	var order []int

	for _, g := range lg.Games {
		if !g.Played() || !g.Involves(id) {
			continue
		}
		for _, s := range sides(g) {
			if s.manager != id {
				continue
			}
			rec := byOpponent[s.opponent]
			if rec == nil {
				rec = &models.OpponentRecord{ID: s.opponent, Name: names[s.opponent]}
				byOpponent[s.opponent] = rec
				order = append(order, s.opponent)
			}
			rec.TotalGames++
			if s.won {
				rec.TotalWins++
			}
		}
	}

	result := make([]models.OpponentRecord, 0, len(order))
	for _, opp := range order {
		rec := byOpponent[opp]
		rec.Record = Record(rec.TotalWins, rec.TotalGames)
		rec.WinRate = WinRate(rec.TotalWins, rec.TotalGames)
		result = append(result, *rec)
	}
	SortOpponents(result)
	return result
}

// HeadToHead returns both managers' stats over the games between them and
// the matchups themselves, newest first
func (lg *League) HeadToHead(a, b int) ([2]models.HeadToHeadStats, []models.GameDetails) {
	names := lg.managerNames()
	teams := lg.teamIndex()

	type week struct{ year, week int }
	met := map[week]bool{}
	lines := map[int]*line{a: {}, b: {}}
	var matchups []models.GameDetails
	for _, g := range lg.Games {
		if !g.Played() || !g.Involves(a) || !g.Involves(b) {
			continue
		}
		met[week{g.Year, g.Week}] = true
		for _, s := range sides(g) {
			if l := lines[s.manager]; l != nil {
				l.meet(g, s)
			}
		}
		matchups = append(matchups, lg.details(g, names, teams))
	}
	lg.countPoints(lines, func(hp models.HighPoint) bool { return met[week{hp.Year, hp.Week}] })
	careers := lg.careers()

	var stats [2]models.HeadToHeadStats
	for i, id := range []int{a, b} {
		l := lines[id]
		st := models.HeadToHeadStats{
			ManagerID:          id,
			Name:               names[id],
			TotalGames:         l.games,
			TotalWins:          l.wins,
			PlayoffGames:       l.playoffGames,
			PlayoffWins:        l.playoffWins,
			TotalPointsFor:     l.pointsFor,
			TotalPointsAgainst: l.against,
			HighPointWeeks:     l.highWeeks,
			LowPointWeeks:      l.lowWeeks,
		}
		if c := careers[id]; c != nil {
			st.Transactions = c.transactions
			st.Trades = c.trades
			st.Championships = c.titles
			st.PlayoffBerths = c.berths
			st.TotalSeasons = c.seasons
		}
		st.Record = Record(st.TotalWins, st.TotalGames)
		st.PlayoffRecord = Record(st.PlayoffWins, st.PlayoffGames)
		st.WinRate = WinRate(st.TotalWins, st.TotalGames)
		stats[i] = st
	}

	SortMatchups(matchups)
	return stats, matchups
}

// WeekMatchups returns every game of a week with names filled in
func (lg *League) WeekMatchups(year, week int) []models.GameDetails {
	names := lg.managerNames()
	teams := lg.teamIndex()

	var result []models.GameDetails
	for _, g := range lg.Games {
		if g.Year == year && g.Week == week {
			result = append(result, lg.details(g, names, teams))
		}
	}
	return result
}

// LastWeek returns the highest week with a game in year
func (lg *League) LastWeek(year int) int {
	last := 0
	for _, g := range lg.Games {
		if g.Year == year {
			last = max(last, g.Week)
		}
	}
	return last
}

func (lg *League) details(g models.Game, names map[int]string, teams map[teamKey]models.Team) models.GameDetails {
	d := models.GameDetails{
		Year:             g.Year,
		Week:             g.Week,
		HomeManagerID:    g.HomeTeam,
		HomeManagerName:  names[g.HomeTeam],
		IsPlayoffs:       g.IsPlayoffs,
		IsWinnersBracket: g.IsWinnersBracket,
		IsToiletBowl:     g.IsToiletBowl,
		IsByeWeek:        g.IsByeWeek,
	}
	if g.HomeScore != nil {
		d.HomeScore = *g.HomeScore
	}
	if g.AwayScore != nil {
		d.AwayScore = *g.AwayScore
	}
	if g.HomeSeed != nil {
		d.HomeSeed = *g.HomeSeed
	}
	if g.AwaySeed != nil {
		d.AwaySeed = *g.AwaySeed
	}
	if t, ok := teams[teamKey{g.Year, g.HomeTeam}]; ok {
		d.HomeTeam = t.TeamName
		if t.Logo != nil {
			d.HomeLogo = *t.Logo
		}
	}
	if g.AwayTeam != nil {
		d.AwayManagerID = *g.AwayTeam
		d.AwayManagerName = names[*g.AwayTeam]
		if t, ok := teams[teamKey{g.Year, *g.AwayTeam}]; ok {
			d.AwayTeam = t.TeamName
			if t.Logo != nil {
				d.AwayLogo = *t.Logo
			}
		}
	}
	for _, hp := range lg.HighPoints {
		if hp.Year != g.Year || hp.Week != g.Week {
			continue
		}
		if hp.HighPointManager != nil && g.Involves(*hp.HighPointManager) {
			d.HighPoint = names[*hp.HighPointManager]
		}
		if hp.LowPointManager != nil && g.Involves(*hp.LowPointManager) {
			d.LowPoint = names[*hp.LowPointManager]
		}
	}
	return d
}

// YearOptions returns the season picker entries, All Time first
func (lg *League) YearOptions() []models.YearOption {
	years := make([]int, 0, len(lg.Seasons))
	for _, s := range lg.Seasons {
		years = append(years, s.Year)
	}
	slices.SortFunc(years, func(a, b int) int { return cmp.Compare(b, a) })

	options := []models.YearOption{{Key: AllTimeKey, Value: "All Time"}}
	for _, y := range years {
		v := strconv.Itoa(y)
		options = append(options, models.YearOption{Key: v, Value: v})
	}
	return options
}
