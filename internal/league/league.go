// Package league computes fantasy football statistics from raw league rows.
//
// Only regular season games count toward a manager's career and season record
// and points. Playoff records count winners bracket games; consolation and
// toilet bowl games are ignored for both. Opponent and head-to-head records
// count every meeting that was played.
package league

import (
	"github.com/meur/homepage/internal/models"
)

// League holds the rows needed to build any view
type League struct {
	Managers   []models.Manager
	Seasons    []models.Season
	Teams      []models.Team
	Games      []models.Game
	HighPoints []models.HighPoint
}

type teamKey struct {
	year    int
	manager int
}

// line accumulates a manager's numbers over a set of games
type line struct {
	games        int
	wins         int
	playoffGames int
	playoffWins  int
	pointsFor    float64
	against      float64
	highWeeks    int
	lowWeeks     int
}

// side is one manager's view of a played game
type side struct {
	manager  int
	opponent int
	score    float64
	oppScore float64
	won      bool
}

func sides(g models.Game) [2]side {
	home, away := *g.HomeScore, *g.AwayScore
	w := winner(g)
	return [2]side{
		{manager: g.HomeTeam, opponent: *g.AwayTeam, score: home, oppScore: away, won: w == g.HomeTeam},
		{manager: *g.AwayTeam, opponent: g.HomeTeam, score: away, oppScore: home, won: w == *g.AwayTeam},
	}
}

// winner returns the winning manager, or 0 for a tie or unplayed game
func winner(g models.Game) int {
	if g.WinningTeam != nil {
		return *g.WinningTeam
	}
	if !g.Played() {
		return 0
	}
	switch {
	case *g.HomeScore > *g.AwayScore:
		return g.HomeTeam
	case *g.AwayScore > *g.HomeScore:
		return *g.AwayTeam
	default:
		return 0
	}
}

func (l *line) add(g models.Game, s side) {
	switch {
	case !g.IsPlayoffs:
		l.games++
		if s.won {
			l.wins++
		}
		l.pointsFor += s.score
		l.against += s.oppScore
	case g.IsWinnersBracket:
		l.playoffGames++
		if s.won {
			l.playoffWins++
		}
	}
}

// meet adds a game between two rivals. Every meeting counts toward the record
// and points; winners bracket meetings also count as playoff games.
func (l *line) meet(g models.Game, s side) {
	l.games++
	if s.won {
		l.wins++
	}
	l.pointsFor += s.score
	l.against += s.oppScore
	if g.IsPlayoffs && g.IsWinnersBracket {
		l.playoffGames++
		if s.won {
			l.playoffWins++
		}
	}
}

// career holds the numbers taken from team and season rows
type career struct {
	seasons      int
	transactions int
	trades       int
	berths       int
	titles       int
	active       bool
}

func (lg *League) careers() map[int]*career {
	latest := lg.latestYear()
	careers := map[int]*career{}
	get := func(id int) *career {
		if careers[id] == nil {
			careers[id] = &career{}
		}
		return careers[id]
	}
	for _, t := range lg.Teams {
		c := get(t.Manager)
		c.seasons++
		c.transactions += t.Transactions
		c.trades += t.Trades
		if t.MadePlayoffs {
			c.berths++
		}
		if t.Year == latest {
			c.active = true
		}
	}
	for _, s := range lg.Seasons {
		if s.Champ != nil {
			get(*s.Champ).titles++
		}
	}
	return careers
}

// tally builds lines for every manager over games accepted by keep
func (lg *League) tally(keep func(models.Game) bool) map[int]*line {
	lines := map[int]*line{}
	get := func(id int) *line {
		if lines[id] == nil {
			lines[id] = &line{}
		}
		return lines[id]
	}
	for _, g := range lg.Games {
		if !g.Played() || !keep(g) {
			continue
		}
		for _, s := range sides(g) {
			get(s.manager).add(g, s)
		}
	}
	return lines
}

// countPoints adds weekly high/low counts for weeks accepted by keep
func (lg *League) countPoints(lines map[int]*line, keep func(models.HighPoint) bool) {
	for _, hp := range lg.HighPoints {
		if !keep(hp) {
			continue
		}
		if hp.HighPointManager != nil {
			if l := lines[*hp.HighPointManager]; l != nil {
				l.highWeeks++
			} else {
				lines[*hp.HighPointManager] = &line{highWeeks: 1}
			}
		}
		if hp.LowPointManager != nil {
			if l := lines[*hp.LowPointManager]; l != nil {
				l.lowWeeks++
			} else {
				lines[*hp.LowPointManager] = &line{lowWeeks: 1}
			}
		}
	}
}

func (lg *League) managerNames() map[int]string {
	names := make(map[int]string, len(lg.Managers))
	for _, m := range lg.Managers {
		names[m.ID] = m.Name
	}
	return names
}

func (lg *League) teamIndex() map[teamKey]models.Team {
	idx := make(map[teamKey]models.Team, len(lg.Teams))
	for _, t := range lg.Teams {
		idx[teamKey{t.Year, t.Manager}] = t
	}
	return idx
}

func (lg *League) season(year int) *models.Season {
	for i := range lg.Seasons {
		if lg.Seasons[i].Year == year {
			return &lg.Seasons[i]
		}
	}
	return nil
}

// latestYear returns the most recent season year, falling back to team rows
func (lg *League) latestYear() int {
	latest := 0
	for _, s := range lg.Seasons {
		latest = max(latest, s.Year)
	}
	if latest == 0 {
		for _, t := range lg.Teams {
			latest = max(latest, t.Year)
		}
	}
	return latest
}
