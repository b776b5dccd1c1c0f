package league_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/meur/homepage/internal/league"
	"github.com/meur/homepage/internal/models"
	"github.com/meur/homepage/internal/storage"
)

func newService(t *testing.T) *league.Service {
	t.Helper()
	ctx := context.Background()

	store, err := storage.New(ctx, filepath.Join(t.TempDir(), "league.db"))
	gt.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	ds, err := storage.LoadDataset("../../testdata/seed.yaml")
	gt.NoError(t, err)
	gt.NoError(t, store.Seed(ctx, ds))

	return league.NewService(store)
}

func names(stats []models.AllTimeStats) []string {
	var out []string
	for _, st := range stats {
		out = append(out, st.Name)
	}
	return out
}

func TestOverview(t *testing.T) {
	svc := newService(t)
	ov, err := svc.Overview(context.Background())
	gt.NoError(t, err)

	gt.A(t, ov.Managers).Length(5)
	gt.Equal(t, names(ov.AllTime), []string{"Alice", "Bob", "Dave", "Erin", "Carol"})
	gt.Equal(t, ov.Years, []models.YearOption{
		{Key: "all_time", Value: "All Time"},
		{Key: "2023", Value: "2023"},
		{Key: "2022", Value: "2022"},
	})

	alice := ov.AllTime[0]
	gt.Equal(t, alice.TotalGames, 4)
	gt.Equal(t, alice.TotalWins, 3)
	gt.Equal(t, alice.PlayoffGames, 1)
	gt.Equal(t, alice.PlayoffWins, 1)
	gt.Equal(t, alice.TotalPointsFor, 400.0)
	gt.Equal(t, alice.TotalPointsAgainst, 345.0)
	gt.Equal(t, alice.HighPointWeeks, 2)
	gt.Equal(t, alice.LowPointWeeks, 1)
	gt.Equal(t, alice.Transactions, 14)
	gt.Equal(t, alice.Trades, 2)
	gt.Equal(t, alice.Championships, 1)
	gt.Equal(t, alice.PlayoffBerths, 1)
	gt.Equal(t, alice.TotalSeasons, 2)
	gt.True(t, alice.IsActive)

	bob := ov.AllTime[1]
	gt.Equal(t, bob.PlayoffGames, 2)
	gt.Equal(t, bob.PlayoffWins, 1)
	gt.Equal(t, bob.Championships, 1)
	gt.Equal(t, bob.PlayoffBerths, 2)
}

func TestAllTimeFiltersInactive(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	active, err := svc.AllTime(ctx, false)
	gt.NoError(t, err)
	gt.Equal(t, names(active), []string{"Alice", "Bob", "Erin", "Carol"})

	all, err := svc.AllTime(ctx, true)
	gt.NoError(t, err)
	gt.A(t, all).Length(5)
}

func TestSeasonStandings(t *testing.T) {
	svc := newService(t)
	view, err := svc.Season(context.Background(), 2023)
	gt.NoError(t, err)

	var order []string
	for _, st := range view.Standings {
		order = append(order, st.ManagerName)
	}
	// everyone went 1-1, so points for decides
	gt.Equal(t, order, []string{"Bob", "Erin", "Alice", "Carol"})
	gt.Equal(t, view.Standings[0].Championships, 1)
	gt.Equal(t, view.Standings[0].TotalPointsFor, 204.0)
	gt.Equal(t, view.Standings[0].TeamName, "Bravo")
}

func TestSeasonErrors(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	_, err := svc.Season(ctx, 0)
	gt.True(t, goerr.HasTag(err, models.ErrTagInvalidArgument))

	_, err = svc.Season(ctx, 1999)
	gt.True(t, goerr.HasTag(err, models.ErrTagNotFound))
}

func TestMatchupsRegularWeek(t *testing.T) {
	svc := newService(t)
	view, err := svc.Matchups(context.Background(), 2022, 1)
	gt.NoError(t, err)

	gt.False(t, view.IsPlayoffs)
	gt.A(t, view.Matchups).Length(2)
	gt.Equal(t, view.Matchups[0].HomeTeam, "Alpha")
	gt.Equal(t, view.Matchups[0].HomeLogo, "alpha.png")
	gt.Equal(t, view.Matchups[0].AwayManagerName, "Bob")
	gt.Equal(t, view.Matchups[0].HighPoint, "Alice")
	gt.Equal(t, view.Matchups[1].LowPoint, "Carol")
	gt.True(t, view.PrevWeek == nil)
	gt.Equal(t, *view.NextWeek, 2)
}

func TestMatchupsPlayoffWeek(t *testing.T) {
	svc := newService(t)
	view, err := svc.Matchups(context.Background(), 2022, 3)
	gt.NoError(t, err)

	gt.True(t, view.IsPlayoffs)
	gt.A(t, view.WinnersBracket).Length(1)
	gt.A(t, view.Consolation).Length(1)
	gt.Equal(t, view.WinnersBracket[0].HomeManagerName, "Alice")
	gt.True(t, view.Consolation[0].IsToiletBowl)
	gt.Equal(t, *view.PrevWeek, 2)
	gt.True(t, view.NextWeek == nil)
}

func TestMatchupsErrors(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	_, err := svc.Matchups(ctx, 2022, 0)
	gt.True(t, goerr.HasTag(err, models.ErrTagInvalidArgument))

	_, err = svc.Matchups(ctx, 2030, 1)
	gt.True(t, goerr.HasTag(err, models.ErrTagNotFound))
}

func TestHeadToHead(t *testing.T) {
	svc := newService(t)
	view, err := svc.HeadToHead(context.Background(), 1, 2)
	gt.NoError(t, err)

	alice, bob := view.Stats[0], view.Stats[1]
	gt.Equal(t, alice.Name, "Alice")
	gt.Equal(t, alice.Record, "2-1")
	gt.Equal(t, alice.PlayoffRecord, "1-0")
	gt.Equal(t, alice.WinRate, "66.7%")
	gt.Equal(t, alice.TotalPointsFor, 310.0)
	gt.Equal(t, alice.TotalPointsAgainst, 295.0)
	gt.Equal(t, bob.Record, "1-2")
	gt.Equal(t, bob.PlayoffRecord, "0-1")

	// weeks the two met: 2022 week 1 and 3, 2023 week 1
	gt.Equal(t, alice.HighPointWeeks, 1)
	gt.Equal(t, alice.LowPointWeeks, 1)
	gt.Equal(t, bob.HighPointWeeks, 1)
	gt.Equal(t, bob.LowPointWeeks, 0)

	gt.Equal(t, alice.Championships, 1)
	gt.Equal(t, alice.PlayoffBerths, 1)
	gt.Equal(t, alice.TotalSeasons, 2)
	gt.Equal(t, alice.Transactions, 14)
	gt.Equal(t, alice.Trades, 2)
	gt.Equal(t, bob.Championships, 1)
	gt.Equal(t, bob.PlayoffBerths, 2)
	gt.Equal(t, bob.TotalSeasons, 2)

	gt.A(t, view.Matchups).Length(3)
	gt.Equal(t, view.Matchups[0].Year, 2023)
	gt.Equal(t, view.Matchups[1].Week, 3)
	gt.Equal(t, view.Matchups[2].Week, 1)
}

func TestHeadToHeadCountsConsolationMeetings(t *testing.T) {
	f := func(v float64) *float64 { return &v }
	i := func(v int) *int { return &v }
	lg := &league.League{
		Managers: []models.Manager{{ID: 1, Name: "Alice"}, {ID: 5, Name: "Erin"}},
		Games: []models.Game{
			{Year: 2023, Week: 1, HomeTeam: 5, AwayTeam: i(1), HomeScore: f(95), AwayScore: f(100), WinningTeam: i(1)},
			{Year: 2023, Week: 3, HomeTeam: 1, AwayTeam: i(5), HomeScore: f(88), AwayScore: f(77), IsPlayoffs: true, WinningTeam: i(1)},
			{Year: 2023, Week: 4, HomeTeam: 1, AwayTeam: i(5), HomeScore: f(70), AwayScore: f(90), IsPlayoffs: true, IsToiletBowl: true, WinningTeam: i(5)},
		},
		HighPoints: []models.HighPoint{
			{Year: 2023, Week: 3, HighPointManager: i(1), LowPointManager: i(5)},
			{Year: 2023, Week: 2, HighPointManager: i(5), LowPointManager: i(1)},
		},
	}

	stats, matchups := lg.HeadToHead(1, 5)
	alice, erin := stats[0], stats[1]
	gt.Equal(t, alice.TotalGames, 3)
	gt.Equal(t, alice.Record, "2-1")
	gt.Equal(t, alice.PlayoffRecord, "0-0")
	gt.Equal(t, alice.TotalPointsFor, 258.0)
	gt.Equal(t, erin.TotalPointsFor, 262.0)
	gt.Equal(t, erin.Record, "1-2")

	// week 2 was not a meeting
	gt.Equal(t, alice.HighPointWeeks, 1)
	gt.Equal(t, alice.LowPointWeeks, 0)
	gt.Equal(t, erin.HighPointWeeks, 0)
	gt.Equal(t, erin.LowPointWeeks, 1)

	gt.A(t, matchups).Length(3)
	gt.Equal(t, matchups[0].Week, 4)
	gt.True(t, matchups[0].IsToiletBowl)
}

type filterRecorder struct {
	*storage.Store
	filters []storage.GameFilter
}

func (r *filterRecorder) GetGames(ctx context.Context, filter storage.GameFilter) ([]models.Game, error) {
	r.filters = append(r.filters, filter)
	return r.Store.GetGames(ctx, filter)
}

func TestServiceNarrowsGames(t *testing.T) {
	ctx := context.Background()
	store, err := storage.New(ctx, filepath.Join(t.TempDir(), "league.db"))
	gt.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	ds, err := storage.LoadDataset("../../testdata/seed.yaml")
	gt.NoError(t, err)
	gt.NoError(t, store.Seed(ctx, ds))

	rec := &filterRecorder{Store: store}
	svc := league.NewService(rec)

	_, err = svc.HeadToHead(ctx, 1, 2)
	gt.NoError(t, err)
	view, err := svc.Manager(ctx, 3)
	gt.NoError(t, err)

	gt.A(t, rec.filters).Length(2)
	gt.A(t, rec.filters[0].Between).Length(2)
	gt.Equal(t, rec.filters[1].Manager, 3)

	// career numbers still come from every season
	gt.Equal(t, view.AllTime.TotalSeasons, 2)
	gt.Equal(t, view.AllTime.TotalGames, 4)
	gt.A(t, view.Opponents).Length(4)
}

func TestHeadToHeadErrors(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	_, err := svc.HeadToHead(ctx, 1, 1)
	gt.True(t, goerr.HasTag(err, models.ErrTagInvalidArgument))

	_, err = svc.HeadToHead(ctx, 1, 42)
	gt.True(t, goerr.HasTag(err, models.ErrTagNotFound))
}

func TestManager(t *testing.T) {
	svc := newService(t)
	view, err := svc.Manager(context.Background(), 1)
	gt.NoError(t, err)

	gt.Equal(t, view.Manager.Name, "Alice")
	gt.True(t, view.AllTime != nil)
	gt.Equal(t, view.AllTime.TotalWins, 3)

	gt.A(t, view.Seasons).Length(2)
	gt.Equal(t, view.Seasons[0].Year, 2023)
	gt.Equal(t, view.Seasons[0].TotalWins, 1)
	gt.Equal(t, view.Seasons[0].PlayoffGames, 0)
	gt.Equal(t, view.Seasons[1].Year, 2022)
	gt.Equal(t, view.Seasons[1].Championships, 1)
	gt.Equal(t, view.Seasons[1].HighPointWeeks, 2)

	gt.A(t, view.Opponents).Length(3)
	gt.Equal(t, view.Opponents[0].Name, "Bob")
	gt.Equal(t, view.Opponents[0].TotalGames, 3)
	gt.Equal(t, view.Opponents[0].Record, "2-1")
	gt.Equal(t, view.Opponents[0].WinRate, "66.7%")
	gt.Equal(t, view.Opponents[1].Name, "Carol")
	gt.Equal(t, view.Opponents[2].Name, "Erin")
}

func TestManagerNotFound(t *testing.T) {
	svc := newService(t)
	_, err := svc.Manager(context.Background(), 99)
	gt.True(t, goerr.HasTag(err, models.ErrTagNotFound))
}
