package league

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/meur/homepage/internal/models"
	"github.com/meur/homepage/internal/storage"
	"golang.org/x/sync/errgroup"
)

// Repository is the subset of storage the league views need
type Repository interface {
	GetManagers(ctx context.Context) ([]models.Manager, error)
	GetManager(ctx context.Context, id int) (*models.Manager, error)
	GetSeasons(ctx context.Context) ([]models.Season, error)
	GetSeason(ctx context.Context, year int) (*models.Season, error)
	GetTeams(ctx context.Context, year int) ([]models.Team, error)
	GetGames(ctx context.Context, filter storage.GameFilter) ([]models.Game, error)
	GetHighPoints(ctx context.Context, year int) ([]models.HighPoint, error)
}

// Service loads league rows and builds views from them
type Service struct {
	repo Repository
}

// NewService creates a Service
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Overview is shared by every football page
type Overview struct {
	Managers []models.Manager      `json:"managers"`
	AllTime  []models.AllTimeStats `json:"all_time"`
	Years    []models.YearOption   `json:"years"`
}

// SeasonView is the standings table for one year
type SeasonView struct {
	Year      int                  `json:"year"`
	Season    models.Season        `json:"season"`
	Standings []models.SeasonStats `json:"standings"`
}

// MatchupsView is one week of games
type MatchupsView struct {
	Year           int                  `json:"year"`
	Week           int                  `json:"week"`
	Season         models.Season        `json:"season"`
	IsPlayoffs     bool                 `json:"is_playoffs"`
	Matchups       []models.GameDetails `json:"matchups"`
	WinnersBracket []models.GameDetails `json:"winners_bracket,omitempty"`
	Consolation    []models.GameDetails `json:"consolation,omitempty"`
	PrevWeek       *int                 `json:"prev_week"`
	NextWeek       *int                 `json:"next_week"`
}

// HeadToHeadView compares two managers
type HeadToHeadView struct {
	Stats    [2]models.HeadToHeadStats `json:"stats"`
	Matchups []models.GameDetails      `json:"matchups"`
}

// ManagerView is a manager's profile page
type ManagerView struct {
	Manager   models.Manager          `json:"manager"`
	AllTime   *models.AllTimeStats    `json:"all_time"`
	Seasons   []models.ManagerSeason  `json:"seasons"`
	Opponents []models.OpponentRecord `json:"opponents"`
}

// load fetches rows concurrently. filter narrows the games; its Year also
// limits teams and high points to one season.
func (s *Service) load(ctx context.Context, filter storage.GameFilter) (*League, error) {
	year := filter.Year
	var lg League
	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		var err error
		lg.Managers, err = s.repo.GetManagers(ctx)
		return err
	})
	eg.Go(func() error {
		var err error
		lg.Seasons, err = s.repo.GetSeasons(ctx)
		return err
	})
	eg.Go(func() error {
		var err error
		lg.Teams, err = s.repo.GetTeams(ctx, year)
		return err
	})
	eg.Go(func() error {
		var err error
		lg.Games, err = s.repo.GetGames(ctx, filter)
		return err
	})
	eg.Go(func() error {
		var err error
		lg.HighPoints, err = s.repo.GetHighPoints(ctx, year)
		return err
	})

	if err := eg.Wait(); err != nil {
		return nil, goerr.Wrap(err, "failed to load league rows", goerr.V("filter", filter))
	}
	ctxlog.From(ctx).Debug("league rows loaded",
		"year", year,
		"manager", filter.Manager,
		"between", filter.Between,
		"managers", len(lg.Managers),
		"teams", len(lg.Teams),
		"games", len(lg.Games),
	)
	return &lg, nil
}

// Overview returns managers, the all-time table and the season picker
func (s *Service) Overview(ctx context.Context) (*Overview, error) {
	lg, err := s.load(ctx, storage.GameFilter{})
	if err != nil {
		return nil, err
	}
	managers := lg.Managers
	if managers == nil {
		managers = []models.Manager{}
	}
	return &Overview{
		Managers: managers,
		AllTime:  lg.AllTime(),
		Years:    lg.YearOptions(),
	}, nil
}

// AllTime returns the all-time table, optionally including inactive managers
func (s *Service) AllTime(ctx context.Context, showAll bool) ([]models.AllTimeStats, error) {
	lg, err := s.load(ctx, storage.GameFilter{})
	if err != nil {
		return nil, err
	}
	return FilterActive(lg.AllTime(), showAll), nil
}

// Season returns the standings for year
func (s *Service) Season(ctx context.Context, year int) (*SeasonView, error) {
	if year <= 0 {
		return nil, goerr.New("invalid season", goerr.V("year", year), goerr.T(models.ErrTagInvalidArgument))
	}
	season, err := s.repo.GetSeason(ctx, year)
	if err != nil {
		return nil, err
	}
	if season == nil {
		return nil, goerr.New("season not found", goerr.V("year", year), goerr.T(models.ErrTagNotFound))
	}

	lg, err := s.load(ctx, storage.GameFilter{Year: year})
	if err != nil {
		return nil, err
	}
	standings := lg.SeasonDetails(year)
	if standings == nil {
		standings = []models.SeasonStats{}
	}
	return &SeasonView{Year: year, Season: *season, Standings: standings}, nil
}

// Matchups returns every game of a week, split into brackets during the playoffs
func (s *Service) Matchups(ctx context.Context, year, week int) (*MatchupsView, error) {
	if year <= 0 || week <= 0 {
		return nil, goerr.New("invalid year or week",
			goerr.V("year", year), goerr.V("week", week), goerr.T(models.ErrTagInvalidArgument))
	}
	season, err := s.repo.GetSeason(ctx, year)
	if err != nil {
		return nil, err
	}
	if season == nil {
		return nil, goerr.New("season not found", goerr.V("year", year), goerr.T(models.ErrTagNotFound))
	}

	lg, err := s.load(ctx, storage.GameFilter{Year: year})
	if err != nil {
		return nil, err
	}

	view := &MatchupsView{
		Year:       year,
		Week:       week,
		Season:     *season,
		IsPlayoffs: IsPlayoffWeek(season, week),
		Matchups:   lg.WeekMatchups(year, week),
	}
	if view.Matchups == nil {
		view.Matchups = []models.GameDetails{}
	}
	if view.IsPlayoffs {
		view.WinnersBracket, view.Consolation = SplitBrackets(view.Matchups)
	}
	if week > 1 {
		prev := week - 1
		view.PrevWeek = &prev
	}
	if week < lg.LastWeek(year) {
		next := week + 1
		view.NextWeek = &next
	}
	return view, nil
}

// HeadToHead compares two managers
func (s *Service) HeadToHead(ctx context.Context, a, b int) (*HeadToHeadView, error) {
	if a <= 0 || b <= 0 || a == b {
		return nil, goerr.New("invalid manager id",
			goerr.V("team_one", a), goerr.V("team_two", b), goerr.T(models.ErrTagInvalidArgument))
	}
	for _, id := range []int{a, b} {
		m, err := s.repo.GetManager(ctx, id)
		if err != nil {
			return nil, err
		}
		if m == nil {
			return nil, goerr.New("manager not found", goerr.V("id", id), goerr.T(models.ErrTagNotFound))
		}
	}

	lg, err := s.load(ctx, storage.GameFilter{Between: []int{a, b}})
	if err != nil {
		return nil, err
	}
	stats, matchups := lg.HeadToHead(a, b)
	if matchups == nil {
		matchups = []models.GameDetails{}
	}
	return &HeadToHeadView{Stats: stats, Matchups: matchups}, nil
}

// Manager returns a manager's career stats, seasons and opponents
func (s *Service) Manager(ctx context.Context, id int) (*ManagerView, error) {
	if id <= 0 {
		return nil, goerr.New("invalid manager id", goerr.V("id", id), goerr.T(models.ErrTagInvalidArgument))
	}
	m, err := s.repo.GetManager(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, goerr.New("manager not found", goerr.V("id", id), goerr.T(models.ErrTagNotFound))
	}

	// Only the manager's games are loaded, so lines for other managers are
	// partial and never read.
	lg, err := s.load(ctx, storage.GameFilter{Manager: id})
	if err != nil {
		return nil, err
	}

	view := &ManagerView{
		Manager:   *m,
		Seasons:   lg.ManagerSeasons(id),
		Opponents: lg.Opponents(id),
	}
	if view.Seasons == nil {
		view.Seasons = []models.ManagerSeason{}
	}
	for _, st := range lg.AllTime() {
		if st.ManagerID == id {
			st := st
			view.AllTime = &st
			break
		}
	}
	return view, nil
}
