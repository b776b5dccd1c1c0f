// Package music serves the listening feed, the yearly album countdowns and the
// random album picker.
package music

import (
	"context"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/meur/homepage/internal/models"
	"github.com/meur/homepage/internal/reveal"
)

// FeedPageSize is the number of listens returned per feed page
const FeedPageSize = 10

// Repository is the subset of storage the music views need
type Repository interface {
	GetListens(ctx context.Context, offset, limit int) ([]models.Listen, error)
	GetAlbumsOfTheYear(ctx context.Context, year, limit int) ([]models.Album, error)
	GetAllAlbumsOfTheYear(ctx context.Context) ([]models.Album, error)
	GetAlbumYears(ctx context.Context) ([]int, error)
	GetTop100Albums(ctx context.Context) ([]models.Top100Album, error)
}

// Service builds music views. Every countdown passes through the gate.
type Service struct {
	repo     Repository
	gate     *reveal.Gate
	baseURL  string
	siteName string
	pick     func(n int) int
}

// Option configures a Service
type Option func(*Service)

// WithBaseURL sets the public site URL used in share links
func WithBaseURL(u string) Option {
	return func(s *Service) { s.baseURL = strings.TrimRight(u, "/") }
}

// WithSiteName sets the name used in page titles
func WithSiteName(name string) Option {
	return func(s *Service) { s.siteName = name }
}

// WithPicker replaces the random index source of the album picker
func WithPicker(pick func(n int) int) Option {
	return func(s *Service) { s.pick = pick }
}

// NewService creates a Service
func NewService(repo Repository, gate *reveal.Gate, opts ...Option) *Service {
	s := &Service{
		repo:     repo,
		gate:     gate,
		siteName: "My",
		pick:     rand.IntN,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FeedPage is one page of recent listens
type FeedPage struct {
	Listens    []models.Listen `json:"listens"`
	Offset     int             `json:"offset"`
	NextOffset *int            `json:"next_offset"`
}

// ParseOffset reads a feed offset; empty means zero
func ParseOffset(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	offset, err := strconv.Atoi(raw)
	if err != nil || offset < 0 {
		return 0, goerr.New("invalid offset", goerr.V("offset", raw), goerr.T(models.ErrTagInvalidArgument))
	}
	return offset, nil
}

// Feed returns recent listens starting at offset, newest first
func (s *Service) Feed(ctx context.Context, offset int) (*FeedPage, error) {
	if offset < 0 {
		return nil, goerr.New("invalid offset", goerr.V("offset", offset), goerr.T(models.ErrTagInvalidArgument))
	}
	listens, err := s.repo.GetListens(ctx, offset, FeedPageSize)
	if err != nil {
		return nil, err
	}
	if listens == nil {
		listens = []models.Listen{}
	}

	page := &FeedPage{Listens: listens, Offset: offset}
	if len(listens) == FeedPageSize {
		next := offset + FeedPageSize
		page.NextOffset = &next
	}
	return page, nil
}

// Years returns the years that have a countdown, newest first
func (s *Service) Years(ctx context.Context) ([]int, error) {
	years, err := s.repo.GetAlbumYears(ctx)
	if err != nil {
		return nil, err
	}
	if years == nil {
		years = []int{}
	}
	return years, nil
}

// YearList is one year's countdown in rank order
type YearList struct {
	Year     int                          `json:"year"`
	Length   int                          `json:"length"`
	Revealed int                          `json:"revealed"`
	Albums   []reveal.Entry[models.Album] `json:"albums"`
}

// albums loads a year's list, failing with not found when it is empty
func (s *Service) albums(ctx context.Context, year int) ([]models.Album, error) {
	if year <= 0 {
		return nil, goerr.New("invalid year", goerr.V("year", year), goerr.T(models.ErrTagInvalidArgument))
	}
	albums, err := s.repo.GetAlbumsOfTheYear(ctx, year, s.gate.Length())
	if err != nil {
		return nil, err
	}
	if len(albums) == 0 {
		return nil, goerr.New("no albums for year", goerr.V("year", year), goerr.T(models.ErrTagNotFound))
	}
	return albums, nil
}

// YearList returns the year's albums with unrevealed ranks replaced by
// placeholders
func (s *Service) YearList(ctx context.Context, year int, now time.Time) (*YearList, error) {
	albums, err := s.albums(ctx, year)
	if err != nil {
		return nil, err
	}

	list := &YearList{
		Year:   year,
		Length: s.gate.Length(),
		Albums: reveal.ApplyAll(s.gate, albums, now),
	}
	for _, e := range list.Albums {
		if e.Status == reveal.StatusRevealed {
			list.Revealed++
		}
	}
	ctxlog.From(ctx).Debug("album list gated",
		"year", year,
		"albums", len(albums),
		"revealed", list.Revealed,
	)
	return list, nil
}
