package music_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/meur/homepage/internal/models"
	"github.com/meur/homepage/internal/music"
	"github.com/meur/homepage/internal/reveal"
)

type fakeRepo struct {
	listens []models.Listen
	albums  []models.Album
	top100  []models.Top100Album
}

func (r *fakeRepo) GetListens(_ context.Context, offset, limit int) ([]models.Listen, error) {
	if offset >= len(r.listens) {
		return nil, nil
	}
	end := min(offset+limit, len(r.listens))
	return r.listens[offset:end], nil
}

func (r *fakeRepo) GetAlbumsOfTheYear(_ context.Context, year, limit int) ([]models.Album, error) {
	var out []models.Album
	for _, a := range r.albums {
		if a.Year == year && len(out) < limit {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeRepo) GetAllAlbumsOfTheYear(_ context.Context) ([]models.Album, error) {
	return r.albums, nil
}

func (r *fakeRepo) GetAlbumYears(_ context.Context) ([]int, error) {
	return []int{2024, 2021}, nil
}

func (r *fakeRepo) GetTop100Albums(_ context.Context) ([]models.Top100Album, error) {
	return r.top100, nil
}

func ptr(s string) *string { return &s }

func album(year, rank int, name string) models.Album {
	return models.Album{
		Year:        year,
		Rank:        rank,
		Album:       name,
		Artist:      "Artist " + name,
		AlbumArtURL: name + ".jpg",
	}
}

func newRepo() *fakeRepo {
	closer := album(2024, 25, "Twenty Five")
	closer.Blurb = ptr("Opening the countdown.")
	jubilee := album(2021, 1, "Jubilee")
	jubilee.Artist = "Japanese Breakfast"
	jubilee.SpotifyLink = "https://open.spotify.com/album/4B5lqXjQ4Y5n"

	repo := &fakeRepo{
		albums: []models.Album{
			jubilee,
			album(2021, 2, "Ignorance"),
			album(2024, 1, "First"),
			album(2024, 23, "Twenty Three"),
			album(2024, 24, "Twenty Four"),
			closer,
		},
		top100: []models.Top100Album{
			{Rank: 1, Album: "Jubilee", Artist: "Japanese Breakfast", ArtworkURL: "top.jpg"},
			{
				Rank:          2,
				Album:         "Blue",
				Artist:        "Joni Mitchell",
				SpotifyURL:    ptr("https://open.spotify.com/album/1vz94WpXDVYIEGja8cjFNa?si=x"),
				AppleMusicURL: ptr("https://music.apple.com/us/album/blue/1"),
				ArtworkURL:    "blue.jpg",
			},
		},
	}
	for i := 0; i < 12; i++ {
		repo.listens = append(repo.listens, models.Listen{
			ID:    fmt.Sprintf("listen-%d", i),
			Title: fmt.Sprintf("Song %d", i),
			Type:  models.ListenSong,
		})
	}
	return repo
}

func newService(t *testing.T, opts ...music.Option) *music.Service {
	t.Helper()
	loc, err := time.LoadLocation(reveal.DefaultTimeZone)
	gt.NoError(t, err)
	gate, err := reveal.New(reveal.Config{Length: reveal.DefaultLength, Location: loc})
	gt.NoError(t, err)

	opts = append([]music.Option{music.WithBaseURL("https://example.com/"), music.WithSiteName("Meur's")}, opts...)
	return music.NewService(newRepo(), gate, opts...)
}

func at(t *testing.T, value string) time.Time {
	t.Helper()
	loc, err := time.LoadLocation(reveal.DefaultTimeZone)
	gt.NoError(t, err)
	ts, err := time.ParseInLocation("2006-01-02 15:04", value, loc)
	gt.NoError(t, err)
	return ts
}

func TestParseOffset(t *testing.T) {
	offset, err := music.ParseOffset("")
	gt.NoError(t, err)
	gt.Equal(t, offset, 0)

	offset, err = music.ParseOffset("20")
	gt.NoError(t, err)
	gt.Equal(t, offset, 20)

	for _, raw := range []string{"abc", "-1", "1.5"} {
		_, err := music.ParseOffset(raw)
		gt.True(t, goerr.HasTag(err, models.ErrTagInvalidArgument))
	}
}

func TestFeedPages(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	first, err := svc.Feed(ctx, 0)
	gt.NoError(t, err)
	gt.A(t, first.Listens).Length(music.FeedPageSize)
	gt.Equal(t, first.Listens[0].ID, "listen-0")
	gt.Equal(t, *first.NextOffset, 10)

	second, err := svc.Feed(ctx, *first.NextOffset)
	gt.NoError(t, err)
	gt.A(t, second.Listens).Length(2)
	gt.True(t, second.NextOffset == nil)

	empty, err := svc.Feed(ctx, 100)
	gt.NoError(t, err)
	gt.A(t, empty.Listens).Length(0)
}

func TestYearListBeforeDecember(t *testing.T) {
	svc := newService(t)
	list, err := svc.YearList(context.Background(), 2024, at(t, "2024-11-30 23:59"))
	gt.NoError(t, err)

	gt.Equal(t, list.Revealed, 0)
	gt.A(t, list.Albums).Length(4)
	for _, e := range list.Albums {
		p, ok := e.Pending()
		gt.True(t, ok)
		gt.True(t, p.Pending)
	}
	p, _ := list.Albums[0].Pending()
	gt.Equal(t, p.RevealDate, "Dec 25")
}

func TestYearListFirstOfDecember(t *testing.T) {
	svc := newService(t)
	list, err := svc.YearList(context.Background(), 2024, at(t, "2024-12-01 00:00"))
	gt.NoError(t, err)

	gt.Equal(t, list.Revealed, 1)
	last, ok := list.Albums[3].Revealed()
	gt.True(t, ok)
	gt.Equal(t, last.Album, "Twenty Five")

	p, ok := list.Albums[2].Pending()
	gt.True(t, ok)
	gt.Equal(t, p.Rank, 24)
	gt.Equal(t, p.RevealDate, "Dec 2")
}

func TestYearListPastYear(t *testing.T) {
	svc := newService(t)
	list, err := svc.YearList(context.Background(), 2021, at(t, "2024-12-01 00:00"))
	gt.NoError(t, err)
	gt.Equal(t, list.Revealed, 2)
}

func TestYearListErrors(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()
	now := at(t, "2024-12-01 00:00")

	_, err := svc.YearList(ctx, 1999, now)
	gt.True(t, goerr.HasTag(err, models.ErrTagNotFound))

	_, err = svc.YearList(ctx, 0, now)
	gt.True(t, goerr.HasTag(err, models.ErrTagInvalidArgument))
}

func TestStoryDuringCountdown(t *testing.T) {
	svc := newService(t)
	// Dec 3: 22 days remain, so 23 through 25 are out
	st, err := svc.Story(context.Background(), 2024, 24, at(t, "2024-12-03 09:00"))
	gt.NoError(t, err)

	gt.A(t, st.Albums).Length(3)
	gt.Equal(t, st.Albums[0].Rank, 25)
	gt.Equal(t, st.Albums[2].Rank, 23)
	gt.A(t, st.Pending).Length(1)
	gt.Equal(t, st.InitialSlide, 1)
	gt.Equal(t, *st.NextToReveal, 1)
	gt.True(t, st.HasUpcoming)
	gt.Equal(t, st.TotalSlides, 4)

	gt.Equal(t, st.Current.Album.Rank, 24)
	gt.Equal(t, st.Meta.OGTitle, "#24 - Twenty Four by Artist Twenty Four")
	gt.Equal(t, st.Meta.Title, "#24 - Twenty Four by Artist Twenty Four | Meur's 2024 Top 25")
	gt.Equal(t, st.Meta.Description, "Check out Twenty Four by Artist Twenty Four!")
	gt.Equal(t, st.Meta.URL, "https://example.com/music/story/2024?album=24")
	gt.Equal(t, st.Meta.Type, "article")
}

func TestStoryUsesBlurb(t *testing.T) {
	svc := newService(t)
	st, err := svc.Story(context.Background(), 2024, 0, at(t, "2024-12-01 09:00"))
	gt.NoError(t, err)

	gt.Equal(t, st.InitialSlide, 0)
	gt.Equal(t, *st.NextToReveal, 24)
	gt.Equal(t, st.TotalSlides, 2)
	gt.Equal(t, st.Meta.Description, "Opening the countdown.")
	gt.Equal(t, st.Meta.Image, "Twenty Five.jpg")
}

func TestStoryUnknownAlbumParam(t *testing.T) {
	svc := newService(t)
	// rank 1 is still hidden, so the story opens on the first slide
	st, err := svc.Story(context.Background(), 2024, 1, at(t, "2024-12-03 09:00"))
	gt.NoError(t, err)
	gt.Equal(t, st.InitialSlide, 0)
	gt.Equal(t, st.Current.Album.Rank, 25)
}

func TestStoryNothingRevealed(t *testing.T) {
	svc := newService(t)
	st, err := svc.Story(context.Background(), 2024, 0, at(t, "2024-11-15 09:00"))
	gt.NoError(t, err)

	gt.A(t, st.Albums).Length(0)
	gt.Equal(t, st.TotalSlides, 1)
	gt.Equal(t, *st.NextToReveal, 25)
	gt.True(t, st.Current.Album == nil)
	gt.Equal(t, st.Current.Upcoming.Rank, 1)
	gt.Equal(t, st.Meta.Title, "Coming Soon - Meur's 2024 Top 25")
	gt.Equal(t, st.Meta.URL, "https://example.com/music/story/2024")
	gt.Equal(t, st.Meta.Type, "website")
}

func TestStoryPastYear(t *testing.T) {
	svc := newService(t)
	st, err := svc.Story(context.Background(), 2021, 0, at(t, "2024-12-03 09:00"))
	gt.NoError(t, err)

	gt.A(t, st.Albums).Length(2)
	gt.False(t, st.HasUpcoming)
	gt.True(t, st.NextToReveal == nil)
	gt.Equal(t, st.TotalSlides, 2)
	gt.Equal(t, st.Current.Album.Album, "Ignorance")
}

func TestSpotifyAppURI(t *testing.T) {
	testCases := map[string]struct {
		in   *string
		want string
	}{
		"album link": {
			in:   ptr("https://open.spotify.com/album/1vz94WpXDVYIEGja8cjFNa?si=x"),
			want: "spotify:album:1vz94WpXDVYIEGja8cjFNa",
		},
		"other link": {
			in:   ptr("https://open.spotify.com/track/abc"),
			want: "https://open.spotify.com/track/abc",
		},
	}
	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			got := music.SpotifyAppURI(tc.in)
			gt.NotNil(t, got)
			gt.Equal(t, *got, tc.want)
		})
	}

	gt.True(t, music.SpotifyAppURI(nil) == nil)
	gt.True(t, music.SpotifyAppURI(ptr("")) == nil)
}

func TestAppleMusicAppURL(t *testing.T) {
	gt.Equal(t, *music.AppleMusicAppURL(ptr("https://music.apple.com/us/album/blue/1")), "music://music.apple.com/us/album/blue/1")
	gt.Equal(t, *music.AppleMusicAppURL(ptr("http://music.apple.com/x")), "music://music.apple.com/x")
	gt.True(t, music.AppleMusicAppURL(nil) == nil)
}

func TestPickableDeduplicates(t *testing.T) {
	svc := newService(t)
	albums, err := svc.Pickable(context.Background(), at(t, "2024-12-03 09:00"))
	gt.NoError(t, err)

	// Jubilee appears in both lists; the top 100 entry is kept. 2024's #1 is
	// still hidden.
	gt.A(t, albums).Length(6)
	gt.Equal(t, albums[0].Album, "Jubilee")
	gt.Equal(t, albums[0].ArtworkURL, "top.jpg")
	gt.True(t, albums[0].SpotifyURL == nil)
	gt.Equal(t, albums[2].Album, "Ignorance")
	gt.Equal(t, albums[5].Album, "Twenty Five")
}

func TestRandom(t *testing.T) {
	svc := newService(t, music.WithPicker(func(n int) int { return 1 }))
	ctx := context.Background()
	now := at(t, "2024-12-03 09:00")

	pick, err := svc.Random(ctx, music.ServiceSpotify, now)
	gt.NoError(t, err)
	gt.Equal(t, pick.Album.Album, "Blue")
	gt.Equal(t, *pick.Redirect, "spotify:album:1vz94WpXDVYIEGja8cjFNa")

	pick, err = svc.Random(ctx, music.ServiceApple, now)
	gt.NoError(t, err)
	gt.Equal(t, *pick.Redirect, "music://music.apple.com/us/album/blue/1")

	pick, err = svc.Random(ctx, "", now)
	gt.NoError(t, err)
	gt.True(t, pick.Album == nil)
	gt.True(t, pick.Redirect == nil)
	gt.A(t, pick.Albums).Length(6)
}

func TestRandomWithoutLink(t *testing.T) {
	svc := newService(t, music.WithPicker(func(n int) int { return 0 }))
	pick, err := svc.Random(context.Background(), music.ServiceApple, at(t, "2024-12-03 09:00"))
	gt.NoError(t, err)
	gt.Equal(t, pick.Album.Album, "Jubilee")
	gt.True(t, pick.Redirect == nil)
}
