package music

import (
	"context"
	"regexp"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/meur/homepage/internal/models"
	"golang.org/x/sync/errgroup"
)

// Streaming services the picker can open an album in
const (
	ServiceSpotify = "spotify"
	ServiceApple   = "apple"
)

var (
	spotifyAlbumPattern = regexp.MustCompile(`open\.spotify\.com/album/([a-zA-Z0-9]+)`)
	webSchemePattern    = regexp.MustCompile(`^https?://`)
)

// SpotifyAppURI converts an open.spotify.com album link to a spotify: URI.
// Other links are returned unchanged.
func SpotifyAppURI(webURL *string) *string {
	if webURL == nil || *webURL == "" {
		return nil
	}
	m := spotifyAlbumPattern.FindStringSubmatch(*webURL)
	if m == nil {
		return webURL
	}
	uri := "spotify:album:" + m[1]
	return &uri
}

// AppleMusicAppURL converts an Apple Music web link to a music:// link
func AppleMusicAppURL(webURL *string) *string {
	if webURL == nil || *webURL == "" {
		return nil
	}
	u := webSchemePattern.ReplaceAllString(*webURL, "music://")
	return &u
}

// Pickable returns every album from the top 100 and the revealed part of the
// yearly lists, one entry per album and artist. Top 100 entries win over
// yearly ones.
func (s *Service) Pickable(ctx context.Context, now time.Time) ([]models.PickableAlbum, error) {
	var (
		top    []models.Top100Album
		yearly []models.Album
	)
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		top, err = s.repo.GetTop100Albums(egCtx)
		return err
	})
	eg.Go(func() error {
		var err error
		yearly, err = s.repo.GetAllAlbumsOfTheYear(egCtx)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, goerr.Wrap(err, "failed to load albums")
	}

	all := make([]models.PickableAlbum, 0, len(top)+len(yearly))
	for _, a := range top {
		all = append(all, models.PickableAlbum{
			Album:         a.Album,
			Artist:        a.Artist,
			SpotifyURL:    a.SpotifyURL,
			AppleMusicURL: a.AppleMusicURL,
			ArtworkURL:    a.ArtworkURL,
		})
	}
	for _, a := range yearly {
		if _, ok := s.gate.Decide(a.Rank, a.Year, now); !ok {
			continue
		}
		all = append(all, models.PickableAlbum{
			Album:         a.Album,
			Artist:        a.Artist,
			SpotifyURL:    optional(a.SpotifyLink),
			AppleMusicURL: optional(a.AppleLink),
			ArtworkURL:    a.AlbumArtURL,
		})
	}

	type key struct{ album, artist string }
	seen := make(map[key]bool, len(all))
	unique := all[:0]
	for _, a := range all {
		k := key{a.Album, a.Artist}
		if seen[k] {
			continue
		}
		seen[k] = true
		unique = append(unique, a)
	}
	return unique, nil
}

// Pick is the result of the random album picker
type Pick struct {
	Album    *models.PickableAlbum  `json:"album"`
	Redirect *string                `json:"redirect"`
	Albums   []models.PickableAlbum `json:"albums"`
}

// Random chooses an album for service. With an unknown or empty service only
// the candidate list is returned. Redirect is nil when the chosen album has no
// link for the service.
func (s *Service) Random(ctx context.Context, service string, now time.Time) (*Pick, error) {
	albums, err := s.Pickable(ctx, now)
	if err != nil {
		return nil, err
	}
	pick := &Pick{Albums: albums}
	if service != ServiceSpotify && service != ServiceApple {
		return pick, nil
	}
	if len(albums) == 0 {
		return nil, goerr.New("no albums to pick from", goerr.T(models.ErrTagNotFound))
	}

	chosen := albums[s.pick(len(albums))]
	pick.Album = &chosen
	switch service {
	case ServiceSpotify:
		pick.Redirect = SpotifyAppURI(chosen.SpotifyURL)
	case ServiceApple:
		pick.Redirect = AppleMusicAppURL(chosen.AppleMusicURL)
	}
	ctxlog.From(ctx).Debug("random album picked",
		"service", service,
		"album", chosen.Album,
		"artist", chosen.Artist,
	)
	return pick, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
