package cli

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/meur/homepage/internal/config"
	"github.com/meur/homepage/internal/models"
	"github.com/meur/homepage/internal/storage"
	"github.com/urfave/cli/v3"
)

// listenNamespace scopes the ids derived for imported listens
var listenNamespace = uuid.MustParse("0b4c3f0e-6a53-4c1e-9d0f-8f5c2a6d7e41")

// exportedListen is one entry of a listening history export
type exportedListen struct {
	Title         string    `json:"title"`
	Artist        string    `json:"artist"`
	Kind          string    `json:"kind"`
	Artwork       string    `json:"artwork"`
	AppleMusicURL string    `json:"apple_music_url,omitempty"`
	SpotifyURL    string    `json:"spotify_url,omitempty"`
	PlayedAt      time.Time `json:"played_at"`
}

func cmdImportListens() *cli.Command {
	var (
		dbCfg config.Database
		file  string
	)

	return &cli.Command{
		Name:  "import-listens",
		Usage: "Import a listening history JSON export into the music feed",
		Flags: joinFlags(
			dbCfg.Flags(),
			[]cli.Flag{
				&cli.StringFlag{
					Name:        "file",
					Usage:       "Listening history JSON path",
					Category:    "Import",
					Value:       "data/listens.json",
					Sources:     cli.EnvVars("HOMEPAGE_LISTENS_FILE"),
					Destination: &file,
				},
			},
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			listens, err := readListens(file)
			if err != nil {
				return err
			}

			store, err := dbCfg.Configure(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.Seed(ctx, &storage.Dataset{MusicHistory: listens}); err != nil {
				return goerr.Wrap(err, "failed to import listens", goerr.V("file", file))
			}
			ctxlog.From(ctx).Info("Imported listens",
				slog.String("file", file),
				slog.Int("count", len(listens)),
			)
			return nil
		},
	}
}

// readListens parses an export. Ids are derived from the entry so importing
// the same file twice replaces rows instead of duplicating them.
func readListens(path string) ([]models.Listen, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read listens", goerr.V("path", path))
	}

	var exported []exportedListen
	if err := json.Unmarshal(data, &exported); err != nil {
		return nil, goerr.Wrap(err, "failed to parse listens", goerr.V("path", path))
	}

	listens := make([]models.Listen, 0, len(exported))
	for i, e := range exported {
		if e.Title == "" || e.PlayedAt.IsZero() {
			return nil, goerr.New("listen needs a title and played_at",
				goerr.V("path", path), goerr.V("index", i))
		}

		kind := models.ListenSong
		if strings.EqualFold(e.Kind, "album") {
			kind = models.ListenAlbum
		}
		key := strings.Join([]string{e.Title, e.Artist, e.PlayedAt.UTC().Format(time.RFC3339)}, "\x00")

		listens = append(listens, models.Listen{
			ID:            uuid.NewSHA1(listenNamespace, []byte(key)).String(),
			Title:         e.Title,
			Artist:        e.Artist,
			Type:          kind,
			AlbumArtURL:   e.Artwork,
			AppleMusicURL: optional(e.AppleMusicURL),
			SpotifyURL:    optional(e.SpotifyURL),
			CreatedAt:     e.PlayedAt,
		})
	}
	return listens, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
