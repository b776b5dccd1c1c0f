package cli

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/meur/homepage/internal/config"
	"github.com/meur/homepage/internal/storage"
	"github.com/urfave/cli/v3"
)

func cmdSeed() *cli.Command {
	var (
		dbCfg    config.Database
		seedsDir string
	)

	return &cli.Command{
		Name:      "seed",
		Usage:     "Load YAML seed files into the database",
		ArgsUsage: "[file.yaml ...]",
		Flags: joinFlags(
			dbCfg.Flags(),
			[]cli.Flag{
				&cli.StringFlag{
					Name:        "seeds",
					Usage:       "Directory of *.yaml seed files, used when no files are given",
					Category:    "Seed",
					Value:       "./seeds",
					Sources:     cli.EnvVars("HOMEPAGE_SEEDS"),
					Destination: &seedsDir,
				},
			},
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			files := c.Args().Slice()
			if len(files) == 0 {
				matches, err := filepath.Glob(filepath.Join(seedsDir, "*.yaml"))
				if err != nil {
					return goerr.Wrap(err, "invalid seeds directory", goerr.V("dir", seedsDir))
				}
				files = matches
			}
			if len(files) == 0 {
				return goerr.New("no seed files found", goerr.V("dir", seedsDir))
			}

			store, err := dbCfg.Configure(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			return seedFiles(ctx, store, files)
		},
	}
}

// seedFiles loads every file, continuing past failures so one bad file does
// not block the rest
func seedFiles(ctx context.Context, store *storage.Store, files []string) error {
	logger := ctxlog.From(ctx)

	var failed []string
	for _, path := range files {
		ds, err := storage.LoadDataset(path)
		if err == nil {
			err = store.Seed(ctx, ds)
		}
		if err != nil {
			logger.Warn("failed to seed file", slog.String("path", path), slog.Any("error", err))
			failed = append(failed, path)
			continue
		}
		logger.Info("seeded file",
			slog.String("path", path),
			slog.Int("managers", len(ds.Managers)),
			slog.Int("games", len(ds.Games)),
			slog.Int("albums", len(ds.AlbumsOfTheYear)),
			slog.Int("listens", len(ds.MusicHistory)),
		)
	}

	if len(failed) > 0 {
		return goerr.New("some seed files failed", goerr.V("files", failed))
	}
	logger.Info("Seeding complete", slog.Int("files", len(files)))
	return nil
}
