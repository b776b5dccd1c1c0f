package cli

import (
	"context"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/meur/homepage/internal/storage"
)

func TestSeedFiles(t *testing.T) {
	ctx := context.Background()
	store, err := storage.New(ctx, filepath.Join(t.TempDir(), "seed.db"))
	gt.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	gt.NoError(t, seedFiles(ctx, store, []string{"../../testdata/seed.yaml"}))

	managers, err := store.GetManagers(ctx)
	gt.NoError(t, err)
	gt.A(t, managers).Length(5)
}

func TestSeedFilesKeepsGoing(t *testing.T) {
	ctx := context.Background()
	store, err := storage.New(ctx, filepath.Join(t.TempDir(), "seed.db"))
	gt.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	gt.NoError(t, os.WriteFile(bad, []byte("managers: {not: a list}"), 0o600))

	err = seedFiles(ctx, store, []string{bad, "../../testdata/seed.yaml"})
	gt.Error(t, err)

	years, err := store.GetAlbumYears(ctx)
	gt.NoError(t, err)
	gt.Equal(t, years, []int{2024, 2021})
}

func TestRunSeedCommand(t *testing.T) {
	db := filepath.Join(t.TempDir(), "run.db")
	err := Run(context.Background(), []string{
		"homepage", "--log-format", "json", "seed", "--db", db, "../../testdata/seed.yaml",
	})
	gt.NoError(t, err)

	store, err := storage.New(context.Background(), db)
	gt.NoError(t, err)
	defer store.Close()

	seasons, err := store.GetSeasons(context.Background())
	gt.NoError(t, err)
	gt.A(t, seasons).Length(2)
}

func TestRunRejectsBadLogFormat(t *testing.T) {
	err := Run(context.Background(), []string{"homepage", "--log-format", "xml", "seed"})
	gt.Error(t, err)
}

func TestServeFailsOnBusyPort(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	gt.NoError(t, err)
	defer ln.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err = Run(ctx, []string{
		"homepage", "--log-format", "json", "serve",
		"--addr", ln.Addr().String(),
		"--db", filepath.Join(t.TempDir(), "serve.db"),
		"--static-dir", "",
	})
	gt.Error(t, err)
	gt.NoError(t, ctx.Err())
}
