package cli

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/meur/homepage/internal/api"
	"github.com/meur/homepage/internal/config"
	"github.com/meur/homepage/internal/league"
	"github.com/meur/homepage/internal/music"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var (
		serverCfg  config.Server
		dbCfg      config.Database
		revealCfg  config.Reveal
		profileCfg config.Profile
	)

	return &cli.Command{
		Name:  "serve",
		Usage: "Start HTTP server",
		Flags: joinFlags(
			serverCfg.Flags(),
			dbCfg.Flags(),
			revealCfg.Flags(),
			profileCfg.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)
			logger.Info("Starting homepage server",
				slog.Any("server", serverCfg),
				slog.Any("database", dbCfg),
				slog.Any("reveal", revealCfg),
				slog.Any("profile", profileCfg),
			)

			store, err := dbCfg.Configure(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			gate, err := revealCfg.Configure()
			if err != nil {
				return err
			}
			profile, err := profileCfg.Configure()
			if err != nil {
				return err
			}

			musicSvc := music.NewService(store, gate,
				music.WithBaseURL(serverCfg.BaseURL),
				music.WithSiteName(serverCfg.SiteName),
			)
			handler := api.New(ctx, league.NewService(store), musicSvc,
				api.WithStore(store),
				api.WithProfile(*profile),
				api.WithAllowedOrigins(serverCfg.Origins()),
				api.WithStaticDir(serverCfg.StaticDir),
			)

			server := &http.Server{
				Addr:              serverCfg.Addr,
				Handler:           handler,
				ReadHeaderTimeout: 10 * time.Second,
			}

			serveErr := make(chan error, 1)
			go func() {
				logger.Info("HTTP server starting", slog.String("addr", serverCfg.Addr))
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					serveErr <- err
				}
			}()

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
			defer signal.Stop(sigChan)

			select {
			case err := <-serveErr:
				return goerr.Wrap(err, "HTTP server failed", goerr.V("addr", serverCfg.Addr))
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}
