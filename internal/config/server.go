package config

import (
	"log/slog"
	"strings"

	"github.com/urfave/cli/v3"
)

// Server holds HTTP server configuration
type Server struct {
	Addr           string
	StaticDir      string
	AllowedOrigins string
	BaseURL        string
	SiteName       string
}

// Flags returns CLI flags for Server configuration
func (s *Server) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Server address",
			Category:    "Server",
			Value:       ":8080",
			Sources:     cli.EnvVars("HOMEPAGE_ADDR"),
			Destination: &s.Addr,
		},
		&cli.StringFlag{
			Name:        "static-dir",
			Usage:       "Directory with the built frontend; empty disables static files",
			Category:    "Server",
			Value:       "../frontend/dist",
			Sources:     cli.EnvVars("HOMEPAGE_STATIC_DIR"),
			Destination: &s.StaticDir,
		},
		&cli.StringFlag{
			Name:        "allowed-origins",
			Usage:       "Comma separated CORS origins",
			Category:    "Server",
			Value:       "http://localhost:5173,http://127.0.0.1:5173",
			Sources:     cli.EnvVars("HOMEPAGE_ALLOWED_ORIGINS"),
			Destination: &s.AllowedOrigins,
		},
		&cli.StringFlag{
			Name:        "base-url",
			Usage:       "Public site URL used in share links",
			Category:    "Server",
			Value:       "http://localhost:8080",
			Sources:     cli.EnvVars("HOMEPAGE_BASE_URL"),
			Destination: &s.BaseURL,
		},
		&cli.StringFlag{
			Name:        "site-name",
			Usage:       "Owner name used in page titles",
			Category:    "Server",
			Value:       "My",
			Sources:     cli.EnvVars("HOMEPAGE_SITE_NAME"),
			Destination: &s.SiteName,
		},
	}
}

// Origins returns the CORS origins as a list
func (s *Server) Origins() []string {
	var origins []string
	for _, o := range strings.Split(s.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// LogValue returns structured log value
func (s Server) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("addr", s.Addr),
		slog.String("static_dir", s.StaticDir),
		slog.Any("allowed_origins", s.Origins()),
		slog.String("base_url", s.BaseURL),
	)
}
