package config

import (
	"log/slog"
	"time"
	_ "time/tzdata"

	"github.com/m-mizutani/goerr/v2"
	"github.com/meur/homepage/internal/reveal"
	"github.com/urfave/cli/v3"
)

// Reveal holds countdown configuration
type Reveal struct {
	Length   int
	TimeZone string
}

// Flags returns CLI flags for Reveal configuration
func (r *Reveal) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:        "reveal-length",
			Usage:       "Number of albums in the yearly countdown",
			Category:    "Reveal",
			Value:       reveal.DefaultLength,
			Sources:     cli.EnvVars("HOMEPAGE_REVEAL_LENGTH"),
			Destination: &r.Length,
		},
		&cli.StringFlag{
			Name:        "reveal-timezone",
			Usage:       "Time zone the countdown days are counted in",
			Category:    "Reveal",
			Value:       reveal.DefaultTimeZone,
			Sources:     cli.EnvVars("HOMEPAGE_REVEAL_TIMEZONE"),
			Destination: &r.TimeZone,
		},
	}
}

// Configure builds the reveal gate
func (r *Reveal) Configure() (*reveal.Gate, error) {
	loc, err := time.LoadLocation(r.TimeZone)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid reveal time zone", goerr.V("timezone", r.TimeZone))
	}
	return reveal.New(reveal.Config{Length: r.Length, Location: loc})
}

// LogValue returns structured log value
func (r Reveal) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("length", r.Length),
		slog.String("timezone", r.TimeZone),
	)
}
