package config

import (
	"log/slog"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/meur/homepage/internal/models"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// Profile holds the about page configuration
type Profile struct {
	Path string
}

// Flags returns CLI flags for Profile configuration
func (p *Profile) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "profile",
			Usage:       "Path to profile YAML; the built-in profile is used when empty",
			Category:    "Profile",
			Sources:     cli.EnvVars("HOMEPAGE_PROFILE"),
			Destination: &p.Path,
		},
	}
}

// Configure loads the profile file
func (p *Profile) Configure() (*models.Profile, error) {
	profile := models.DefaultProfile()
	if p.Path == "" {
		return &profile, nil
	}

	data, err := os.ReadFile(p.Path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read profile file", goerr.V("path", p.Path))
	}
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return nil, goerr.Wrap(err, "failed to parse profile file", goerr.V("path", p.Path))
	}
	if len(profile.Avatars) == 0 {
		return nil, goerr.New("profile has no avatars", goerr.V("path", p.Path))
	}
	return &profile, nil
}

// LogValue returns structured log value
func (p Profile) LogValue() slog.Value {
	return slog.GroupValue(slog.String("path", p.Path))
}
