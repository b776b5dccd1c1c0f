package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/meur/homepage/internal/config"
)

func TestServerOrigins(t *testing.T) {
	cfg := config.Server{AllowedOrigins: " https://a.example , ,https://b.example"}
	gt.Equal(t, cfg.Origins(), []string{"https://a.example", "https://b.example"})

	empty := config.Server{}
	gt.A(t, empty.Origins()).Length(0)
}

func TestRevealConfigure(t *testing.T) {
	cfg := config.Reveal{Length: 10, TimeZone: "Europe/Berlin"}
	gate, err := cfg.Configure()
	gt.NoError(t, err)
	gt.Equal(t, gate.Length(), 10)
	gt.Equal(t, gate.Location().String(), "Europe/Berlin")

	bad := config.Reveal{Length: 25, TimeZone: "Mars/Olympus"}
	_, err = bad.Configure()
	gt.Error(t, err)

	zero := config.Reveal{Length: 0, TimeZone: "UTC"}
	_, err = zero.Configure()
	gt.Error(t, err)
}

func TestProfileDefault(t *testing.T) {
	var cfg config.Profile
	profile, err := cfg.Configure()
	gt.NoError(t, err)
	gt.A(t, profile.Avatars).Longer(0)
}

func TestProfileFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")
	gt.NoError(t, os.WriteFile(path, []byte(`
name: Meur
tagline: Records and fantasy football
avatars:
  - /images/a.png
  - /images/b.png
links:
  - {label: GitHub, icon: github, url: "https://github.com/meur"}
`), 0o600))

	cfg := config.Profile{Path: path}
	profile, err := cfg.Configure()
	gt.NoError(t, err)
	gt.Equal(t, profile.Name, "Meur")
	gt.A(t, profile.Avatars).Length(2)
	gt.Equal(t, profile.Links[0].URL, "https://github.com/meur")
}

func TestProfileWithoutAvatars(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")
	gt.NoError(t, os.WriteFile(path, []byte("name: Meur\navatars: []\n"), 0o600))

	cfg := config.Profile{Path: path}
	_, err := cfg.Configure()
	gt.Error(t, err)
}

func TestProfileMissingFile(t *testing.T) {
	cfg := config.Profile{Path: filepath.Join(t.TempDir(), "nope.yaml")}
	_, err := cfg.Configure()
	gt.Error(t, err)
}
