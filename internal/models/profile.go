package models

// Profile is the site owner's about page
type Profile struct {
	Name    string        `json:"name" yaml:"name"`
	Tagline string        `json:"tagline" yaml:"tagline"`
	Avatars []string      `json:"avatars" yaml:"avatars"`
	Links   []ProfileLink `json:"links" yaml:"links"`
}

// ProfileLink is a social or external link
type ProfileLink struct {
	Label string `json:"label" yaml:"label"`
	Icon  string `json:"icon" yaml:"icon"`
	URL   string `json:"url" yaml:"url"`
}

// DefaultProfile is served when no profile file is configured
func DefaultProfile() Profile {
	return Profile{
		Name:    "Site Owner",
		Tagline: "Sports Addict, Software Developer",
		Avatars: []string{"/images/memoji_1.png"},
		Links:   []ProfileLink{},
	}
}
