package music

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/meur/homepage/internal/models"
	"github.com/meur/homepage/internal/reveal"
)

// Story is the slide-by-slide walkthrough of one year's countdown. Slides run
// from the lowest revealed album up to #1, followed by a coming soon slide
// while anything is pending.
type Story struct {
	Year         int                  `json:"year"`
	Albums       []models.Album       `json:"albums"`
	Pending      []reveal.Placeholder `json:"pending"`
	InitialSlide int                  `json:"initial_slide"`
	NextToReveal *int                 `json:"next_to_reveal"`
	HasUpcoming  bool                 `json:"has_upcoming"`
	TotalSlides  int                  `json:"total_slides"`
	Current      *StorySlide          `json:"current"`
	Meta         Meta                 `json:"meta"`
}

// StorySlide is the slide a shared link opens on
type StorySlide struct {
	Album    *models.Album       `json:"album,omitempty"`
	Upcoming *reveal.Placeholder `json:"upcoming,omitempty"`
}

// Meta is the link preview for a page
type Meta struct {
	Title       string `json:"title"`
	OGTitle     string `json:"og_title"`
	Description string `json:"description"`
	Image       string `json:"image,omitempty"`
	URL         string `json:"url,omitempty"`
	Type        string `json:"type"`
	TwitterCard string `json:"twitter_card,omitempty"`
}

// Story builds the walkthrough for year. album selects the starting slide by
// rank; zero or an unrevealed rank starts at the first slide.
func (s *Service) Story(ctx context.Context, year, album int, now time.Time) (*Story, error) {
	albums, err := s.albums(ctx, year)
	if err != nil {
		return nil, err
	}

	st := &Story{
		Year:    year,
		Albums:  []models.Album{},
		Pending: []reveal.Placeholder{},
	}
	for _, e := range reveal.ApplyAll(s.gate, albums, now) {
		if a, ok := e.Revealed(); ok {
			st.Albums = append(st.Albums, a)
		} else if p, ok := e.Pending(); ok {
			st.Pending = append(st.Pending, p)
		}
	}
	slices.SortStableFunc(st.Albums, func(a, b models.Album) int {
		return cmp.Compare(b.Rank, a.Rank)
	})

	if album > 0 {
		if i := slices.IndexFunc(st.Albums, func(a models.Album) bool { return a.Rank == album }); i >= 0 {
			st.InitialSlide = i
		}
	}

	st.HasUpcoming = len(st.Pending) > 0
	if st.HasUpcoming {
		next := 0
		for _, p := range st.Pending {
			next = max(next, p.Rank)
		}
		st.NextToReveal = &next
	}

	st.TotalSlides = len(st.Albums)
	if st.HasUpcoming {
		st.TotalSlides++
	}

	switch {
	case st.InitialSlide < len(st.Albums):
		a := st.Albums[st.InitialSlide]
		st.Current = &StorySlide{Album: &a}
	case st.HasUpcoming:
		p := st.Pending[0]
		st.Current = &StorySlide{Upcoming: &p}
	}
	st.Meta = s.storyMeta(st)
	return st, nil
}

func (s *Service) storyMeta(st *Story) Meta {
	list := fmt.Sprintf("%s %d Top %d", s.siteName, st.Year, s.gate.Length())

	if st.Current == nil || st.Current.Album == nil {
		title := "Coming Soon - " + list
		return Meta{
			Title:       title,
			OGTitle:     title,
			Description: "Check back soon for the next album reveal!",
			URL:         fmt.Sprintf("%s/music/story/%d", s.baseURL, st.Year),
			Type:        "website",
		}
	}

	a := st.Current.Album
	title := fmt.Sprintf("#%d - %s by %s", a.Rank, a.Album, a.Artist)
	description := fmt.Sprintf("Check out %s by %s!", a.Album, a.Artist)
	if a.Blurb != nil && *a.Blurb != "" {
		description = *a.Blurb
	}
	return Meta{
		Title:       title + " | " + list,
		OGTitle:     title,
		Description: description,
		Image:       a.AlbumArtURL,
		URL:         fmt.Sprintf("%s/music/story/%d?album=%d", s.baseURL, a.Year, a.Rank),
		Type:        "article",
		TwitterCard: "summary_large_image",
	}
}
