package api

import (
	"net/http"
	"strconv"

	"github.com/meur/homepage/internal/models"
	"github.com/meur/homepage/internal/music"
)

type profileResponse struct {
	models.Profile
	Avatar string `json:"avatar"`
}

// handleGetProfile returns the about page with one avatar picked at random
func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	resp := profileResponse{Profile: s.profile}
	if n := len(s.profile.Avatars); n > 0 {
		resp.Avatar = s.profile.Avatars[s.pick(n)]
	}
	respondJSON(w, http.StatusOK, resp)
}

// handleGetFeed returns a page of recent listens
func (s *Server) handleGetFeed(w http.ResponseWriter, r *http.Request) {
	offset, err := music.ParseOffset(r.URL.Query().Get("offset"))
	if err != nil {
		respondErr(w, r, err)
		return
	}

	page, err := s.music.Feed(r.Context(), offset)
	if err != nil {
		respondErr(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, page)
}

// handleGetAlbumYears returns the years with a countdown
func (s *Server) handleGetAlbumYears(w http.ResponseWriter, r *http.Request) {
	years, err := s.music.Years(r.Context())
	if err != nil {
		respondErr(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"years": years})
}

// handleGetYearList returns one year's countdown
func (s *Server) handleGetYearList(w http.ResponseWriter, r *http.Request) {
	year, err := urlInt(r, "year")
	if err != nil {
		respondErr(w, r, err)
		return
	}

	list, err := s.music.YearList(r.Context(), year, s.now())
	if err != nil {
		respondErr(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, list)
}

// handleGetStory returns the story walkthrough for a year
func (s *Server) handleGetStory(w http.ResponseWriter, r *http.Request) {
	year, err := urlInt(r, "year")
	if err != nil {
		respondErr(w, r, err)
		return
	}
	// an unparsable album just opens the first slide
	album, _ := strconv.Atoi(r.URL.Query().Get("album"))

	story, err := s.music.Story(r.Context(), year, album, s.now())
	if err != nil {
		respondErr(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, story)
}

// handleGetRandom redirects to a random album in the requested service, or
// lists the candidates when no service is given
func (s *Server) handleGetRandom(w http.ResponseWriter, r *http.Request) {
	pick, err := s.music.Random(r.Context(), r.URL.Query().Get("service"), s.now())
	if err != nil {
		respondErr(w, r, err)
		return
	}
	if pick.Redirect != nil {
		http.Redirect(w, r, *pick.Redirect, http.StatusFound)
		return
	}
	respondJSON(w, http.StatusOK, pick)
}
