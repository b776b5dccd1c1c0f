package api

import (
	"net/http"
)

// handleGetLeague returns managers, the all-time table and the season picker
func (s *Server) handleGetLeague(w http.ResponseWriter, r *http.Request) {
	overview, err := s.league.Overview(r.Context())
	if err != nil {
		respondErr(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, overview)
}

// handleGetAllTime returns the all-time table
func (s *Server) handleGetAllTime(w http.ResponseWriter, r *http.Request) {
	showAll, err := queryBool(r, "show_all")
	if err != nil {
		respondErr(w, r, err)
		return
	}

	stats, err := s.league.AllTime(r.Context(), showAll)
	if err != nil {
		respondErr(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"show_all": showAll,
		"all_time": stats,
	})
}

// handleGetSeason returns one season's standings
func (s *Server) handleGetSeason(w http.ResponseWriter, r *http.Request) {
	year, err := urlInt(r, "year")
	if err != nil {
		respondErr(w, r, err)
		return
	}

	view, err := s.league.Season(r.Context(), year)
	if err != nil {
		respondErr(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, view)
}

// handleGetMatchups returns one week of games
func (s *Server) handleGetMatchups(w http.ResponseWriter, r *http.Request) {
	year, err := queryInt(r, "year")
	if err != nil {
		respondErr(w, r, err)
		return
	}
	week, err := queryInt(r, "week")
	if err != nil {
		respondErr(w, r, err)
		return
	}

	view, err := s.league.Matchups(r.Context(), year, week)
	if err != nil {
		respondErr(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, view)
}

// handleGetHeadToHead compares two managers
func (s *Server) handleGetHeadToHead(w http.ResponseWriter, r *http.Request) {
	one, err := queryInt(r, "team_one")
	if err != nil {
		respondErr(w, r, err)
		return
	}
	two, err := queryInt(r, "team_two")
	if err != nil {
		respondErr(w, r, err)
		return
	}

	view, err := s.league.HeadToHead(r.Context(), one, two)
	if err != nil {
		respondErr(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, view)
}

// handleGetManager returns a manager's profile
func (s *Server) handleGetManager(w http.ResponseWriter, r *http.Request) {
	id, err := urlInt(r, "id")
	if err != nil {
		respondErr(w, r, err)
		return
	}

	view, err := s.league.Manager(r.Context(), id)
	if err != nil {
		respondErr(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, view)
}
