package controllers

import (
	"net/http"

	"studymates_server/middleware"
	"studymates_server/services"

	"github.com/gorilla/mux"
)

// MatchController handles HTTP requests for matches and the candidate pool
type MatchController struct {
	MatchService *services.MatchService
}

// NewMatchController creates a new MatchController instance
func NewMatchController(matchService *services.MatchService) *MatchController {
	return &MatchController{MatchService: matchService}
}

// HandleGetPotentialMatches returns the next candidate profiles to present
func (mc *MatchController) HandleGetPotentialMatches(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	profiles, err := mc.MatchService.GetPotentialMatches(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profiles)
}

// HandleGetCurrentMatches returns the user's matches, most recent activity first
func (mc *MatchController) HandleGetCurrentMatches(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	matches, err := mc.MatchService.GetCurrentMatches(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, matches)
}

// HandleGetMatch fetches a single match by id
func (mc *MatchController) HandleGetMatch(w http.ResponseWriter, r *http.Request) {
	matchID := mux.Vars(r)["matchId"]
	match, err := mc.MatchService.GetMatch(r.Context(), matchID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, match)
}
