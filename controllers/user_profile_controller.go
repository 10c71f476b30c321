package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"studymates_server/middleware"
	"studymates_server/services"

	"github.com/gorilla/mux"
)

// UserProfileController handles HTTP requests for user profiles
type UserProfileController struct {
	ProfileService *services.UserProfileService
}

// NewUserProfileController creates a new UserProfileController instance
func NewUserProfileController(profileService *services.UserProfileService) *UserProfileController {
	return &UserProfileController{ProfileService: profileService}
}

// HandleUpsertProfile creates or updates the authenticated user's profile
func (pc *UserProfileController) HandleUpsertProfile(w http.ResponseWriter, r *http.Request) {
	var input services.ProfileInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Println("Invalid request payload:", err)
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	userID := middleware.GetUserID(r.Context())
	profile, err := pc.ProfileService.UpsertProfile(r.Context(), userID, input)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

// HandleGetOwnProfile fetches the authenticated user's profile
func (pc *UserProfileController) HandleGetOwnProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := pc.ProfileService.GetProfile(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

// HandleGetProfile fetches a user profile by id
func (pc *UserProfileController) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	profile, err := pc.ProfileService.GetProfile(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}
