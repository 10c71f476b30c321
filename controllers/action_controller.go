package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"studymates_server/middleware"
	"studymates_server/services"
)

// ActionController handles HTTP requests for swipe actions
type ActionController struct {
	SwipeService *services.SwipeService
}

// NewActionController creates a new ActionController instance
func NewActionController(swipeService *services.SwipeService) *ActionController {
	return &ActionController{SwipeService: swipeService}
}

// HandleSwipe processes a "like" or "skip" on a target profile
func (ac *ActionController) HandleSwipe(w http.ResponseWriter, r *http.Request) {
	var request struct {
		TargetUserID string `json:"targetUserId"`
		Action       string `json:"action"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Println("Invalid request payload:", err)
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if request.TargetUserID == "" || request.Action == "" {
		http.Error(w, "targetUserId and action are required", http.StatusBadRequest)
		return
	}

	userID := middleware.GetUserID(r.Context())
	match, err := ac.SwipeService.RecordSwipe(r.Context(), userID, request.TargetUserID, request.Action)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	if match != nil {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"message": "It's a match!",
			"isMatch": true,
			"match":   match,
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Swipe recorded",
		"isMatch": false,
	})
}
