package controllers

import (
	"encoding/json"
	"net/http"

	"studymates_server/services"
)

// AvatarController handles presigned URL requests for profile avatars
type AvatarController struct {
	AvatarService *services.AvatarService
}

// NewAvatarController creates a new AvatarController instance
func NewAvatarController(avatarService *services.AvatarService) *AvatarController {
	return &AvatarController{AvatarService: avatarService}
}

// HandleGenerateUploadURL returns a presigned URL for uploading an avatar
func (ac *AvatarController) HandleGenerateUploadURL(w http.ResponseWriter, r *http.Request) {
	var request struct {
		FileName string `json:"fileName"`
		FileType string `json:"fileType"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if request.FileName == "" || request.FileType == "" {
		http.Error(w, "fileName and fileType are required", http.StatusBadRequest)
		return
	}

	url, key, err := ac.AvatarService.GenerateUploadURL(r.Context(), request.FileName, request.FileType)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"uploadUrl": url, "key": key})
}

// HandleGenerateReadURL returns a presigned URL for reading an avatar
func (ac *AvatarController) HandleGenerateReadURL(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if key == "" {
		http.Error(w, "key is required", http.StatusBadRequest)
		return
	}

	url, err := ac.AvatarService.GenerateReadURL(r.Context(), key)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"readUrl": url})
}
