package routes

import (
	"studymates_server/controllers"
	"studymates_server/services"

	"github.com/gorilla/mux"
)

// RegisterAvatarRoutes sets up routes for avatar presigned URLs under /avatar
func RegisterAvatarRoutes(api *mux.Router, avatarService *services.AvatarService) {
	controller := controllers.NewAvatarController(avatarService)

	avatarRouter := api.PathPrefix("/avatar").Subrouter()
	avatarRouter.HandleFunc("/uploadUrl", controller.HandleGenerateUploadURL).Methods("POST")
	avatarRouter.HandleFunc("/readUrl", controller.HandleGenerateReadURL).Methods("GET")
}
