package routes

import (
	"studymates_server/controllers"
	"studymates_server/services"

	"github.com/gorilla/mux"
)

// RegisterUserProfileRoutes sets up routes for profile operations under /profiles
func RegisterUserProfileRoutes(api *mux.Router, profileService *services.UserProfileService) {
	controller := controllers.NewUserProfileController(profileService)

	profileRouter := api.PathPrefix("/profiles").Subrouter()
	profileRouter.HandleFunc("", controller.HandleUpsertProfile).Methods("POST")
	profileRouter.HandleFunc("/me", controller.HandleGetOwnProfile).Methods("GET")
	profileRouter.HandleFunc("/{userId}", controller.HandleGetProfile).Methods("GET")
}
