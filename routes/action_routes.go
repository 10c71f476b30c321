package routes

import (
	"studymates_server/controllers"
	"studymates_server/services"

	"github.com/gorilla/mux"
)

// RegisterActionRoutes sets up routes for swipe operations under /action
func RegisterActionRoutes(api *mux.Router, swipeService *services.SwipeService) {
	controller := controllers.NewActionController(swipeService)

	actionRouter := api.PathPrefix("/action").Subrouter()
	actionRouter.HandleFunc("/swipe", controller.HandleSwipe).Methods("POST")
}
