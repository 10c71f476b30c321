package routes

import (
	"studymates_server/controllers"
	"studymates_server/services"

	"github.com/gorilla/mux"
)

// RegisterMatchRoutes sets up routes for match operations under /matches
func RegisterMatchRoutes(api *mux.Router, matchService *services.MatchService) {
	controller := controllers.NewMatchController(matchService)

	matchRouter := api.PathPrefix("/matches").Subrouter()
	matchRouter.HandleFunc("", controller.HandleGetCurrentMatches).Methods("GET")
	matchRouter.HandleFunc("/potential", controller.HandleGetPotentialMatches).Methods("GET")
	matchRouter.HandleFunc("/{matchId}", controller.HandleGetMatch).Methods("GET")
}
